// Package viz renders a live terminal view of a running integration
// using bubbletea, with an asciigraph history of the first state
// variable.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/odelab/internal/ode"
)

const (
	historyCapacity = 600
	stepsPerFrame   = 5
	graphWidth      = 72
	graphHeight     = 12
)

type TickMsg time.Time

// Model drives the integration a few steps per animation frame and
// keeps a bounded history for plotting.
type Model struct {
	sys     ode.System
	stepper ode.Stepper
	problem string

	state   ode.State
	initial ode.State
	t, h    float64
	steps   int

	history []float64
	running bool
	err     error
}

func NewModel(sys ode.System, stepper ode.Stepper, y0 ode.State, h float64, problem string) Model {
	return Model{
		sys:     sys,
		stepper: stepper,
		problem: problem,
		state:   y0.Clone(),
		initial: y0.Clone(),
		h:       h,
		history: make([]float64, 0, historyCapacity),
		running: true,
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.state = m.initial.Clone()
			m.t = 0
			m.steps = 0
			m.history = m.history[:0]
			m.err = nil
			m.running = true
		}

	case TickMsg:
		if m.running && m.err == nil {
			for i := 0; i < stepsPerFrame; i++ {
				next, err := m.stepper.Step(m.sys, m.state, m.t, m.h)
				if err != nil {
					m.err = &ode.StepError{Step: m.steps, Time: m.t, Err: err}
					m.running = false
					break
				}
				m.state = next
				m.t += m.h
				m.steps++
			}

			m.history = append(m.history, m.state[0])
			if len(m.history) > historyCapacity {
				m.history = m.history[len(m.history)-historyCapacity:]
			}
		}
		return m, tick()
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("odelab live: %s", m.problem)))
	b.WriteString("\n")

	status := "running"
	if m.err != nil {
		status = "failed"
	} else if !m.running {
		status = "paused"
	}

	b.WriteString(labelStyle.Render("status") + valueStyle.Render(status) + "\n")
	b.WriteString(labelStyle.Render("t") + valueStyle.Render(fmt.Sprintf("%.3f", m.t)) + "\n")
	b.WriteString(labelStyle.Render("steps") + valueStyle.Render(fmt.Sprintf("%d", m.steps)) + "\n")
	for i, v := range m.state {
		b.WriteString(labelStyle.Render(fmt.Sprintf("x%d", i)) + valueStyle.Render(fmt.Sprintf("%+.6f", v)) + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(m.err.Error()) + "\n")
	}

	if len(m.history) > 1 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("x0 history"),
		)
		b.WriteString(graphStyle.Render(graph))
	}

	b.WriteString("\n" + helpStyle.Render("space pause · r reset · q quit"))
	return b.String()
}
