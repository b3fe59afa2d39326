package problems_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/problems"
	"github.com/san-kum/odelab/internal/steppers"
)

var _ = Describe("FreeFall", func() {
	It("has the analytic trajectory under rk4", func() {
		traj, err := ode.Solve(context.Background(), problems.NewFreeFall(), steppers.NewRK4(),
			ode.State{0, 0}, ode.Config{Tau: 1.0, Steps: 11})
		Expect(err).NotTo(HaveOccurred())

		final := traj.Last()
		Expect(final[0]).To(BeNumerically("~", -4.9, 1e-10))
		Expect(final[1]).To(BeNumerically("~", -9.8, 1e-10))
	})

	It("reports its dimension", func() {
		Expect(problems.NewFreeFall().Dim()).To(Equal(2))
	})
})

var _ = Describe("Spring", func() {
	It("is at rest at the static equilibrium point", func() {
		s := problems.NewSpring()
		// equilibrium: k x = -m g
		x := -s.Mass * s.Gravity / s.Stiffness
		dy, err := s.Derive(ode.State{x, 0}, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(dy[0]).To(BeZero())
		Expect(dy[1]).To(BeNumerically("~", 0, 1e-12))
	})

	It("stays at the equilibrium point when friction is on", func() {
		s := problems.NewSpring()
		s.Friction = 0.15

		x := -s.Mass * s.Gravity / s.Stiffness
		dy, err := s.Derive(ode.State{x, 0}, 0)
		Expect(err).NotTo(HaveOccurred())
		// no motion, no friction force
		Expect(dy[1]).To(BeNumerically("~", 0, 1e-12))
	})

	It("conserves energy without friction", func() {
		s := problems.NewSpring()
		y0 := s.DefaultState()

		traj, err := ode.Solve(context.Background(), s, steppers.NewRK4(),
			y0, ode.Config{Tau: 3.0, Steps: 1000})
		Expect(err).NotTo(HaveOccurred())

		drift := math.Abs(s.Energy(traj.Last()) - s.Energy(y0))
		Expect(drift).To(BeNumerically("<", 1e-6))
	})

	It("dissipates energy with friction", func() {
		s := problems.NewSpring()
		s.Stiffness, s.Mass, s.Friction = 42, 0.25, 0.15
		y0 := ode.State{0.2, 0}

		traj, err := ode.Solve(context.Background(), s, steppers.NewRK4(),
			y0, ode.Config{Tau: 3.0, Steps: 1000})
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Energy(traj.Last())).To(BeNumerically("<", s.Energy(y0)))
	})

	It("opposes the current velocity direction", func() {
		s := problems.NewSpring()
		s.Friction = 0.5

		up, err := s.Derive(ode.State{0, 1}, 0)
		Expect(err).NotTo(HaveOccurred())
		down, err := s.Derive(ode.State{0, -1}, 0)
		Expect(err).NotTo(HaveOccurred())

		// friction subtracts from the accel when moving up, adds when moving down
		Expect(up[1]).To(BeNumerically("<", down[1]))
	})
})

var _ = Describe("Pendulum", func() {
	It("is motionless at the hanging equilibrium", func() {
		p := problems.NewPendulum()
		dy, err := p.Derive(ode.State{0, 0}, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(dy[0]).To(BeZero())
		Expect(dy[1]).To(BeZero())
	})

	It("accelerates back toward equilibrium when displaced", func() {
		p := problems.NewPendulum()
		dy, err := p.Derive(ode.State{math.Pi / 2, 0}, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(dy[1]).To(BeNumerically("~", -p.Gravity/p.Length, 1e-10))
	})
})

var _ = Describe("Lorenz", func() {
	It("matches the textbook equations", func() {
		l := problems.NewLorenz()
		dy, err := l.Derive(ode.State{1, 2, 3}, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(dy[0]).To(Equal(l.Sigma * (2.0 - 1.0)))
		Expect(dy[1]).To(Equal(1.0*(l.Rho-3.0) - 2.0))
		Expect(dy[2]).To(Equal(1.0*2.0 - l.Beta*3.0))
	})

	It("exposes rho for sweeps", func() {
		l := problems.NewLorenz()
		Expect(l.SetParam("rho", 14)).To(Succeed())
		Expect(l.GetParams()["rho"]).To(Equal(14.0))
		Expect(l.SetParam("bogus", 1)).NotTo(Succeed())
	})

	It("stays bounded on the attractor", func() {
		traj, err := ode.Solve(context.Background(), problems.NewLorenz(), steppers.NewRK4(),
			ode.State{1, 1, 1}, ode.Config{Tau: 20.0, Steps: 20001})
		Expect(err).NotTo(HaveOccurred())
		Expect(traj.Last().IsValid()).To(BeTrue())
		Expect(traj.Last().Norm()).To(BeNumerically("<", 100))
	})
})

var _ = Describe("Projectile", func() {
	It("is symmetric without drag", func() {
		p := problems.NewProjectile()
		y0 := p.DefaultState()

		// time of flight for a 45 degree launch: 2 vh / g
		tof := 2 * y0[3] / p.Gravity
		traj, err := ode.Solve(context.Background(), p, steppers.NewRK4(),
			y0, ode.Config{Tau: tof, Steps: 2001})
		Expect(err).NotTo(HaveOccurred())
		Expect(traj.Last()[1]).To(BeNumerically("~", 0, 1e-6))
	})

	It("falls short with drag", func() {
		base := problems.NewProjectile()
		y0 := base.DefaultState()
		tof := 2 * y0[3] / base.Gravity
		cfg := ode.Config{Tau: tof, Steps: 2001}

		clean, err := ode.Solve(context.Background(), base, steppers.NewRK4(), y0, cfg)
		Expect(err).NotTo(HaveOccurred())

		draggy := problems.NewProjectile()
		draggy.Drag = 0.05
		slowed, err := ode.Solve(context.Background(), draggy, steppers.NewRK4(), y0, cfg)
		Expect(err).NotTo(HaveOccurred())

		Expect(slowed.Last()[0]).To(BeNumerically("<", clean.Last()[0]))
	})
})

var _ = Describe("Exponential", func() {
	It("tracks the closed form", func() {
		traj, err := ode.Solve(context.Background(), problems.NewExponential(), steppers.NewRK4(),
			ode.State{1}, ode.Config{Tau: 1.0, Steps: 101})
		Expect(err).NotTo(HaveOccurred())
		Expect(traj.Last()[0]).To(BeNumerically("~", math.E, 1e-8))
	})
})
