package store

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/san-kum/odelab/internal/ode"
)

func sampleTrajectory() *ode.Trajectory {
	return &ode.Trajectory{
		States: []ode.State{{1.0, 0.0}, {0.9, -0.1}, {0.7, -0.3}},
		Times:  []float64{0.0, 0.01, 0.02},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg := ode.Config{Tau: 0.02, Steps: 3}
	runID, err := st.Save("spring", "rk4", cfg, sampleTrajectory())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Problem != "spring" {
		t.Errorf("expected problem 'spring', got %q", meta.Problem)
	}
	if meta.Stepper != "rk4" {
		t.Errorf("expected stepper 'rk4', got %q", meta.Stepper)
	}
	if meta.Steps != 3 {
		t.Errorf("expected 3 steps, got %d", meta.Steps)
	}
	if len(meta.Final) != 2 || meta.Final[0] != 0.7 {
		t.Errorf("unexpected final state: %v", meta.Final)
	}

	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		t.Fatalf("load trajectory failed: %v", err)
	}
	if traj.Len() != 3 {
		t.Fatalf("expected 3 states, got %d", traj.Len())
	}
	if traj.States[1][1] != -0.1 {
		t.Errorf("state roundtrip lost precision: %v", traj.States[1])
	}
	if traj.Times[2] != 0.02 {
		t.Errorf("time roundtrip failed: %v", traj.Times)
	}
}

func TestStoreTimesRoundTripExactly(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	// h = tau/(steps-1) is rarely a short decimal
	h := 1.0 / 3.0
	traj := &ode.Trajectory{
		States: []ode.State{{1.0}, {0.5}, {0.25}},
		Times:  []float64{0, h, 2 * h},
	}

	runID, err := st.Save("exponential", "rk4", ode.Config{Tau: 1.0, Steps: 3}, traj)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := st.LoadTrajectory(runID)
	if err != nil {
		t.Fatalf("load trajectory failed: %v", err)
	}
	for i := range traj.Times {
		if loaded.Times[i] != traj.Times[i] {
			t.Errorf("time %d roundtrip lost precision: got %v, want %v", i, loaded.Times[i], traj.Times[i])
		}
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	cfg := ode.Config{Tau: 0.02, Steps: 3}
	if _, err := st.Save("lorenz", "euler", cfg, sampleTrajectory()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Problem != "lorenz" {
		t.Errorf("expected problem 'lorenz', got %q", runs[0].Problem)
	}
}

func TestStoreList_MissingDir(t *testing.T) {
	st := New("does-not-exist")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list on missing dir should not fail: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	meta := &RunMetadata{Problem: "spring", Stepper: "rk4", Tau: 0.02, Dt: 0.01}
	var buf bytes.Buffer

	if err := ExportJSON(&buf, meta, sampleTrajectory()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if data.Problem != "spring" || data.Steps != 3 {
		t.Errorf("unexpected export payload: %+v", data)
	}
	if len(data.States) != 3 || data.States[0][0] != 1.0 {
		t.Errorf("states not exported: %v", data.States)
	}
}
