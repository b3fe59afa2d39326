package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Problem != "pendulum" {
		t.Errorf("expected problem pendulum, got %s", cfg.Problem)
	}
	if cfg.Tau <= 0 {
		t.Error("tau should be positive")
	}
	if cfg.Steps < 2 {
		t.Error("steps should allow at least one transition")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := &Config{
		Problem: "lorenz",
		Stepper: "rk2",
		Tau:     5.0,
		Steps:   5001,
		Init:    []float64{1, 1, 1},
		Params:  map[string]float64{"rho": 14},
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Problem != "lorenz" || loaded.Stepper != "rk2" {
		t.Errorf("roundtrip lost identity: %+v", loaded)
	}
	if loaded.Params["rho"] != 14 {
		t.Errorf("roundtrip lost params: %v", loaded.Params)
	}
	if len(loaded.Init) != 3 {
		t.Errorf("roundtrip lost init state: %v", loaded.Init)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("no-such-file.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("pendulum", "small")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Init[0] != 0.2 {
		t.Errorf("expected theta 0.2, got %f", cfg.Init[0])
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("pendulum", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "small"); cfg != nil {
		t.Error("expected nil for nonexistent problem")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("lorenz"); len(presets) == 0 {
		t.Error("expected presets for lorenz")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent problem")
	}
}
