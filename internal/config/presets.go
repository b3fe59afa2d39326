package config

var Presets = map[string]map[string]*Config{
	"pendulum": {
		"small": {
			Problem: "pendulum", Stepper: "rk4", Tau: 20.0, Steps: 2001,
			Init: []float64{0.2, 0.0},
		},
		"large": {
			Problem: "pendulum", Stepper: "rk4", Tau: 20.0, Steps: 2001,
			Init: []float64{2.5, 0.0},
		},
		"spinning": {
			Problem: "pendulum", Stepper: "rk4", Tau: 30.0, Steps: 3001,
			Init: []float64{0.1, 8.0},
		},
	},
	"spring": {
		"textbook": {
			Problem: "spring", Stepper: "rk4", Tau: 3.0, Steps: 1000,
			Init: []float64{0.0, 0.0},
		},
		"friction": {
			Problem: "spring", Stepper: "rk4", Tau: 3.0, Steps: 1000,
			Init:   []float64{0.2, 0.0},
			Params: map[string]float64{"k": 42, "m": 0.25, "mu": 0.15},
		},
	},
	"lorenz": {
		"butterfly": {
			Problem: "lorenz", Stepper: "rk4", Tau: 40.0, Steps: 40001,
			Init: []float64{1.0, 1.0, 1.0},
		},
		"calm": {
			Problem: "lorenz", Stepper: "rk4", Tau: 40.0, Steps: 40001,
			Init:   []float64{1.0, 1.0, 1.0},
			Params: map[string]float64{"rho": 14},
		},
	},
	"freefall": {
		"drop": {
			Problem: "freefall", Stepper: "rk4", Tau: 1.0, Steps: 11,
			Init: []float64{0.0, 0.0},
		},
	},
	"projectile": {
		"cannon": {
			Problem: "projectile", Stepper: "rk4", Tau: 3.0, Steps: 3001,
			Init: []float64{0, 0, 14.14, 14.14},
		},
	},
}

func GetPreset(problem, name string) *Config {
	group, ok := Presets[problem]
	if !ok {
		return nil
	}
	return group[name]
}

func ListPresets(problem string) []string {
	group, ok := Presets[problem]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
