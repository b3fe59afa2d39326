package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/odelab/internal/ode"
)

type ExportData struct {
	Problem string      `json:"problem"`
	Stepper string      `json:"stepper"`
	Tau     float64     `json:"tau"`
	Dt      float64     `json:"dt"`
	Steps   int         `json:"steps"`
	Times   []float64   `json:"times"`
	States  [][]float64 `json:"states"`
}

func exportData(meta *RunMetadata, traj *ode.Trajectory) ExportData {
	data := ExportData{
		Problem: meta.Problem,
		Stepper: meta.Stepper,
		Tau:     meta.Tau,
		Dt:      meta.Dt,
		Steps:   traj.Len(),
		Times:   traj.Times,
		States:  make([][]float64, traj.Len()),
	}
	for i, s := range traj.States {
		data.States[i] = s
	}
	return data
}

func ExportJSON(w io.Writer, meta *RunMetadata, traj *ode.Trajectory) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(exportData(meta, traj))
}

func ExportJSONFile(path string, meta *RunMetadata, traj *ode.Trajectory) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return ExportJSON(file, meta, traj)
}
