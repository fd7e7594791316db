package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/steeltroops-ai/gravitas/integrator"
)

// RayResult is one traced ray's outcome, the unit exported per row/record.
type RayResult struct {
	Index    int        `json:"index"`
	Reason   string     `json:"termination"`
	Steps    int        `json:"steps"`
	MaxDrift float64    `json:"max_drift"`
	Final    [8]float64 `json:"final_state"`
}

func toRayResult(index int, traj integrator.Trajectory) RayResult {
	return RayResult{
		Index:    index,
		Reason:   traj.Reason.String(),
		Steps:    traj.Steps,
		MaxDrift: traj.MaxDrift,
		Final:    traj.Final.Encode(),
	}
}

// WriteCSV writes one row per ray to path, columns
// index,termination,steps,max_drift,t,r,theta,phi,p_t,p_r,p_theta,p_phi.
func WriteCSV(path string, results []RayResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("gravitas-trace: creating output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gravitas-trace: creating csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"index", "termination", "steps", "max_drift",
		"t", "r", "theta", "phi", "p_t", "p_r", "p_theta", "p_phi"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			strconv.Itoa(r.Index),
			r.Reason,
			strconv.Itoa(r.Steps),
			strconv.FormatFloat(r.MaxDrift, 'g', -1, 64),
		}
		for _, component := range r.Final {
			row = append(row, strconv.FormatFloat(component, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteJSON writes the full result set as a single JSON array to path.
func WriteJSON(path string, results []RayResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("gravitas-trace: creating output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gravitas-trace: creating json: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
