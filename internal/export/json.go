package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/brownian/internal/walk"
)

type ExportData struct {
	Particles    int               `json:"particles"`
	Steps        int               `json:"steps"`
	MaxStep      int               `json:"max_step"`
	Seed         uint64            `json:"seed"`
	Points       int               `json:"points"`
	Trajectories []walk.Trajectory `json:"trajectories"`
}

func NewExportData(p walk.Params, seed uint64, set walk.TrajectorySet) ExportData {
	trajs := make([]walk.Trajectory, len(set))
	copy(trajs, set)
	return ExportData{
		Particles:    p.Particles,
		Steps:        p.Steps,
		MaxStep:      p.MaxStep,
		Seed:         seed,
		Points:       set.Points(),
		Trajectories: trajs,
	}
}

// WriteJSON encodes the parameters, seed and every point as indented JSON.
func WriteJSON(out io.Writer, p walk.Params, seed uint64, set walk.TrajectorySet) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(p, seed, set))
}
