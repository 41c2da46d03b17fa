package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/brownian/internal/walk"
)

var csvHeader = []string{"particle", "step", "x", "y", "z"}

// WriteCSV writes one row per point: particle, step, x, y, z.
func WriteCSV(out io.Writer, set walk.TrajectorySet) error {
	w := csv.NewWriter(out)

	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for i, traj := range set {
		for step, p := range traj {
			row := []string{
				strconv.Itoa(i),
				strconv.Itoa(step),
				strconv.FormatFloat(p.X, 'f', 6, 64),
				strconv.FormatFloat(p.Y, 'f', 6, 64),
				strconv.FormatFloat(p.Z, 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}
