package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/brownian/internal/walk"
)

var axisNames = [3]string{"x", "y", "z"}

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Magenta,
	asciigraph.Cyan,
	asciigraph.Yellow,
	asciigraph.Green,
	asciigraph.Red,
	asciigraph.Blue,
}

// AxisChart plots one coordinate of every particle against the step index.
// It returns "" when there is nothing to chart.
func AxisChart(set walk.TrajectorySet, axis, width, height int) string {
	if axis < 0 || axis > 2 || len(set) == 0 {
		return ""
	}

	for _, traj := range set {
		if len(traj) < 2 {
			return ""
		}
	}
	xs, ys, zs := set.Columns()
	series := [3][][]float64{xs, ys, zs}[axis]

	colors := make([]asciigraph.AnsiColor, len(series))
	for i := range colors {
		colors[i] = seriesColors[i%len(seriesColors)]
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(fmt.Sprintf("%s axis [a.U.] vs step (%d particles)", axisNames[axis], len(series))),
	)
}
