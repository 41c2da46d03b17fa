package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/brownian/internal/viz"
	"github.com/san-kum/brownian/internal/walk"
)

func sampleSet() walk.TrajectorySet {
	return walk.TrajectorySet{
		{walk.Origin, {X: 0.3, Y: -0.2, Z: 0}, {X: 0.5, Y: -0.2, Z: 0.9}},
		{walk.Origin},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleSet()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)

	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{"0", "0", "0.000000", "0.000000", "0.000000"}, records[1])
	assert.Equal(t, []string{"0", "2", "0.500000", "-0.200000", "0.900000"}, records[3])
	assert.Equal(t, []string{"1", "0", "0.000000", "0.000000", "0.000000"}, records[4])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, walk.TrajectorySet{}))
	assert.Equal(t, "particle,step,x,y,z\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	p := walk.Params{Particles: 2, Steps: 3, MaxStep: 1}
	require.NoError(t, WriteJSON(&buf, p, 42, sampleSet()))

	var got ExportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, 2, got.Particles)
	assert.Equal(t, 3, got.Steps)
	assert.Equal(t, uint64(42), got.Seed)
	assert.Equal(t, 4, got.Points)
	require.Len(t, got.Trajectories, 2)
	assert.Equal(t, walk.Position{X: 0.5, Y: -0.2, Z: 0.9}, got.Trajectories[0][2])
	assert.Contains(t, buf.String(), `"max_step": 1`)
}

func TestTrajectoriesToSVG(t *testing.T) {
	svg := TrajectoriesToSVG(sampleSet(), 400, 300, nil)

	assert.True(t, strings.HasPrefix(svg, "<?xml"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Contains(t, svg, `id="particle-0"`)
	assert.Contains(t, svg, `id="particle-1"`)
	assert.Contains(t, svg, `id="origin"`)
	assert.Equal(t, 1, strings.Count(svg, "<path"), "single-point trajectories have no path")
	assert.Contains(t, svg, DefaultStrokes[1])
}

func TestTrajectoriesToSVG_CustomStrokes(t *testing.T) {
	svg := TrajectoriesToSVG(sampleSet(), 100, 100, []string{"#123456"})
	assert.Equal(t, 2, strings.Count(svg, `stroke="#123456"`))
}

func TestCanvasToSVG(t *testing.T) {
	assert.Empty(t, CanvasToSVG(nil, 1, nil))

	c := viz.NewCanvas(2, 1)
	c.Set(0, 0)
	c.SetInk(3, 3, 2)
	svg := CanvasToSVG(c, 2, nil)

	assert.Equal(t, 2, strings.Count(svg, "<circle"))
	assert.Contains(t, svg, `width="8" height="8"`)
	assert.Contains(t, svg, `fill="`+axisFill+`"`)
	assert.Contains(t, svg, `fill="`+DefaultStrokes[1]+`"`)
}

func TestCanvasToSVG_PlotColours(t *testing.T) {
	plot := viz.NewPlot()
	plot.Add(sampleSet(), 2)
	c := viz.NewCanvas(20, 8)
	plot.Draw(c)

	svg := CanvasToSVG(c, 1, []string{"#123456"})
	assert.Contains(t, svg, `fill="#123456"`)
	assert.Contains(t, svg, `fill="`+originFill+`"`)
	assert.NotContains(t, svg, DefaultStrokes[0])
}
