package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/brownian/internal/viz"
	"github.com/san-kum/brownian/internal/walk"
)

// DefaultStrokes cycles through particle colours in SVG output.
var DefaultStrokes = []string{"#ff00ff", "#00ffff", "#ffff00", "#00ff00", "#ff8800", "#ff0000"}

// Fills used by CanvasToSVG for cells that carry no particle ink.
const (
	originFill = "#ffffff"
	axisFill   = "#808080"
)

// CanvasToSVG writes every lit Braille sub-pixel as a dot. Dots take the
// stroke of the particle that inked their cell, so a rendered plot keeps its
// per-particle colours.
func CanvasToSVG(canvas *viz.Canvas, scale float64, strokes []string) string {
	if canvas == nil {
		return ""
	}
	if len(strokes) == 0 {
		strokes = DefaultStrokes
	}

	width := float64(canvas.PixelWidth()) * scale
	height := float64(canvas.PixelHeight()) * scale

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	dotRadius := scale * 0.4

	for y := 0; y < canvas.PixelHeight(); y++ {
		for x := 0; x < canvas.PixelWidth(); x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			fill := axisFill
			switch ink := canvas.Ink[y/4][x/2]; {
			case ink == viz.OriginInk:
				fill = originFill
			case ink > 0:
				fill = strokes[(ink-1)%len(strokes)]
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\"/>\n", cx, cy, dotRadius, fill)
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// TrajectoriesToSVG draws the x-y projection of every trajectory as a dashed
// path with a dot per point and a marker at the origin.
func TrajectoriesToSVG(set walk.TrajectorySet, width, height int, strokes []string) string {
	if len(strokes) == 0 {
		strokes = DefaultStrokes
	}

	lo, hi := set.Bounds()
	minX, maxX, minY, maxY := lo.X, hi.X, lo.Y, hi.Y

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	toScreen := func(p walk.Position) (float64, float64) {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)
		return x, y
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	for i, traj := range set {
		stroke := strokes[i%len(strokes)]
		fmt.Fprintf(&sb, `<g id="particle-%d" stroke="%s" fill="%s">`+"\n", i, stroke, stroke)

		if len(traj) > 1 {
			sb.WriteString(`<path fill="none" stroke-width="1.5" stroke-dasharray="4 3" d="M`)
			for j, p := range traj {
				x, y := toScreen(p)
				if j == 0 {
					fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
				} else {
					fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
				}
			}
			sb.WriteString("\"/>\n")
		}

		for _, p := range traj {
			x, y := toScreen(p)
			fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"2\"/>\n", x, y)
		}
		sb.WriteString("</g>\n")
	}

	ox, oy := toScreen(walk.Origin)
	r := math.Max(4, float64(min(width, height))/40)
	fmt.Fprintf(&sb, "<circle id=\"origin\" cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"#ffffff\"/>\n", ox, oy, r)

	sb.WriteString("</svg>")
	return sb.String()
}
