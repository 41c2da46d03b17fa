package viz

import (
	"math"

	"github.com/san-kum/brownian/internal/walk"
)

const (
	pathDash     = 2
	originRadius = 2
	framePadding = 0.05
)

// Layer is one overlaid draw call: a trajectory set shown in 2 or 3 dimensions.
type Layer struct {
	Set walk.TrajectorySet
	Dim int
}

// Plot accumulates layers the way repeated plot commands overlay on one axes.
// Once any layer is 3D the whole plot is projected through the camera and 2D
// layers sit on the z = 0 plane.
type Plot struct {
	Camera *Camera
	layers []Layer
}

func NewPlot() *Plot {
	return &Plot{Camera: NewCamera()}
}

func (p *Plot) Add(set walk.TrajectorySet, dim int) {
	if dim != 2 {
		dim = 3
	}
	p.layers = append(p.layers, Layer{Set: set, Dim: dim})
}

// ClearPlot drops every layer but keeps the camera.
func (p *Plot) ClearPlot() {
	p.layers = nil
}

func (p *Plot) Layers() []Layer { return p.layers }

func (p *Plot) Empty() bool { return len(p.layers) == 0 }

func (p *Plot) Is3D() bool {
	for _, l := range p.layers {
		if l.Dim == 3 {
			return true
		}
	}
	return false
}

// Draw clears c and renders every layer onto it.
func (p *Plot) Draw(c *Canvas) {
	c.Clear()
	if p.Is3D() {
		p.draw3D(c)
	} else {
		p.draw2D(c)
	}
}

type projectFunc func(walk.Position) (int, int, bool)

func (p *Plot) draw2D(c *Canvas) {
	lo, hi := p.bounds()
	rx, ry := hi.X-lo.X, hi.Y-lo.Y
	if rx == 0 {
		rx = 1
	}
	if ry == 0 {
		ry = 1
	}
	lo.X, lo.Y = lo.X-rx*framePadding, lo.Y-ry*framePadding
	rx, ry = rx*(1+2*framePadding), ry*(1+2*framePadding)

	pw, ph := c.PixelWidth(), c.PixelHeight()
	project := func(q walk.Position) (int, int, bool) {
		x := int((q.X - lo.X) / rx * float64(pw-1))
		y := ph - 1 - int((q.Y-lo.Y)/ry*float64(ph-1))
		return x, y, true
	}
	p.paint(c, project)
}

func (p *Plot) draw3D(c *Canvas) {
	lo, hi := p.bounds()
	extent := 0.0
	for _, v := range []float64{lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z} {
		extent = math.Max(extent, math.Abs(v))
	}
	if extent == 0 {
		extent = 1
	}

	pw, ph := c.PixelWidth(), c.PixelHeight()
	project := func(q walk.Position) (int, int, bool) {
		x, y, _, ok := p.Camera.Project(FromPosition(q).Scale(1/extent), pw, ph)
		return x, y, ok
	}

	// axes
	for _, tip := range []walk.Position{{X: extent}, {Y: extent}, {Z: extent}} {
		x0, y0, ok0 := project(walk.Origin)
		x1, y1, ok1 := project(tip)
		if ok0 || ok1 {
			c.DrawLine(x0, y0, x1, y1)
		}
	}
	p.paint(c, project)
}

func (p *Plot) paint(c *Canvas, project projectFunc) {
	ink := 0
	for _, l := range p.layers {
		for _, traj := range l.Set {
			ink++
			var px, py int
			var prevOK bool
			for i, q := range traj {
				if l.Dim == 2 {
					q.Z = 0
				}
				x, y, ok := project(q)
				if i > 0 && (ok || prevOK) {
					c.DrawDashed(px, py, x, y, ink, pathDash)
				}
				if ok {
					c.SetInk(x, y, ink)
				}
				px, py, prevOK = x, y, ok
			}
		}
	}

	if ox, oy, ok := project(walk.Origin); ok {
		c.FillDisc(ox, oy, originRadius, OriginInk)
	}
}

// bounds covers every layer, flattening 2D layers onto z = 0.
func (p *Plot) bounds() (lo, hi walk.Position) {
	for _, l := range p.layers {
		llo, lhi := l.Set.Bounds()
		if l.Dim == 2 {
			llo.Z, lhi.Z = 0, 0
		}
		lo.X, hi.X = math.Min(lo.X, llo.X), math.Max(hi.X, lhi.X)
		lo.Y, hi.Y = math.Min(lo.Y, llo.Y), math.Max(hi.Y, lhi.Y)
		lo.Z, hi.Z = math.Min(lo.Z, llo.Z), math.Max(hi.Z, lhi.Z)
	}
	return lo, hi
}
