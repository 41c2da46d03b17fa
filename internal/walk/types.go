package walk

import (
	"fmt"
	"math"
)

// Resolution is the granularity of a single-axis step magnitude.
const Resolution = 0.1

// stepsPerUnit is the number of magnitude buckets per unit of MaxStep.
const stepsPerUnit = 10

type Params struct {
	Particles int
	Steps     int
	MaxStep   int
}

// Validate rejects negative values and configurations that cannot grow a path.
func (p Params) Validate() error {
	if p.Particles < 0 {
		return fmt.Errorf("%w: particle count must be non-negative, got %d", ErrInvalidArgument, p.Particles)
	}
	if p.Steps < 0 {
		return fmt.Errorf("%w: step count must be non-negative, got %d", ErrInvalidArgument, p.Steps)
	}
	if p.MaxStep < 0 {
		return fmt.Errorf("%w: max step size must be non-negative, got %d", ErrInvalidArgument, p.MaxStep)
	}
	if p.MaxStep == 0 && p.Steps > 1 && p.Particles > 0 {
		return fmt.Errorf("%w: max step size 0 cannot produce %d steps", ErrDegenerate, p.Steps)
	}
	return nil
}

// Buckets is the number of distinct magnitudes a single axis step can take.
func (p Params) Buckets() int {
	return p.MaxStep * stepsPerUnit
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

var Origin = Position{}

func (p Position) Add(o Position) Position { return Position{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }
func (p Position) Sub(o Position) Position { return Position{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }
func (p Position) Equal(o Position) bool   { return p.X == o.X && p.Y == o.Y && p.Z == o.Z }
func (p Position) IsOrigin() bool          { return p.X == 0 && p.Y == 0 && p.Z == 0 }

// Axis returns the i-th component: 0 = x, 1 = y, 2 = z.
func (p Position) Axis(i int) float64 {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	case 2:
		return p.Z
	}
	panic(fmt.Sprintf("walk: axis %d out of range", i))
}

func (p Position) String() string {
	return fmt.Sprintf("(%.1f, %.1f, %.1f)", p.X, p.Y, p.Z)
}

// Trajectory is the temporal path of one particle; index 0 is the start.
type Trajectory []Position

func (t Trajectory) Last() Position {
	if len(t) == 0 {
		return Origin
	}
	return t[len(t)-1]
}

// Axis extracts one coordinate of every point in order.
func (t Trajectory) Axis(i int) []float64 {
	out := make([]float64, len(t))
	for j, p := range t {
		out[j] = p.Axis(i)
	}
	return out
}

type TrajectorySet []Trajectory

// Columns splits the set into per-axis slices, one inner slice per particle.
func (s TrajectorySet) Columns() (xs, ys, zs [][]float64) {
	xs = make([][]float64, len(s))
	ys = make([][]float64, len(s))
	zs = make([][]float64, len(s))
	for i, t := range s {
		xs[i], ys[i], zs[i] = t.Axis(0), t.Axis(1), t.Axis(2)
	}
	return xs, ys, zs
}

// Points counts every position across all trajectories.
func (s TrajectorySet) Points() int {
	n := 0
	for _, t := range s {
		n += len(t)
	}
	return n
}

// Bounds returns the smallest box holding every point and the origin.
func (s TrajectorySet) Bounds() (lo, hi Position) {
	for _, t := range s {
		for _, p := range t {
			lo.X, hi.X = math.Min(lo.X, p.X), math.Max(hi.X, p.X)
			lo.Y, hi.Y = math.Min(lo.Y, p.Y), math.Max(hi.Y, p.Y)
			lo.Z, hi.Z = math.Min(lo.Z, p.Z), math.Max(hi.Z, p.Z)
		}
	}
	return lo, hi
}
