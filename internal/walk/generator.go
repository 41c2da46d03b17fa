package walk

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// DefaultMaxAttempts caps the rejected draws allowed for a single step.
const DefaultMaxAttempts = 1000

type Option func(*Generator)

// WithMaxAttempts overrides the per-step rejection cap. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// Generator produces trajectory sets. It holds no mutable state between calls.
type Generator struct {
	streams     StreamFunc
	maxAttempts int
	log         *zap.Logger
}

func New(streams StreamFunc, opts ...Option) *Generator {
	g := &Generator{
		streams:     streams,
		maxAttempts: DefaultMaxAttempts,
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate is a shorthand for New(SeededStreams(seed)).Generate(ctx, p).
func Generate(ctx context.Context, seed uint64, p Params) (TrajectorySet, error) {
	return New(SeededStreams(seed)).Generate(ctx, p)
}

// Generate builds one trajectory per particle, in particle order.
func (g *Generator) Generate(ctx context.Context, p Params) (TrajectorySet, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	set := make(TrajectorySet, 0, p.Particles)
	for i := 0; i < p.Particles; i++ {
		traj, err := g.walk(ctx, i, g.streams(i), p)
		if err != nil {
			return nil, err
		}
		set = append(set, traj)
	}

	g.log.Debug("trajectories generated",
		zap.Int("particles", p.Particles),
		zap.Int("steps", p.Steps),
		zap.Int("max_step", p.MaxStep),
		zap.Int("points", set.Points()),
	)
	return set, nil
}

func (g *Generator) walk(ctx context.Context, particle int, src Source, p Params) (Trajectory, error) {
	capacity := p.Steps
	if capacity < 1 {
		capacity = 1
	}
	traj := make(Trajectory, 1, capacity)
	traj[0] = Origin

	buckets := p.Buckets()
	rejected := 0
	for len(traj) < p.Steps {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		step, attempts, ok := g.draw(src, buckets)
		rejected += attempts - 1
		if !ok {
			return nil, &StepError{
				Particle: particle,
				Step:     len(traj),
				Attempts: attempts,
				Wrapped:  fmt.Errorf("%w: every draw was a zero step", ErrDegenerate),
			}
		}
		traj = append(traj, traj[len(traj)-1].Add(step))
	}

	if rejected > 0 {
		g.log.Debug("zero steps rejected", zap.Int("particle", particle), zap.Int("rejected", rejected))
	}
	return traj, nil
}

// draw samples a step vector, discarding the all-zero triple.
func (g *Generator) draw(src Source, buckets int) (Position, int, bool) {
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		step := Position{
			X: axisStep(src, buckets),
			Y: axisStep(src, buckets),
			Z: axisStep(src, buckets),
		}
		if !step.IsOrigin() {
			return step, attempt, true
		}
	}
	return Position{}, g.maxAttempts, false
}

// axisStep draws a sign then a magnitude from {0, 0.1, ..., (buckets-1)/10}.
func axisStep(src Source, buckets int) float64 {
	sign := 1.0
	if src.IntN(2) == 0 {
		sign = -1.0
	}
	if buckets <= 0 {
		return 0
	}
	return sign * float64(src.IntN(buckets)) * Resolution
}
