// Package walk generates discrete random-walk trajectories used to simulate
// Brownian motion of independent particles.
//
// The package defines the generator and the value types it produces:
//
//   - [Params]: particle count, step count and maximum step size
//   - [Position]: a point in 3D space
//   - [Trajectory]: the ordered path of one particle, starting at the origin
//   - [TrajectorySet]: one trajectory per particle, in particle order
//   - [Generator]: draws trajectories from injected randomness
//
// # Stepping
//
// Every axis moves independently. For each axis a sign is drawn from {-1, +1}
// and a magnitude from {0.0, 0.1, ..., MaxStep-0.1}. A step that is zero on all
// three axes is rejected and drawn again, so consecutive points never coincide.
//
// # Example
//
//	gen := walk.New(walk.SeededStreams(42))
//	set, err := gen.Generate(ctx, walk.Params{Particles: 3, Steps: 500, MaxStep: 1})
//
// # Randomness
//
// A [Generator] never touches global random state. [SeededStreams] gives each
// particle its own PCG stream keyed by the seed and the particle index, so a
// particle's path is reproducible and does not depend on how many particles are
// generated alongside it.
package walk
