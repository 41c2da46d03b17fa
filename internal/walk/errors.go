package walk

import (
	"errors"
	"fmt"
)

// Domain errors for trajectory generation.
var (
	// ErrInvalidArgument indicates a negative particle count, step count or step size.
	ErrInvalidArgument = errors.New("walk: invalid argument")

	// ErrDegenerate indicates parameters under which the walk cannot make progress.
	ErrDegenerate = errors.New("walk: degenerate configuration")
)

// StepError reports where generation stopped for a particle.
type StepError struct {
	Particle int
	Step     int
	Attempts int
	Wrapped  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("particle %d step %d after %d attempts: %v", e.Particle, e.Step, e.Attempts, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
