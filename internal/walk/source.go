package walk

import "math/rand/v2"

// Source supplies uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// StreamFunc returns the randomness source used for a particle.
type StreamFunc func(particle int) Source

// SeededStreams derives an independent PCG stream for every particle index.
func SeededStreams(seed uint64) StreamFunc {
	return func(particle int) Source {
		return rand.New(rand.NewPCG(seed, uint64(particle)))
	}
}

// SharedStream hands the same source to every particle, consumed in particle order.
func SharedStream(src Source) StreamFunc {
	return func(int) Source {
		return src
	}
}
