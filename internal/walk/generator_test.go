package walk_test

import (
	"context"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/brownian/internal/walk"
)

// scripted replays fixed draws, reducing each modulo n.
type scripted struct {
	draws []int
	pos   int
}

func (s *scripted) IntN(n int) int {
	v := s.draws[s.pos%len(s.draws)]
	s.pos++
	return v % n
}

func isTenth(v float64) bool {
	return math.Abs(v*10-math.Round(v*10)) < 1e-6
}

var _ = Describe("Generator", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("returns an empty set when there are no particles", func() {
		for _, p := range []walk.Params{
			{Particles: 0, Steps: 0, MaxStep: 0},
			{Particles: 0, Steps: 100, MaxStep: 3},
			{Particles: 0, Steps: 100, MaxStep: 0},
		} {
			set, err := walk.Generate(ctx, 1, p)
			Expect(err).NotTo(HaveOccurred())
			Expect(set).NotTo(BeNil())
			Expect(set).To(BeEmpty())
		}
	})

	DescribeTable("keeps only the origin for step counts below two",
		func(steps, maxStep int) {
			set, err := walk.Generate(ctx, 7, walk.Params{Particles: 3, Steps: steps, MaxStep: maxStep})
			Expect(err).NotTo(HaveOccurred())
			Expect(set).To(HaveLen(3))
			for _, traj := range set {
				Expect(traj).To(Equal(walk.Trajectory{walk.Origin}))
			}
		},
		Entry("zero steps", 0, 5),
		Entry("one step", 1, 5),
		Entry("one step with zero step size", 1, 0),
		Entry("zero steps with zero step size", 0, 0),
	)

	It("produces exactly N points starting at the origin", func() {
		p := walk.Params{Particles: 4, Steps: 250, MaxStep: 2}
		set, err := walk.Generate(ctx, 99, p)
		Expect(err).NotTo(HaveOccurred())
		Expect(set).To(HaveLen(4))
		for _, traj := range set {
			Expect(traj).To(HaveLen(250))
			Expect(traj[0].IsOrigin()).To(BeTrue())
		}
	})

	It("never repeats a point and keeps every axis delta on the 0.1 grid", func() {
		p := walk.Params{Particles: 5, Steps: 400, MaxStep: 1}
		set, err := walk.Generate(ctx, 2024, p)
		Expect(err).NotTo(HaveOccurred())
		for _, traj := range set {
			for i := 1; i < len(traj); i++ {
				Expect(traj[i].Equal(traj[i-1])).To(BeFalse(), "point %d repeats its predecessor", i)
				d := traj[i].Sub(traj[i-1])
				for axis := 0; axis < 3; axis++ {
					v := d.Axis(axis)
					Expect(math.Abs(v)).To(BeNumerically("<", float64(p.MaxStep)))
					Expect(isTenth(v)).To(BeTrue(), "delta %v is not a multiple of 0.1", v)
				}
			}
		}
	})

	It("matches the single-particle scenario with step size one", func() {
		set, err := walk.Generate(ctx, 3, walk.Params{Particles: 1, Steps: 3, MaxStep: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(set).To(HaveLen(1))
		traj := set[0]
		Expect(traj).To(HaveLen(3))
		Expect(traj[0]).To(Equal(walk.Origin))
		for i := 1; i < 3; i++ {
			d := traj[i].Sub(traj[i-1])
			Expect(d.IsOrigin()).To(BeFalse())
			for axis := 0; axis < 3; axis++ {
				Expect(math.Abs(d.Axis(axis))).To(BeNumerically("<=", 0.9+1e-9))
			}
		}
	})

	Context("with seeded streams", func() {
		p := walk.Params{Particles: 2, Steps: 5, MaxStep: 2}

		It("is reproducible for the same seed", func() {
			a, err := walk.Generate(ctx, 42, p)
			Expect(err).NotTo(HaveOccurred())
			b, err := walk.Generate(ctx, 42, p)
			Expect(err).NotTo(HaveOccurred())
			Expect(a).To(Equal(b))
		})

		It("gives particles distinct paths", func() {
			set, err := walk.Generate(ctx, 42, p)
			Expect(err).NotTo(HaveOccurred())
			Expect(set).To(HaveLen(2))
			for _, traj := range set {
				Expect(traj).To(HaveLen(5))
				Expect(traj[0]).To(Equal(walk.Origin))
			}
			Expect(set[0]).NotTo(Equal(set[1]))
		})

		It("does not let the particle count change earlier paths", func() {
			small, err := walk.Generate(ctx, 11, walk.Params{Particles: 1, Steps: 50, MaxStep: 3})
			Expect(err).NotTo(HaveOccurred())
			large, err := walk.Generate(ctx, 11, walk.Params{Particles: 6, Steps: 50, MaxStep: 3})
			Expect(err).NotTo(HaveOccurred())
			Expect(large[0]).To(Equal(small[0]))
		})
	})

	It("resamples an all-zero step without growing the path", func() {
		src := &scripted{draws: []int{
			1, 0, 1, 0, 1, 0, // rejected: zero on every axis
			1, 3, 0, 2, 1, 0, // (+0.3, -0.2, 0)
		}}
		gen := walk.New(walk.SharedStream(src))
		set, err := gen.Generate(ctx, walk.Params{Particles: 1, Steps: 2, MaxStep: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(set[0]).To(HaveLen(2))
		Expect(set[0][1].X).To(BeNumerically("~", 0.3, 1e-12))
		Expect(set[0][1].Y).To(BeNumerically("~", -0.2, 1e-12))
		Expect(set[0][1].Z).To(BeZero())
		Expect(src.pos).To(Equal(12))
	})

	It("gives up after the attempt cap", func() {
		src := &scripted{draws: []int{0}}
		gen := walk.New(walk.SharedStream(src), walk.WithMaxAttempts(5))
		_, err := gen.Generate(ctx, walk.Params{Particles: 1, Steps: 3, MaxStep: 1})
		Expect(err).To(MatchError(walk.ErrDegenerate))

		var stepErr *walk.StepError
		Expect(errors.As(err, &stepErr)).To(BeTrue())
		Expect(stepErr.Particle).To(Equal(0))
		Expect(stepErr.Step).To(Equal(1))
		Expect(stepErr.Attempts).To(Equal(5))
	})

	DescribeTable("rejects invalid parameters before drawing",
		func(p walk.Params, want error) {
			src := &scripted{draws: []int{1}}
			_, err := walk.New(walk.SharedStream(src)).Generate(ctx, p)
			Expect(err).To(MatchError(want))
			Expect(src.pos).To(BeZero())
		},
		Entry("negative particles", walk.Params{Particles: -1, Steps: 3, MaxStep: 1}, walk.ErrInvalidArgument),
		Entry("negative steps", walk.Params{Particles: 1, Steps: -3, MaxStep: 1}, walk.ErrInvalidArgument),
		Entry("negative step size", walk.Params{Particles: 1, Steps: 3, MaxStep: -1}, walk.ErrInvalidArgument),
		Entry("zero step size with growth", walk.Params{Particles: 1, Steps: 2, MaxStep: 0}, walk.ErrDegenerate),
	)

	It("stops when the context is canceled", func() {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := walk.Generate(cctx, 1, walk.Params{Particles: 1, Steps: 10, MaxStep: 1})
		Expect(err).To(MatchError(context.Canceled))
	})
})
