package visual_test

import (
	"math/rand"
	"slices"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/visual"
)

const frame = 16 * time.Millisecond

var _ = Describe("Coordinator", func() {
	var (
		coord *visual.Coordinator
		tones []float64
		t0    time.Time
	)

	newCoordinator := func(mut func(*visual.Options)) *visual.Coordinator {
		opts := visual.DefaultOptions()
		opts.Size = 12
		opts.Speed = 1
		opts.Seed = 42
		if mut != nil {
			mut(&opts)
		}
		return visual.New(opts, visual.ToneFunc(func(f float64) { tones = append(tones, f) }), nil)
	}

	// run advances frames until nothing is left to do or max frames pass.
	run := func(from time.Time, max int) time.Time {
		now := from
		for i := 0; i < max; i++ {
			now = now.Add(frame)
			if !coord.Frame(now) {
				break
			}
		}
		return now
	}

	BeforeEach(func() {
		tones = nil
		t0 = time.Unix(5000, 0)
		coord = newCoordinator(nil)
	})

	It("deals a permutation of 1..n with no highlight", func() {
		s := coord.Snapshot()
		Expect(s.Array).To(HaveLen(12))
		Expect(slices.Sorted(slices.Values(s.Array))).To(Equal([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}))
		Expect(s.Highlight).To(Equal(sorting.NoHighlight))
		Expect(s.Complete).To(BeFalse())
		Expect(s.Running).To(BeFalse())
	})

	Describe("coalescing", func() {
		It("applies only the latest of two steps delivered before a frame", func() {
			first := sorting.Step{Array: []int{2, 1, 3}, Highlight: sorting.Pair{0, 1}}
			second := sorting.Step{Array: []int{1, 2, 3}, Highlight: sorting.Pair{1, 2}}

			coord.HandleStep(first)
			coord.HandleStep(second)
			coord.Frame(t0)

			s := coord.Snapshot()
			Expect(s.Applied).To(Equal(1))
			Expect(s.Pulled).To(Equal(2))
			Expect(s.Array).To(Equal([]int{1, 2, 3}))
			Expect(s.Highlight).To(Equal(sorting.Pair{1, 2}))
			Expect(tones).To(Equal([]float64{200 + 2*5}))
		})

		It("stays silent for the sentinel highlight", func() {
			coord.HandleStep(sorting.Step{Array: []int{3, 1, 2}, Highlight: sorting.NoHighlight})
			coord.Frame(t0)
			Expect(tones).To(BeEmpty())
			Expect(coord.Snapshot().Array).To(Equal([]int{3, 1, 2}))
		})
	})

	Describe("playback", func() {
		It("sorts the working array and marks completion", func() {
			Expect(coord.Start(t0)).To(BeTrue())
			Expect(coord.Snapshot().Running).To(BeTrue())

			now := run(t0, 10_000)
			s := coord.Snapshot()
			Expect(s.Complete).To(BeTrue())
			Expect(s.Running).To(BeFalse())
			Expect(s.Sweeping).To(BeFalse())
			Expect(s.Array).To(Equal([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}))

			By("refusing to start again until reset")
			Expect(coord.Start(now)).To(BeFalse())
			coord.Reset()
			Expect(coord.Start(now)).To(BeTrue())
		})

		It("sounds the value at the first highlighted index", func() {
			coord = newCoordinator(func(o *visual.Options) { o.Size = 3; o.Seed = 0 })
			coord.HandleStep(sorting.Step{Array: []int{3, 1, 2}, Highlight: sorting.Pair{2, 0}})
			coord.Frame(t0)
			Expect(tones).To(Equal([]float64{210}))
		})

		It("ignores a second start while running", func() {
			Expect(coord.Start(t0)).To(BeTrue())
			Expect(coord.Start(t0)).To(BeFalse())
		})

		It("throttles by the algorithm's multiplier", func() {
			coord.SetSpeed(40)
			Expect(coord.Snapshot().Interval).To(Equal(40 * time.Millisecond))
			coord.SelectAlgorithm(sorting.Merge)
			Expect(coord.Snapshot().Interval).To(Equal(10 * time.Millisecond))
		})
	})

	Describe("sweep reveal", func() {
		It("highlights each index in order at a fixed stride", func() {
			coord.Start(t0)
			now := t0
			for i := 0; i < 10_000 && !coord.Snapshot().Complete; i++ {
				now = now.Add(frame)
				coord.Frame(now)
			}
			final := coord.Snapshot().Array
			tones = nil

			Expect(coord.Snapshot().Highlight).To(Equal(sorting.Pair{0, 0}))

			var seen []int
			for coord.Snapshot().Sweeping {
				now = now.Add(5 * time.Millisecond)
				coord.Frame(now)
				seen = append(seen, coord.Snapshot().Highlight[0])
			}
			Expect(slices.IsSorted(seen)).To(BeTrue())
			Expect(seen[len(seen)-1]).To(Equal(11))

			Expect(tones).To(HaveLen(11))
			for i, f := range tones {
				Expect(f).To(Equal(200 + float64(final[i+1])*5))
			}
		})

		It("is cancelled by a reset", func() {
			coord.Start(t0)
			now := t0
			for i := 0; i < 10_000 && !coord.Snapshot().Complete; i++ {
				now = now.Add(frame)
				coord.Frame(now)
			}
			Expect(coord.Snapshot().Sweeping).To(BeTrue())

			coord.Reset()
			tones = nil
			coord.Frame(now.Add(time.Second))

			s := coord.Snapshot()
			Expect(s.Sweeping).To(BeFalse())
			Expect(s.Highlight).To(Equal(sorting.NoHighlight))
			Expect(tones).To(BeEmpty())
		})
	})

	Describe("changing the algorithm mid-playback", func() {
		It("drops the session and deals a fresh array", func() {
			coord = newCoordinator(func(o *visual.Options) {
				o.Algorithm = sorting.Quick
				o.Size = 40
			})
			coord.Start(t0)
			now := t0
			for i := 0; i < 10; i++ {
				now = now.Add(frame)
				coord.Frame(now)
			}
			Expect(coord.Snapshot().Running).To(BeTrue())
			Expect(coord.Snapshot().Applied).To(BeNumerically(">", 0))

			coord.SelectAlgorithm(sorting.Merge)
			fresh := coord.Snapshot()
			Expect(fresh.Running).To(BeFalse())
			Expect(fresh.Complete).To(BeFalse())
			Expect(fresh.Applied).To(BeZero())
			Expect(fresh.Algorithm.ID).To(Equal(sorting.Merge))

			tones = nil
			for i := 0; i < 50; i++ {
				now = now.Add(frame)
				coord.Frame(now)
			}
			after := coord.Snapshot()
			Expect(after.Array).To(Equal(fresh.Array))
			Expect(after.Applied).To(BeZero())
			Expect(tones).To(BeEmpty())
		})

		It("resets on a size change", func() {
			coord.Start(t0)
			coord.Frame(t0.Add(frame))
			coord.SetArraySize(20)
			s := coord.Snapshot()
			Expect(s.Running).To(BeFalse())
			Expect(s.Array).To(HaveLen(20))
		})
	})

	It("keeps a finished run when the size does not change", func() {
		coord.Start(t0)
		now := t0
		for i := 0; i < 10_000 && !coord.Snapshot().Complete; i++ {
			now = now.Add(frame)
			coord.Frame(now)
		}
		before := coord.Snapshot()
		Expect(before.Sweeping).To(BeTrue())

		coord.SetArraySize(before.Size)
		after := coord.Snapshot()
		Expect(after.Complete).To(BeTrue())
		Expect(after.Sweeping).To(BeTrue())
		Expect(after.Array).To(Equal(before.Array))
		Expect(after.Applied).To(Equal(before.Applied))
	})

	It("panics on an unknown algorithm id", func() {
		Expect(func() { coord.SelectAlgorithm("bogo") }).To(Panic())
	})
})

var _ = Describe("Permutation", func() {
	It("is a deterministic permutation for a given seed", func() {
		a := visual.Permutation(rand.New(rand.NewSource(1)), 100)
		b := visual.Permutation(rand.New(rand.NewSource(1)), 100)
		Expect(a).To(Equal(b))

		sorted := slices.Sorted(slices.Values(a))
		for i, v := range sorted {
			Expect(v).To(Equal(i + 1))
		}
	})

	It("handles empty and single arrays", func() {
		Expect(visual.Permutation(rand.New(rand.NewSource(1)), 0)).To(BeEmpty())
		Expect(visual.Permutation(rand.New(rand.NewSource(1)), 1)).To(Equal([]int{1}))
	})
})
