package playback_test

import (
	"slices"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/sorting"
)

var _ = Describe("Scheduler", func() {
	var (
		sched     *playback.Scheduler
		published []sorting.Step
		completed int
		t0        time.Time
	)

	BeforeEach(func() {
		published = nil
		completed = 0
		t0 = time.Unix(1000, 0)
		sched = playback.New(
			func(s sorting.Step) { published = append(published, s) },
			func() { completed++ },
		)
	})

	// drive ticks the scheduler every 16ms until it goes idle or max frames pass.
	drive := func(from time.Time, max int) time.Time {
		now := from
		for i := 0; i < max && sched.Running(); i++ {
			now = now.Add(16 * time.Millisecond)
			sched.Tick(now)
		}
		return now
	}

	It("starts idle and ignores ticks", func() {
		Expect(sched.State()).To(Equal(playback.Idle))
		Expect(sched.Tick(t0)).To(BeFalse())
		Expect(published).To(BeEmpty())
	})

	It("waits for the interval before pulling a step", func() {
		Expect(sched.Start(sorting.BubbleSort([]int{3, 1, 2}), 50*time.Millisecond, t0)).To(BeTrue())

		Expect(sched.Tick(t0.Add(10 * time.Millisecond))).To(BeTrue())
		Expect(published).To(BeEmpty())

		sched.Tick(t0.Add(50 * time.Millisecond))
		Expect(published).To(HaveLen(1))
		Expect(published[0].Highlight).To(Equal(sorting.NoHighlight))

		By("measuring the next interval from the last advance")
		sched.Tick(t0.Add(90 * time.Millisecond))
		Expect(published).To(HaveLen(1))
		sched.Tick(t0.Add(100 * time.Millisecond))
		Expect(published).To(HaveLen(2))
	})

	It("pulls at most one step per tick", func() {
		sched.Start(sorting.BubbleSort([]int{3, 1, 2}), time.Millisecond, t0)
		sched.Tick(t0.Add(time.Hour))
		Expect(published).To(HaveLen(1))
	})

	It("publishes every step in order and completes exactly once", func() {
		sched.Start(sorting.BubbleSort([]int{3, 1, 2}), time.Millisecond, t0)
		now := drive(t0, 100)

		Expect(completed).To(Equal(1))
		Expect(sched.Running()).To(BeFalse())
		Expect(sched.Steps()).To(Equal(3))
		Expect(published).To(HaveLen(3))
		Expect(published[1].Highlight).To(Equal(sorting.Pair{0, 1}))
		Expect(published[2].Array).To(Equal([]int{1, 2, 3}))

		sched.Tick(now.Add(time.Second))
		Expect(completed).To(Equal(1))
	})

	It("does not complete when cancelled", func() {
		sched.Start(sorting.QuickSort([]int{5, 4, 3, 2, 1}), time.Millisecond, t0)
		sched.Tick(t0.Add(time.Millisecond))
		sched.Tick(t0.Add(2 * time.Millisecond))
		sched.Cancel()

		Expect(sched.Running()).To(BeFalse())
		Expect(sched.Tick(t0.Add(time.Second))).To(BeFalse())
		Expect(published).To(HaveLen(2))
		Expect(completed).To(BeZero())
	})

	It("treats a second Start while running as a no-op", func() {
		sched.Start(sorting.BubbleSort([]int{3, 1, 2}), time.Millisecond, t0)
		Expect(sched.Start(sorting.MergeSort([]int{9, 8}), time.Millisecond, t0)).To(BeFalse())

		drive(t0, 100)
		Expect(published[len(published)-1].Array).To(Equal([]int{1, 2, 3}))
	})

	It("replays an identical sequence after cancel and restart", func() {
		input := []int{7, 3, 9, 1, 5, 8, 2, 6, 4}
		run := func() []sorting.Step {
			published = nil
			sched.Start(sorting.HeapSort(slices.Clone(input)), time.Millisecond, t0)
			drive(t0, 10_000)
			return published
		}

		sched.Start(sorting.HeapSort(slices.Clone(input)), time.Millisecond, t0)
		drive(t0, 5)
		sched.Cancel()

		first := run()
		second := run()
		Expect(first).To(Equal(second))
		Expect(first[len(first)-1].Array).To(Equal([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}))
	})

	It("applies interval changes to a running session", func() {
		sched.Start(sorting.BubbleSort([]int{3, 1, 2}), time.Hour, t0)
		sched.Tick(t0.Add(time.Second))
		Expect(published).To(BeEmpty())

		sched.SetInterval(0)
		Expect(sched.Interval()).To(Equal(time.Millisecond))
		sched.Tick(t0.Add(time.Second))
		Expect(published).To(HaveLen(1))
	})
})

var _ = DescribeTable("EffectiveInterval",
	func(speed int, multiplier float64, want time.Duration) {
		Expect(playback.EffectiveInterval(speed, multiplier)).To(Equal(want))
	},
	Entry("bubble keeps the raw speed", 50, 1.0, 50*time.Millisecond),
	Entry("merge is throttled by four", 50, 4.0, 12500*time.Microsecond),
	Entry("heap by three", 30, 3.0, 10*time.Millisecond),
	Entry("floors at one millisecond", 1, 4.0, time.Millisecond),
	Entry("guards a zero multiplier", 20, 0.0, 20*time.Millisecond),
)
