package driver_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/slidetime/internal/clock"
	"github.com/san-kum/slidetime/internal/driver"
	"github.com/san-kum/slidetime/internal/slide"
	"github.com/san-kum/slidetime/internal/textbuf"
)

type surface struct {
	text *textbuf.Slot
	x    int
	sets int
}

func (s *surface) SetText(t *textbuf.Slot) { s.text = t; s.sets++ }
func (s *surface) Text() *textbuf.Slot     { return s.text }
func (s *surface) SetPosition(x int)       { s.x = x }

type recorder struct {
	frames []driver.FrameStats
}

func (r *recorder) OnFrame(f driver.FrameStats) { r.frames = append(r.frames, f) }

func at(h, m int) time.Time {
	return time.Date(2026, time.October, 18, h, m, 0, 0, time.UTC)
}

var _ = Describe("Driver", func() {
	var (
		clk      *clock.Manual
		surfaces [driver.NumRows]*surface
		rows     [driver.NumRows]*slide.Row
		rec      *recorder
		d        *driver.Driver
	)

	build := func(start time.Time) {
		clk = clock.NewManual(start)
		delays := [driver.NumRows]int{6, 3, 0}
		for i := range rows {
			surfaces[i] = &surface{}
			rows[i] = slide.NewRow(surfaces[i], slide.Geometry{X: 0, Width: 30}, delays[i])
		}
		rec = &recorder{}
		d = driver.New(clk, rows, driver.WithObserver(rec))
	}

	texts := func() [driver.NumRows]string {
		var out [driver.NumRows]string
		for i, s := range surfaces {
			out[i] = s.text.String()
		}
		return out
	}

	Context("on the first frame", func() {
		BeforeEach(func() { build(at(9, 5)) })

		It("populates every row without an exit phase", func() {
			Expect(d.Frame()).To(BeTrue())
			Expect(texts()).To(Equal([driver.NumRows]string{"nine", "oh", "five"}))
			for _, r := range rows {
				Expect(r.State()).To(Equal(slide.MovingIn))
				Expect(r.Pending()).To(BeNil())
			}
			Expect(d.Last()).To(Equal(driver.Snapshot{Hour: 9, Minute: 5}))
		})

		It("never enters prepare or moving out while populating", func() {
			d.Settle(1000)
			for _, f := range rec.frames {
				for _, r := range f.Rows {
					Expect(r.State).NotTo(Equal(slide.PrepareToMove))
					Expect(r.State).NotTo(Equal(slide.MovingOut))
				}
			}
		})

		It("goes idle once every row is at rest", func() {
			n := d.Settle(1000)
			Expect(n).To(BeNumerically(">", 0))
			Expect(n).To(BeNumerically("<", 1000))
			Expect(d.Active()).To(BeFalse())
			for _, r := range rows {
				Expect(r.State()).To(Equal(slide.InFrame))
				Expect(r.Position()).To(Equal(r.Rest()))
			}
			last := rec.frames[len(rec.frames)-1]
			Expect(last.Changed).To(BeFalse())
		})
	})

	Context("after settling", func() {
		BeforeEach(func() {
			build(at(9, 5))
			d.Settle(1000)
		})

		It("ignores frames until restarted", func() {
			clk.Set(at(9, 6))
			frames := len(rec.frames)
			Expect(d.Frame()).To(BeFalse())
			Expect(rec.frames).To(HaveLen(frames))
			Expect(texts()[driver.OnesRow]).To(Equal("five"))
		})

		It("deactivates immediately when restarted without a time change", func() {
			d.Restart()
			Expect(d.Frame()).To(BeFalse())
			Expect(d.Active()).To(BeFalse())
		})

		It("slides the new minute in after a restart", func() {
			clk.Set(at(9, 6))
			d.Restart()
			Expect(d.Frame()).To(BeTrue())
			Expect(rows[driver.OnesRow].State()).To(Equal(slide.MovingOut))
			Expect(rows[driver.TensRow].State()).To(Equal(slide.PrepareToMove))
			Expect(rows[driver.HourRow].State()).To(Equal(slide.InFrame))

			d.Settle(1000)
			Expect(texts()).To(Equal([driver.NumRows]string{"nine", "oh", "six"}))
			Expect(d.Active()).To(BeFalse())
		})

		It("staggers rows by their delay", func() {
			clk.Set(at(10, 10))
			d.Restart()
			d.Settle(1000)

			started := map[int]int{}
			for _, f := range rec.frames {
				for i, r := range f.Rows {
					if _, ok := started[i]; !ok && r.State == slide.MovingOut {
						started[i] = f.Frame
					}
				}
			}
			Expect(started).To(HaveLen(3))
			Expect(started[driver.OnesRow]).To(BeNumerically("<", started[driver.TensRow]))
			Expect(started[driver.TensRow]).To(BeNumerically("<", started[driver.HourRow]))
			Expect(started[driver.TensRow] - started[driver.OnesRow]).To(Equal(3))
			Expect(started[driver.HourRow] - started[driver.OnesRow]).To(Equal(6))
		})

		It("keeps the old text visible until the exit completes", func() {
			clk.Set(at(9, 7))
			d.Restart()
			d.Settle(1000)

			for _, f := range rec.frames {
				ones := f.Rows[driver.OnesRow]
				switch ones.State {
				case slide.PrepareToMove, slide.MovingOut:
					Expect(ones.Text).To(Equal("five"))
				}
				Expect(ones.Text).To(BeElementOf("five", "seven"))
			}
		})
	})

	DescribeTable("tens row policy",
		func(from, to time.Time, want driver.Action) {
			build(from)
			d.Settle(1000)
			sets := surfaces[driver.TensRow].sets

			clk.Set(to)
			d.Restart()
			d.Frame()

			tens := rows[driver.TensRow]
			switch want {
			case driver.Animate:
				Expect(tens.State()).To(Equal(slide.PrepareToMove))
			case driver.Swap:
				Expect(tens.State()).To(Equal(slide.InFrame))
				Expect(surfaces[driver.TensRow].sets).To(Equal(sets + 1))
			}
			Expect(rows[driver.OnesRow].Pending()).NotTo(BeNil())
		},
		Entry("10 to 11 stays under twenty", at(9, 10), at(9, 11), driver.Animate),
		Entry("21 to 31 changes the tens digit", at(9, 21), at(9, 31), driver.Animate),
		Entry("31 to 32 keeps the tens word", at(9, 31), at(9, 32), driver.Swap),
		Entry("hour change always animates", at(9, 59), at(10, 0), driver.Animate),
		Entry("19 to 20 animates into twenty", at(9, 19), at(9, 20), driver.Animate),
		Entry("20 to 21 keeps twenty", at(9, 20), at(9, 21), driver.Swap),
	)

	It("swaps the tens buffer without touching the displayed slot", func() {
		build(at(9, 31))
		d.Settle(1000)
		shown := rows[driver.TensRow].Displayed()

		clk.Set(at(9, 32))
		d.Restart()
		d.Frame()

		now := rows[driver.TensRow].Displayed()
		Expect(now).NotTo(BeIdenticalTo(shown))
		Expect(shown.String()).To(Equal("thirty"))
		Expect(now.String()).To(Equal("thirty"))
	})

	It("lets the newest minute win when ticks overlap an exit", func() {
		build(at(9, 5))
		d.Settle(1000)
		shown := rows[driver.OnesRow].Displayed()

		clk.Set(at(9, 6))
		d.Restart()
		d.Frame()
		clk.Set(at(9, 7))
		d.Frame()

		Expect(shown.String()).To(Equal("five"))
		Expect(rows[driver.OnesRow].Pending().String()).To(Equal("seven"))

		d.Settle(1000)
		Expect(texts()[driver.OnesRow]).To(Equal("seven"))
	})

	It("animates the hour row across midnight", func() {
		build(at(23, 59))
		d.Settle(1000)
		Expect(texts()[driver.HourRow]).To(Equal("eleven"))

		clk.Set(at(0, 0))
		d.Restart()
		d.Settle(1000)
		Expect(texts()).To(Equal([driver.NumRows]string{"twelve", "", "o'clock"}))
	})
})

var _ = Describe("Action", func() {
	It("has readable names", func() {
		Expect(driver.Swap.String()).To(Equal("swap"))
		Expect(driver.Action(9).String()).To(Equal("unknown"))
	})

	It("keeps rows when nothing changed", func() {
		s := driver.Snapshot{Hour: 9, Minute: 31}
		Expect(driver.TensAction(s, s)).To(Equal(driver.Keep))
		Expect(driver.OnesAction(s, s)).To(Equal(driver.Keep))
		Expect(driver.HourAction(s, s)).To(Equal(driver.Keep))
	})
})
