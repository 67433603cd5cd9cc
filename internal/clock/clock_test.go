package clock_test

import (
	"encoding/json"
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orrery/internal/clock"
)

type fakeWall struct{ t time.Time }

func (f *fakeWall) Now() time.Time       { return f.t }
func (f *fakeWall) Step(d time.Duration) { f.t = f.t.Add(d) }

func newFakeWall() *fakeWall { return &fakeWall{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)} }

var _ = Describe("Clock", func() {
	var (
		wall *fakeWall
		c    *clock.Clock
	)

	BeforeEach(func() {
		wall = newFakeWall()
		c = clock.New(clock.WithNow(wall.Now))
	})

	Describe("construction", func() {
		It("starts stopped at the epoch in real time", func() {
			Expect(c.Running()).To(BeFalse())
			Expect(c.Elapsed()).To(Equal(0.0))
			Expect(c.Scale()).To(Equal(1.0))
			Expect(c.FormatDateTime()).To(Equal("2000-01-01 12:00:00"))
			Expect(c.JulianDate()).To(Equal(clock.J2000JD))
		})

		It("applies options", func() {
			c = clock.New(clock.WithScale(3600), clock.WithElapsed(10))
			Expect(c.Scale()).To(Equal(3600.0))
			Expect(c.Elapsed()).To(Equal(10.0))
		})
	})

	Describe("Advance", func() {
		It("does nothing while stopped", func() {
			c.SetTimeScale(86400)
			c.Advance(time.Second)
			Expect(c.Elapsed()).To(Equal(0.0))
		})

		It("adds wall time multiplied by the scale", func() {
			c.SetTimeScale(2)
			c.Play()
			dt := 90 * time.Second
			c.Advance(dt)
			Expect(c.Elapsed()).To(BeNumerically("~", 2*dt.Seconds()/clock.SecondsPerDay, 1e-12))
		})

		It("advances one day per second at the 1day/sec preset", func() {
			Expect(c.SetTimeScalePreset("1day/sec")).To(BeTrue())
			c.Play()
			c.Advance(time.Second)
			Expect(c.Elapsed()).To(BeNumerically("~", 1, 1e-12))
		})

		It("never moves backward for a negative wall delta", func() {
			c.SetTimeScale(86400)
			c.Play()
			c.Advance(-3 * time.Second)
			Expect(c.Elapsed()).To(Equal(0.0))
			c.SetTime(10)
			c.Advance(-time.Hour)
			Expect(c.Elapsed()).To(Equal(10.0))
		})

		It("freezes time at scale zero without stopping", func() {
			c.SetTimeScale(0)
			c.Play()
			c.Advance(time.Hour)
			Expect(c.Running()).To(BeTrue())
			Expect(c.Elapsed()).To(Equal(0.0))
		})
	})

	Describe("Tick", func() {
		It("uses wall time since Play", func() {
			c.SetTimeScale(86400)
			c.Play()
			wall.Step(500 * time.Millisecond)
			c.Tick()
			Expect(c.Elapsed()).To(BeNumerically("~", 0.5, 1e-9))
			wall.Step(250 * time.Millisecond)
			c.Tick()
			Expect(c.Elapsed()).To(BeNumerically("~", 0.75, 1e-9))
		})

		It("ignores wall time that passed while paused", func() {
			c.SetTimeScale(86400)
			c.Play()
			wall.Step(time.Second)
			c.Tick()
			c.Pause()
			wall.Step(time.Hour)
			c.Tick()
			c.Play()
			wall.Step(time.Second)
			c.Tick()
			Expect(c.Elapsed()).To(BeNumerically("~", 2, 1e-9))
		})
	})

	Describe("control", func() {
		It("toggles between running and stopped", func() {
			Expect(c.Toggle()).To(BeTrue())
			Expect(c.Toggle()).To(BeFalse())
			c.Pause()
			Expect(c.Running()).To(BeFalse())
		})

		It("resets to the epoch and stops", func() {
			c.Play()
			c.SetTime(100)
			c.Reset()
			Expect(c.Running()).To(BeFalse())
			Expect(c.Elapsed()).To(Equal(0.0))
		})
	})

	Describe("setting time", func() {
		It("clamps negative values at the floor", func() {
			c.SetTime(-5)
			Expect(c.Elapsed()).To(Equal(clock.Floor))
		})

		It("clamps backward jumps at the floor", func() {
			c.SetTime(3)
			c.JumpBackward(1, clock.Weeks)
			Expect(c.Elapsed()).To(Equal(0.0))
		})

		It("ignores negative jump amounts", func() {
			c.SetTime(10)
			c.JumpForward(-5, clock.Days)
			Expect(c.Elapsed()).To(Equal(10.0))
			c.JumpBackward(-5, clock.Days)
			Expect(c.Elapsed()).To(Equal(10.0))
		})

		DescribeTable("ignores non-finite times",
			func(v float64) {
				c.SetTime(10)
				c.SetTime(v)
				Expect(c.Elapsed()).To(Equal(10.0))
				c.SetJulianDate(v)
				Expect(c.Elapsed()).To(Equal(10.0))
				c.JumpForward(v, clock.Years)
				Expect(c.Elapsed()).To(Equal(10.0))
			},
			Entry("NaN", math.NaN()),
			Entry("+Inf", math.Inf(1)),
			Entry("-Inf", math.Inf(-1)),
		)

		It("keeps the last finite time when a jump overflows", func() {
			c.SetTime(10)
			c.JumpForward(math.MaxFloat64, clock.Years)
			Expect(c.Elapsed()).To(Equal(10.0))
		})

		DescribeTable("jumps forward by unit",
			func(amount float64, unit clock.Unit, want float64) {
				c.JumpForward(amount, unit)
				Expect(c.Elapsed()).To(BeNumerically("~", want, 1e-12))
			},
			Entry("hours", 12.0, clock.Hours, 0.5),
			Entry("days", 3.0, clock.Days, 3.0),
			Entry("weeks", 2.0, clock.Weeks, 14.0),
			Entry("months", 1.0, clock.Months, 30.44),
			Entry("years", 2.0, clock.Years, 730.5),
		)

		It("round trips calendar dates", func() {
			c.GoToDate(2024, time.March, 15)
			Expect(c.FormatDate()).To(Equal("2024-03-15"))
			Expect(c.Elapsed()).To(BeNumerically("~", 8839.5, 1e-6))
		})

		It("clamps dates before the epoch", func() {
			c.SetFromCalendarDate(time.Date(1990, 6, 1, 0, 0, 0, 0, time.UTC))
			Expect(c.Elapsed()).To(Equal(0.0))
		})

		It("accepts Julian dates", func() {
			c.SetJulianDate(clock.J2000JD + 366)
			Expect(c.FormatDateTime()).To(Equal("2001-01-01 12:00:00"))
		})
	})

	Describe("time scale", func() {
		It("clamps negative scales to zero", func() {
			c.SetTimeScale(-10)
			Expect(c.Scale()).To(Equal(0.0))
			Expect(c.ScaleLabel()).To(Equal("paused"))
		})

		It("ignores non-finite scales", func() {
			c.SetTimeScale(60)
			c.SetTimeScale(math.Inf(1))
			Expect(c.Scale()).To(Equal(60.0))
			c.SetTimeScale(math.NaN())
			Expect(c.Scale()).To(Equal(60.0))
		})

		It("rejects unknown presets", func() {
			c.SetTimeScale(60)
			Expect(c.SetTimeScalePreset("warp9")).To(BeFalse())
			Expect(c.Scale()).To(Equal(60.0))
		})

		DescribeTable("labels",
			func(scale float64, want string) {
				Expect(clock.ScaleLabel(scale)).To(Equal(want))
			},
			Entry("realtime", 1.0, "realtime"),
			Entry("near a preset", 86500.0, "1day/sec"),
			Entry("between presets", 5000.0, "5.00e+03x"),
		)

		DescribeTable("stepping through presets",
			func(scale float64, dir int, want string) {
				Expect(clock.StepScale(scale, dir).Name).To(Equal(want))
			},
			Entry("faster from a preset", 86400.0, 1, "1week/sec"),
			Entry("slower from a preset", 86400.0, -1, "1hour/sec"),
			Entry("faster from between presets", 5000.0, 1, "1day/sec"),
			Entry("slower from between presets", 5000.0, -1, "1hour/sec"),
			Entry("clamped at the top", 31536000000.0, 1, "1000years/sec"),
			Entry("clamped at paused", 0.0, -1, "paused"),
		)
	})

	Describe("RelativeTime", func() {
		DescribeTable("buckets",
			func(days float64, want string) {
				c.SetTime(days)
				Expect(c.RelativeTime()).To(Equal(want))
			},
			Entry("days", 12.3, "12.3 days"),
			Entry("years", 730.5, "2.00 years"),
			Entry("millennia", 365.25*2500, "2500 years"),
			Entry("millions", 365.25*3.2e6, "3.2 million years"),
		)
	})

	Describe("derived quantities", func() {
		It("starts the solar longitude at its epoch value", func() {
			Expect(c.SolarLongitude()).To(BeNumerically("~", 280.460, 1e-9))
			c.SetTime(365.25)
			Expect(c.SolarLongitude()).To(BeNumerically(">=", 0))
			Expect(c.SolarLongitude()).To(BeNumerically("<", 360))
		})

		It("follows the sun's declination through the year", func() {
			Expect(c.SunDeclination()).To(BeNumerically("~", -23.03, 0.05))
			c.SetFromCalendarDate(time.Date(2000, 6, 21, 0, 0, 0, 0, time.UTC))
			Expect(c.SunDeclination()).To(BeNumerically("~", 23.44, 0.05))
		})

		It("gives sidereal time at the epoch", func() {
			Expect(c.SiderealTime()).To(BeNumerically("~", 18.6974, 1e-3))
		})

		It("reports a new moon near 2000-01-06", func() {
			c.SetFromCalendarDate(time.Date(2000, 1, 6, 18, 14, 0, 0, time.UTC))
			Expect(c.MoonPhaseName()).To(Equal("New Moon"))
			c.JumpForward(clock.SynodicMonth/2, clock.Days)
			Expect(c.MoonPhase()).To(BeNumerically("~", 0.5, 1e-4))
			Expect(c.MoonPhaseName()).To(Equal("Full Moon"))
		})

		DescribeTable("seasons",
			func(month time.Month, day int, want string) {
				c.GoToDate(2010, month, day)
				Expect(c.Season()).To(Equal(want))
			},
			Entry("winter", time.January, 15, "Winter"),
			Entry("spring", time.March, 20, "Spring"),
			Entry("summer", time.July, 4, "Summer"),
			Entry("fall", time.October, 31, "Fall"),
			Entry("december winter", time.December, 25, "Winter"),
		)

		It("decreases obliquity over centuries", func() {
			Expect(c.EarthObliquity()).To(BeNumerically("~", 23.439291, 1e-9))
			c.SetTime(36525)
			Expect(c.EarthObliquity()).To(BeNumerically("~", 23.439291-0.0130042, 1e-9))
		})
	})

	It("serializes snapshots", func() {
		c.SetTime(1)
		raw, err := json.Marshal(c.Snapshot())
		Expect(err).NotTo(HaveOccurred())
		var decoded map[string]any
		Expect(json.Unmarshal(raw, &decoded)).To(Succeed())
		Expect(decoded).To(HaveKeyWithValue("date", "2000-01-02 12:00:00"))
		Expect(decoded).To(HaveKeyWithValue("time_scale_label", "realtime"))
	})
})
