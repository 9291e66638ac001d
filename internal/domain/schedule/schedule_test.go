package schedule_test

import (
	"testing"
	"time"

	"github.com/mosaiccare/chartkit/internal/domain/schedule"
	. "github.com/smartystreets/goconvey/convey"
)

func at(hour, min int) time.Time {
	return time.Date(2026, time.March, 9, hour, min, 0, 0, time.UTC)
}

func TestSlots(t *testing.T) {
	Convey("Given a 9:00 to 12:00 day at 30-minute intervals", t, func() {
		Convey("When no ranges are booked", func() {
			slots := schedule.Slots(at(9, 0), at(12, 0), 30*time.Minute, nil)

			Convey("Then six contiguous open slots are produced", func() {
				So(slots, ShouldHaveLength, 6)
				So(slots[0].Start, ShouldEqual, at(9, 0))
				So(slots[0].End, ShouldEqual, at(9, 30))
				So(slots[5].Start, ShouldEqual, at(11, 30))
				So(slots[5].End, ShouldEqual, at(12, 0))
				for _, s := range slots {
					So(s.Available, ShouldBeTrue)
				}
			})
		})

		Convey("When an appointment is booked from 10:00 to 11:00", func() {
			booked := []schedule.Range{{Start: at(10, 0), End: at(11, 0)}}
			slots := schedule.Slots(at(9, 0), at(12, 0), 30*time.Minute, booked)

			Convey("Then only the overlapping slots are unavailable", func() {
				So(slots[1].Available, ShouldBeTrue)  // 9:30-10:00 ends at the booking start
				So(slots[2].Available, ShouldBeFalse) // 10:00-10:30
				So(slots[3].Available, ShouldBeFalse) // 10:30-11:00
				So(slots[4].Available, ShouldBeTrue)  // 11:00-11:30 starts at the booking end
			})

			Convey("And the available filter keeps the open ones in order", func() {
				open := schedule.Available(slots)
				So(open, ShouldHaveLength, 4)
				So(open[2].Start, ShouldEqual, at(11, 0))
			})
		})

		Convey("When a booking only grazes a slot by one minute", func() {
			booked := []schedule.Range{{Start: at(9, 29), End: at(9, 31)}}
			slots := schedule.Slots(at(9, 0), at(12, 0), 30*time.Minute, booked)
			So(slots[0].Available, ShouldBeFalse)
			So(slots[1].Available, ShouldBeFalse)
			So(slots[2].Available, ShouldBeTrue)
		})
	})

	Convey("Given a range the interval does not divide", t, func() {
		slots := schedule.Slots(at(9, 0), at(9, 50), 20*time.Minute, nil)

		Convey("Then the ragged tail is dropped", func() {
			So(slots, ShouldHaveLength, 2)
			So(slots[1].End, ShouldEqual, at(9, 40))
		})
	})

	Convey("Given degenerate inputs", t, func() {
		Convey("When the day is inverted no slots are produced", func() {
			So(schedule.Slots(at(12, 0), at(9, 0), 30*time.Minute, nil), ShouldBeNil)
		})

		Convey("When the interval is non-positive the default applies", func() {
			slots := schedule.Slots(at(9, 0), at(10, 0), 0, nil)
			So(slots, ShouldHaveLength, 2)
			So(slots[0].End, ShouldEqual, at(9, 30))
		})

		Convey("When the window is shorter than one interval", func() {
			So(schedule.Slots(at(9, 0), at(9, 10), 30*time.Minute, nil), ShouldBeNil)
		})
	})
}
