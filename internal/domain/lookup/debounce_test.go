package lookup_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/mosaiccare/chartkit/internal/domain/lookup"
	"github.com/mosaiccare/chartkit/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

type delivery struct {
	query   string
	matches []lookup.Match
}

// collector funnels ResultFunc calls into a channel for assertions.
func collector() (lookup.ResultFunc, chan delivery) {
	ch := make(chan delivery, 16)
	return func(query string, matches []lookup.Match) {
		ch <- delivery{query: query, matches: matches}
	}, ch
}

func waitDelivery(ch chan delivery, timeout time.Duration) (delivery, bool) {
	select {
	case d := <-ch:
		return d, true
	case <-time.After(timeout):
		return delivery{}, false
	}
}

func echoSearch(ctx context.Context, query string) ([]lookup.Match, error) {
	return []lookup.Match{{Code: "c1", Name: query}}, nil
}

func TestDebounceDispatch(t *testing.T) {
	Convey("Given a debouncer with a short delay", t, func() {
		deliver, ch := collector()
		d := lookup.New(echoSearch, deliver, lookup.WithDelay(20*time.Millisecond))
		defer d.Close(context.Background())

		Convey("When input goes quiescent after one keystroke", func() {
			d.Observe("amoxicillin")

			Convey("Then the query is dispatched exactly once", func() {
				got, ok := waitDelivery(ch, time.Second)
				So(ok, ShouldBeTrue)
				So(got.query, ShouldEqual, "amoxicillin")
				So(got.matches, ShouldHaveLength, 1)

				_, again := waitDelivery(ch, 100*time.Millisecond)
				So(again, ShouldBeFalse)
			})
		})

		Convey("When keystrokes arrive in a rapid burst", func() {
			for _, q := range []string{"am", "amo", "amox", "amoxi", "amoxicillin"} {
				d.Observe(q)
			}

			Convey("Then only the final query is applied", func() {
				got, ok := waitDelivery(ch, time.Second)
				So(ok, ShouldBeTrue)
				So(got.query, ShouldEqual, "amoxicillin")

				_, again := waitDelivery(ch, 100*time.Millisecond)
				So(again, ShouldBeFalse)
			})
		})

		Convey("When the query is below the minimum length", func() {
			d.Observe("a")

			Convey("Then results are cleared without a dispatch", func() {
				got, ok := waitDelivery(ch, time.Second)
				So(ok, ShouldBeTrue)
				So(got.query, ShouldEqual, "a")
				So(got.matches, ShouldBeNil)
			})
		})
	})
}

func TestDebounceLastQueryWins(t *testing.T) {
	Convey("Given a search whose first query is slow", t, func() {
		deliver, ch := collector()
		slow := func(ctx context.Context, query string) ([]lookup.Match, error) {
			if query == "slowmed" {
				select {
				case <-time.After(150 * time.Millisecond):
				case <-ctx.Done():
				}
			}
			return []lookup.Match{{Name: query}}, nil
		}
		d := lookup.New(slow, deliver, lookup.WithDelay(10*time.Millisecond))
		defer d.Close(context.Background())

		Convey("When a newer query supersedes the in-flight one", func() {
			d.Observe("slowmed")
			time.Sleep(40 * time.Millisecond) // slow dispatch is now in flight
			d.Observe("fastmed")

			Convey("Then only the newer query's result is applied", func() {
				got, ok := waitDelivery(ch, time.Second)
				So(ok, ShouldBeTrue)
				So(got.query, ShouldEqual, "fastmed")

				_, again := waitDelivery(ch, 300*time.Millisecond)
				So(again, ShouldBeFalse)
			})
		})
	})
}

func TestDebounceFailure(t *testing.T) {
	Convey("Given a search function that fails", t, func() {
		deliver, ch := collector()
		failing := func(ctx context.Context, query string) ([]lookup.Match, error) {
			return nil, errors.New("upstream unavailable")
		}
		d := lookup.New(failing, deliver, lookup.WithDelay(10*time.Millisecond))
		defer d.Close(context.Background())

		Convey("When a query is dispatched", func() {
			d.Observe("warfarin")

			Convey("Then the failure yields an empty result set", func() {
				got, ok := waitDelivery(ch, time.Second)
				So(ok, ShouldBeTrue)
				So(got.query, ShouldEqual, "warfarin")
				So(got.matches, ShouldBeEmpty)
			})
		})
	})
}

func TestDebounceClose(t *testing.T) {
	Convey("Given an open debouncer", t, func() {
		deliver, ch := collector()
		d := lookup.New(echoSearch, deliver, lookup.WithDelay(10*time.Millisecond))

		Convey("When it is closed", func() {
			So(d.Close(context.Background()), ShouldBeNil)

			Convey("Then further keystrokes are ignored", func() {
				d.Observe("metformin")
				_, ok := waitDelivery(ch, 100*time.Millisecond)
				So(ok, ShouldBeFalse)
			})

			Convey("And closing again is a no-op", func() {
				So(d.Close(context.Background()), ShouldBeNil)
			})
		})
	})
}
