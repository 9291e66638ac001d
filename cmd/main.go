// Demo runner: loads configuration, binds a session, and walks sample
// patient data through every engine once.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mosaiccare/chartkit/internal/adapters/catalog"
	session "github.com/mosaiccare/chartkit/internal/app"
	"github.com/mosaiccare/chartkit/internal/config"
	"github.com/mosaiccare/chartkit/internal/domain/vitals"
	"github.com/mosaiccare/chartkit/internal/sampledata"
	"github.com/mosaiccare/chartkit/pkg/logger"
)

// Demo scenario constants.
const (
	demoRows         = 200
	demoViewportPx   = 600
	demoScrollPx     = 2400
	lookupQuery      = "metf"
	lookupSettleWait = 2 * time.Second
	shutdownTimeout  = 5 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	store := catalog.New(sampledata.Medications(),
		catalog.WithMaxResults(cfg.LookupMaxResults),
	)

	sess := session.New(
		session.WithLogger(log),
		session.WithRowHeight(cfg.RowHeight),
		session.WithVirtualizeThreshold(cfg.VirtualizeThreshold),
		session.WithOverscan(cfg.OverscanBefore, cfg.OverscanTotal),
		session.WithDebounceDelay(time.Duration(cfg.DebounceDelayMS)*time.Millisecond),
		session.WithMinQueryLength(cfg.LookupMinQueryLength),
		session.WithSlotInterval(time.Duration(cfg.SlotIntervalMinutes)*time.Minute),
		session.WithSearcher(store),
	)
	if err := sess.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start session: " + err.Error() + "\n")
		return
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := sess.Stop(stopCtx); err != nil {
			log.Warn(stopCtx, "session stop", logger.Error(err))
		}
	}()

	runDemo(ctx, log, sess)
}

func runDemo(ctx context.Context, log logger.Logger, sess *session.Session) {
	rows := sampledata.Rows(demoRows)

	// Virtual window over a scrolled table
	w := sess.Window(len(rows), demoScrollPx, demoViewportPx, false)
	log.Info(ctx, "virtual window",
		logger.Int("rows", len(rows)),
		logger.Int("start", w.Start),
		logger.Int("end", w.End),
		logger.Int("leadingOffset", w.LeadingOffset),
	)

	// Sort toggling on the age column
	sort := sess.SortBy("age", true)
	sort = sess.SortBy("age", true)
	log.Info(ctx, "sort state", logger.String("column", sort.Column), logger.String("direction", string(sort.Direction)))

	// Selection: two rows, then select-all over the first page
	sess.ToggleRow(rows[0].Key())
	sess.ToggleRow(rows[1].Key())
	sess.SetTotal(len(rows))
	page := sess.GoTo(1)
	visible := make([]string, 0, page.PageSize)
	for _, r := range rows[page.StartItem-1 : page.EndItem] {
		visible = append(visible, r.Key())
	}
	sel := sess.ToggleAllVisible(visible)
	log.Info(ctx, "selection", logger.Int("selected", sel.Len()), logger.Int("page", page.Page), logger.Int("totalPages", page.TotalPages))

	// Vitals: validate and classify a sample record
	rec := sampledata.Record()
	for _, ve := range rec.Validate() {
		log.Warn(ctx, "vitals out of range", logger.String("field", string(ve.Field)), logger.String("message", ve.Message))
	}
	if hr, ok := rec.Get(vitals.FieldHeartRate); ok {
		log.Info(ctx, "heart rate",
			logger.Float64("value", hr),
			logger.String("classification", string(vitals.Classify(vitals.FieldHeartRate, hr, ""))),
		)
	}
	if bmi, ok := rec.BMI(); ok {
		log.Info(ctx, "bmi", logger.Float64("value", bmi), logger.String("category", string(vitals.BMICategoryFor(bmi))))
	}

	// Debounced medication lookup
	sess.ObserveQuery(lookupQuery)
	deadline := time.Now().Add(lookupSettleWait)
	for time.Now().Before(deadline) {
		if q, _ := sess.Matches(); q == lookupQuery {
			break
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(10 * time.Millisecond):
		}
	}
	q, matches := sess.Matches()
	log.Info(ctx, "lookup", logger.String("query", q), logger.Int("matches", len(matches)))

	// Appointment slots for the day
	dayStart := time.Now().Truncate(24 * time.Hour).Add(9 * time.Hour)
	slots := sess.Slots(dayStart, dayStart.Add(8*time.Hour), nil)
	log.Info(ctx, "slots", logger.Int("count", len(slots)))
}
