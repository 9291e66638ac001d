package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mosaiccare/chartkit/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"CHARTKIT_CONFIG",
		"CHARTKIT_LOG_LEVEL",
		"CHARTKIT_ROW_HEIGHT",
		"CHARTKIT_VIRTUALIZE_THRESHOLD",
		"CHARTKIT_OVERSCAN_BEFORE",
		"CHARTKIT_OVERSCAN_TOTAL",
		"CHARTKIT_DEBOUNCE_DELAY_MS",
		"CHARTKIT_LOOKUP_MIN_QUERY_LENGTH",
		"CHARTKIT_LOOKUP_MAX_RESULTS",
		"CHARTKIT_SLOT_INTERVAL_MINUTES",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.RowHeight, convey.ShouldEqual, 48)
				convey.So(cfg.VirtualizeThreshold, convey.ShouldEqual, 50)
				convey.So(cfg.DebounceDelayMS, convey.ShouldEqual, 300)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("CHARTKIT_LOG_LEVEL", "debug")
			_ = os.Setenv("CHARTKIT_ROW_HEIGHT", "40")
			_ = os.Setenv("CHARTKIT_DEBOUNCE_DELAY_MS", "150")
			_ = os.Setenv("CHARTKIT_LOOKUP_MAX_RESULTS", "5")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.RowHeight, convey.ShouldEqual, 40)
				convey.So(cfg.DebounceDelayMS, convey.ShouldEqual, 150)
				convey.So(cfg.LookupMaxResults, convey.ShouldEqual, 5)
				convey.So(cfg.OverscanTotal, convey.ShouldEqual, 10)
			})
		})

		convey.Convey("When loading config from a YAML file", func() {
			clearConfigEnvVars()
			path := filepath.Join(t.TempDir(), "chartkit.yaml")
			yaml := "row_height: 56\nslot_interval_minutes: 15\n"
			convey.So(os.WriteFile(path, []byte(yaml), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("CHARTKIT_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values layer over defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.RowHeight, convey.ShouldEqual, 56)
				convey.So(cfg.SlotIntervalMinutes, convey.ShouldEqual, 15)
				convey.So(cfg.VirtualizeThreshold, convey.ShouldEqual, 50)
			})

			convey.Convey("And env values layer over the file", func() {
				_ = os.Setenv("CHARTKIT_ROW_HEIGHT", "64")

				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.RowHeight, convey.ShouldEqual, 64)
				convey.So(cfg.SlotIntervalMinutes, convey.ShouldEqual, 15)
			})
		})

		convey.Convey("When the file path does not exist", func() {
			clearConfigEnvVars()
			_ = os.Setenv("CHARTKIT_CONFIG", "/nonexistent/chartkit.yaml")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)
			convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
		})

		convey.Convey("When a knob is out of range", func() {
			clearConfigEnvVars()
			_ = os.Setenv("CHARTKIT_ROW_HEIGHT", "0")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
		})
	})
}
