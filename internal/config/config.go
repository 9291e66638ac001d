// Package config defines library configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains engine tuning knobs. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// RowHeight is the fixed row height in pixels for window math.
	RowHeight int `koanf:"row_height"`

	// VirtualizeThreshold is the row count above which windowing
	// activates.
	VirtualizeThreshold int `koanf:"virtualize_threshold"`

	// OverscanBefore and OverscanTotal pad the visible window.
	OverscanBefore int `koanf:"overscan_before"`
	OverscanTotal  int `koanf:"overscan_total"`

	// DebounceDelayMS is the lookup quiescence delay in milliseconds.
	DebounceDelayMS int `koanf:"debounce_delay_ms"`

	// LookupMinQueryLength gates lookup dispatch; shorter queries
	// clear results.
	LookupMinQueryLength int `koanf:"lookup_min_query_length"`

	// LookupMaxResults caps catalog search results.
	LookupMaxResults int `koanf:"lookup_max_results"`

	// SlotIntervalMinutes is the appointment slot length.
	SlotIntervalMinutes int `koanf:"slot_interval_minutes"`
}

// New creates a Config with library defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		RowHeight:            48,
		VirtualizeThreshold:  50,
		OverscanBefore:       5,
		OverscanTotal:        10,
		DebounceDelayMS:      300,
		LookupMinQueryLength: 2,
		LookupMaxResults:     10,
		SlotIntervalMinutes:  30,
	}
}
