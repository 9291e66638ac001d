package catalog

import "github.com/mosaiccare/chartkit/pkg/logger"

// Option applies a configuration option to the Store.
type Option func(*Store)

// WithMaxResults caps the number of matches a search returns.
func WithMaxResults(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxResults = n
		}
	}
}

// WithMaxDistance sets the edit-distance budget for fuzzy fallback
// matches.
func WithMaxDistance(n int) Option {
	return func(s *Store) {
		if n >= 0 {
			s.maxDistance = n
		}
	}
}

// WithLogger sets a custom logger for the store.
func WithLogger(l logger.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}
