package catalog

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrEmptyQuery = errors.New("empty catalog query")
)
