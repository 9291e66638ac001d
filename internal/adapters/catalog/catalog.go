// Package catalog provides an immutable in-memory medication catalog
// used as the reference search backend for the lookup debouncer in
// demos and tests.
package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/mosaiccare/chartkit/internal/domain/lookup"
	"github.com/mosaiccare/chartkit/pkg/logger"
)

// Default search limits.
const (
	defaultMaxResults  = 10
	defaultMaxDistance = 2
)

// Medication is one catalog entry.
type Medication struct {
	Code     string
	Name     string
	Strength string
}

// Searcher finds medications for a free-text query.
type Searcher interface {
	// Search returns matches for query ordered by relevance: prefix
	// matches, then other substring matches, then fuzzy matches by
	// edit distance. Returns ErrEmptyQuery for a blank query.
	Search(ctx context.Context, query string) ([]Medication, error)
}

// Store is an immutable in-memory Searcher over a fixed medication
// list. Safe for concurrent use.
type Store struct {
	meds        []Medication
	lowered     []string
	maxResults  int
	maxDistance int
	logger      logger.Logger
}

var _ Searcher = (*Store)(nil)

// New creates a store over the given medications. The slice is copied;
// later mutation by the caller does not affect the store.
func New(meds []Medication, opts ...Option) *Store {
	s := &Store{
		meds:        make([]Medication, len(meds)),
		lowered:     make([]string, len(meds)),
		maxResults:  defaultMaxResults,
		maxDistance: defaultMaxDistance,
		logger:      logger.Get().Named("catalog"),
	}
	copy(s.meds, meds)
	for i, m := range meds {
		s.lowered[i] = strings.ToLower(m.Name)
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Size returns the number of catalog entries.
func (s *Store) Size() int {
	return len(s.meds)
}

// Search implements Searcher.
func (s *Store) Search(ctx context.Context, query string) ([]Medication, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, ErrEmptyQuery
	}

	var prefix, substring []Medication
	type fuzzyHit struct {
		med  Medication
		dist int
	}
	var fuzzy []fuzzyHit

	for i, name := range s.lowered {
		switch {
		case strings.HasPrefix(name, q):
			prefix = append(prefix, s.meds[i])
		case strings.Contains(name, q):
			substring = append(substring, s.meds[i])
		default:
			if d := levenshtein.ComputeDistance(q, name); d <= s.maxDistance {
				fuzzy = append(fuzzy, fuzzyHit{med: s.meds[i], dist: d})
			}
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Closer edits rank earlier; ties break on name for determinism.
	sort.SliceStable(fuzzy, func(a, b int) bool {
		if fuzzy[a].dist != fuzzy[b].dist {
			return fuzzy[a].dist < fuzzy[b].dist
		}
		return fuzzy[a].med.Name < fuzzy[b].med.Name
	})

	out := make([]Medication, 0, s.maxResults)
	for _, m := range prefix {
		if len(out) == s.maxResults {
			break
		}
		out = append(out, m)
	}
	for _, m := range substring {
		if len(out) == s.maxResults {
			break
		}
		out = append(out, m)
	}
	for _, h := range fuzzy {
		if len(out) == s.maxResults {
			break
		}
		out = append(out, h.med)
	}

	s.logger.Debug(ctx, "catalog search",
		logger.String("query", q),
		logger.Int("matches", len(out)))

	return out, nil
}

// SearchFunc adapts the store to the debouncer's search contract. A
// blank query yields no matches rather than an error, since the
// debouncer already screens short input.
func (s *Store) SearchFunc() lookup.SearchFunc {
	return func(ctx context.Context, query string) ([]lookup.Match, error) {
		meds, err := s.Search(ctx, query)
		if err != nil {
			if err == ErrEmptyQuery {
				return nil, nil
			}
			return nil, err
		}
		matches := make([]lookup.Match, len(meds))
		for i, m := range meds {
			matches[i] = lookup.Match{Code: m.Code, Name: m.Name, Strength: m.Strength}
		}
		return matches, nil
	}
}
