package vitals

import (
	"fmt"
	"math"

	"github.com/mosaiccare/chartkit/pkg/metrics"
)

// Classification is the outcome of checking a value against a field's
// normal bounds.
type Classification string

const (
	ClassNormal  Classification = "normal"
	ClassLow     Classification = "low"
	ClassHigh    Classification = "high"
	ClassUnknown Classification = "unknown"
)

// Classify places a value relative to a field's normal range. Fields
// without normal bounds (weight, height) and unrecognized fields
// classify as unknown. Normal bounds drive a non-blocking highlight
// only; they never reject input. Rejection is Validate's job.
func Classify(field Field, value float64, unit string) Classification {
	spec, ok := RangeFor(field, unit)
	if !ok || spec.NormalMin == nil || spec.NormalMax == nil {
		metrics.RecordClassification(string(field), string(ClassUnknown))
		return ClassUnknown
	}

	var class Classification
	switch {
	case value < *spec.NormalMin:
		class = ClassLow
	case value > *spec.NormalMax:
		class = ClassHigh
	default:
		class = ClassNormal
	}
	metrics.RecordClassification(string(field), string(class))
	return class
}

// ValidationError reports a value outside a field's absolute bounds.
// It is carried as data for the caller's UI, never panicked.
type ValidationError struct {
	Field   Field
	Message string
	Min     float64
	Max     float64
	Unit    string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks a value against a field's absolute bounds. It
// returns nil for NaN input (treated as "no value") and for
// unrecognized fields, which pass through unvalidated.
// Out-of-normal-but-in-range values also return nil; only the
// absolute bounds gate acceptance.
func Validate(field Field, value float64, unit string) *ValidationError {
	if math.IsNaN(value) {
		return nil
	}
	spec, ok := RangeFor(field, unit)
	if !ok {
		return nil
	}
	if value < spec.Min || value > spec.Max {
		metrics.RecordValidationFailure(string(field))
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be between %g and %g %s", field, spec.Min, spec.Max, spec.Unit),
			Min:     spec.Min,
			Max:     spec.Max,
			Unit:    spec.Unit,
		}
	}
	return nil
}
