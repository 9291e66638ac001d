package vitals

// Reading is an optional numeric value. The zero Reading is "unset";
// an unset reading is never validated or flagged, which replaces the
// zero-as-unset sentinel the form model would otherwise need.
type Reading struct {
	value float64
	set   bool
}

// NewReading returns a set Reading.
func NewReading(v float64) Reading {
	return Reading{value: v, set: true}
}

// Value returns the reading and whether it has been entered.
func (r Reading) Value() (float64, bool) {
	return r.value, r.set
}

// Record holds one vitals-form entry. Constructed from caller-supplied
// partial values merged over a zeroed default; mutated field-by-field
// on input events. The caller owns persistence.
type Record struct {
	Systolic         Reading
	Diastolic        Reading
	HeartRate        Reading
	RespiratoryRate  Reading
	OxygenSaturation Reading
	PainLevel        Reading

	Temperature     Reading
	TemperatureUnit TempUnit

	Weight     Reading
	WeightUnit WeightUnit

	Height     Reading
	HeightUnit HeightUnit
}

// NewRecord returns a Record with every reading unset and US-customary
// default units.
func NewRecord() Record {
	return Record{
		TemperatureUnit: TempF,
		WeightUnit:      WeightLb,
		HeightUnit:      HeightIn,
	}
}

// Merge overlays the set readings and non-empty unit selectors of
// partial onto r, returning the result. Unset readings in partial
// leave r's values alone.
func (r Record) Merge(partial Record) Record {
	merged := r
	for _, f := range AllFields() {
		if v, ok := partial.Get(f); ok {
			merged.Set(f, v)
		}
	}
	if partial.TemperatureUnit != "" {
		merged.TemperatureUnit = partial.TemperatureUnit
	}
	if partial.WeightUnit != "" {
		merged.WeightUnit = partial.WeightUnit
	}
	if partial.HeightUnit != "" {
		merged.HeightUnit = partial.HeightUnit
	}
	return merged
}

// AllFields lists every vitals field in form order.
func AllFields() []Field {
	return []Field{
		FieldSystolic,
		FieldDiastolic,
		FieldHeartRate,
		FieldTemperature,
		FieldRespiratoryRate,
		FieldOxygenSaturation,
		FieldWeight,
		FieldHeight,
		FieldPainLevel,
	}
}

// Set records a value for a field.
func (r *Record) Set(field Field, v float64) {
	reading := NewReading(v)
	switch field {
	case FieldSystolic:
		r.Systolic = reading
	case FieldDiastolic:
		r.Diastolic = reading
	case FieldHeartRate:
		r.HeartRate = reading
	case FieldTemperature:
		r.Temperature = reading
	case FieldRespiratoryRate:
		r.RespiratoryRate = reading
	case FieldOxygenSaturation:
		r.OxygenSaturation = reading
	case FieldWeight:
		r.Weight = reading
	case FieldHeight:
		r.Height = reading
	case FieldPainLevel:
		r.PainLevel = reading
	}
}

// Get returns a field's value and whether it has been entered.
func (r Record) Get(field Field) (float64, bool) {
	switch field {
	case FieldSystolic:
		return r.Systolic.Value()
	case FieldDiastolic:
		return r.Diastolic.Value()
	case FieldHeartRate:
		return r.HeartRate.Value()
	case FieldTemperature:
		return r.Temperature.Value()
	case FieldRespiratoryRate:
		return r.RespiratoryRate.Value()
	case FieldOxygenSaturation:
		return r.OxygenSaturation.Value()
	case FieldWeight:
		return r.Weight.Value()
	case FieldHeight:
		return r.Height.Value()
	case FieldPainLevel:
		return r.PainLevel.Value()
	default:
		return 0, false
	}
}

// unitFor returns the unit discriminator Validate and Classify expect
// for a field on this record.
func (r Record) unitFor(field Field) string {
	switch field {
	case FieldTemperature:
		return string(r.TemperatureUnit)
	case FieldWeight:
		return string(r.WeightUnit)
	case FieldHeight:
		return string(r.HeightUnit)
	default:
		return ""
	}
}

// Validate checks every entered reading against its absolute bounds.
// Unset readings are skipped.
func (r Record) Validate() []ValidationError {
	var errs []ValidationError
	for _, f := range AllFields() {
		v, ok := r.Get(f)
		if !ok {
			continue
		}
		if err := Validate(f, v, r.unitFor(f)); err != nil {
			errs = append(errs, *err)
		}
	}
	return errs
}

// BMI derives body mass index from the record's weight and height,
// converting to metric as needed. The second return is false when
// either reading is unset or non-positive.
func (r Record) BMI() (float64, bool) {
	weight, ok := r.Weight.Value()
	if !ok {
		return 0, false
	}
	height, ok := r.Height.Value()
	if !ok {
		return 0, false
	}
	if r.WeightUnit == WeightLb {
		weight = ConvertWeight(weight, WeightLb)
	}
	if r.HeightUnit == HeightIn {
		height = ConvertHeight(height, HeightIn)
	}
	return BMI(weight, height)
}
