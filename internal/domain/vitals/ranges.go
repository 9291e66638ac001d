package vitals

// Field identifies one physiological field on the vitals form.
type Field string

const (
	FieldSystolic         Field = "systolic"
	FieldDiastolic        Field = "diastolic"
	FieldHeartRate        Field = "heartRate"
	FieldTemperature      Field = "temperature"
	FieldRespiratoryRate  Field = "respiratoryRate"
	FieldOxygenSaturation Field = "oxygenSaturation"
	FieldWeight           Field = "weight"
	FieldHeight           Field = "height"
	FieldPainLevel        Field = "painLevel"
)

// RangeSpec holds the bounds for one field. Min/Max gate what is
// accepted at all; NormalMin/NormalMax, when present, bound what is
// flagged as abnormal. Weight and height carry no normal bounds.
type RangeSpec struct {
	Min       float64
	Max       float64
	NormalMin *float64
	NormalMax *float64
	Unit      string
}

// rangeKey is the tagged (field, unit) lookup key. Only temperature,
// weight, and height discriminate on unit; every other field uses an
// empty unit.
type rangeKey struct {
	field Field
	unit  string
}

func ptr(f float64) *float64 {
	return &f
}

// rangeTable is the authoritative source of truth for vitals bounds.
// Effectively process-wide constant configuration, never mutated.
var rangeTable = map[rangeKey]RangeSpec{
	{FieldSystolic, ""}:         {Min: 50, Max: 300, NormalMin: ptr(90), NormalMax: ptr(140), Unit: "mmHg"},
	{FieldDiastolic, ""}:        {Min: 30, Max: 200, NormalMin: ptr(60), NormalMax: ptr(90), Unit: "mmHg"},
	{FieldHeartRate, ""}:        {Min: 30, Max: 250, NormalMin: ptr(60), NormalMax: ptr(100), Unit: "bpm"},
	{FieldRespiratoryRate, ""}:  {Min: 5, Max: 60, NormalMin: ptr(12), NormalMax: ptr(20), Unit: "breaths/min"},
	{FieldOxygenSaturation, ""}: {Min: 50, Max: 100, NormalMin: ptr(95), NormalMax: ptr(100), Unit: "%"},
	{FieldPainLevel, ""}:        {Min: 0, Max: 10, NormalMin: ptr(0), NormalMax: ptr(3), Unit: "/10"},

	{FieldTemperature, string(TempF)}: {Min: 90, Max: 110, NormalMin: ptr(97), NormalMax: ptr(99.5), Unit: "°F"},
	{FieldTemperature, string(TempC)}: {Min: 32, Max: 43.5, NormalMin: ptr(36.1), NormalMax: ptr(37.5), Unit: "°C"},

	{FieldWeight, string(WeightLb)}: {Min: 1, Max: 1500, Unit: "lb"},
	{FieldWeight, string(WeightKg)}: {Min: 0.5, Max: 680, Unit: "kg"},

	{FieldHeight, string(HeightIn)}: {Min: 5, Max: 110, Unit: "in"},
	{FieldHeight, string(HeightCm)}: {Min: 12, Max: 280, Unit: "cm"},
}

// unitQualified reports whether a field's range lookup discriminates
// on the unit selector.
func unitQualified(field Field) bool {
	switch field {
	case FieldTemperature, FieldWeight, FieldHeight:
		return true
	default:
		return false
	}
}

// RangeFor resolves the RangeSpec for a field and optional unit
// discriminator. The unit is ignored for unit-independent fields.
func RangeFor(field Field, unit string) (RangeSpec, bool) {
	key := rangeKey{field: field}
	if unitQualified(field) {
		key.unit = unit
	}
	spec, ok := rangeTable[key]
	return spec, ok
}
