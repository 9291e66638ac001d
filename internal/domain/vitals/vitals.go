// Package vitals provides unit conversion, range classification, and
// absolute-bound validation for vital-sign entry forms.
package vitals

import (
	"math"
)

// Measurement unit selectors.
type TempUnit string

const (
	TempF TempUnit = "F"
	TempC TempUnit = "C"
)

type WeightUnit string

const (
	WeightLb WeightUnit = "lb"
	WeightKg WeightUnit = "kg"
)

type HeightUnit string

const (
	HeightIn HeightUnit = "in"
	HeightCm HeightUnit = "cm"
)

// Conversion factors.
const (
	lbPerKg          = 0.453592
	cmPerIn          = 2.54
	cmPerM           = 100.0
	fahrenheitOffset = 32.0
)

// BMI category thresholds. Comparisons are strict-less-than, so a value
// sitting exactly on a threshold falls into the higher category.
const (
	bmiUnderweightBelow = 18.5
	bmiNormalBelow      = 25.0
	bmiOverweightBelow  = 30.0
)

// BMICategory labels a body-mass-index band.
type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

// round1 rounds to one decimal place, the display precision used by
// every conversion in this package.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ConvertTemperature converts a temperature reading out of the given
// unit into the other one, rounded to one decimal.
func ConvertTemperature(value float64, from TempUnit) float64 {
	if from == TempF {
		return round1((value - fahrenheitOffset) * 5 / 9)
	}
	return round1(value*9/5 + fahrenheitOffset)
}

// ConvertWeight converts a weight reading out of the given unit into
// the other one, rounded to one decimal.
func ConvertWeight(value float64, from WeightUnit) float64 {
	if from == WeightLb {
		return round1(value * lbPerKg)
	}
	return round1(value / lbPerKg)
}

// ConvertHeight converts a height reading out of the given unit into
// the other one, rounded to one decimal.
func ConvertHeight(value float64, from HeightUnit) float64 {
	if from == HeightIn {
		return round1(value * cmPerIn)
	}
	return round1(value / cmPerIn)
}

// BMI computes body mass index from metric inputs, rounded to one
// decimal. The second return is false when either input is
// non-positive; callers surface that as "no result", not an error.
func BMI(weightKg, heightCm float64) (float64, bool) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, false
	}
	heightM := heightCm / cmPerM
	return round1(weightKg / (heightM * heightM)), true
}

// BMICategoryFor maps a BMI value onto its category band.
func BMICategoryFor(bmi float64) BMICategory {
	switch {
	case bmi < bmiUnderweightBelow:
		return BMIUnderweight
	case bmi < bmiNormalBelow:
		return BMINormal
	case bmi < bmiOverweightBelow:
		return BMIOverweight
	default:
		return BMIObese
	}
}
