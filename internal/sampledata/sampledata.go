// Package sampledata generates plausible patient rows and vitals for
// the demo binary and tests. Values are random but band-shaped so the
// classification and validation paths all get exercised.
package sampledata

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"

	"github.com/mosaiccare/chartkit/internal/adapters/catalog"
	"github.com/mosaiccare/chartkit/internal/domain/vitals"
)

const randomFloatDivisor = 1000000

// Banded vitals generation ranges. Most rows land in normal bands;
// a minority are shifted low or high so classification varies.
const (
	caseNormal = 0
	caseLow    = 1
	caseHigh   = 2
	caseCount  = 3

	normalShare = 0.7
	lowShare    = 0.15
)

var surnames = []string{
	"Rivera", "Chen", "Okafor", "Haddad", "Lindqvist",
	"Moreau", "Sato", "Alvarez", "Kowalski", "Mbeki",
}

var wards = []string{"3A", "3B", "4A", "ICU", "ED"}

// PatientRow is one row of the demo patient table.
type PatientRow struct {
	ID   string
	Name string
	Age  int
	Ward string
}

// Key returns the stable selection key for a row.
func (r PatientRow) Key() string { return r.ID }

// randomFloat returns a random float64 in [0, 1) using crypto/rand.
func randomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

func between(min, max float64) float64 {
	return min + randomFloat()*(max-min)
}

func pick(options []string) string {
	return options[int(randomFloat()*float64(len(options)))%len(options)]
}

// Rows generates n patient rows with unique identifiers.
func Rows(n int) []PatientRow {
	rows := make([]PatientRow, n)
	for i := range rows {
		rows[i] = PatientRow{
			ID:   uuid.New().String(),
			Name: fmt.Sprintf("%s, %c.", pick(surnames), 'A'+byte(int(randomFloat()*26)%26)),
			Age:  18 + int(randomFloat()*80),
			Ward: pick(wards),
		}
	}
	return rows
}

// band picks the generation case for one vital sign.
func band() int {
	r := randomFloat()
	switch {
	case r < normalShare:
		return caseNormal
	case r < normalShare+lowShare:
		return caseLow
	default:
		return caseHigh
	}
}

func banded(low, normalMin, normalMax, high float64) float64 {
	switch band() {
	case caseLow:
		return between(low, normalMin)
	case caseHigh:
		return between(normalMax, high)
	default:
		return between(normalMin, normalMax)
	}
}

// Record generates one vitals record in US customary units. Some
// fields are left unset, mirroring partial charting.
func Record() vitals.Record {
	rec := vitals.NewRecord()
	rec.Set(vitals.FieldSystolic, banded(80, 90, 140, 190))
	rec.Set(vitals.FieldDiastolic, banded(45, 60, 90, 120))
	rec.Set(vitals.FieldHeartRate, banded(40, 60, 100, 160))
	rec.Set(vitals.FieldTemperature, banded(95, 97, 99.5, 103))
	rec.Set(vitals.FieldOxygenSaturation, banded(85, 95, 100, 100))
	if randomFloat() < 0.8 {
		rec.Set(vitals.FieldWeight, between(100, 250))
		rec.Set(vitals.FieldHeight, between(58, 78))
	}
	return rec
}

// Medications returns the demo formulary backing the catalog store.
func Medications() []catalog.Medication {
	return []catalog.Medication{
		{Code: "197361", Name: "Amlodipine", Strength: "5 mg"},
		{Code: "308182", Name: "Amoxicillin", Strength: "500 mg"},
		{Code: "197381", Name: "Atorvastatin", Strength: "20 mg"},
		{Code: "308135", Name: "Azithromycin", Strength: "250 mg"},
		{Code: "1658717", Name: "Gabapentin", Strength: "300 mg"},
		{Code: "310965", Name: "Ibuprofen", Strength: "200 mg"},
		{Code: "617314", Name: "Levothyroxine", Strength: "50 mcg"},
		{Code: "314076", Name: "Lisinopril", Strength: "10 mg"},
		{Code: "860975", Name: "Metformin", Strength: "500 mg"},
		{Code: "866924", Name: "Metoprolol", Strength: "25 mg"},
		{Code: "312961", Name: "Omeprazole", Strength: "20 mg"},
		{Code: "312615", Name: "Prednisone", Strength: "10 mg"},
		{Code: "313002", Name: "Sertraline", Strength: "50 mg"},
		{Code: "855332", Name: "Warfarin", Strength: "5 mg"},
	}
}
