// Package service implements the pediatric clinical calculators: medication
// dosing, interaction checking, prescription sessions, fluid therapy,
// nutritional assessment, treatment tracking and vital-sign classification.
//
// Every calculator is a synchronous pure function over in-memory values.
// Nothing here performs I/O or holds shared mutable state, so any number of
// callers may use the same service instances concurrently.
package service

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/pediatric-clinical-engine/internal/domain"
)

// DoseCalculator computes capped weight-based medication doses.
type DoseCalculator struct {
	logger *logrus.Logger
}

// NewDoseCalculator creates a new dose calculator.
func NewDoseCalculator(logger *logrus.Logger) *DoseCalculator {
	return &DoseCalculator{logger: logger}
}

// Calculate computes the recommended dose in mg for a medication and an
// optional patient weight. A nil weight degrades to a zero dose; callers
// must treat that as "insufficient data", not as a computed dose of zero.
// When both a per-kg cap and the absolute cap apply, the absolute cap wins.
func (d *DoseCalculator) Calculate(med domain.Medication, weightKg *float64) domain.DoseResult {
	result := calculateDose(med, weightKg)

	d.logger.WithFields(logrus.Fields{
		"medication": med.ID,
		"weight_kg":  floatOrZero(weightKg),
		"dose_mg":    result.Dose,
	}).Debug("Calculated dose")

	return result
}

// calculateDose is the shared dosing core, also used by prescription
// sessions at add/template-apply time.
func calculateDose(med domain.Medication, weightKg *float64) domain.DoseResult {
	if weightKg == nil {
		return domain.DoseResult{Dose: 0, MaxDose: med.MaxDoseAbsolute}
	}
	weight := *weightKg

	var dose float64
	switch {
	case med.MinDosePerKg != nil:
		dose = *med.MinDosePerKg * weight
	case med.MaxDoseAbsolute != nil:
		dose = *med.MaxDoseAbsolute
	default:
		dose = 0
	}

	if med.MaxDoseAbsolute != nil && dose > *med.MaxDoseAbsolute {
		dose = *med.MaxDoseAbsolute
	}
	if med.MaxDosePerKg != nil {
		if perKgCap := *med.MaxDosePerKg * weight; perKgCap < dose {
			dose = perKgCap
		}
	}

	return domain.DoseResult{Dose: round2(dose), MaxDose: med.MaxDoseAbsolute}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
