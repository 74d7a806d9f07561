package service

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/pediatric-clinical-engine/internal/domain"
)

// bsaMaintenancePerM2 is the midpoint of the clinically accepted
// 1500-1800 mL/m²/day maintenance range.
const bsaMaintenancePerM2 = 1650.0

// FluidCalculator computes maintenance and replacement fluid volumes.
type FluidCalculator struct {
	logger *logrus.Logger
}

// NewFluidCalculator creates a new fluid therapy calculator.
func NewFluidCalculator(logger *logrus.Logger) *FluidCalculator {
	return &FluidCalculator{logger: logger}
}

// Calculate computes the complete fluid-therapy result for a patient
// weight. Height enables the BSA-based maintenance estimate; a dehydration
// percent > 0 adds a replacement plan. All inputs are assumed non-negative;
// upstream validation is the caller's responsibility.
func (f *FluidCalculator) Calculate(weightKg float64, heightCm *float64, dehydrationPercent *float64) domain.FluidTherapyCalculation {
	result := domain.FluidTherapyCalculation{
		WeightKg:      weightKg,
		HollidaySegar: hollidaySegar(weightKg),
		BodySurface:   bsaMaintenance(weightKg, heightCm),
	}

	if dehydrationPercent != nil && *dehydrationPercent > 0 {
		plan := dehydrationPlan(weightKg, *dehydrationPercent, result.HollidaySegar.MaintenancePerDay)
		result.Dehydration = &plan
	}

	f.logger.WithFields(logrus.Fields{
		"weight_kg":           weightKg,
		"maintenance_ml_day":  result.HollidaySegar.MaintenancePerDay,
		"bsa_m2":              result.BodySurface.BSAM2,
		"dehydration_percent": floatOrZero(dehydrationPercent),
	}).Debug("Calculated fluid therapy")

	return result
}

// BurnFluid computes the Parkland first-24-hour resuscitation volume for a
// burned body-surface percentage.
func (f *FluidCalculator) BurnFluid(weightKg, bsaBurnedPercent float64) domain.BurnFluidResult {
	total := 4 * weightKg * bsaBurnedPercent
	return domain.BurnFluidResult{
		TotalMl: total,
		Formula: fmt.Sprintf("Parkland: 4 mL × %g kg × %g%% BSA = %g mL over first 24 h", weightKg, bsaBurnedPercent, total),
	}
}

// hollidaySegar applies the weight-tiered daily maintenance formula:
// 100 mL/kg up to 10 kg, 50 mL/kg for the next 10 kg, 20 mL/kg above 20 kg.
func hollidaySegar(weightKg float64) domain.HollidaySegarResult {
	var perDay float64
	var breakdown string

	switch {
	case weightKg <= 10:
		perDay = 100 * weightKg
		breakdown = fmt.Sprintf("100 mL/kg × %g kg = %g mL/day", weightKg, perDay)
	case weightKg <= 20:
		perDay = 1000 + 50*(weightKg-10)
		breakdown = fmt.Sprintf("1000 mL + 50 mL/kg × %g kg = %g mL/day", weightKg-10, perDay)
	default:
		perDay = 1500 + 20*(weightKg-20)
		breakdown = fmt.Sprintf("1500 mL + 20 mL/kg × %g kg = %g mL/day", weightKg-20, perDay)
	}

	return domain.HollidaySegarResult{
		MaintenancePerDay:  perDay,
		MaintenancePerHour: math.Round(perDay / 24),
		FormulaBreakdown:   breakdown,
	}
}

// bsaMaintenance estimates the Mosteller BSA and the derived maintenance
// volume. Missing or zero height reports the estimate as unavailable
// rather than erroring.
func bsaMaintenance(weightKg float64, heightCm *float64) domain.BodySurfaceAreaResult {
	if heightCm == nil || *heightCm <= 0 {
		return domain.BodySurfaceAreaResult{
			BSAM2:             0,
			MaintenancePerDay: 0,
			Formula:           "BSA unavailable: height is required for the Mosteller estimate",
		}
	}

	bsa := mostellerBSA(weightKg, *heightCm)
	return domain.BodySurfaceAreaResult{
		BSAM2:             bsa,
		MaintenancePerDay: math.Round(bsa * bsaMaintenancePerM2),
		Formula:           fmt.Sprintf("Mosteller: sqrt(%g × %g / 3600) = %.2f m² × %g mL/m²/day", weightKg, *heightCm, bsa, bsaMaintenancePerM2),
	}
}

// mostellerBSA is sqrt(weight × height / 3600) in m², shared with the
// nutritional assessment.
func mostellerBSA(weightKg, heightCm float64) float64 {
	return math.Sqrt(weightKg * heightCm / 3600)
}

// dehydrationPlan derives the deficit replacement plan: deficit is 10 mL
// per kg per dehydration percent, the plan letter escalates at 5% and 10%,
// and plan C adds a 20 mL/kg bolus.
func dehydrationPlan(weightKg, percent, maintenancePerDay float64) domain.DehydrationPlan {
	plan := domain.DehydrationPlan{
		DeficitMl:     weightKg * 10 * percent,
		MaintenanceMl: maintenancePerDay,
	}
	plan.TotalMl = plan.DeficitMl + plan.MaintenanceMl

	switch {
	case percent < 5:
		plan.Plan = domain.PLAN_A
	case percent < 10:
		plan.Plan = domain.PLAN_B
	default:
		plan.Plan = domain.PLAN_C
		plan.BolusMl = weightKg * 20
	}

	return plan
}
