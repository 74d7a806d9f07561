package service

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/pediatric-clinical-engine/internal/domain"
	"github.com/pediatric-clinical-engine/internal/refdata"
)

// Nutritional classification labels by indicator.
const (
	WeightSevereUnderweight = "Severe underweight"
	WeightUnderweight       = "Underweight"
	WeightNormal            = "Normal"
	WeightOverweightRisk    = "Overweight risk"
	WeightOverweight        = "Overweight"

	HeightSevereStunting = "Severe stunting"
	HeightStunting       = "Stunting"
	HeightNormal         = "Normal"
	HeightTallStature    = "Tall stature"

	BMISevereMalnutrition = "Severe malnutrition"
	BMIMalnutrition       = "Malnutrition"
	BMIAtRisk             = "At risk of malnutrition"
	BMIEutrophic          = "Eutrophic"
	BMIOverweight         = "Overweight"
	BMIObesity            = "Obesity"
	BMISevereObesity      = "Severe obesity"

	DiagnosisChronicMalnutrition = "Malnutrition with stunting (chronic)"
	DiagnosisEutrophicStunted    = "Eutrophic with stunting"
	DiagnosisEutrophic           = "Eutrophic"
	DiagnosisInsufficientData    = "Insufficient data"
)

// NutritionService computes growth assessments from anthropometric input.
type NutritionService struct {
	logger *logrus.Logger
}

// NewNutritionService creates a new nutritional assessment service.
func NewNutritionService(logger *logrus.Logger) *NutritionService {
	return &NutritionService{logger: logger}
}

// Assess computes BMI, body surface area and the three age/sex-referenced
// z-score classifications, combining them into one nutritional diagnosis.
//
// The reference table is a discrete anchor approximation of the WHO growth
// standards (see internal/refdata). An invalid sex is a validation error;
// a missing weight or height degrades to an insufficient-data result.
func (n *NutritionService) Assess(input domain.NutritionalInput) (domain.NutritionalAssessment, error) {
	if !input.Sex.IsValid() {
		return domain.NutritionalAssessment{}, domain.NewValidationError("sex", "must be MALE or FEMALE", string(input.Sex))
	}

	if input.WeightKg <= 0 || input.HeightCm <= 0 {
		return domain.NutritionalAssessment{
			WeightForAge:         domain.ZScoreResult{Classification: DiagnosisInsufficientData},
			HeightForAge:         domain.ZScoreResult{Classification: DiagnosisInsufficientData},
			BMIForAge:            domain.ZScoreResult{Classification: DiagnosisInsufficientData},
			NutritionalDiagnosis: DiagnosisInsufficientData,
		}, nil
	}

	heightM := input.HeightCm / 100
	bmi := input.WeightKg / (heightM * heightM)
	ref := refdata.GrowthReferenceFor(input.Sex == domain.MALE, input.AgeMonths)

	assessment := domain.NutritionalAssessment{
		BMI:               round2(bmi),
		BodySurfaceAreaM2: round2(mostellerBSA(input.WeightKg, input.HeightCm)),
		WeightForAge:      zScoreResult(input.WeightKg, ref.WeightMean, ref.WeightSD, classifyWeightForAge),
		HeightForAge:      zScoreResult(input.HeightCm, ref.HeightMean, ref.HeightSD, classifyHeightForAge),
		BMIForAge:         zScoreResult(bmi, ref.BMIMean, ref.BMISD, classifyBMIForAge),
	}
	assessment.NutritionalDiagnosis = combinedDiagnosis(assessment.BMIForAge, assessment.HeightForAge)

	n.logger.WithFields(logrus.Fields{
		"age_months": input.AgeMonths,
		"sex":        input.Sex,
		"bmi":        assessment.BMI,
		"diagnosis":  assessment.NutritionalDiagnosis,
	}).Debug("Completed nutritional assessment")

	return assessment, nil
}

func zScoreResult(value, mean, sd float64, classify func(z float64) string) domain.ZScoreResult {
	z := (value - mean) / sd
	return domain.ZScoreResult{
		ZScore:         round2(z),
		Percentile:     round2(normalCDF(z) * 100),
		Classification: classify(z),
	}
}

func classifyWeightForAge(z float64) string {
	switch {
	case z < -3:
		return WeightSevereUnderweight
	case z < -2:
		return WeightUnderweight
	case z <= 1:
		return WeightNormal
	case z <= 2:
		return WeightOverweightRisk
	default:
		return WeightOverweight
	}
}

func classifyHeightForAge(z float64) string {
	switch {
	case z < -3:
		return HeightSevereStunting
	case z < -2:
		return HeightStunting
	case z <= 2:
		return HeightNormal
	default:
		return HeightTallStature
	}
}

func classifyBMIForAge(z float64) string {
	switch {
	case z < -3:
		return BMISevereMalnutrition
	case z < -2:
		return BMIMalnutrition
	case z < -1:
		return BMIAtRisk
	case z <= 1:
		return BMIEutrophic
	case z <= 2:
		return BMIOverweight
	case z <= 3:
		return BMIObesity
	default:
		return BMISevereObesity
	}
}

// combinedDiagnosis folds the BMI-for-age and height-for-age results into
// one reportable diagnosis: acute malnutrition on top of stunting is
// chronic; excess weight is reported as the BMI classification alone;
// stunting without acute malnutrition is flagged alongside eutrophy.
func combinedDiagnosis(bmiForAge, heightForAge domain.ZScoreResult) string {
	stunted := heightForAge.ZScore < -2
	switch {
	case bmiForAge.ZScore < -2 && stunted:
		return DiagnosisChronicMalnutrition
	case bmiForAge.ZScore >= 2:
		return bmiForAge.Classification
	case stunted:
		return DiagnosisEutrophicStunted
	default:
		return DiagnosisEutrophic
	}
}

// normalCDF approximates the standard normal CDF with the Zelen-Severo
// polynomial (Abramowitz & Stegun 26.2.17), accurate to about 7.5e-8.
// This table-free closed form is deliberate; see the growth-reference
// accuracy note in internal/refdata.
func normalCDF(z float64) float64 {
	if z < 0 {
		return 1 - normalCDF(-z)
	}

	const (
		p  = 0.2316419
		b1 = 0.319381530
		b2 = -0.356563782
		b3 = 1.781477937
		b4 = -1.821255978
		b5 = 1.330274429
	)

	t := 1 / (1 + p*z)
	pdf := math.Exp(-z*z/2) / math.Sqrt(2*math.Pi)
	poly := t * (b1 + t*(b2+t*(b3+t*(b4+t*b5))))
	return 1 - pdf*poly
}
