package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/pediatric-clinical-engine/internal/domain"
	"github.com/pediatric-clinical-engine/internal/refdata"
)

// DefaultCriticalDeviation is the fraction beyond a range bound at which a
// warning escalates to critical.
const DefaultCriticalDeviation = 0.20

// VitalsClassifier grades vital-sign readings against age-bucketed normal
// ranges.
type VitalsClassifier struct {
	logger *logrus.Logger
	// criticalDeviation is the configurable threshold multiple: a value
	// more than this fraction beyond the bound is critical, closer is a
	// warning.
	criticalDeviation float64
}

// NewVitalsClassifier creates a classifier with the given critical
// deviation fraction; non-positive values fall back to the default.
func NewVitalsClassifier(logger *logrus.Logger, criticalDeviation float64) *VitalsClassifier {
	if criticalDeviation <= 0 {
		criticalDeviation = DefaultCriticalDeviation
	}
	return &VitalsClassifier{logger: logger, criticalDeviation: criticalDeviation}
}

// Classify grades each present reading against the normal ranges for the
// patient's age bucket. Absent readings are skipped, never treated as
// violations. The overall status is the worst alert severity.
func (v *VitalsClassifier) Classify(ageMonths int, reading domain.VitalsReading) domain.VitalsAnalysis {
	category, ranges := refdata.VitalRangesFor(ageMonths)

	analysis := domain.VitalsAnalysis{
		Status:       domain.NORMAL,
		AgeCategory:  category,
		NormalRanges: ranges,
	}

	v.check(&analysis, "heart_rate", reading.HeartRate, ranges.HeartRate,
		"Reassess perfusion and repeat the measurement at rest")
	v.check(&analysis, "respiratory_rate", reading.RespiratoryRate, ranges.RespiratoryRate,
		"Assess work of breathing and auscultate")
	v.check(&analysis, "oxygen_saturation", reading.OxygenSaturation, ranges.OxygenSaturation,
		"Check probe placement; consider supplemental oxygen")
	v.check(&analysis, "temperature", reading.Temperature, ranges.Temperature,
		"Confirm with a second measurement; manage fever or hypothermia per protocol")
	v.check(&analysis, "systolic_bp", reading.SystolicBP, ranges.SystolicBP,
		"Repeat with a correctly sized cuff; assess perfusion if low")
	v.check(&analysis, "diastolic_bp", reading.DiastolicBP, ranges.DiastolicBP,
		"Repeat with a correctly sized cuff; assess perfusion if low")

	v.logger.WithFields(logrus.Fields{
		"age_months":   ageMonths,
		"age_category": category,
		"status":       analysis.Status,
		"alerts":       len(analysis.Alerts),
	}).Debug("Classified vital signs")

	return analysis
}

// check grades one metric and appends an alert when the value is outside
// its range.
func (v *VitalsClassifier) check(analysis *domain.VitalsAnalysis, metric string, value *float64, normal domain.VitalRange, recommendation string) {
	if value == nil {
		return
	}
	val := *value
	if val >= normal.Min && val <= normal.Max {
		return
	}

	var severity domain.VitalStatus
	var direction string
	if val < normal.Min {
		direction = "below"
		severity = domain.WARNING
		if val < normal.Min*(1-v.criticalDeviation) {
			severity = domain.CRITICAL
		}
	} else {
		direction = "above"
		severity = domain.WARNING
		if val > normal.Max*(1+v.criticalDeviation) {
			severity = domain.CRITICAL
		}
	}

	alert := domain.Alert{
		Metric:         metric,
		Severity:       severity,
		Message:        fmt.Sprintf("%s %g %s is %s the normal range for this age", metric, val, normal.Unit, direction),
		Value:          val,
		NormalRange:    normal.String(),
		Recommendation: recommendation,
	}

	analysis.Alerts = append(analysis.Alerts, alert)
	analysis.Status = analysis.Status.Worst(severity)
}
