// Package domain contains core business entities and types for pediatric
// clinical calculation and decision support: medication dosing, drug
// interaction triage, fluid therapy, nutritional assessment and vital-sign
// classification.
//
// All types here are plain values with no I/O; calculators in
// internal/service operate on them and return fresh results.
package domain

import "errors"

// MedicationID identifies a medication in the reference formulary.
type MedicationID string

// TemplateID identifies a diagnosis-to-medication template in the reference data.
type TemplateID string

// Severity represents the clinical severity of a drug-drug interaction.
// Triage ordering is SEVERE > MODERATE > MILD.
type Severity string

const (
	MILD     Severity = "MILD"
	MODERATE Severity = "MODERATE"
	SEVERE   Severity = "SEVERE"
)

// Sex represents patient sex for growth-reference selection.
type Sex string

const (
	MALE   Sex = "MALE"
	FEMALE Sex = "FEMALE"
)

// DehydrationPlanLevel represents the WHO-style rehydration plan tier.
type DehydrationPlanLevel string

const (
	PLAN_A DehydrationPlanLevel = "A"
	PLAN_B DehydrationPlanLevel = "B"
	PLAN_C DehydrationPlanLevel = "C"
)

// Trend represents the direction of a clinical score over time.
// For respiratory scores a falling score is an improvement.
type Trend string

const (
	TREND_UP   Trend = "UP"
	TREND_DOWN Trend = "DOWN"
	TREND_FLAT Trend = "FLAT"
)

// VitalStatus grades a vital-sign reading or a whole vitals analysis.
type VitalStatus string

const (
	NORMAL   VitalStatus = "NORMAL"
	WARNING  VitalStatus = "WARNING"
	CRITICAL VitalStatus = "CRITICAL"
)

// AgeCategory buckets patient age for vital-sign reference ranges.
type AgeCategory string

const (
	INFANT     AgeCategory = "INFANT"     // < 12 months
	TODDLER    AgeCategory = "TODDLER"    // 12 - <36 months
	CHILD      AgeCategory = "CHILD"      // 36 - <144 months
	ADOLESCENT AgeCategory = "ADOLESCENT" // >= 144 months
)

// ProgressBand qualifies how far along a treatment course is.
type ProgressBand string

const (
	PROGRESS_EARLY ProgressBand = "EARLY" // < 50%
	PROGRESS_MID   ProgressBand = "MID"   // < 80%
	PROGRESS_LATE  ProgressBand = "LATE"
)

// StayBand is the cosmetic display color for hospitalization day counts.
// It is not a medical determination.
type StayBand string

const (
	STAY_GREEN  StayBand = "GREEN"  // < 7 days
	STAY_YELLOW StayBand = "YELLOW" // < 14 days
	STAY_ORANGE StayBand = "ORANGE" // < 21 days
	STAY_RED    StayBand = "RED"
)

// Validation errors for clinical data integrity
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidSeverity = errors.New("invalid interaction severity")
	ErrInvalidSex      = errors.New("invalid sex")
)

// IsValid validates the interaction severity. Only valid severities may be
// used for triage ordering in prescribing workflows.
func (s Severity) IsValid() bool {
	switch s {
	case MILD, MODERATE, SEVERE:
		return true
	default:
		return false
	}
}

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// Rank returns the triage ordering of the severity: SEVERE > MODERATE > MILD.
// Unknown severities rank lowest.
func (s Severity) Rank() int {
	switch s {
	case SEVERE:
		return 3
	case MODERATE:
		return 2
	case MILD:
		return 1
	default:
		return 0
	}
}

// IsValid validates the patient sex value.
func (s Sex) IsValid() bool {
	switch s {
	case MALE, FEMALE:
		return true
	default:
		return false
	}
}

// String returns the string representation of the sex.
func (s Sex) String() string {
	return string(s)
}

// IsValid validates the dehydration plan level.
func (p DehydrationPlanLevel) IsValid() bool {
	switch p {
	case PLAN_A, PLAN_B, PLAN_C:
		return true
	default:
		return false
	}
}

// String returns the string representation of the plan level.
func (p DehydrationPlanLevel) String() string {
	return string(p)
}

// String returns the string representation of the trend.
func (t Trend) String() string {
	return string(t)
}

// IsValid validates the vital status.
func (v VitalStatus) IsValid() bool {
	switch v {
	case NORMAL, WARNING, CRITICAL:
		return true
	default:
		return false
	}
}

// String returns the string representation of the vital status.
func (v VitalStatus) String() string {
	return string(v)
}

// Rank returns the escalation ordering of the status: CRITICAL > WARNING > NORMAL.
func (v VitalStatus) Rank() int {
	switch v {
	case CRITICAL:
		return 2
	case WARNING:
		return 1
	default:
		return 0
	}
}

// Worst returns the more severe of two statuses.
func (v VitalStatus) Worst(other VitalStatus) VitalStatus {
	if other.Rank() > v.Rank() {
		return other
	}
	return v
}

// String returns the string representation of the age category.
func (a AgeCategory) String() string {
	return string(a)
}

// ProgressBandFor maps a progress percentage onto a qualitative band.
func ProgressBandFor(percent float64) ProgressBand {
	switch {
	case percent < 50:
		return PROGRESS_EARLY
	case percent < 80:
		return PROGRESS_MID
	default:
		return PROGRESS_LATE
	}
}

// StayBandFor maps a hospitalization day count onto a display color band.
func StayBandFor(days int) StayBand {
	switch {
	case days < 7:
		return STAY_GREEN
	case days < 14:
		return STAY_YELLOW
	case days < 21:
		return STAY_ORANGE
	default:
		return STAY_RED
	}
}
