package domain

import (
	"errors"
	"fmt"
	"time"
)

// Interaction declares a known drug-drug interaction on one side of a
// medication pair. Reference data may declare a pair on either or both
// sides; the interaction checker emits one record per declaring side.
type Interaction struct {
	With        MedicationID `json:"with" yaml:"with"`
	Severity    Severity     `json:"severity" yaml:"severity"`
	Description string       `json:"description" yaml:"description"`
}

// Medication is an immutable reference-formulary entry. Dose caps are in mg:
// MinDosePerKg/MaxDosePerKg are mg per kg body weight, MaxDoseAbsolute is an
// absolute daily ceiling. When both a per-kg cap and an absolute cap apply,
// the absolute cap always wins.
type Medication struct {
	ID              MedicationID  `json:"id" yaml:"id"`
	Name            string        `json:"name" yaml:"name"`
	MinDosePerKg    *float64      `json:"min_dose_per_kg,omitempty" yaml:"min_dose_per_kg,omitempty"`
	MaxDosePerKg    *float64      `json:"max_dose_per_kg,omitempty" yaml:"max_dose_per_kg,omitempty"`
	MaxDoseAbsolute *float64      `json:"max_dose_absolute,omitempty" yaml:"max_dose_absolute,omitempty"`
	Route           string        `json:"route" yaml:"route"`
	Frequency       string        `json:"frequency" yaml:"frequency"`
	Interactions    []Interaction `json:"interactions,omitempty" yaml:"interactions,omitempty"`
}

// Validate ensures the formulary entry is safe to use for dosing.
func (m *Medication) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("medication validation: %w", errors.New("ID is required"))
	}
	if m.Name == "" {
		return fmt.Errorf("medication validation: %w", errors.New("name is required"))
	}
	for _, in := range m.Interactions {
		if !in.Severity.IsValid() {
			return fmt.Errorf("medication validation: %w: %q on %s", ErrInvalidSeverity, in.Severity, m.ID)
		}
		if in.With == "" {
			return fmt.Errorf("medication validation: interaction on %s names no medication", m.ID)
		}
	}
	if m.MinDosePerKg != nil && m.MaxDosePerKg != nil && *m.MinDosePerKg > *m.MaxDosePerKg {
		return fmt.Errorf("medication validation: min dose per kg exceeds max on %s", m.ID)
	}
	return nil
}

// DiagnosisTemplate maps a diagnosis onto a default medication set and
// treatment duration. Every referenced medication must exist in the
// formulary; that invariant is enforced at reference-data load time.
type DiagnosisTemplate struct {
	ID            TemplateID     `json:"id" yaml:"id"`
	Name          string         `json:"name" yaml:"name"`
	DiagnosisCode string         `json:"diagnosis_code" yaml:"diagnosis_code"`
	Description   string         `json:"description,omitempty" yaml:"description,omitempty"`
	Medications   []MedicationID `json:"medications" yaml:"medications"`
	DurationDays  int            `json:"duration_days" yaml:"duration_days"`
}

// Validate ensures the template entry is internally consistent. Referential
// integrity against the formulary is checked by the reference data store.
func (t *DiagnosisTemplate) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("template validation: %w", errors.New("ID is required"))
	}
	if t.Name == "" {
		return fmt.Errorf("template validation: %w", errors.New("name is required"))
	}
	if t.DurationDays <= 0 {
		return fmt.Errorf("template validation: duration must be positive on %s", t.ID)
	}
	if len(t.Medications) == 0 {
		return fmt.Errorf("template validation: no medications on %s", t.ID)
	}
	return nil
}

// PrescriptionMedication is a medication as it appears inside one
// prescription session: the reference entry plus the computed dose and the
// editable ordering fields. It lives only for the duration of the session.
type PrescriptionMedication struct {
	Medication     Medication `json:"medication"`
	CalculatedDose float64    `json:"calculated_dose"`
	MaxDose        *float64   `json:"max_dose,omitempty"`
	Route          string     `json:"route"`
	Frequency      string     `json:"frequency"`
	DurationDays   int        `json:"duration_days"`
	Instructions   string     `json:"instructions"`
}

// MedicationUpdate is a partial-field patch for a session medication.
// Nil fields are left unchanged.
type MedicationUpdate struct {
	CalculatedDose *float64 `json:"calculated_dose,omitempty"`
	Route          *string  `json:"route,omitempty"`
	Frequency      *string  `json:"frequency,omitempty"`
	DurationDays   *int     `json:"duration_days,omitempty"`
	Instructions   *string  `json:"instructions,omitempty"`
}

// MedicationInteraction is one emitted interaction warning between two
// medications in a prescription. Records are recomputed on every read and
// never persisted.
type MedicationInteraction struct {
	Medication1 string   `json:"medication1"`
	Medication2 string   `json:"medication2"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

// InteractionReport is the result of scanning a medication set for
// pairwise interactions, ordered by descending severity.
type InteractionReport struct {
	Interactions []MedicationInteraction `json:"interactions"`
	HasSevere    bool                    `json:"has_severe"`
}

// DoseResult is a computed recommended dose in mg. A zero dose with a
// missing weight means "insufficient data", not a computed value of zero.
type DoseResult struct {
	Dose    float64  `json:"dose"`
	MaxDose *float64 `json:"max_dose,omitempty"`
}

// HollidaySegarResult holds the weight-tiered daily maintenance volume.
type HollidaySegarResult struct {
	MaintenancePerDay  float64 `json:"maintenance_per_day"`  // mL/day
	MaintenancePerHour float64 `json:"maintenance_per_hour"` // mL/h, rounded
	FormulaBreakdown   string  `json:"formula_breakdown"`
}

// BodySurfaceAreaResult holds the Mosteller BSA estimate and the derived
// maintenance volume. With no usable height, BSAM2 is 0 and the formula
// text explains that the result is unavailable.
type BodySurfaceAreaResult struct {
	BSAM2             float64 `json:"bsa_m2"`
	MaintenancePerDay float64 `json:"maintenance_per_day"` // mL/day
	Formula           string  `json:"formula"`
}

// DehydrationPlan is the replacement plan for a given dehydration percent.
type DehydrationPlan struct {
	DeficitMl     float64              `json:"deficit_ml"`
	MaintenanceMl float64              `json:"maintenance_ml"`
	TotalMl       float64              `json:"total_ml"`
	Plan          DehydrationPlanLevel `json:"plan"`
	BolusMl       float64              `json:"bolus_ml"`
}

// FluidTherapyCalculation is the complete fluid-therapy result for one
// patient weight (and optional height / dehydration percent).
type FluidTherapyCalculation struct {
	WeightKg       float64               `json:"weight_kg"`
	HollidaySegar  HollidaySegarResult   `json:"holliday_segar"`
	BodySurface    BodySurfaceAreaResult `json:"body_surface_area"`
	Dehydration    *DehydrationPlan      `json:"dehydration,omitempty"`
}

// BurnFluidResult is the Parkland first-24-hour resuscitation volume.
type BurnFluidResult struct {
	TotalMl float64 `json:"total_ml"`
	Formula string  `json:"formula"`
}

// NutritionalInput is the anthropometric input for one assessment.
type NutritionalInput struct {
	WeightKg  float64 `json:"weight_kg"`
	HeightCm  float64 `json:"height_cm"`
	AgeMonths int     `json:"age_months"`
	Sex       Sex     `json:"sex"`
}

// ZScoreResult is one indicator's standard-deviation distance from the
// age/sex reference mean, with the derived percentile and classification.
type ZScoreResult struct {
	ZScore         float64 `json:"z_score"`
	Percentile     float64 `json:"percentile"`
	Classification string  `json:"classification"`
}

// NutritionalAssessment is the combined growth assessment output.
type NutritionalAssessment struct {
	BMI                  float64      `json:"bmi"`
	BodySurfaceAreaM2    float64      `json:"body_surface_area_m2"`
	WeightForAge         ZScoreResult `json:"weight_for_age"`
	HeightForAge         ZScoreResult `json:"height_for_age"`
	BMIForAge            ZScoreResult `json:"bmi_for_age"`
	NutritionalDiagnosis string       `json:"nutritional_diagnosis"`
}

// AntibioticTracking is the derived day-count state of one antibiotic
// course, recomputed on each read.
type AntibioticTracking struct {
	Name            string       `json:"name"`
	StartDate       time.Time    `json:"start_date"`
	PlannedDays     int          `json:"planned_days"`
	CurrentDay      int          `json:"current_day"`
	EndDate         time.Time    `json:"end_date"`
	ProgressPercent float64      `json:"progress_percent"`
	ProgressBand    ProgressBand `json:"progress_band"`
	EndingSoon      bool         `json:"ending_soon"`
	Ended           bool         `json:"ended"`
}

// RespiratoryScore is an admission-vs-current respiratory score pair.
type RespiratoryScore struct {
	AtAdmission  int       `json:"at_admission"`
	Current      int       `json:"current"`
	DateMeasured time.Time `json:"date_measured"`
}

// ScoreDelta is the derived change of a respiratory score. A falling score
// is an improvement.
type ScoreDelta struct {
	Delta int    `json:"delta"`
	Trend Trend  `json:"trend"`
	Color string `json:"color"`
}

// VitalsReading is one vital-sign set. Nil fields were not measured and
// are skipped by the classifier rather than treated as violations.
type VitalsReading struct {
	HeartRate        *float64 `json:"heart_rate,omitempty"`        // bpm
	RespiratoryRate  *float64 `json:"respiratory_rate,omitempty"`  // breaths/min
	OxygenSaturation *float64 `json:"oxygen_saturation,omitempty"` // %
	Temperature      *float64 `json:"temperature,omitempty"`       // °C
	SystolicBP       *float64 `json:"systolic_bp,omitempty"`       // mmHg
	DiastolicBP      *float64 `json:"diastolic_bp,omitempty"`      // mmHg
}

// VitalRange is one metric's normal [Min, Max] interval.
type VitalRange struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit"`
}

// String renders the range for alert messages.
func (r VitalRange) String() string {
	return fmt.Sprintf("%g-%g %s", r.Min, r.Max, r.Unit)
}

// NormalRanges is the age-bucketed reference range set used for one
// classification.
type NormalRanges struct {
	HeartRate        VitalRange `json:"heart_rate"`
	RespiratoryRate  VitalRange `json:"respiratory_rate"`
	OxygenSaturation VitalRange `json:"oxygen_saturation"`
	Temperature      VitalRange `json:"temperature"`
	SystolicBP       VitalRange `json:"systolic_bp"`
	DiastolicBP      VitalRange `json:"diastolic_bp"`
}

// Alert is one graded out-of-range finding.
type Alert struct {
	Metric         string      `json:"metric"`
	Severity       VitalStatus `json:"severity"`
	Message        string      `json:"message"`
	Value          float64     `json:"value"`
	NormalRange    string      `json:"normal_range"`
	Recommendation string      `json:"recommendation,omitempty"`
}

// VitalsAnalysis is the structured classification result for one reading
// set. An external narrative service may layer prose on top of it; this
// engine's output ends here.
type VitalsAnalysis struct {
	Status       VitalStatus  `json:"status"`
	AgeCategory  AgeCategory  `json:"age_category"`
	NormalRanges NormalRanges `json:"normal_ranges"`
	Alerts       []Alert      `json:"alerts"`
}
