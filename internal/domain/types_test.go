package domain

import (
	"errors"
	"testing"
)

func TestSeverityRank(t *testing.T) {
	tests := []struct {
		name     string
		value    Severity
		expected int
	}{
		{"Severe", SEVERE, 3},
		{"Moderate", MODERATE, 2},
		{"Mild", MILD, 1},
		{"Unknown", Severity("WILD"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value.Rank() != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, tt.value.Rank())
			}
		})
	}
}

func TestSeverityIsValid(t *testing.T) {
	for _, s := range []Severity{MILD, MODERATE, SEVERE} {
		if !s.IsValid() {
			t.Errorf("Expected %s to be valid", s)
		}
	}
	if Severity("FATAL").IsValid() {
		t.Error("Expected FATAL to be invalid")
	}
}

func TestVitalStatusWorst(t *testing.T) {
	tests := []struct {
		name     string
		a, b     VitalStatus
		expected VitalStatus
	}{
		{"Normal vs Warning", NORMAL, WARNING, WARNING},
		{"Warning vs Critical", WARNING, CRITICAL, CRITICAL},
		{"Critical vs Normal", CRITICAL, NORMAL, CRITICAL},
		{"Normal vs Normal", NORMAL, NORMAL, NORMAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Worst(tt.b); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestProgressBandFor(t *testing.T) {
	tests := []struct {
		name     string
		percent  float64
		expected ProgressBand
	}{
		{"Start", 0, PROGRESS_EARLY},
		{"Just below mid", 49.9, PROGRESS_EARLY},
		{"Mid", 50, PROGRESS_MID},
		{"Just below late", 79.9, PROGRESS_MID},
		{"Late", 80, PROGRESS_LATE},
		{"Complete", 100, PROGRESS_LATE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProgressBandFor(tt.percent); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestStayBandFor(t *testing.T) {
	tests := []struct {
		name     string
		days     int
		expected StayBand
	}{
		{"First week", 3, STAY_GREEN},
		{"Boundary 7", 7, STAY_YELLOW},
		{"Second week", 10, STAY_YELLOW},
		{"Boundary 14", 14, STAY_ORANGE},
		{"Third week", 20, STAY_ORANGE},
		{"Boundary 21", 21, STAY_RED},
		{"Long stay", 40, STAY_RED},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StayBandFor(tt.days); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestNotFoundErrorUnwrapsToSentinel(t *testing.T) {
	err := NewMedicationNotFound("ampicillin")
	if !errors.Is(err, ErrNotFound) {
		t.Error("Expected NotFoundError to match ErrNotFound")
	}
	if err.Error() != `medication "ampicillin" not found` {
		t.Errorf("Unexpected message: %s", err.Error())
	}
}

func TestMedicationValidate(t *testing.T) {
	perKg := 40.0
	tests := []struct {
		name    string
		med     Medication
		wantErr bool
	}{
		{"Valid", Medication{ID: "amoxicillin", Name: "Amoxicillin", MinDosePerKg: &perKg}, false},
		{"Missing ID", Medication{Name: "Amoxicillin"}, true},
		{"Missing name", Medication{ID: "amoxicillin"}, true},
		{"Bad severity", Medication{ID: "a", Name: "A", Interactions: []Interaction{{With: "b", Severity: "FATAL"}}}, true},
		{"Interaction without target", Medication{ID: "a", Name: "A", Interactions: []Interaction{{Severity: SEVERE}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.med.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDiagnosisTemplateValidate(t *testing.T) {
	tests := []struct {
		name    string
		tpl     DiagnosisTemplate
		wantErr bool
	}{
		{"Valid", DiagnosisTemplate{ID: "pneumonia", Name: "Pneumonia", DurationDays: 7, Medications: []MedicationID{"amoxicillin"}}, false},
		{"Missing ID", DiagnosisTemplate{Name: "Pneumonia", DurationDays: 7, Medications: []MedicationID{"amoxicillin"}}, true},
		{"Zero duration", DiagnosisTemplate{ID: "p", Name: "P", Medications: []MedicationID{"amoxicillin"}}, true},
		{"No medications", DiagnosisTemplate{ID: "p", Name: "P", DurationDays: 7}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tpl.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
