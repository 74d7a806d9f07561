package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pediatric-clinical-engine/internal/domain"
)

func TestClassifyAllNormal(t *testing.T) {
	classifier := NewVitalsClassifier(testLogger(), 0)

	// 8-year-old with everything inside the CHILD ranges.
	analysis := classifier.Classify(96, domain.VitalsReading{
		HeartRate:        ptr(100),
		RespiratoryRate:  ptr(22),
		OxygenSaturation: ptr(98),
		Temperature:      ptr(36.8),
	})

	assert.Equal(t, domain.NORMAL, analysis.Status)
	assert.Equal(t, domain.CHILD, analysis.AgeCategory)
	assert.Empty(t, analysis.Alerts)
}

func TestClassifySkipsAbsentReadings(t *testing.T) {
	classifier := NewVitalsClassifier(testLogger(), 0)

	// Only a temperature was taken; no other metric may alert.
	analysis := classifier.Classify(96, domain.VitalsReading{
		Temperature: ptr(36.5),
	})

	assert.Equal(t, domain.NORMAL, analysis.Status)
	assert.Empty(t, analysis.Alerts)
}

func TestClassifyWarningVsCritical(t *testing.T) {
	classifier := NewVitalsClassifier(testLogger(), 0.20)

	// CHILD heart rate range is 70-120; the critical bounds at 20%
	// deviation are 56 and 144.
	tests := []struct {
		name         string
		heartRate    float64
		wantStatus   domain.VitalStatus
		wantSeverity domain.VitalStatus
	}{
		{"Slightly below min warns", 60, domain.WARNING, domain.WARNING},
		{"Far below min is critical", 50, domain.CRITICAL, domain.CRITICAL},
		{"Slightly above max warns", 130, domain.WARNING, domain.WARNING},
		{"Far above max is critical", 150, domain.CRITICAL, domain.CRITICAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := classifier.Classify(96, domain.VitalsReading{HeartRate: ptr(tt.heartRate)})

			assert.Equal(t, tt.wantStatus, analysis.Status)
			require.Len(t, analysis.Alerts, 1)

			alert := analysis.Alerts[0]
			assert.Equal(t, "heart_rate", alert.Metric)
			assert.Equal(t, tt.wantSeverity, alert.Severity)
			assert.Equal(t, tt.heartRate, alert.Value)
			assert.NotEmpty(t, alert.Recommendation)
		})
	}
}

func TestClassifyOverallStatusIsWorstAlert(t *testing.T) {
	classifier := NewVitalsClassifier(testLogger(), 0.20)

	// Critical tachycardia plus a temperature warning.
	analysis := classifier.Classify(96, domain.VitalsReading{
		HeartRate:   ptr(150),
		Temperature: ptr(38.2),
	})

	assert.Equal(t, domain.CRITICAL, analysis.Status)
	require.Len(t, analysis.Alerts, 2)
}

func TestClassifyUsesAgeBucketRanges(t *testing.T) {
	classifier := NewVitalsClassifier(testLogger(), 0)

	// 95 bpm is bradycardic for an infant but normal for a child.
	infant := classifier.Classify(6, domain.VitalsReading{HeartRate: ptr(95)})
	assert.Equal(t, domain.INFANT, infant.AgeCategory)
	assert.Equal(t, domain.WARNING, infant.Status)

	child := classifier.Classify(96, domain.VitalsReading{HeartRate: ptr(95)})
	assert.Equal(t, domain.NORMAL, child.Status)
}

func TestClassifyBloodPressure(t *testing.T) {
	classifier := NewVitalsClassifier(testLogger(), 0.20)

	// CHILD systolic range is 85-120; the critical bound above is 144.
	analysis := classifier.Classify(96, domain.VitalsReading{SystolicBP: ptr(130)})
	assert.Equal(t, domain.WARNING, analysis.Status)
	require.Len(t, analysis.Alerts, 1)
	assert.Equal(t, "systolic_bp", analysis.Alerts[0].Metric)

	analysis = classifier.Classify(96, domain.VitalsReading{SystolicBP: ptr(150)})
	assert.Equal(t, domain.CRITICAL, analysis.Status)

	// Diastolic grades independently of systolic.
	analysis = classifier.Classify(96, domain.VitalsReading{
		SystolicBP:  ptr(100),
		DiastolicBP: ptr(42),
	})
	assert.Equal(t, domain.WARNING, analysis.Status)
	require.Len(t, analysis.Alerts, 1)
	assert.Equal(t, "diastolic_bp", analysis.Alerts[0].Metric)
}

func TestClassifyCustomCriticalDeviation(t *testing.T) {
	// At a 5% deviation the critical bound for the CHILD max of 120 is 126.
	classifier := NewVitalsClassifier(testLogger(), 0.05)

	analysis := classifier.Classify(96, domain.VitalsReading{HeartRate: ptr(130)})
	assert.Equal(t, domain.CRITICAL, analysis.Status)
}

func TestClassifierDefaultsDeviation(t *testing.T) {
	classifier := NewVitalsClassifier(testLogger(), 0)
	assert.Equal(t, DefaultCriticalDeviation, classifier.criticalDeviation)

	classifier = NewVitalsClassifier(testLogger(), -1)
	assert.Equal(t, DefaultCriticalDeviation, classifier.criticalDeviation)
}
