package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pediatric-clinical-engine/internal/domain"
)

func medByID(t *testing.T, id domain.MedicationID) domain.Medication {
	t.Helper()
	med, err := testStore(t).Medication(id)
	require.NoError(t, err)
	return med
}

func TestCheckInteractionsEmptyWhenNoneDeclared(t *testing.T) {
	checker := NewInteractionChecker(testLogger())

	report := checker.Check([]domain.Medication{
		medByID(t, "paracetamol"),
		medByID(t, "oseltamivir"),
	})

	assert.Empty(t, report.Interactions)
	assert.False(t, report.HasSevere)
}

func TestCheckInteractionsAmoxicillinMethotrexate(t *testing.T) {
	checker := NewInteractionChecker(testLogger())

	report := checker.Check([]domain.Medication{
		medByID(t, "amoxicillin"),
		medByID(t, "methotrexate"),
	})

	require.NotEmpty(t, report.Interactions)
	assert.True(t, report.HasSevere)

	severe := 0
	for _, r := range report.Interactions {
		if r.Severity == domain.SEVERE {
			severe++
		}
	}
	assert.GreaterOrEqual(t, severe, 1)
}

func TestCheckInteractionsEmitsBothDeclaringSides(t *testing.T) {
	checker := NewInteractionChecker(testLogger())

	// Ibuprofen and prednisolone each declare the other: two records, by
	// design, not deduplicated.
	report := checker.Check([]domain.Medication{
		medByID(t, "ibuprofen"),
		medByID(t, "prednisolone"),
	})

	require.Len(t, report.Interactions, 2)
	assert.False(t, report.HasSevere)
	for _, r := range report.Interactions {
		assert.Equal(t, domain.MODERATE, r.Severity)
	}
	assert.NotEqual(t, report.Interactions[0].Medication1, report.Interactions[1].Medication1)
}

func TestCheckInteractionsSeverityOrdering(t *testing.T) {
	checker := NewInteractionChecker(testLogger())

	report := checker.Check([]domain.Medication{
		medByID(t, "ibuprofen"),
		medByID(t, "prednisolone"),
		medByID(t, "methotrexate"),
		medByID(t, "furosemide"),
		medByID(t, "ceftriaxone"),
	})

	require.NotEmpty(t, report.Interactions)
	assert.True(t, report.HasSevere)

	// Records come back in descending severity rank for triage display.
	for i := 1; i < len(report.Interactions); i++ {
		assert.GreaterOrEqual(t,
			report.Interactions[i-1].Severity.Rank(),
			report.Interactions[i].Severity.Rank())
	}
	assert.Equal(t, domain.SEVERE, report.Interactions[0].Severity)
}

func TestCheckInteractionsSingleMedication(t *testing.T) {
	checker := NewInteractionChecker(testLogger())

	report := checker.Check([]domain.Medication{medByID(t, "ibuprofen")})
	assert.Empty(t, report.Interactions)

	report = checker.Check(nil)
	assert.Empty(t, report.Interactions)
	assert.False(t, report.HasSevere)
}
