package service

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/pediatric-clinical-engine/internal/domain"
)

// InteractionChecker scans a selected medication set for declared
// pairwise interactions.
type InteractionChecker struct {
	logger *logrus.Logger
}

// NewInteractionChecker creates a new interaction checker.
func NewInteractionChecker(logger *logrus.Logger) *InteractionChecker {
	return &InteractionChecker{logger: logger}
}

// Check enumerates interaction warnings for every unordered pair in the
// selected medication list. Interactions may be declared on either side of
// a pair; when both sides declare one, both records are emitted. That
// duplication is intentional: it mirrors how the reference data is authored
// asymmetrically, and triage elsewhere treats "at least one record" as the
// interaction existing rather than counting records.
//
// O(n²) in medication count; prescriptions are single-digit in size.
func (c *InteractionChecker) Check(medications []domain.Medication) domain.InteractionReport {
	var records []domain.MedicationInteraction

	for i := 0; i < len(medications); i++ {
		for j := i + 1; j < len(medications); j++ {
			records = append(records, declaredBetween(medications[i], medications[j])...)
			records = append(records, declaredBetween(medications[j], medications[i])...)
		}
	}

	// Severity-first ordering for triage display.
	sort.SliceStable(records, func(a, b int) bool {
		return records[a].Severity.Rank() > records[b].Severity.Rank()
	})

	report := domain.InteractionReport{Interactions: records}
	for _, r := range records {
		if r.Severity == domain.SEVERE {
			report.HasSevere = true
			break
		}
	}

	c.logger.WithFields(logrus.Fields{
		"medications":  len(medications),
		"interactions": len(records),
		"has_severe":   report.HasSevere,
	}).Debug("Checked medication interactions")

	return report
}

// declaredBetween returns the interactions that `from` declares against `to`.
func declaredBetween(from, to domain.Medication) []domain.MedicationInteraction {
	var out []domain.MedicationInteraction
	for _, in := range from.Interactions {
		if in.With == to.ID {
			out = append(out, domain.MedicationInteraction{
				Medication1: from.Name,
				Medication2: to.Name,
				Severity:    in.Severity,
				Description: in.Description,
			})
		}
	}
	return out
}
