package service

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pediatric-clinical-engine/internal/domain"
	"github.com/pediatric-clinical-engine/internal/refdata"
)

// PrescriptionState is the complete state of one prescription editing
// session. It is a value: every transition returns a new state and leaves
// its input untouched, so the caller owns persistence and threading of the
// session. The state holds at most one entry per medication identifier.
type PrescriptionState struct {
	SessionID            string                          `json:"session_id"`
	WeightKg             *float64                        `json:"weight_kg,omitempty"`
	DiagnosisCode        string                          `json:"diagnosis_code"`
	DiagnosisDescription string                          `json:"diagnosis_description"`
	Medications          []domain.PrescriptionMedication `json:"medications"`
}

// PrescriptionService applies state transitions to prescription sessions,
// resolving identifiers against the reference store and computing doses at
// add/template-apply time.
type PrescriptionService struct {
	logger              *logrus.Logger
	store               *refdata.Store
	checker             *InteractionChecker
	defaultDurationDays int
}

// NewPrescriptionService creates a new prescription service.
// defaultDurationDays is used for ad-hoc medication adds; template applies
// use the template's own duration.
func NewPrescriptionService(logger *logrus.Logger, store *refdata.Store, defaultDurationDays int) *PrescriptionService {
	if defaultDurationDays <= 0 {
		defaultDurationDays = 7
	}
	return &PrescriptionService{
		logger:              logger,
		store:               store,
		checker:             NewInteractionChecker(logger),
		defaultDurationDays: defaultDurationDays,
	}
}

// NewSession starts an empty session for a patient weight (which may be
// unknown).
func (p *PrescriptionService) NewSession(weightKg *float64) PrescriptionState {
	state := PrescriptionState{SessionID: uuid.NewString(), WeightKg: weightKg}
	p.logger.WithField("session_id", state.SessionID).Debug("Started prescription session")
	return state
}

// ApplyTemplate sets the diagnosis fields from the template and replaces
// the entire medication set with the template's medications, dosed against
// the session's current weight and defaulted to the template duration.
func (p *PrescriptionService) ApplyTemplate(state PrescriptionState, id domain.TemplateID) (PrescriptionState, error) {
	tpl, err := p.store.Template(id)
	if err != nil {
		return state, err
	}

	next := state
	next.DiagnosisCode = tpl.DiagnosisCode
	next.DiagnosisDescription = tpl.Description
	next.Medications = make([]domain.PrescriptionMedication, 0, len(tpl.Medications))

	for _, medID := range tpl.Medications {
		med, err := p.store.Medication(medID)
		if err != nil {
			// Load-time validation makes this unreachable for a well-formed
			// store; surfaced anyway rather than skipping a prescribed drug.
			return state, err
		}
		next.Medications = append(next.Medications, p.buildEntry(med, state.WeightKg, tpl.DurationDays))
	}

	p.logger.WithFields(logrus.Fields{
		"session_id":  state.SessionID,
		"template":    id,
		"medications": len(next.Medications),
	}).Info("Applied diagnosis template")

	return next, nil
}

// AddMedication adds one medication with a computed dose and the default
// duration. Adding a medication already in the session is a no-op.
func (p *PrescriptionService) AddMedication(state PrescriptionState, id domain.MedicationID) (PrescriptionState, error) {
	if indexOf(state.Medications, id) >= 0 {
		return state, nil
	}

	med, err := p.store.Medication(id)
	if err != nil {
		return state, err
	}

	next := state
	next.Medications = append(copyMedications(state.Medications), p.buildEntry(med, state.WeightKg, p.defaultDurationDays))

	p.logger.WithFields(logrus.Fields{
		"session_id": state.SessionID,
		"medication": id,
	}).Debug("Added medication to session")

	return next, nil
}

// RemoveMedication removes a medication if present; absent identifiers are
// a no-op, not an error.
func (p *PrescriptionService) RemoveMedication(state PrescriptionState, id domain.MedicationID) PrescriptionState {
	idx := indexOf(state.Medications, id)
	if idx < 0 {
		return state
	}

	next := state
	next.Medications = make([]domain.PrescriptionMedication, 0, len(state.Medications)-1)
	next.Medications = append(next.Medications, state.Medications[:idx]...)
	next.Medications = append(next.Medications, state.Medications[idx+1:]...)
	return next
}

// UpdateMedication merges non-nil patch fields into an existing entry; a
// medication not in the session is a no-op.
func (p *PrescriptionService) UpdateMedication(state PrescriptionState, id domain.MedicationID, patch domain.MedicationUpdate) PrescriptionState {
	idx := indexOf(state.Medications, id)
	if idx < 0 {
		return state
	}

	next := state
	next.Medications = copyMedications(state.Medications)
	entry := &next.Medications[idx]
	if patch.CalculatedDose != nil {
		entry.CalculatedDose = *patch.CalculatedDose
	}
	if patch.Route != nil {
		entry.Route = *patch.Route
	}
	if patch.Frequency != nil {
		entry.Frequency = *patch.Frequency
	}
	if patch.DurationDays != nil {
		entry.DurationDays = *patch.DurationDays
	}
	if patch.Instructions != nil {
		entry.Instructions = *patch.Instructions
	}
	return next
}

// WithWeight updates the session weight. Doses of medications already in
// the session are NOT recomputed; dose computation happens only at add and
// template-apply time. Whether a weight correction should retroactively
// re-dose the session is an open product question — keeping the transition
// explicit here makes the current behavior testable instead of implicit.
func (p *PrescriptionService) WithWeight(state PrescriptionState, weightKg float64) PrescriptionState {
	next := state
	next.WeightKg = &weightKg
	return next
}

// Clear empties the medication set and diagnosis fields, keeping the
// session identity and weight.
func (p *PrescriptionService) Clear(state PrescriptionState) PrescriptionState {
	next := state
	next.DiagnosisCode = ""
	next.DiagnosisDescription = ""
	next.Medications = nil
	return next
}

// Interactions derives the interaction report for the current medication
// set. Always computed fresh, never cached.
func (p *PrescriptionService) Interactions(state PrescriptionState) domain.InteractionReport {
	meds := make([]domain.Medication, len(state.Medications))
	for i, entry := range state.Medications {
		meds[i] = entry.Medication
	}
	return p.checker.Check(meds)
}

func (p *PrescriptionService) buildEntry(med domain.Medication, weightKg *float64, durationDays int) domain.PrescriptionMedication {
	dose := calculateDose(med, weightKg)
	return domain.PrescriptionMedication{
		Medication:     med,
		CalculatedDose: dose.Dose,
		MaxDose:        dose.MaxDose,
		Route:          med.Route,
		Frequency:      med.Frequency,
		DurationDays:   durationDays,
	}
}

func indexOf(meds []domain.PrescriptionMedication, id domain.MedicationID) int {
	for i, m := range meds {
		if m.Medication.ID == id {
			return i
		}
	}
	return -1
}

func copyMedications(meds []domain.PrescriptionMedication) []domain.PrescriptionMedication {
	out := make([]domain.PrescriptionMedication, len(meds))
	copy(out, meds)
	return out
}
