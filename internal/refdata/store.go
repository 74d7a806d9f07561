// Package refdata holds the engine's immutable reference tables: the
// medication formulary, diagnosis-to-medication templates, growth reference
// anchors and vital-sign normal ranges. Everything is validated once at load
// time and read-only afterwards, so a single Store is safe for unlimited
// concurrent readers.
package refdata

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/pediatric-clinical-engine/internal/domain"
)

//go:embed formulary.yaml
var embeddedFormulary []byte

// formularyFile is the on-disk/embedded shape of the reference data.
type formularyFile struct {
	Version     int                        `yaml:"version"`
	Medications []domain.Medication        `yaml:"medications"`
	Templates   []domain.DiagnosisTemplate `yaml:"templates"`
}

// Store is the immutable reference data store.
type Store struct {
	logger      *logrus.Logger
	medications map[domain.MedicationID]domain.Medication
	templates   map[domain.TemplateID]domain.DiagnosisTemplate

	// declaration order, for stable listings
	medicationOrder []domain.MedicationID
	templateOrder   []domain.TemplateID
}

// Load parses and validates the embedded formulary.
func Load(logger *logrus.Logger) (*Store, error) {
	return load(embeddedFormulary, logger)
}

// LoadFromFile parses and validates a formulary override file.
func LoadFromFile(path string, logger *logrus.Logger) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read formulary %s: %w", path, err)
	}
	return load(data, logger)
}

func load(data []byte, logger *logrus.Logger) (*Store, error) {
	var file formularyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse formulary: %w", err)
	}

	s := &Store{
		logger:      logger,
		medications: make(map[domain.MedicationID]domain.Medication, len(file.Medications)),
		templates:   make(map[domain.TemplateID]domain.DiagnosisTemplate, len(file.Templates)),
	}

	for i := range file.Medications {
		med := file.Medications[i]
		if err := med.Validate(); err != nil {
			return nil, &domain.ReferenceDataError{Entity: "medication", ID: string(med.ID), Reason: err.Error()}
		}
		if _, dup := s.medications[med.ID]; dup {
			return nil, &domain.ReferenceDataError{Entity: "medication", ID: string(med.ID), Reason: "duplicate identifier"}
		}
		s.medications[med.ID] = med
		s.medicationOrder = append(s.medicationOrder, med.ID)
	}

	for i := range file.Templates {
		tpl := file.Templates[i]
		if err := tpl.Validate(); err != nil {
			return nil, &domain.ReferenceDataError{Entity: "template", ID: string(tpl.ID), Reason: err.Error()}
		}
		if _, dup := s.templates[tpl.ID]; dup {
			return nil, &domain.ReferenceDataError{Entity: "template", ID: string(tpl.ID), Reason: "duplicate identifier"}
		}
		// A template naming a missing medication is caught here, not at
		// calculation time.
		for _, medID := range tpl.Medications {
			if _, ok := s.medications[medID]; !ok {
				return nil, &domain.ReferenceDataError{
					Entity: "template",
					ID:     string(tpl.ID),
					Reason: fmt.Sprintf("references unknown medication %q", medID),
				}
			}
		}
		s.templates[tpl.ID] = tpl
		s.templateOrder = append(s.templateOrder, tpl.ID)
	}

	// Interaction targets are allowed to point outside the formulary
	// (asymmetric authoring); log them so data curators notice.
	for _, id := range s.medicationOrder {
		for _, in := range s.medications[id].Interactions {
			if _, ok := s.medications[in.With]; !ok {
				logger.WithFields(logrus.Fields{
					"medication": id,
					"target":     in.With,
				}).Warn("Interaction targets a medication outside the formulary")
			}
		}
	}

	logger.WithFields(logrus.Fields{
		"medications": len(s.medications),
		"templates":   len(s.templates),
		"version":     file.Version,
	}).Info("Loaded reference formulary")

	return s, nil
}

// Medication returns the formulary entry for id, or a NotFoundError.
func (s *Store) Medication(id domain.MedicationID) (domain.Medication, error) {
	med, ok := s.medications[id]
	if !ok {
		return domain.Medication{}, domain.NewMedicationNotFound(id)
	}
	return med, nil
}

// Template returns the diagnosis template for id, or a NotFoundError.
func (s *Store) Template(id domain.TemplateID) (domain.DiagnosisTemplate, error) {
	tpl, ok := s.templates[id]
	if !ok {
		return domain.DiagnosisTemplate{}, domain.NewTemplateNotFound(id)
	}
	return tpl, nil
}

// Medications returns all formulary entries in declaration order.
func (s *Store) Medications() []domain.Medication {
	out := make([]domain.Medication, 0, len(s.medicationOrder))
	for _, id := range s.medicationOrder {
		out = append(out, s.medications[id])
	}
	return out
}

// Templates returns all diagnosis templates in declaration order.
func (s *Store) Templates() []domain.DiagnosisTemplate {
	out := make([]domain.DiagnosisTemplate, 0, len(s.templateOrder))
	for _, id := range s.templateOrder {
		out = append(out, s.templates[id])
	}
	return out
}
