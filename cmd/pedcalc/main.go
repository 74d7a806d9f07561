package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pediatric-clinical-engine/internal/config"
	"github.com/pediatric-clinical-engine/internal/domain"
	"github.com/pediatric-clinical-engine/internal/refdata"
	"github.com/pediatric-clinical-engine/internal/service"
)

// app holds the wired-up engine shared by all subcommands.
type app struct {
	cfg    *config.Config
	logger *logrus.Logger
	store  *refdata.Store
}

func newApp() (*app, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := manager.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	cfg := manager.GetConfig()
	logger := manager.NewLogger()

	var store *refdata.Store
	if cfg.RefData.FormularyPath != "" {
		store, err = refdata.LoadFromFile(cfg.RefData.FormularyPath, logger)
	} else {
		store, err = refdata.Load(logger)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load reference data: %w", err)
	}

	return &app{cfg: cfg, logger: logger, store: store}, nil
}

// printJSON writes an indented result to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// optionalFloat returns the flag value only when it was explicitly set.
func optionalFloat(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	value, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		return nil
	}
	return &value
}

// doseOutput pairs the formulary entry context with the computed dose.
type doseOutput struct {
	Medication string            `json:"medication"`
	Route      string            `json:"route"`
	Frequency  string            `json:"frequency"`
	Result     domain.DoseResult `json:"result"`
}

func newDoseCmd(a *app) *cobra.Command {
	var medicationID string

	cmd := &cobra.Command{
		Use:   "dose",
		Short: "Calculate a weight-based medication dose",
		RunE: func(cmd *cobra.Command, args []string) error {
			med, err := a.store.Medication(domain.MedicationID(medicationID))
			if err != nil {
				return err
			}

			calc := service.NewDoseCalculator(a.logger)
			result := calc.Calculate(med, optionalFloat(cmd, "weight"))
			return printJSON(doseOutput{
				Medication: med.Name,
				Route:      med.Route,
				Frequency:  med.Frequency,
				Result:     result,
			})
		},
	}

	cmd.Flags().StringVar(&medicationID, "medication", "", "medication identifier from the formulary")
	cmd.Flags().Float64("weight", 0, "patient weight in kg")
	cmd.MarkFlagRequired("medication")
	return cmd
}

func newFluidsCmd(a *app) *cobra.Command {
	var weightKg float64

	cmd := &cobra.Command{
		Use:   "fluids",
		Short: "Calculate maintenance and rehydration fluid volumes",
		RunE: func(cmd *cobra.Command, args []string) error {
			calc := service.NewFluidCalculator(a.logger)
			result := calc.Calculate(weightKg, optionalFloat(cmd, "height"), optionalFloat(cmd, "dehydration"))
			return printJSON(result)
		},
	}

	cmd.Flags().Float64Var(&weightKg, "weight", 0, "patient weight in kg")
	cmd.Flags().Float64("height", 0, "patient height in cm, enables the BSA estimate")
	cmd.Flags().Float64("dehydration", 0, "estimated dehydration percent")
	cmd.MarkFlagRequired("weight")
	return cmd
}

func newNutritionCmd(a *app) *cobra.Command {
	var input domain.NutritionalInput
	var sex string

	cmd := &cobra.Command{
		Use:   "nutrition",
		Short: "Run a nutritional growth assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Sex = domain.Sex(strings.ToUpper(sex))
			svc := service.NewNutritionService(a.logger)
			result, err := svc.Assess(input)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}

	cmd.Flags().Float64Var(&input.WeightKg, "weight", 0, "patient weight in kg")
	cmd.Flags().Float64Var(&input.HeightCm, "height", 0, "patient height in cm")
	cmd.Flags().IntVar(&input.AgeMonths, "age-months", 0, "patient age in months")
	cmd.Flags().StringVar(&sex, "sex", "", "patient sex: MALE or FEMALE")
	cmd.MarkFlagRequired("age-months")
	cmd.MarkFlagRequired("sex")
	return cmd
}

func newVitalsCmd(a *app) *cobra.Command {
	var ageMonths int

	cmd := &cobra.Command{
		Use:   "vitals",
		Short: "Classify vital signs against age-based normal ranges",
		RunE: func(cmd *cobra.Command, args []string) error {
			reading := domain.VitalsReading{
				HeartRate:        optionalFloat(cmd, "heart-rate"),
				RespiratoryRate:  optionalFloat(cmd, "respiratory-rate"),
				OxygenSaturation: optionalFloat(cmd, "spo2"),
				Temperature:      optionalFloat(cmd, "temperature"),
				SystolicBP:       optionalFloat(cmd, "systolic-bp"),
				DiastolicBP:      optionalFloat(cmd, "diastolic-bp"),
			}

			classifier := service.NewVitalsClassifier(a.logger, a.cfg.Vitals.CriticalDeviation)
			return printJSON(classifier.Classify(ageMonths, reading))
		},
	}

	cmd.Flags().IntVar(&ageMonths, "age-months", 0, "patient age in months")
	cmd.Flags().Float64("heart-rate", 0, "heart rate in bpm")
	cmd.Flags().Float64("respiratory-rate", 0, "respiratory rate in breaths/min")
	cmd.Flags().Float64("spo2", 0, "oxygen saturation in percent")
	cmd.Flags().Float64("temperature", 0, "temperature in °C")
	cmd.Flags().Float64("systolic-bp", 0, "systolic blood pressure in mmHg")
	cmd.Flags().Float64("diastolic-bp", 0, "diastolic blood pressure in mmHg")
	cmd.MarkFlagRequired("age-months")
	return cmd
}

func newFormularyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "formulary",
		Short: "List the loaded reference formulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(struct {
				Medications []domain.Medication        `json:"medications"`
				Templates   []domain.DiagnosisTemplate `json:"templates"`
			}{
				Medications: a.store.Medications(),
				Templates:   a.store.Templates(),
			})
		},
	}
}

func main() {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	root := &cobra.Command{
		Use:           "pedcalc",
		Short:         "Pediatric clinical calculation engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newDoseCmd(a),
		newFluidsCmd(a),
		newNutritionCmd(a),
		newVitalsCmd(a),
		newFormularyCmd(a),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
