package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pediatric-clinical-engine/internal/domain"
)

func TestHollidaySegarTiers(t *testing.T) {
	calc := NewFluidCalculator(testLogger())

	tests := []struct {
		name        string
		weightKg    float64
		wantPerDay  float64
		wantPerHour float64
	}{
		{"First tier", 8, 800, 33},
		{"First tier upper bound", 10, 1000, 42},
		{"Second tier", 15, 1250, 52},
		{"Second tier upper bound", 20, 1500, 63},
		{"Third tier", 25, 1600, 67},
		{"Third tier large child", 40, 1900, 79},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calc.Calculate(tt.weightKg, nil, nil)
			assert.Equal(t, tt.wantPerDay, result.HollidaySegar.MaintenancePerDay)
			assert.Equal(t, tt.wantPerHour, result.HollidaySegar.MaintenancePerHour)
			assert.NotEmpty(t, result.HollidaySegar.FormulaBreakdown)
		})
	}
}

func TestBSAMaintenance(t *testing.T) {
	calc := NewFluidCalculator(testLogger())

	// 30 kg × 120 cm makes the Mosteller radicand exactly 1.
	result := calc.Calculate(30, ptr(120), nil)
	assert.Equal(t, 1.0, result.BodySurface.BSAM2)
	assert.Equal(t, 1650.0, result.BodySurface.MaintenancePerDay)
}

func TestBSAUnavailableWithoutHeight(t *testing.T) {
	calc := NewFluidCalculator(testLogger())

	for _, height := range []*float64{nil, ptr(0)} {
		result := calc.Calculate(12, height, nil)
		assert.Zero(t, result.BodySurface.BSAM2)
		assert.Zero(t, result.BodySurface.MaintenancePerDay)
		assert.Contains(t, result.BodySurface.Formula, "unavailable")
	}
}

func TestDehydrationPlans(t *testing.T) {
	calc := NewFluidCalculator(testLogger())

	tests := []struct {
		name        string
		weightKg    float64
		percent     float64
		wantPlan    domain.DehydrationPlanLevel
		wantDeficit float64
		wantBolus   float64
	}{
		{"Mild is plan A", 10, 3, domain.PLAN_A, 300, 0},
		{"Moderate is plan B", 10, 7, domain.PLAN_B, 700, 0},
		{"Boundary at 10 percent is plan C", 10, 10, domain.PLAN_C, 1000, 200},
		{"Severe is plan C with bolus", 20, 12, domain.PLAN_C, 2400, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calc.Calculate(tt.weightKg, nil, ptr(tt.percent))
			require.NotNil(t, result.Dehydration)

			plan := result.Dehydration
			assert.Equal(t, tt.wantPlan, plan.Plan)
			assert.Equal(t, tt.wantDeficit, plan.DeficitMl)
			assert.Equal(t, tt.wantBolus, plan.BolusMl)
			assert.Equal(t, result.HollidaySegar.MaintenancePerDay, plan.MaintenanceMl)
			assert.Equal(t, plan.DeficitMl+plan.MaintenanceMl, plan.TotalMl)
		})
	}
}

func TestNoDehydrationPlanWithoutPercent(t *testing.T) {
	calc := NewFluidCalculator(testLogger())

	assert.Nil(t, calc.Calculate(10, nil, nil).Dehydration)
	assert.Nil(t, calc.Calculate(10, nil, ptr(0)).Dehydration)
}

func TestBurnFluidParkland(t *testing.T) {
	calc := NewFluidCalculator(testLogger())

	result := calc.BurnFluid(20, 15)
	assert.Equal(t, 1200.0, result.TotalMl)
	assert.Contains(t, result.Formula, "Parkland")
}
