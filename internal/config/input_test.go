package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fintoolbox/debtpro/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPlanYAML = `
base:
  home_value: 900000
  home_loan_balance: 600000
  home_loan_rate: 0.055
  min_repayment_monthly: 3500
  marginal_tax_rate: 0.39
  net_annual_income: 145000
  annual_living_expenses: 60000
  offset_balance: 40000
  emergency_fund_target: 25000
assumptions:
  projection_years: 25
  home_growth_rate: "0.03"
strategies:
  - name: Minimum repayments
  - name: Property and recycling
    extra_repayment_monthly: 500
    salary_growth_rate: 0.03
    purchase_price: 700000
    purchase_costs_rate: 0.05
    annual_rent: 32000
    annual_holding_costs: 8000
    property_loan_rate: 0.06
    recycle_per_year: 10000
    portfolio_return_rate: 0.08
    portfolio_yield_rate: 0.04
`

func writePlanFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	parser := NewInputParser()
	plan, err := parser.LoadFromFile(writePlanFile(t, validPlanYAML))
	require.NoError(t, err)

	assert.True(t, plan.Base.HomeValue.Equal(decimal.NewFromInt(900000)))
	assert.True(t, plan.Base.HomeLoanRate.Equal(decimal.NewFromFloat(0.055)))
	require.NotNil(t, plan.Assumptions)
	require.NotNil(t, plan.Assumptions.ProjectionYears)
	assert.Equal(t, 25, *plan.Assumptions.ProjectionYears)

	require.Len(t, plan.Strategies, 2)
	recycling := plan.Strategies[1]
	assert.Equal(t, "Property and recycling", recycling.Name)
	assert.True(t, recycling.RecyclePerYear.Equal(decimal.NewFromInt(10000)))
	assert.True(t, recycling.PortfolioYieldRate.Equal(decimal.NewFromFloat(0.04)))
}

func TestLoadFromFileMissingFile(t *testing.T) {
	_, err := NewInputParser().LoadFromFile("does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFileBadYAML(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(writePlanFile(t, "base: [not: valid"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidatePlan(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name    string
		mutate  func(p *domain.Plan)
		wantErr string
	}{
		{
			name:    "Valid plan passes",
			mutate:  func(p *domain.Plan) {},
			wantErr: "",
		},
		{
			name:    "Zero home value",
			mutate:  func(p *domain.Plan) { p.Base.HomeValue = decimal.Zero },
			wantErr: "home value must be positive",
		},
		{
			name:    "Negative loan balance",
			mutate:  func(p *domain.Plan) { p.Base.HomeLoanBalance = decimal.NewFromInt(-1) },
			wantErr: "cannot be negative",
		},
		{
			name:    "Rate entered as a percentage",
			mutate:  func(p *domain.Plan) { p.Base.HomeLoanRate = decimal.NewFromFloat(5.5) },
			wantErr: "decimal fraction",
		},
		{
			name:    "No strategies",
			mutate:  func(p *domain.Plan) { p.Strategies = nil },
			wantErr: "no strategies",
		},
		{
			name:    "Unnamed strategy",
			mutate:  func(p *domain.Plan) { p.Strategies[0].Name = "" },
			wantErr: "name is required",
		},
		{
			name: "Yield above return",
			mutate: func(p *domain.Plan) {
				p.Strategies[2].PortfolioYieldRate = decimal.NewFromFloat(0.10)
			},
			wantErr: "yield rate cannot exceed",
		},
		{
			name: "Horizon out of range",
			mutate: func(p *domain.Plan) {
				years := 100
				p.Assumptions = &domain.AssumptionOverrides{ProjectionYears: &years}
			},
			wantErr: "between 1 and 50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := parser.CreateExamplePlan()
			tt.mutate(plan)

			err := parser.ValidatePlan(plan)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateExamplePlanIsValid(t *testing.T) {
	parser := NewInputParser()
	plan := parser.CreateExamplePlan()
	require.NoError(t, parser.ValidatePlan(plan))
	assert.Len(t, plan.Strategies, 3)
	assert.Equal(t, "Property and recycling", plan.Strategies[2].Name)
}
