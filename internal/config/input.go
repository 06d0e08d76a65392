package config

import (
	"fmt"
	"os"

	"github.com/fintoolbox/debtpro/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of plan input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate the plan. The engine core performs no validation of its own,
	// so every coercion and sanity check happens here.
	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &plan, nil
}

// ValidatePlan validates the loaded plan
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	if err := ip.validateBase(&plan.Base); err != nil {
		return fmt.Errorf("base inputs validation failed: %w", err)
	}

	if plan.Assumptions != nil {
		if err := ip.validateAssumptions(plan.Assumptions); err != nil {
			return fmt.Errorf("assumptions validation failed: %w", err)
		}
	}

	if len(plan.Strategies) == 0 {
		return fmt.Errorf("no strategies provided")
	}
	for i, strategy := range plan.Strategies {
		if err := ip.validateStrategy(&strategy); err != nil {
			return fmt.Errorf("strategy %d validation failed: %w", i, err)
		}
	}

	return nil
}

// validateBase checks the household's starting position
func (ip *InputParser) validateBase(base *domain.BaseInputs) error {
	if base.HomeValue.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("home value must be positive")
	}
	if base.HomeLoanBalance.LessThan(decimal.Zero) {
		return fmt.Errorf("home loan balance cannot be negative")
	}
	if err := validateRate("home loan rate", base.HomeLoanRate); err != nil {
		return err
	}
	if err := validateRate("marginal tax rate", base.MarginalTaxRate); err != nil {
		return err
	}
	if base.MinRepaymentMonthly.LessThan(decimal.Zero) {
		return fmt.Errorf("minimum monthly repayment cannot be negative")
	}
	if base.NetAnnualIncome.LessThan(decimal.Zero) {
		return fmt.Errorf("net annual income cannot be negative")
	}
	if base.AnnualLivingExpenses.LessThan(decimal.Zero) {
		return fmt.Errorf("annual living expenses cannot be negative")
	}
	if base.OffsetBalance.LessThan(decimal.Zero) {
		return fmt.Errorf("offset balance cannot be negative")
	}
	if base.EmergencyFundTarget.LessThan(decimal.Zero) {
		return fmt.Errorf("emergency fund target cannot be negative")
	}

	return nil
}

// validateStrategy checks a single strategy's levers
func (ip *InputParser) validateStrategy(strategy *domain.StrategyInputs) error {
	if strategy.Name == "" {
		return fmt.Errorf("strategy name is required")
	}
	if strategy.ExtraRepaymentMonthly.LessThan(decimal.Zero) {
		return fmt.Errorf("extra monthly repayment cannot be negative")
	}
	if err := validateRate("salary growth rate", strategy.SalaryGrowthRate); err != nil {
		return err
	}

	if strategy.PurchasePrice.LessThan(decimal.Zero) {
		return fmt.Errorf("purchase price cannot be negative")
	}
	if err := validateRate("purchase costs rate", strategy.PurchaseCostsRate); err != nil {
		return err
	}
	if strategy.AnnualRent.LessThan(decimal.Zero) {
		return fmt.Errorf("annual rent cannot be negative")
	}
	if strategy.AnnualHoldingCosts.LessThan(decimal.Zero) {
		return fmt.Errorf("annual holding costs cannot be negative")
	}
	if err := validateRate("property loan rate", strategy.PropertyLoanRate); err != nil {
		return err
	}

	if strategy.RecyclePerYear.LessThan(decimal.Zero) {
		return fmt.Errorf("recycle per year cannot be negative")
	}
	if err := validateRate("portfolio return rate", strategy.PortfolioReturnRate); err != nil {
		return err
	}
	if err := validateRate("portfolio yield rate", strategy.PortfolioYieldRate); err != nil {
		return err
	}
	// The growth component (return less yield) must stay non-negative for
	// the model to remain sound.
	if strategy.PortfolioYieldRate.GreaterThan(strategy.PortfolioReturnRate) {
		return fmt.Errorf("portfolio yield rate cannot exceed total return rate")
	}

	return nil
}

// validateAssumptions checks the override block
func (ip *InputParser) validateAssumptions(overrides *domain.AssumptionOverrides) error {
	if overrides.ProjectionYears != nil && (*overrides.ProjectionYears <= 0 || *overrides.ProjectionYears > 50) {
		return fmt.Errorf("projection years must be between 1 and 50")
	}
	if overrides.HomeGrowthRate != nil {
		if err := validateRate("home growth rate", *overrides.HomeGrowthRate); err != nil {
			return err
		}
	}
	if overrides.IPGrowthRate != nil {
		if err := validateRate("investment property growth rate", *overrides.IPGrowthRate); err != nil {
			return err
		}
	}
	if overrides.EffectiveCGTRate != nil {
		if err := validateRate("effective CGT rate", *overrides.EffectiveCGTRate); err != nil {
			return err
		}
	}
	return nil
}

// validateRate rejects negative rates and values that look like percentages
// entered as fractions (all rates in a plan are decimal fractions).
func validateRate(name string, rate decimal.Decimal) error {
	if rate.LessThan(decimal.Zero) {
		return fmt.Errorf("%s cannot be negative", name)
	}
	if rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%s must be a decimal fraction (e.g. 0.055 for 5.5%%), got %s", name, rate.String())
	}
	return nil
}

// CreateExamplePlan creates an example plan document
func (ip *InputParser) CreateExamplePlan() *domain.Plan {
	years := 30
	return &domain.Plan{
		Base: domain.BaseInputs{
			HomeValue:            decimal.NewFromInt(900000),
			HomeLoanBalance:      decimal.NewFromInt(600000),
			HomeLoanRate:         decimal.NewFromFloat(0.055),
			MinRepaymentMonthly:  decimal.NewFromInt(3500),
			MarginalTaxRate:      decimal.NewFromFloat(0.39),
			NetAnnualIncome:      decimal.NewFromInt(145000),
			AnnualLivingExpenses: decimal.NewFromInt(60000),
			OffsetBalance:        decimal.NewFromInt(40000),
			EmergencyFundTarget:  decimal.NewFromInt(25000),
		},
		Assumptions: &domain.AssumptionOverrides{
			ProjectionYears: &years,
		},
		Strategies: []domain.StrategyInputs{
			{
				Name: "Minimum repayments",
			},
			{
				Name:                  "Extra repayments",
				ExtraRepaymentMonthly: decimal.NewFromInt(500),
				SalaryGrowthRate:      decimal.NewFromFloat(0.03),
			},
			{
				Name:                  "Property and recycling",
				ExtraRepaymentMonthly: decimal.NewFromInt(500),
				SalaryGrowthRate:      decimal.NewFromFloat(0.03),
				PurchasePrice:         decimal.NewFromInt(700000),
				PurchaseCostsRate:     decimal.NewFromFloat(0.05),
				AnnualRent:            decimal.NewFromInt(32000),
				AnnualHoldingCosts:    decimal.NewFromInt(8000),
				PropertyLoanRate:      decimal.NewFromFloat(0.06),
				RecyclePerYear:        decimal.NewFromInt(10000),
				PortfolioReturnRate:   decimal.NewFromFloat(0.08),
				PortfolioYieldRate:    decimal.NewFromFloat(0.04),
			},
		},
	}
}
