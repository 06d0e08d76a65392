package domain

import (
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// BaseInputs describes the household's starting financial position. All
// monetary fields are non-negative currency amounts; all rates are decimal
// fractions (0.055 = 5.5%). The engine treats these as immutable for the
// duration of a run.
type BaseInputs struct {
	HomeValue            decimal.Decimal `yaml:"home_value" json:"home_value"`
	HomeLoanBalance      decimal.Decimal `yaml:"home_loan_balance" json:"home_loan_balance"`
	HomeLoanRate         decimal.Decimal `yaml:"home_loan_rate" json:"home_loan_rate"`
	MinRepaymentMonthly  decimal.Decimal `yaml:"min_repayment_monthly" json:"min_repayment_monthly"`
	MarginalTaxRate      decimal.Decimal `yaml:"marginal_tax_rate" json:"marginal_tax_rate"` // inclusive of any levy/surcharge
	NetAnnualIncome      decimal.Decimal `yaml:"net_annual_income" json:"net_annual_income"`
	AnnualLivingExpenses decimal.Decimal `yaml:"annual_living_expenses" json:"annual_living_expenses"` // excludes the mortgage
	OffsetBalance        decimal.Decimal `yaml:"offset_balance" json:"offset_balance"`
	EmergencyFundTarget  decimal.Decimal `yaml:"emergency_fund_target" json:"emergency_fund_target"` // held in the offset, never counted against the loan
}

// StrategyInputs describes one mortgage-reduction strategy: extra repayments,
// salary growth, an optional investment property purchase, and an optional
// debt-recycling program. Zero values disable the corresponding lever.
type StrategyInputs struct {
	Name                  string          `yaml:"name" json:"name"`
	ExtraRepaymentMonthly decimal.Decimal `yaml:"extra_repayment_monthly" json:"extra_repayment_monthly"`
	SalaryGrowthRate      decimal.Decimal `yaml:"salary_growth_rate" json:"salary_growth_rate"`

	// Investment property purchase (fires once, when usable equity covers
	// 30% of the purchase price).
	PurchasePrice     decimal.Decimal `yaml:"purchase_price" json:"purchase_price"`
	PurchaseCostsRate decimal.Decimal `yaml:"purchase_costs_rate" json:"purchase_costs_rate"`
	AnnualRent        decimal.Decimal `yaml:"annual_rent" json:"annual_rent"`
	AnnualHoldingCosts decimal.Decimal `yaml:"annual_holding_costs" json:"annual_holding_costs"`
	PropertyLoanRate  decimal.Decimal `yaml:"property_loan_rate" json:"property_loan_rate"`

	// Debt recycling into a growth portfolio. The yield rate must not exceed
	// the total return rate; validation enforces this before a run.
	RecyclePerYear      decimal.Decimal `yaml:"recycle_per_year" json:"recycle_per_year"`
	PortfolioReturnRate decimal.Decimal `yaml:"portfolio_return_rate" json:"portfolio_return_rate"`
	PortfolioYieldRate  decimal.Decimal `yaml:"portfolio_yield_rate" json:"portfolio_yield_rate"`
}

// Assumptions are the fully-resolved run parameters. Callers normally start
// from DefaultAssumptions and apply an AssumptionOverrides on top.
type Assumptions struct {
	ProjectionYears  int             `yaml:"projection_years" json:"projection_years"`
	HomeGrowthRate   decimal.Decimal `yaml:"home_growth_rate" json:"home_growth_rate"`
	IPGrowthRate     decimal.Decimal `yaml:"ip_growth_rate" json:"ip_growth_rate"`
	EffectiveCGTRate decimal.Decimal `yaml:"effective_cgt_rate" json:"effective_cgt_rate"`
}

// DefaultAssumptions returns the standard run parameters: a 30 year horizon,
// 3% home and investment property growth, and a 10% effective capital gains
// rate on portfolio liquidation.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		ProjectionYears:  30,
		HomeGrowthRate:   decimal.NewFromFloat(0.03),
		IPGrowthRate:     decimal.NewFromFloat(0.03),
		EffectiveCGTRate: decimal.NewFromFloat(0.10),
	}
}

// AssumptionOverrides is a partial override of Assumptions. Nil fields keep
// the default; each field is independently overridable.
type AssumptionOverrides struct {
	ProjectionYears  *int             `yaml:"projection_years,omitempty" json:"projection_years,omitempty"`
	HomeGrowthRate   *decimal.Decimal `yaml:"home_growth_rate,omitempty" json:"home_growth_rate,omitempty"`
	IPGrowthRate     *decimal.Decimal `yaml:"ip_growth_rate,omitempty" json:"ip_growth_rate,omitempty"`
	EffectiveCGTRate *decimal.Decimal `yaml:"effective_cgt_rate,omitempty" json:"effective_cgt_rate,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for AssumptionOverrides
func (ao *AssumptionOverrides) UnmarshalYAML(value *yaml.Node) error {
	// Decimal pointer fields come in as strings so "0.03" survives exactly
	type Alias struct {
		ProjectionYears  *int    `yaml:"projection_years,omitempty"`
		HomeGrowthRate   *string `yaml:"home_growth_rate,omitempty"`
		IPGrowthRate     *string `yaml:"ip_growth_rate,omitempty"`
		EffectiveCGTRate *string `yaml:"effective_cgt_rate,omitempty"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	ao.ProjectionYears = aux.ProjectionYears

	parse := func(s *string) (*decimal.Decimal, error) {
		if s == nil {
			return nil, nil
		}
		val, err := decimal.NewFromString(*s)
		if err != nil {
			return nil, err
		}
		return &val, nil
	}

	var err error
	if ao.HomeGrowthRate, err = parse(aux.HomeGrowthRate); err != nil {
		return err
	}
	if ao.IPGrowthRate, err = parse(aux.IPGrowthRate); err != nil {
		return err
	}
	if ao.EffectiveCGTRate, err = parse(aux.EffectiveCGTRate); err != nil {
		return err
	}

	return nil
}

// ResolveAssumptions merges the supplied overrides over the defaults. A nil
// overrides pointer yields the defaults unchanged.
func ResolveAssumptions(overrides *AssumptionOverrides) Assumptions {
	resolved := DefaultAssumptions()
	if overrides == nil {
		return resolved
	}
	if overrides.ProjectionYears != nil {
		resolved.ProjectionYears = *overrides.ProjectionYears
	}
	if overrides.HomeGrowthRate != nil {
		resolved.HomeGrowthRate = *overrides.HomeGrowthRate
	}
	if overrides.IPGrowthRate != nil {
		resolved.IPGrowthRate = *overrides.IPGrowthRate
	}
	if overrides.EffectiveCGTRate != nil {
		resolved.EffectiveCGTRate = *overrides.EffectiveCGTRate
	}
	return resolved
}

// Describe creates the human-readable assumption list embedded in reports
func (a Assumptions) Describe() []string {
	pct := func(d decimal.Decimal) string {
		return d.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
	}
	return []string{
		"Projection horizon: " + decimal.NewFromInt(int64(a.ProjectionYears)).String() + " years",
		"Home value growth: " + pct(a.HomeGrowthRate) + " annually",
		"Investment property growth: " + pct(a.IPGrowthRate) + " annually",
		"Effective CGT on portfolio liquidation: " + pct(a.EffectiveCGTRate),
		"Repayment cadence: 13 monthly-sized payments per year (fortnightly-equivalent)",
		"Rent and holding costs held flat (no CPI indexing)",
	}
}

// Plan is the complete input document: one base position, optional assumption
// overrides, and one or more named strategies to compare.
type Plan struct {
	Base        BaseInputs           `yaml:"base" json:"base"`
	Assumptions *AssumptionOverrides `yaml:"assumptions,omitempty" json:"assumptions,omitempty"`
	Strategies  []StrategyInputs     `yaml:"strategies" json:"strategies"`
}
