package calculation

import (
	"testing"

	"github.com/fintoolbox/debtpro/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLiquidation(t *testing.T) {
	assumptions := domain.DefaultAssumptions() // 10% effective CGT

	tests := []struct {
		name             string
		state            runningState
		expectedProceeds decimal.Decimal
		expectedClear    bool
	}{
		{
			name: "Portfolio alone covers a small loan",
			state: runningState{
				homeLoan:  decimal.NewFromInt(50000),
				portfolio: decimal.NewFromInt(100000),
			},
			expectedProceeds: decimal.NewFromInt(90000),
			expectedClear:    true,
		},
		{
			name: "Property sale nets price less 3% costs less the loan",
			state: runningState{
				homeLoan: decimal.NewFromInt(100000),
				ipValue:  decimal.NewFromInt(800000),
				ipLoan:   decimal.NewFromInt(735000),
			},
			expectedProceeds: decimal.NewFromInt(41000), // 776,000 - 735,000
			expectedClear:    false,
		},
		{
			name: "Underwater property contributes nothing",
			state: runningState{
				homeLoan:  decimal.NewFromInt(10000),
				ipValue:   decimal.NewFromInt(700000),
				ipLoan:    decimal.NewFromInt(735000),
				portfolio: decimal.NewFromInt(20000),
			},
			expectedProceeds: decimal.NewFromInt(18000),
			expectedClear:    true,
		},
		{
			name: "Paid off loan never reports clearable",
			state: runningState{
				homeLoan:  decimal.Zero,
				portfolio: decimal.NewFromInt(500000),
			},
			expectedProceeds: decimal.NewFromInt(450000),
			expectedClear:    false,
		},
		{
			name: "Nothing to sell",
			state: runningState{
				homeLoan: decimal.NewFromInt(300000),
			},
			expectedProceeds: decimal.Zero,
			expectedClear:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proceeds, couldClear := tt.state.liquidation(assumptions)
			assert.True(t, proceeds.Equal(tt.expectedProceeds),
				"Expected proceeds %s, got %s", tt.expectedProceeds, proceeds)
			assert.Equal(t, tt.expectedClear, couldClear)
		})
	}
}
