package toolkit

import (
	"fmt"

	"github.com/diillson/optiscale-go/internal/domain/entity"
	"github.com/diillson/optiscale-go/internal/shared/types"
	"github.com/shopspring/decimal"
)

// EstimateSavings projects the monthly and annual impact of an expected
// percentage reduction over a baseline monthly spend.
//
// Percentages above 100 are accepted on purpose: callers may model cost
// increases inversely or unusual scenarios. Only negative arguments are
// rejected, with types.ErrInvalidArgument.
func EstimateSavings(baselineMonthlyCost, expectedReductionPercent float64) (*entity.SavingsEstimate, error) {
	if baselineMonthlyCost < 0 {
		return nil, fmt.Errorf("%w: baseline_monthly_cost cannot be negative", types.ErrInvalidArgument)
	}
	if expectedReductionPercent < 0 {
		return nil, fmt.Errorf("%w: expected_reduction_percent cannot be negative", types.ErrInvalidArgument)
	}

	baseline := decimal.NewFromFloat(baselineMonthlyCost)
	percent := decimal.NewFromFloat(expectedReductionPercent)

	monthly := baseline.Mul(percent).Div(decimal.NewFromInt(100))
	annual := monthly.Mul(decimal.NewFromInt(12))

	return &entity.SavingsEstimate{
		BaselineMonthlyCost:      round2(baseline),
		ExpectedReductionPercent: round2(percent),
		MonthlySavings:           round2(monthly),
		ProjectedAnnualSavings:   round2(annual),
	}, nil
}
