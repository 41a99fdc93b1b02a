package toolkit

import (
	"fmt"

	"github.com/diillson/optiscale-go/internal/domain/entity"
	"github.com/diillson/optiscale-go/internal/shared/types"
	"github.com/shopspring/decimal"
)

// CompareScenarios computes deltas and percentage savings of two
// alternative cost scenarios against a baseline.
//
// Scenario costs are unconstrained: zero, negative, or above baseline
// are all valid (a scenario above baseline represents a cost increase
// and yields negative savings). Fails with types.ErrInvalidArgument
// when the baseline is not positive, since the percentage would be
// undefined.
func CompareScenarios(baselineCost, scenarioACost, scenarioBCost float64) (*entity.ScenarioComparison, error) {
	if baselineCost <= 0 {
		return nil, fmt.Errorf("%w: baseline_cost must be > 0 for meaningful comparison", types.ErrInvalidArgument)
	}

	baseline := decimal.NewFromFloat(baselineCost)

	calc := func(cost float64) (delta, pct float64) {
		d := baseline.Sub(decimal.NewFromFloat(cost))
		p := d.Div(baseline).Mul(decimal.NewFromInt(100))
		return round2(d), round2(p)
	}

	aDelta, aPct := calc(scenarioACost)
	bDelta, bPct := calc(scenarioBCost)

	return &entity.ScenarioComparison{
		BaselineCost:            round2(baseline),
		ScenarioACost:           round2(decimal.NewFromFloat(scenarioACost)),
		ScenarioBCost:           round2(decimal.NewFromFloat(scenarioBCost)),
		ScenarioADelta:          aDelta,
		ScenarioBDelta:          bDelta,
		ScenarioASavingsPercent: aPct,
		ScenarioBSavingsPercent: bPct,
	}, nil
}
