package toolkit

import (
	"errors"
	"reflect"
	"testing"

	"github.com/diillson/optiscale-go/internal/shared/types"
)

func TestEstimateSavings(t *testing.T) {
	estimate, err := EstimateSavings(15000, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if estimate.MonthlySavings != 3000.0 {
		t.Errorf("expected monthly_savings 3000.0, got %v", estimate.MonthlySavings)
	}
	if estimate.ProjectedAnnualSavings != 36000.0 {
		t.Errorf("expected projected_annual_savings 36000.0, got %v", estimate.ProjectedAnnualSavings)
	}
	if estimate.BaselineMonthlyCost != 15000.0 || estimate.ExpectedReductionPercent != 20.0 {
		t.Errorf("inputs not echoed rounded: %+v", estimate)
	}
}

func TestEstimateSavingsNegativeArguments(t *testing.T) {
	cases := []struct {
		name     string
		baseline float64
		percent  float64
	}{
		{"negative baseline", -1, 10},
		{"negative percent", 10, -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := EstimateSavings(tc.baseline, tc.percent)
			if !errors.Is(err, types.ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestEstimateSavingsPermissiveAbove100(t *testing.T) {
	// Percentuais acima de 100 são aceitos de propósito.
	estimate, err := EstimateSavings(100, 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if estimate.MonthlySavings != 150.0 {
		t.Errorf("expected monthly_savings 150.0, got %v", estimate.MonthlySavings)
	}
	if estimate.ProjectedAnnualSavings != 1800.0 {
		t.Errorf("expected projected_annual_savings 1800.0, got %v", estimate.ProjectedAnnualSavings)
	}
}

func TestEstimateSavingsZeroIsValid(t *testing.T) {
	estimate, err := EstimateSavings(0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if estimate.MonthlySavings != 0 || estimate.ProjectedAnnualSavings != 0 {
		t.Errorf("expected zero savings, got %+v", estimate)
	}
}

func TestEstimateSavingsRounding(t *testing.T) {
	estimate, err := EstimateSavings(10.456, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if estimate.BaselineMonthlyCost != 10.46 {
		t.Errorf("expected baseline rounded to 10.46, got %v", estimate.BaselineMonthlyCost)
	}
	if estimate.MonthlySavings != 1.05 {
		t.Errorf("expected monthly_savings rounded to 1.05, got %v", estimate.MonthlySavings)
	}
}

func TestEstimateSavingsIdempotent(t *testing.T) {
	first, err := EstimateSavings(1234.56, 12.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := EstimateSavings(1234.56, 12.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results, got %+v and %+v", first, second)
	}
}
