package entity

// SavingsEstimate projects the financial impact of a set of optimization actions.
type SavingsEstimate struct {
	BaselineMonthlyCost      float64 `json:"baseline_monthly_cost"`
	ExpectedReductionPercent float64 `json:"expected_reduction_percent"`
	MonthlySavings           float64 `json:"monthly_savings"`
	ProjectedAnnualSavings   float64 `json:"projected_annual_savings"`
}
