package entity

// ScenarioComparison holds the deltas of two alternative cost scenarios
// against a baseline.
type ScenarioComparison struct {
	BaselineCost            float64 `json:"baseline_cost"`
	ScenarioACost           float64 `json:"scenario_a_cost"`
	ScenarioBCost           float64 `json:"scenario_b_cost"`
	ScenarioADelta          float64 `json:"scenario_a_delta"`
	ScenarioBDelta          float64 `json:"scenario_b_delta"`
	ScenarioASavingsPercent float64 `json:"scenario_a_savings_percent"`
	ScenarioBSavingsPercent float64 `json:"scenario_b_savings_percent"`
}
