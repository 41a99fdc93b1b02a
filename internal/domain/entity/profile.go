package entity

import (
	"bytes"
	"encoding/json"
)

// GroupCost represents the summed cost for one group (service, project, ...).
type GroupCost struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// CostBreakdown is an ordered cost mapping (highest spend first). It
// serializes as a JSON object so downstream consumers read it as
// {name: cost, ...} while the descending order is preserved.
type CostBreakdown []GroupCost

// MarshalJSON serializa o breakdown como objeto JSON mantendo a ordem.
func (b CostBreakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(g.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		cost, err := json.Marshal(g.Cost)
		if err != nil {
			return nil, err
		}
		buf.Write(cost)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the summed cost for a group name, when present.
func (b CostBreakdown) Get(name string) (float64, bool) {
	for _, g := range b {
		if g.Name == name {
			return g.Cost, true
		}
	}
	return 0, false
}

// CostProfile contains the aggregated metrics computed from a billing CSV.
type CostProfile struct {
	Currency        string        `json:"currency"`
	CloudProvider   string        `json:"cloud_provider"`
	RowCount        int           `json:"row_count"`
	TotalCost       float64       `json:"total_cost"`
	CostColumn      string        `json:"cost_column"`
	CostByService   CostBreakdown `json:"cost_by_service"`
	CostByProject   CostBreakdown `json:"cost_by_project"`
	DetectedColumns []string      `json:"detected_columns"`
	Notes           string        `json:"notes"`
}
