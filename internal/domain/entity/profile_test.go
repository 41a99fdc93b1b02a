package entity

import (
	"encoding/json"
	"testing"
)

func TestCostBreakdownMarshalPreservesOrder(t *testing.T) {
	breakdown := CostBreakdown{
		{Name: "B", Cost: 30},
		{Name: "A", Cost: 15.5},
	}

	data, err := json.Marshal(breakdown)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"B":30,"A":15.5}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
}

func TestCostBreakdownMarshalEmpty(t *testing.T) {
	data, err := json.Marshal(CostBreakdown{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("expected empty object, got %s", data)
	}
}

func TestCostBreakdownMarshalEscapesNames(t *testing.T) {
	breakdown := CostBreakdown{{Name: `svc "quoted"`, Cost: 1}}

	data, err := json.Marshal(breakdown)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]float64
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded[`svc "quoted"`] != 1 {
		t.Errorf("expected escaped key roundtrip, got %v", decoded)
	}
}

func TestCostBreakdownGet(t *testing.T) {
	breakdown := CostBreakdown{{Name: "A", Cost: 10}}

	if cost, ok := breakdown.Get("A"); !ok || cost != 10 {
		t.Errorf("expected A=10, got %v %v", cost, ok)
	}
	if _, ok := breakdown.Get("missing"); ok {
		t.Error("expected missing group to report absence")
	}
}

func TestCostProfileJSONFieldNames(t *testing.T) {
	profile := CostProfile{
		Currency:        "USD",
		CloudProvider:   "aws",
		RowCount:        1,
		TotalCost:       10,
		CostColumn:      "cost",
		CostByService:   CostBreakdown{},
		CostByProject:   CostBreakdown{},
		DetectedColumns: []string{"service", "cost"},
		Notes:           "n",
	}

	data, err := json.Marshal(profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Nomes de campo do contrato externo; consumidores dependem deles.
	for _, key := range []string{
		"currency", "cloud_provider", "row_count", "total_cost",
		"cost_column", "cost_by_service", "cost_by_project",
		"detected_columns", "notes",
	} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("expected JSON field %q, got keys %v", key, decoded)
		}
	}
}
