package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diillson/optiscale-go/internal/domain/entity"
)

func sampleProfile() *entity.CostProfile {
	return &entity.CostProfile{
		Currency:      "USD",
		CloudProvider: "aws",
		RowCount:      3,
		TotalCost:     45.0,
		CostColumn:    "cost",
		CostByService: entity.CostBreakdown{
			{Name: "B", Cost: 30.0},
			{Name: "A", Cost: 15.0},
		},
		CostByProject:   entity.CostBreakdown{},
		DetectedColumns: []string{"service", "cost"},
		Notes:           "note",
	}
}

func TestExportProfileToCSV(t *testing.T) {
	dir := t.TempDir()
	repo := NewExportRepository()

	path, err := repo.ExportProfileToCSV(sampleProfile(), "test_profile", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(path, ".csv") {
		t.Errorf("expected .csv path, got %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("could not read exported file: %v", err)
	}
	content := string(data)
	for _, want := range []string{"Total Cost", "45.00", "B: USD 30.00"} {
		if !strings.Contains(content, want) {
			t.Errorf("expected CSV to contain %q, got:\n%s", want, content)
		}
	}
}

func TestExportProfileToJSON(t *testing.T) {
	dir := t.TempDir()
	repo := NewExportRepository()

	path, err := repo.ExportProfileToJSON(sampleProfile(), "test_profile", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("could not read exported file: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("exported JSON is invalid: %v", err)
	}
	if decoded["total_cost"] != 45.0 {
		t.Errorf("expected total_cost 45.0, got %v", decoded["total_cost"])
	}

	services, ok := decoded["cost_by_service"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected cost_by_service object, got %T", decoded["cost_by_service"])
	}
	if services["B"] != 30.0 {
		t.Errorf("expected B=30.0, got %v", services["B"])
	}

	// Breakdown vazio serializa como objeto vazio, não null
	if projects, ok := decoded["cost_by_project"].(map[string]interface{}); !ok || len(projects) != 0 {
		t.Errorf("expected empty cost_by_project object, got %v", decoded["cost_by_project"])
	}
}

func TestExportProfileToPDF(t *testing.T) {
	dir := t.TempDir()
	repo := NewExportRepository()

	path, err := repo.ExportProfileToPDF(sampleProfile(), "test_profile", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected PDF file at %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty PDF file")
	}
}

func TestExportEstimateToCSV(t *testing.T) {
	dir := t.TempDir()
	repo := NewExportRepository()

	estimate := &entity.SavingsEstimate{
		BaselineMonthlyCost:      15000,
		ExpectedReductionPercent: 20,
		MonthlySavings:           3000,
		ProjectedAnnualSavings:   36000,
	}

	path, err := repo.ExportEstimateToCSV(estimate, "test_estimate", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("could not read exported file: %v", err)
	}
	if !strings.Contains(string(data), "36000.00") {
		t.Errorf("expected annual savings in CSV, got:\n%s", data)
	}
}

func TestExportComparisonToJSON(t *testing.T) {
	dir := t.TempDir()
	repo := NewExportRepository()

	comparison := &entity.ScenarioComparison{
		BaselineCost:            100,
		ScenarioACost:           80,
		ScenarioBCost:           60,
		ScenarioADelta:          20,
		ScenarioBDelta:          40,
		ScenarioASavingsPercent: 20,
		ScenarioBSavingsPercent: 40,
	}

	path, err := repo.ExportComparisonToJSON(comparison, "test_compare", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("could not read exported file: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("exported JSON is invalid: %v", err)
	}
	if decoded["scenario_b_savings_percent"] != 40.0 {
		t.Errorf("expected scenario_b_savings_percent 40.0, got %v", decoded["scenario_b_savings_percent"])
	}
}

func TestExportOutlineToCSV(t *testing.T) {
	dir := t.TempDir()
	repo := NewExportRepository()

	outline := &entity.SummaryOutline{
		Title:    "Cloud Cost Optimization – Executive Summary",
		Audience: "cxo",
		Goal:     "Cut costs",
		Sections: []entity.OutlineSection{
			{Heading: "1. Context & Objectives", Bullets: []string{"State the primary goal: Cut costs"}},
		},
	}

	path, err := repo.ExportOutlineToCSV(outline, "test_outline", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("could not read exported file: %v", err)
	}
	if !strings.Contains(string(data), "1. Context & Objectives") {
		t.Errorf("expected section heading in CSV, got:\n%s", data)
	}
}

func TestGenerateFilenameCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")

	path, err := generateFilename("report", dir, "csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected output directory to exist: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("expected file under %s, got %s", dir, path)
	}
	if !strings.HasPrefix(filepath.Base(path), "report_") || !strings.HasSuffix(path, ".csv") {
		t.Errorf("unexpected filename: %s", path)
	}
}

func TestCleanRichTags(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"[red]alert[/red]", "alert"},
		{"\x1B[31mred text\x1B[0m", "red text"},
		{"plain", "plain"},
	}

	for _, tc := range cases {
		if got := cleanRichTags(tc.in); got != tc.want {
			t.Errorf("cleanRichTags(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
