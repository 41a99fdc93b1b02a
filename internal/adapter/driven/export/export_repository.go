package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/diillson/optiscale-go/internal/domain/entity"
	"github.com/diillson/optiscale-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// --- Funções de Exportação do Perfil de Custos ---

func (r *ExportRepositoryImpl) ExportProfileToCSV(profile *entity.CostProfile, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"Cloud Provider", "Currency", "Rows", "Total Cost", "Cost Column",
		"Cost By Service", "Cost By Project", "Detected Columns", "Notes",
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	record := []string{
		profile.CloudProvider,
		profile.Currency,
		fmt.Sprintf("%d", profile.RowCount),
		fmt.Sprintf("%.2f", profile.TotalCost),
		profile.CostColumn,
		formatBreakdown(profile.CostByService, profile.Currency),
		formatBreakdown(profile.CostByProject, profile.Currency),
		strings.Join(profile.DetectedColumns, "\n"),
		cleanRichTags(profile.Notes),
	}
	if err := writer.Write(record); err != nil {
		return "", fmt.Errorf("error writing CSV record: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportProfileToJSON(profile *entity.CostProfile, filename, outputDir string) (string, error) {
	return exportJSON(profile, filename, outputDir)
}

func (r *ExportRepositoryImpl) ExportProfileToPDF(profile *entity.CostProfile, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf, tr, drawSection := newReportPDF()
	pdf.AddPage()
	drawHeader(pdf, tr, "Cost Profile", fmt.Sprintf("Provider: %s | Currency: %s", profile.CloudProvider, profile.Currency))

	summary := fmt.Sprintf(
		"Total cost: %s %.2f\nRows analyzed: %d\nCost column: %s\nDetected columns: %s",
		profile.Currency, profile.TotalCost, profile.RowCount, profile.CostColumn,
		strings.Join(profile.DetectedColumns, ", "),
	)
	drawSection("Summary", summary)
	drawSection("Cost By Service", formatBreakdown(profile.CostByService, profile.Currency))
	drawSection("Cost By Project", formatBreakdown(profile.CostByProject, profile.Currency))
	drawSection("Notes", profile.Notes)
	drawFooter(pdf, tr, 1)

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções de Exportação da Estimativa de Economia ---

func (r *ExportRepositoryImpl) ExportEstimateToCSV(estimate *entity.SavingsEstimate, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"Baseline Monthly Cost", "Expected Reduction (%)",
		"Monthly Savings", "Projected Annual Savings",
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	record := []string{
		fmt.Sprintf("%.2f", estimate.BaselineMonthlyCost),
		fmt.Sprintf("%.2f", estimate.ExpectedReductionPercent),
		fmt.Sprintf("%.2f", estimate.MonthlySavings),
		fmt.Sprintf("%.2f", estimate.ProjectedAnnualSavings),
	}
	if err := writer.Write(record); err != nil {
		return "", fmt.Errorf("error writing CSV record: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportEstimateToJSON(estimate *entity.SavingsEstimate, filename, outputDir string) (string, error) {
	return exportJSON(estimate, filename, outputDir)
}

func (r *ExportRepositoryImpl) ExportEstimateToPDF(estimate *entity.SavingsEstimate, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf, tr, drawSection := newReportPDF()
	pdf.AddPage()
	drawHeader(pdf, tr, "Savings Estimate", "Projection over baseline monthly spend")

	content := fmt.Sprintf(
		"Baseline monthly cost: $%.2f\nExpected reduction: %.2f%%\nMonthly savings: $%.2f\nProjected annual savings: $%.2f",
		estimate.BaselineMonthlyCost,
		estimate.ExpectedReductionPercent,
		estimate.MonthlySavings,
		estimate.ProjectedAnnualSavings,
	)
	drawSection("Projection", content)
	drawSection("Notes", "Figures are estimates derived from the supplied reduction percentage, not a precise forecast.")
	drawFooter(pdf, tr, 1)

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções de Exportação da Comparação de Cenários ---

func (r *ExportRepositoryImpl) ExportComparisonToCSV(comparison *entity.ScenarioComparison, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"Scenario", "Cost", "Delta", "Savings (%)"}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	records := [][]string{
		{"Baseline", fmt.Sprintf("%.2f", comparison.BaselineCost), "", ""},
		{"Scenario A", fmt.Sprintf("%.2f", comparison.ScenarioACost), fmt.Sprintf("%.2f", comparison.ScenarioADelta), fmt.Sprintf("%.2f", comparison.ScenarioASavingsPercent)},
		{"Scenario B", fmt.Sprintf("%.2f", comparison.ScenarioBCost), fmt.Sprintf("%.2f", comparison.ScenarioBDelta), fmt.Sprintf("%.2f", comparison.ScenarioBSavingsPercent)},
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportComparisonToJSON(comparison *entity.ScenarioComparison, filename, outputDir string) (string, error) {
	return exportJSON(comparison, filename, outputDir)
}

func (r *ExportRepositoryImpl) ExportComparisonToPDF(comparison *entity.ScenarioComparison, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf, tr, drawSection := newReportPDF()
	pdf.AddPage()
	drawHeader(pdf, tr, "Scenario Comparison", fmt.Sprintf("Baseline cost: $%.2f", comparison.BaselineCost))

	drawSection("Scenario A", fmt.Sprintf(
		"Cost: $%.2f\nDelta vs baseline: $%.2f\nSavings: %.2f%%",
		comparison.ScenarioACost, comparison.ScenarioADelta, comparison.ScenarioASavingsPercent,
	))
	drawSection("Scenario B", fmt.Sprintf(
		"Cost: $%.2f\nDelta vs baseline: $%.2f\nSavings: %.2f%%",
		comparison.ScenarioBCost, comparison.ScenarioBDelta, comparison.ScenarioBSavingsPercent,
	))
	drawFooter(pdf, tr, 1)

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções de Exportação do Sumário Executivo ---

func (r *ExportRepositoryImpl) ExportOutlineToCSV(outline *entity.SummaryOutline, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"Section", "Bullets"}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, section := range outline.Sections {
		record := []string{
			section.Heading,
			cleanRichTags(strings.Join(section.Bullets, "\n")),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportOutlineToJSON(outline *entity.SummaryOutline, filename, outputDir string) (string, error) {
	return exportJSON(outline, filename, outputDir)
}

func (r *ExportRepositoryImpl) ExportOutlineToPDF(outline *entity.SummaryOutline, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf, tr, drawSection := newReportPDF()
	pdf.AddPage()
	drawHeader(pdf, tr, outline.Title, fmt.Sprintf("Audience: %s", outline.Audience))

	for _, section := range outline.Sections {
		bullets := make([]string, len(section.Bullets))
		for i, b := range section.Bullets {
			bullets[i] = "- " + b
		}
		drawSection(section.Heading, strings.Join(bullets, "\n"))
	}
	drawFooter(pdf, tr, 1)

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// exportJSON serializa qualquer resultado do toolkit com indentação.
func exportJSON(data interface{}, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// formatBreakdown formata um breakdown como linhas "nome: moeda valor".
func formatBreakdown(breakdown entity.CostBreakdown, currency string) string {
	var lines []string
	for _, g := range breakdown {
		name := g.Name
		if name == "" {
			name = "(unlabeled)"
		}
		lines = append(lines, fmt.Sprintf("%s: %s %.2f", name, currency, g.Cost))
	}
	return strings.Join(lines, "\n")
}

// newReportPDF cria o PDF A4 padrão dos relatórios com o helper de seção.
func newReportPDF() (*gofpdf.Fpdf, func(string) string, func(title, content string)) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		content = cleanRichTags(content)
		if content == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	return pdf, tr, drawSection
}

// drawHeader desenha a faixa de cabeçalho do relatório.
func drawHeader(pdf *gofpdf.Fpdf, tr func(string) string, title, subtitle string) {
	pdf.SetFillColor(40, 40, 40)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  %s", title)), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(50, 50, 50)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  %s", subtitle)), "", 1, "L", true, 0, "")
	pdf.Ln(10)
}

// drawFooter desenha o rodapé com data de geração e número da página.
func drawFooter(pdf *gofpdf.Fpdf, tr func(string) string, page int) {
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by OptiScale FinOps Toolkit | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", page)), "", 0, "R", false, 0, "")
}

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// Regex para limpar formatação pterm (rich tags) e sequências ANSI de cor/estilo.
var richTagRegex = regexp.MustCompile(`\[/?([a-zA-Z]+|#[0-9a-fA-F]{6})\]`)
var ansiRegex = regexp.MustCompile(`\x1B\[[0-9;]*[A-Za-z]`)

// cleanRichTags remove tags de formatação do pterm e sequências ANSI.
func cleanRichTags(text string) string {
	text = richTagRegex.ReplaceAllString(text, "")
	text = ansiRegex.ReplaceAllString(text, "")
	return text
}
