package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/diillson/optiscale-go/internal/application/toolkit"
	"github.com/diillson/optiscale-go/internal/domain/entity"
	"github.com/diillson/optiscale-go/internal/domain/repository"
	"github.com/diillson/optiscale-go/internal/shared/types"
)

// AdvisorUseCase liga o toolkit de cálculo às superfícies de
// apresentação e exportação. Ele não guarda estado entre execuções.
type AdvisorUseCase struct {
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
	stdin      io.Reader
}

// NewAdvisorUseCase creates a new advisor use case.
func NewAdvisorUseCase(
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *AdvisorUseCase {
	return &AdvisorUseCase{
		exportRepo: exportRepo,
		configRepo: configRepo,
		console:    console,
		stdin:      os.Stdin,
	}
}

// ResolveConfig monta a configuração efetiva: defaults, depois arquivo
// de config (quando informado), depois ambiente, depois flags da CLI.
func (uc *AdvisorUseCase) ResolveConfig(args *types.CLIArgs) (*types.Config, error) {
	config := types.DefaultConfig()

	if args.ConfigFile != "" {
		loaded, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	uc.configRepo.ApplyEnvOverrides(config)

	if args.CloudProvider != "" {
		config.CloudProvider = args.CloudProvider
	}
	if args.Currency != "" {
		config.Currency = args.Currency
	}
	if args.Audience != "" {
		config.Audience = args.Audience
	}
	if args.ReportName != "" {
		config.ReportName = args.ReportName
	}
	if len(args.ReportType) > 0 {
		config.ReportType = args.ReportType
	}
	if args.Dir != "" {
		config.Dir = args.Dir
	}

	return config, nil
}

// readInput lê o CSV de um arquivo ou do stdin quando nenhum é dado.
func (uc *AdvisorUseCase) readInput(inputFile string) (string, error) {
	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("error reading input file: %w", err)
		}
		return string(data), nil
	}

	uc.console.LogInfo("Reading billing CSV from stdin (end with EOF)...")
	data, err := io.ReadAll(uc.stdin)
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %w", err)
	}
	return string(data), nil
}

// RunProfile executa o fluxo do perfil de custos: parse, agregação,
// renderização e exportação.
func (uc *AdvisorUseCase) RunProfile(ctx context.Context, args *types.CLIArgs) error {
	config, err := uc.ResolveConfig(args)
	if err != nil {
		return err
	}

	csvText, err := uc.readInput(args.InputFile)
	if err != nil {
		return err
	}

	status := uc.console.Status("Profiling billing data...")
	profile, err := toolkit.ProfileCosts(csvText, config.CloudProvider, config.Currency)
	status.Stop()
	if err != nil {
		return uc.translateToolkitError(err)
	}

	uc.displayProfile(profile)
	return uc.exportReports(config, func(format string) (string, error) {
		switch format {
		case "csv":
			return uc.exportRepo.ExportProfileToCSV(profile, uc.reportName(config, "profile"), config.Dir)
		case "json":
			return uc.exportRepo.ExportProfileToJSON(profile, uc.reportName(config, "profile"), config.Dir)
		case "pdf":
			return uc.exportRepo.ExportProfileToPDF(profile, uc.reportName(config, "profile"), config.Dir)
		}
		return "", fmt.Errorf("unsupported report type: %s", format)
	})
}

// RunEstimate executa a projeção de economia.
func (uc *AdvisorUseCase) RunEstimate(ctx context.Context, args *types.CLIArgs, baseline, percent float64) error {
	config, err := uc.ResolveConfig(args)
	if err != nil {
		return err
	}

	estimate, err := toolkit.EstimateSavings(baseline, percent)
	if err != nil {
		return uc.translateToolkitError(err)
	}

	uc.displayEstimate(estimate, config.Currency)
	return uc.exportReports(config, func(format string) (string, error) {
		switch format {
		case "csv":
			return uc.exportRepo.ExportEstimateToCSV(estimate, uc.reportName(config, "estimate"), config.Dir)
		case "json":
			return uc.exportRepo.ExportEstimateToJSON(estimate, uc.reportName(config, "estimate"), config.Dir)
		case "pdf":
			return uc.exportRepo.ExportEstimateToPDF(estimate, uc.reportName(config, "estimate"), config.Dir)
		}
		return "", fmt.Errorf("unsupported report type: %s", format)
	})
}

// RunCompare executa a comparação de cenários.
func (uc *AdvisorUseCase) RunCompare(ctx context.Context, args *types.CLIArgs, baseline, scenarioA, scenarioB float64) error {
	config, err := uc.ResolveConfig(args)
	if err != nil {
		return err
	}

	comparison, err := toolkit.CompareScenarios(baseline, scenarioA, scenarioB)
	if err != nil {
		return uc.translateToolkitError(err)
	}

	uc.displayComparison(comparison, config.Currency)
	return uc.exportReports(config, func(format string) (string, error) {
		switch format {
		case "csv":
			return uc.exportRepo.ExportComparisonToCSV(comparison, uc.reportName(config, "compare"), config.Dir)
		case "json":
			return uc.exportRepo.ExportComparisonToJSON(comparison, uc.reportName(config, "compare"), config.Dir)
		case "pdf":
			return uc.exportRepo.ExportComparisonToPDF(comparison, uc.reportName(config, "compare"), config.Dir)
		}
		return "", fmt.Errorf("unsupported report type: %s", format)
	})
}

// RunOutline gera o sumário executivo.
func (uc *AdvisorUseCase) RunOutline(ctx context.Context, args *types.CLIArgs, goal string) error {
	config, err := uc.ResolveConfig(args)
	if err != nil {
		return err
	}

	outline := toolkit.ExecSummaryOutline(goal, config.Audience)

	uc.displayOutline(outline)
	return uc.exportReports(config, func(format string) (string, error) {
		switch format {
		case "csv":
			return uc.exportRepo.ExportOutlineToCSV(outline, uc.reportName(config, "outline"), config.Dir)
		case "json":
			return uc.exportRepo.ExportOutlineToJSON(outline, uc.reportName(config, "outline"), config.Dir)
		case "pdf":
			return uc.exportRepo.ExportOutlineToPDF(outline, uc.reportName(config, "outline"), config.Dir)
		}
		return "", fmt.Errorf("unsupported report type: %s", format)
	})
}

// reportName compõe o nome base do relatório com um id curto de execução,
// para que execuções no mesmo segundo não colidam.
func (uc *AdvisorUseCase) reportName(config *types.Config, kind string) string {
	runID := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%s_%s_%s", config.ReportName, kind, runID)
}

// exportReports grava o resultado em cada formato configurado.
func (uc *AdvisorUseCase) exportReports(config *types.Config, export func(format string) (string, error)) error {
	for _, format := range config.ReportType {
		format = strings.ToLower(strings.TrimSpace(format))
		if format == "" {
			continue
		}
		path, err := export(format)
		if err != nil {
			uc.console.LogError("Failed to export %s report: %v", format, err)
			continue
		}
		uc.console.LogSuccess("Report saved: %s", path)
	}
	return nil
}

// translateToolkitError transforma erros do toolkit em mensagens amigáveis,
// sem expor detalhes internos ao usuário final.
func (uc *AdvisorUseCase) translateToolkitError(err error) error {
	switch {
	case errors.Is(err, types.ErrEmptyInput):
		return errors.New("no billing data provided. Paste or pipe CSV contents, or pass a file path")
	case errors.Is(err, types.ErrEmptyDataset):
		return errors.New("the CSV parsed to zero rows. Check that it has a header line and data lines")
	case errors.Is(err, types.ErrNoCostColumn):
		return errors.New("no cost column detected. At least one column name must contain 'cost'")
	case errors.Is(err, types.ErrInvalidArgument):
		return err
	}
	return err
}

// --- Renderização ---

func (uc *AdvisorUseCase) displayProfile(profile *entity.CostProfile) {
	table := uc.console.CreateTable()
	table.AddColumn("Metric")
	table.AddColumn("Value")
	table.AddRow("Cloud Provider", profile.CloudProvider)
	table.AddRow("Currency", profile.Currency)
	table.AddRow("Rows Analyzed", profile.RowCount)
	table.AddRow("Cost Column", profile.CostColumn)
	table.AddRow("Total Cost", fmt.Sprintf("%s %.2f", profile.Currency, profile.TotalCost))
	table.AddRow("Detected Columns", strings.Join(profile.DetectedColumns, ", "))
	uc.console.Println(table.Render())

	if len(profile.CostByService) > 0 {
		uc.console.DisplayTopSpenders("Cost By Service", spendEntries(profile.CostByService), profile.Currency)
	} else {
		uc.console.LogWarning("No service/product column detected; skipping service breakdown")
	}
	if len(profile.CostByProject) > 0 {
		uc.console.DisplayTopSpenders("Cost By Project", spendEntries(profile.CostByProject), profile.Currency)
	}

	uc.console.LogInfo("%s", profile.Notes)
}

func (uc *AdvisorUseCase) displayEstimate(estimate *entity.SavingsEstimate, currency string) {
	table := uc.console.CreateTable()
	table.AddColumn("Metric")
	table.AddColumn("Value")
	table.AddRow("Baseline Monthly Cost", fmt.Sprintf("%s %.2f", currency, estimate.BaselineMonthlyCost))
	table.AddRow("Expected Reduction", fmt.Sprintf("%.2f%%", estimate.ExpectedReductionPercent))
	table.AddRow("Monthly Savings", fmt.Sprintf("%s %.2f", currency, estimate.MonthlySavings))
	table.AddRow("Projected Annual Savings", fmt.Sprintf("%s %.2f", currency, estimate.ProjectedAnnualSavings))
	uc.console.Println(table.Render())

	uc.console.LogInfo("These figures are estimates, not a precise forecast")
}

func (uc *AdvisorUseCase) displayComparison(comparison *entity.ScenarioComparison, currency string) {
	table := uc.console.CreateTable()
	table.AddColumn("Scenario")
	table.AddColumn("Cost")
	table.AddColumn("Delta")
	table.AddColumn("Savings")
	table.AddRow("Baseline", fmt.Sprintf("%s %.2f", currency, comparison.BaselineCost), "-", "-")
	table.AddRow("Scenario A",
		fmt.Sprintf("%s %.2f", currency, comparison.ScenarioACost),
		fmt.Sprintf("%s %.2f", currency, comparison.ScenarioADelta),
		fmt.Sprintf("%.2f%%", comparison.ScenarioASavingsPercent))
	table.AddRow("Scenario B",
		fmt.Sprintf("%s %.2f", currency, comparison.ScenarioBCost),
		fmt.Sprintf("%s %.2f", currency, comparison.ScenarioBDelta),
		fmt.Sprintf("%.2f%%", comparison.ScenarioBSavingsPercent))
	uc.console.Println(table.Render())
}

func (uc *AdvisorUseCase) displayOutline(outline *entity.SummaryOutline) {
	uc.console.LogInfo("%s (audience: %s)", outline.Title, outline.Audience)
	for _, section := range outline.Sections {
		uc.console.Println()
		uc.console.Println(section.Heading)
		for _, bullet := range section.Bullets {
			uc.console.Printf("  • %s\n", bullet)
		}
	}
	uc.console.Println()
}

// spendEntries converte um breakdown para o tipo de exibição do console.
func spendEntries(breakdown entity.CostBreakdown) []types.SpendEntry {
	entries := make([]types.SpendEntry, len(breakdown))
	for i, g := range breakdown {
		entries[i] = types.SpendEntry{Label: g.Name, Cost: g.Cost}
	}
	return entries
}
