package repository

import (
	"github.com/diillson/optiscale-go/internal/domain/entity"
)

// ExportRepository defines the interface for writing toolkit results to
// report files. Each method returns the absolute path of the file written.
type ExportRepository interface {
	ExportProfileToCSV(profile *entity.CostProfile, filename, outputDir string) (string, error)
	ExportProfileToJSON(profile *entity.CostProfile, filename, outputDir string) (string, error)
	ExportProfileToPDF(profile *entity.CostProfile, filename, outputDir string) (string, error)

	ExportEstimateToCSV(estimate *entity.SavingsEstimate, filename, outputDir string) (string, error)
	ExportEstimateToJSON(estimate *entity.SavingsEstimate, filename, outputDir string) (string, error)
	ExportEstimateToPDF(estimate *entity.SavingsEstimate, filename, outputDir string) (string, error)

	ExportComparisonToCSV(comparison *entity.ScenarioComparison, filename, outputDir string) (string, error)
	ExportComparisonToJSON(comparison *entity.ScenarioComparison, filename, outputDir string) (string, error)
	ExportComparisonToPDF(comparison *entity.ScenarioComparison, filename, outputDir string) (string, error)

	ExportOutlineToCSV(outline *entity.SummaryOutline, filename, outputDir string) (string, error)
	ExportOutlineToJSON(outline *entity.SummaryOutline, filename, outputDir string) (string, error)
	ExportOutlineToPDF(outline *entity.SummaryOutline, filename, outputDir string) (string, error)
}
