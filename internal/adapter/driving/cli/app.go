package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/diillson/optiscale-go/internal/application/usecase"
	"github.com/diillson/optiscale-go/internal/shared/types"
	"github.com/diillson/optiscale-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd        *cobra.Command
	advisorUseCase *usecase.AdvisorUseCase
	version        string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "optiscale",
		Short:   "OptiScale FinOps Toolkit CLI",
		Long:    "Deterministic cost profiling, savings projection, scenario comparison and executive summary outlining over cloud billing data.",
		Version: formattedVersion,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			displayWelcomeBanner(app.version)
			go version.CheckLatestVersion(app.version)
		},
	}

	rootCmd.SetVersionTemplate(`{{printf "OptiScale FinOps Toolkit version: %s\n" .Version}}`)

	// Flags compartilhadas por todos os subcomandos
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("provider", "P", "", "Cloud provider label echoed in results (default: aws)")
	rootCmd.PersistentFlags().StringP("currency", "c", "", "3-letter currency code echoed in results (default: USD)")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Base name for the report files (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Report types to export: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	rootCmd.AddCommand(app.newProfileCommand())
	rootCmd.AddCommand(app.newEstimateCommand())
	rootCmd.AddCommand(app.newCompareCommand())
	rootCmd.AddCommand(app.newOutlineCommand())

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetAdvisorUseCase sets the advisor use case for the CLI app.
func (app *CLIApp) SetAdvisorUseCase(useCase *usecase.AdvisorUseCase) {
	app.advisorUseCase = useCase
}

// parseArgs transforma as flags persistentes em um CLIArgs.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	flags := cmd.Flags()
	configFile, _ := flags.GetString("config-file")
	provider, _ := flags.GetString("provider")
	currency, _ := flags.GetString("currency")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")

	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	return &types.CLIArgs{
		ConfigFile:    configFile,
		CloudProvider: provider,
		Currency:      currency,
		ReportName:    reportName,
		ReportType:    reportType,
		Dir:           dir,
	}, nil
}

func (app *CLIApp) newProfileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profile [csv-file]",
		Short: "Parse and profile a billing CSV into aggregated spend metrics",
		Long: "Reads comma-delimited billing data (from a file or stdin), detects the cost, " +
			"service and project columns by name, and prints total spend with the top-20 " +
			"breakdowns by service and project.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliArgs, err := app.parseArgs(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cliArgs.InputFile = args[0]
			}
			return app.advisorUseCase.RunProfile(context.Background(), cliArgs)
		},
	}
}

func (app *CLIApp) newEstimateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "estimate <baseline-monthly-cost> <reduction-percent>",
		Short: "Project monthly and annual savings from a reduction percentage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliArgs, err := app.parseArgs(cmd)
			if err != nil {
				return err
			}
			baseline, err := parseNumber(args[0], "baseline-monthly-cost")
			if err != nil {
				return err
			}
			percent, err := parseNumber(args[1], "reduction-percent")
			if err != nil {
				return err
			}
			return app.advisorUseCase.RunEstimate(context.Background(), cliArgs, baseline, percent)
		},
	}
}

func (app *CLIApp) newCompareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <baseline-cost> <scenario-a-cost> <scenario-b-cost>",
		Short: "Compare two alternative cost scenarios against a baseline",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliArgs, err := app.parseArgs(cmd)
			if err != nil {
				return err
			}
			values := make([]float64, 3)
			names := []string{"baseline-cost", "scenario-a-cost", "scenario-b-cost"}
			for i, arg := range args {
				v, err := parseNumber(arg, names[i])
				if err != nil {
					return err
				}
				values[i] = v
			}
			return app.advisorUseCase.RunCompare(context.Background(), cliArgs, values[0], values[1], values[2])
		},
	}
}

func (app *CLIApp) newOutlineCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outline <goal>",
		Short: "Generate a fixed-structure executive summary outline for a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliArgs, err := app.parseArgs(cmd)
			if err != nil {
				return err
			}
			audience, _ := cmd.Flags().GetString("audience")
			cliArgs.Audience = audience
			return app.advisorUseCase.RunOutline(context.Background(), cliArgs, args[0])
		},
	}
	cmd.Flags().StringP("audience", "a", "", "Target persona, e.g. cxo, engineering, finance (default: cxo)")
	return cmd
}

// parseNumber converte um argumento posicional em float64.
func parseNumber(arg, name string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("argument %s must be a number, got %q", name, arg)
	}
	return v, nil
}
