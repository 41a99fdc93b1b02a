package main

import (
	"fmt"
	"os"

	"github.com/diillson/optiscale-go/internal/adapter/driven/config"
	"github.com/diillson/optiscale-go/internal/adapter/driven/export"
	"github.com/diillson/optiscale-go/internal/adapter/driving/cli"
	"github.com/diillson/optiscale-go/internal/application/usecase"
	"github.com/diillson/optiscale-go/pkg/console"
	"github.com/diillson/optiscale-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	advisorUseCase := usecase.NewAdvisorUseCase(
		exportRepo,
		configRepo,
		consoleImpl,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetAdvisorUseCase(advisorUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
