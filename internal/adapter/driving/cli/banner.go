package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/diillson/optiscale-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
          /$$$$$$              /$$     /$$  /$$$$$$                      /$$
         /$$__  $$            | $$    |__/ /$$__  $$                    | $$
        | $$  \ $$  /$$$$$$  /$$$$$$   /$$| $$  \__/  /$$$$$$$  /$$$$$$ | $$  /$$$$$$
        | $$  | $$ /$$__  $$|_  $$_/  | $$|  $$$$$$  /$$_____/ |____  $$| $$ /$$__  $$
        | $$  | $$| $$  \ $$  | $$    | $$ \____  $$| $$        /$$$$$$$| $$| $$$$$$$$
        | $$  | $$| $$  | $$  | $$ /$$| $$ /$$  \ $$| $$       /$$__  $$| $$| $$_____/
        |  $$$$$$/| $$$$$$$/  |  $$$$/| $$|  $$$$$$/|  $$$$$$$|  $$$$$$$| $$|  $$$$$$$
         \______/ | $$____/    \___/  |__/ \______/  \_______/ \_______/|__/ \_______/
                  | $$
                  | $$
                  |__/
        `
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(cyan(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("OptiScale FinOps Toolkit CLI (v%s)", formattedVersion)))
}
