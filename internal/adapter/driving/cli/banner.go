package cli

import (
	"fmt"

	"github.com/diillson/sme-health-dashboard-go/pkg/version"
	"github.com/fatih/color"
)

const banner = `
   ____  __  __ _____   _   _            _ _   _
  / ___||  \/  | ____| | | | | ___  __ _| | |_| |__
  \___ \| |\/| |  _|   | |_| |/ _ \/ _' | | __| '_ \
   ___) | |  | | |___  |  _  |  __/ (_| | | |_| | | |
  |____/|_|  |_|_____| |_| |_|\___|\__,_|_|\__|_| |_|
`

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))
	fmt.Println(blue(fmt.Sprintf("SME Financial Health Dashboard (v%s)", version.FormatVersion())))
}
