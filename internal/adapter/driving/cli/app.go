package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/diillson/sme-health-dashboard-go/internal/application/usecase"
	"github.com/diillson/sme-health-dashboard-go/internal/shared/types"
	"github.com/diillson/sme-health-dashboard-go/pkg/version"
	"github.com/spf13/cobra"
)

// ServeFunc inicia o dashboard web com os argumentos do comando serve.
type ServeFunc func(ctx context.Context, args *types.ServeArgs) error

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	serve            ServeFunc
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:   "sme-health [file]",
		Short: "SME Financial Health Dashboard",
		Long: "Analyses monthly revenue, expenses, loan payments and cash balances, " +
			"scores the business' financial health and writes an English/Tamil report.",
		Version:       formattedVersion,
		Args:          cobra.MaximumNArgs(1),
		RunE:          app.runCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{printf "SME Health Dashboard version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.Flags().StringP("file", "f", "", "CSV file with monthly financial data (local path or s3://bucket/key)")
	rootCmd.Flags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.Flags().StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf")
	rootCmd.Flags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.Flags().StringP("lang", "l", usecase.LanguageBoth, "Report language: en, ta or both")
	rootCmd.Flags().Bool("trend", false, "Display revenue vs expenses bars with month over month change")
	rootCmd.Flags().String("pdf-font", "", "UTF-8 TrueType font used for the Tamil page of the PDF report")
	rootCmd.PersistentFlags().String("aws-profile", "", "AWS profile used to read s3:// sources")
	rootCmd.PersistentFlags().String("aws-region", "", "AWS region used to read s3:// sources")

	rootCmd.AddCommand(app.newServeCommand())

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// ExecuteContext runs the CLI application; ctx is cancelled on shutdown signals.
func (app *CLIApp) ExecuteContext(ctx context.Context) error {
	return app.rootCmd.ExecuteContext(ctx)
}

// SetArgs substitui os argumentos de linha de comando (usado em testes).
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs(cmd *cobra.Command, positional []string) (*types.CLIArgs, error) {
	flags := cmd.Flags()

	configFile, _ := flags.GetString("config-file")
	file, _ := flags.GetString("file")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	lang, _ := flags.GetString("lang")
	trend, _ := flags.GetBool("trend")
	pdfFont, _ := flags.GetString("pdf-font")
	awsProfile, _ := flags.GetString("aws-profile")
	awsRegion, _ := flags.GetString("aws-region")

	if file == "" && len(positional) > 0 {
		file = positional[0]
	}

	args := &types.CLIArgs{
		ConfigFile: configFile,
		File:       file,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
		Language:   lang,
		Trend:      trend,
		PDFFont:    pdfFont,
		AWSProfile: awsProfile,
		AWSRegion:  awsRegion,
	}

	if args.ConfigFile != "" {
		cfg, err := app.dashboardUseCase.LoadConfig(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		mergeConfig(args, cfg, func(name string) bool {
			if name == "file" && len(positional) > 0 {
				return true
			}
			return flags.Changed(name)
		})
	}

	if args.ReportName == "" && flags.Changed("report-type") {
		args.ReportName = usecase.DefaultReportName()
	}

	if args.Dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		args.Dir = cwd
	} else {
		absDir, err := filepath.Abs(args.Dir)
		if err != nil {
			return nil, err
		}
		args.Dir = absDir
	}

	return args, nil
}

// mergeConfig aplica os valores do arquivo de configuração às flags que não
// foram informadas na linha de comando.
func mergeConfig(args *types.CLIArgs, cfg *types.Config, changed func(name string) bool) {
	if cfg == nil {
		return
	}
	if !changed("file") && cfg.File != "" {
		args.File = cfg.File
	}
	if !changed("report-name") && cfg.ReportName != "" {
		args.ReportName = cfg.ReportName
	}
	if !changed("report-type") && len(cfg.ReportType) > 0 {
		args.ReportType = cfg.ReportType
	}
	if !changed("dir") && cfg.Dir != "" {
		args.Dir = cfg.Dir
	}
	if !changed("lang") && cfg.Language != "" {
		args.Language = cfg.Language
	}
	if !changed("trend") && cfg.Trend {
		args.Trend = true
	}
	if !changed("pdf-font") && cfg.PDFFont != "" {
		args.PDFFont = cfg.PDFFont
	}
	if !changed("aws-profile") && cfg.AWS.Profile != "" {
		args.AWSProfile = cfg.AWS.Profile
	}
	if !changed("aws-region") && cfg.AWS.Region != "" {
		args.AWSRegion = cfg.AWS.Region
	}
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, positional []string) error {
	displayWelcomeBanner()

	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs(cmd, positional)
	if err != nil {
		return err
	}

	return app.dashboardUseCase.RunDashboard(cmd.Context(), cliArgs)
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}

// SetServeFunc define a função que sobe o dashboard web.
func (app *CLIApp) SetServeFunc(serve ServeFunc) {
	app.serve = serve
}
