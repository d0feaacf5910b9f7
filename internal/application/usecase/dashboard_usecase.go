package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/diillson/sme-health-dashboard-go/internal/domain/entity"
	"github.com/diillson/sme-health-dashboard-go/internal/domain/health"
	"github.com/diillson/sme-health-dashboard-go/internal/domain/repository"
	"github.com/diillson/sme-health-dashboard-go/internal/shared/types"
	"github.com/diillson/sme-health-dashboard-go/pkg/format"
	"github.com/pterm/pterm"
)

// Idiomas aceitos por --lang.
const (
	LanguageBoth = "both"

	defaultReportName = "sme_financial_report"
)

// ErrNoInput is returned when no record source was given.
var ErrNoInput = errors.New("no input file: pass a CSV path or s3:// URI")

// RecordRepositoryFactory cria o repositório de registros para um perfil e
// região AWS; ambos podem ser vazios.
type RecordRepositoryFactory func(awsProfile, awsRegion string) repository.RecordRepository

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	newRecordRepo RecordRepositoryFactory
	exportRepo    repository.ExportRepository
	configRepo    repository.ConfigRepository
	console       types.ConsoleInterface
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	newRecordRepo RecordRepositoryFactory,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		newRecordRepo: newRecordRepo,
		exportRepo:    exportRepo,
		configRepo:    configRepo,
		console:       console,
	}
}

// LoadConfig carrega o arquivo de configuração informado em --config-file.
func (uc *DashboardUseCase) LoadConfig(path string) (*types.Config, error) {
	return uc.configRepo.LoadConfigFile(path)
}

// RunDashboard carrega o conjunto de registros, avalia a saúde financeira e
// exibe o resultado no console, exportando os relatórios pedidos.
func (uc *DashboardUseCase) RunDashboard(
	ctx context.Context,
	args *types.CLIArgs,
) error {
	languages, err := ReportLanguages(args.Language)
	if err != nil {
		return err
	}

	if strings.TrimSpace(args.File) == "" {
		return ErrNoInput
	}

	status := uc.console.Status(fmt.Sprintf("Loading financial data from %s...", args.File))
	records, err := uc.newRecordRepo(args.AWSProfile, args.AWSRegion).LoadRecords(ctx, args.File)
	if err != nil {
		status.Stop()
		return err
	}

	status.Update("Evaluating financial health...")
	assessment, err := health.Evaluate(records)
	status.Stop()
	if err != nil {
		return fmt.Errorf("evaluating %s: %w", args.File, err)
	}

	uc.console.LogSuccess("Financial Data Loaded: %d months", len(records))
	uc.console.Print(uc.recordsTable(records).Render())

	uc.console.Println(pterm.FgYellow.Sprint("\nKey Metrics"))
	uc.console.Print(uc.metricsTable(assessment).Render())
	uc.console.DisplayScoreGauge(int(assessment.Score), assessment.Risk.String())

	uc.displayPenalties(assessment.Penalties)
	uc.displayAnomalies(assessment.Anomalies)
	uc.displayForecast(assessment.Forecast)

	if args.Trend {
		uc.console.DisplayTrendBars(trendPoints(records))
	}

	for _, lang := range languages {
		uc.console.DisplayReport(reportTitle(lang), health.Render(assessment.Report, lang))
	}

	uc.exportReports(records, assessment, args)

	return nil
}

// ReportLanguages converte o valor de --lang na lista de relatórios a exibir.
func ReportLanguages(value string) ([]entity.Language, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", LanguageBoth:
		return []entity.Language{entity.LanguageEnglish, entity.LanguageTamil}, nil
	case string(entity.LanguageEnglish):
		return []entity.Language{entity.LanguageEnglish}, nil
	case string(entity.LanguageTamil):
		return []entity.Language{entity.LanguageTamil}, nil
	default:
		return nil, fmt.Errorf("%w: %q (use en, ta or both)", types.ErrUnsupportedLanguage, value)
	}
}

// exportReports grava cada formato pedido; falhas são registradas e não interrompem os demais.
func (uc *DashboardUseCase) exportReports(records []entity.MonthlyRecord, a entity.Assessment, args *types.CLIArgs) {
	if args.ReportName == "" || len(args.ReportType) == 0 {
		return
	}

	progress := uc.console.ProgressWithTotal(len(args.ReportType))
	var results []func()

	for _, reportType := range args.ReportType {
		reportType = strings.ToLower(strings.TrimSpace(reportType))

		var (
			path string
			err  error
		)
		switch reportType {
		case "csv":
			path, err = uc.exportRepo.ExportToCSV(records, a, args.ReportName, args.Dir)
		case "json":
			path, err = uc.exportRepo.ExportToJSON(records, a, args.ReportName, args.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(records, a, args.ReportName, args.Dir, args.PDFFont)
		default:
			err = fmt.Errorf("%w: %q", types.ErrUnsupportedReportType, reportType)
		}
		progress.Increment()

		label := strings.ToUpper(reportType)
		if err != nil {
			results = append(results, func() { uc.console.LogError("Failed to export to %s: %s", label, err) })
		} else {
			results = append(results, func() { uc.console.LogSuccess("Successfully exported to %s: %s", label, path) })
		}
	}

	progress.Stop()
	for _, report := range results {
		report()
	}
}

func (uc *DashboardUseCase) recordsTable(records []entity.MonthlyRecord) types.TableInterface {
	table := uc.console.CreateTable()
	table.AddColumn("Month")
	table.AddColumn("Revenue")
	table.AddColumn("Expenses")
	table.AddColumn("Loan Payment")
	table.AddColumn("Cash In Bank")

	for _, rec := range records {
		table.AddRow(
			rec.Month,
			format.Amount(rec.Revenue),
			format.Amount(rec.Expenses),
			format.Amount(rec.LoanPayment),
			format.Amount(rec.CashInBank),
		)
	}
	return table
}

func (uc *DashboardUseCase) metricsTable(a entity.Assessment) types.TableInterface {
	table := uc.console.CreateTable()
	table.AddColumn("Metric")
	table.AddColumn("Value")

	table.AddRow("Total Revenue", format.Full(a.Aggregates.TotalRevenue))
	table.AddRow("Total Expenses", format.Full(a.Aggregates.TotalExpenses))
	table.AddRow("Total Profit", format.Full(a.Aggregates.TotalProfit))
	table.AddRow("Profit Margin", format.Percent(a.Ratios.ProfitMargin))
	table.AddRow("Expense Ratio", format.Percent(a.Ratios.ExpenseRatio))
	table.AddRow("Debt Ratio", format.Percent(a.Ratios.DebtRatio))
	table.AddRow("Financial Health Score", fmt.Sprintf("%d/100", a.Score))
	table.AddRow("Risk Level", a.Risk.String())
	return table
}

func (uc *DashboardUseCase) displayPenalties(penalties []entity.Penalty) {
	if len(penalties) == 0 {
		return
	}
	uc.console.LogInfo("Score penalties:")
	for _, p := range penalties {
		uc.console.Printf("  - %s: -%d\n", p.Rule, p.Points)
	}
}

func (uc *DashboardUseCase) displayAnomalies(anomalies []entity.MonthlyRecord) {
	uc.console.Println(pterm.FgYellow.Sprint("\nExpense Anomaly Detection"))
	if len(anomalies) == 0 {
		uc.console.LogSuccess("No major expense anomalies detected.")
		return
	}

	uc.console.LogWarning("Unusual expense spikes detected in %d month(s)", len(anomalies))
	table := uc.console.CreateTable()
	table.AddColumn("Month")
	table.AddColumn("Expenses")
	for _, rec := range anomalies {
		table.AddRow(rec.Month, format.Amount(rec.Expenses))
	}
	uc.console.Print(table.Render())
}

func (uc *DashboardUseCase) displayForecast(f entity.Forecast) {
	uc.console.Println(pterm.FgYellow.Sprint("\nRevenue Forecast"))
	if !f.Available {
		uc.console.LogWarning("Not enough data for forecast.")
		return
	}
	uc.console.LogInfo("Estimated Next Month Revenue: %s", format.Whole(f.Value))
}

func trendPoints(records []entity.MonthlyRecord) []types.MonthlyPoint {
	points := make([]types.MonthlyPoint, len(records))
	for i, rec := range records {
		points[i] = types.MonthlyPoint{Month: rec.Month, Revenue: rec.Revenue, Expenses: rec.Expenses}
	}
	return points
}

func reportTitle(lang entity.Language) string {
	if lang == entity.LanguageTamil {
		return "AI Financial Report (Tamil)"
	}
	return "AI Financial Report (English)"
}

// DefaultReportName is used when a report type is requested without --report-name.
func DefaultReportName() string {
	return defaultReportName
}
