package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/diillson/sme-health-dashboard-go/internal/domain/entity"
	"github.com/diillson/sme-health-dashboard-go/internal/domain/repository"
	"github.com/diillson/sme-health-dashboard-go/pkg/format"
	"github.com/jung-kurt/gofpdf"
)

const notEnoughDataForForecast = "Not enough data for forecast."

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

// jsonReport is the document written by ExportToJSON.
type jsonReport struct {
	GeneratedAt time.Time              `json:"generated_at"`
	Records     []entity.MonthlyRecord `json:"records"`
	Assessment  entity.Assessment      `json:"assessment"`
}

func (r *ExportRepositoryImpl) ExportToCSV(records []entity.MonthlyRecord, a entity.Assessment, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv", r.now())
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	rows := [][]string{{"Metric", "Value"}}
	rows = append(rows, metricRows(a)...)
	rows = append(rows, []string{})
	rows = append(rows, []string{"Month", "Revenue", "Expenses", "Loan Payment", "Cash In Bank", "Profit", "Expense Anomaly"})

	anomalous := anomalySet(a.Anomalies)
	for _, rec := range records {
		flag := "no"
		if anomalous[rec] {
			flag = "yes"
		}
		rows = append(rows, []string{
			rec.Month,
			format.Full(rec.Revenue),
			format.Full(rec.Expenses),
			format.Full(rec.LoanPayment),
			format.Full(rec.CashInBank),
			format.Full(rec.Profit()),
			flag,
		})
	}

	if err := writer.WriteAll(rows); err != nil {
		return "", fmt.Errorf("error writing CSV records: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(records []entity.MonthlyRecord, a entity.Assessment, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json", r.now())
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
	if err := encoder.Encode(jsonReport{GeneratedAt: r.now().UTC(), Records: records, Assessment: a}); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(records []entity.MonthlyRecord, a entity.Assessment, filename, outputDir, fontPath string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf", r.now())
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawHeader := func(title string) {
		pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
		pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 12, tr("  "+title), "", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("  %d months analysed", a.Months)), "", 1, "L", true, 0, "")
		pdf.Ln(10)
	}

	drawSectionTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	drawSection := func(title string, content string) {
		if content == "" {
			return
		}
		drawSectionTitle(title)
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	drawFooter := func(page int) {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Generated by SME Financial Health Dashboard (Go) | %s", r.now().Format("2006-01-02"))
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", page)), "", 0, "R", false, 0, "")
	}

	// Página 1: métricas e relatório em inglês
	pdf.AddPage()
	drawHeader("SME Financial Health Report")

	drawSectionTitle("Key Metrics")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	for _, row := range metricRows(a) {
		pdf.CellFormat(95, 6, tr(row[0]), "B", 0, "L", false, 0, "")
		pdf.CellFormat(95, 6, tr(row[1]), "B", 1, "R", false, 0, "")
	}
	pdf.Ln(8)

	var penalties []string
	for _, p := range a.Penalties {
		penalties = append(penalties, fmt.Sprintf("%s: -%d", p.Rule, p.Points))
	}
	drawSection("Score Penalties", strings.Join(penalties, "\n"))

	var anomalies []string
	for _, rec := range a.Anomalies {
		anomalies = append(anomalies, fmt.Sprintf("%s: expenses %s", rec.Month, format.Amount(rec.Expenses)))
	}
	drawSection("Expense Anomalies", strings.Join(anomalies, "\n"))

	var monthly []string
	for _, rec := range records {
		monthly = append(monthly, fmt.Sprintf("%s | revenue %s | expenses %s | loans %s | cash %s",
			rec.Month, format.Amount(rec.Revenue), format.Amount(rec.Expenses),
			format.Amount(rec.LoanPayment), format.Amount(rec.CashInBank)))
	}
	drawSection("Monthly Data", strings.Join(monthly, "\n"))

	drawSection("Report (English)", a.Report.English)
	drawFooter(1)

	// Página 2: relatório em tâmil, apenas com fonte Unicode configurada
	if fontPath != "" {
		pdf.AddUTF8Font("Tamil", "", fontPath)
		if pdf.Err() {
			return "", fmt.Errorf("error loading PDF font %s: %w", fontPath, pdf.Error())
		}

		pdf.AddPage()
		drawHeader("SME Financial Health Report (Tamil)")
		drawSectionTitle("Report (Tamil)")
		pdf.SetFont("Tamil", "", 11)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 6, a.Report.Tamil, "", "L", false)
		drawFooter(2)
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// metricRows lists the key metrics as label/value pairs.
func metricRows(a entity.Assessment) [][]string {
	forecast := notEnoughDataForForecast
	if a.Forecast.Available {
		forecast = format.Whole(a.Forecast.Value)
	}

	var anomalous []string
	for _, rec := range a.Anomalies {
		anomalous = append(anomalous, rec.Month)
	}

	var recs []string
	for _, rec := range a.Report.Recommendations {
		recs = append(recs, rec.English)
	}

	return [][]string{
		{"Total Revenue", format.Full(a.Aggregates.TotalRevenue)},
		{"Total Expenses", format.Full(a.Aggregates.TotalExpenses)},
		{"Total Profit", format.Full(a.Aggregates.TotalProfit)},
		{"Total Loan Payments", format.Full(a.Aggregates.TotalLoans)},
		{"Average Cash In Bank", format.Amount(a.Aggregates.AvgCash)},
		{"Profit Margin %", fmt.Sprintf("%.2f", a.Ratios.ProfitMargin)},
		{"Expense Ratio %", fmt.Sprintf("%.2f", a.Ratios.ExpenseRatio)},
		{"Debt Ratio %", fmt.Sprintf("%.2f", a.Ratios.DebtRatio)},
		{"Financial Health Score", fmt.Sprintf("%d/100", a.Score)},
		{"Risk Level", a.Risk.String()},
		{"Estimated Next Month Revenue", forecast},
		{"Expense Anomalies", strings.Join(anomalous, ", ")},
		{"Recommendations", strings.Join(recs, "\n")},
	}
}

func anomalySet(anomalies []entity.MonthlyRecord) map[entity.MonthlyRecord]bool {
	set := make(map[entity.MonthlyRecord]bool, len(anomalies))
	for _, rec := range anomalies {
		set[rec] = true
	}
	return set
}

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string, now time.Time) (string, error) {
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
	timestamp := now.Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
