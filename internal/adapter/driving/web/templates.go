package web

import (
	"html/template"

	"github.com/diillson/sme-health-dashboard-go/internal/domain/entity"
	"github.com/diillson/sme-health-dashboard-go/pkg/format"
)

const pageLayout = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>SME Financial Health Dashboard</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Arial,"Noto Sans Tamil";background:#f4f6fb;color:#1c2333;margin:0;padding:24px}
h1{margin:0 0 12px 0} h3{margin-top:0}
.card{background:#fff;border:1px solid #dde3f0;border-radius:12px;padding:16px;margin:12px 0}
.tiles{display:flex;gap:12px;flex-wrap:wrap}
.tile{flex:1;min-width:160px;background:#fff;border:1px solid #dde3f0;border-radius:12px;padding:14px}
.tile .label{color:#67708a;font-size:13px} .tile .value{font-size:22px;font-weight:600}
table{width:100%;border-collapse:collapse} th,td{border-bottom:1px solid #e6eaf3;padding:6px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
.progress{background:#e6eaf3;border-radius:8px;height:18px;overflow:hidden}
.progress div{height:100%;background:#2e7d32}
.progress.moderate div{background:#f9a825} .progress.high div{background:#c62828}
.ok{color:#2e7d32} .warn{color:#b26a00} .muted{color:#67708a}
.reports{display:flex;gap:12px;flex-wrap:wrap} .reports .card{flex:1;min-width:300px}
svg{max-width:100%;height:auto}
.error{background:#fdecea;border-color:#f5c2bd;color:#8a1c12}
</style>
</head>
<body>
<h1>SME Financial Health Dashboard</h1>
<div class="card">
  <h3>Upload Financial CSV</h3>
  <form method="POST" action="/dashboard" enctype="multipart/form-data">
    <input type="file" name="file" accept=".csv" required>
    <button type="submit">Analyse</button>
  </form>
  <p class="muted">Columns: month, revenue, expenses, loan_payment, cash_in_bank</p>
</div>
{{if .Error}}<div class="card error">{{.Error}}</div>{{end}}
{{with .Dashboard}}
<div class="card">
  <h3>Financial Data Loaded</h3>
  <table>
    <thead><tr><th>Month</th><th>Revenue</th><th>Expenses</th><th>Loan Payment</th><th>Cash In Bank</th></tr></thead>
    <tbody>
    {{range .Records}}<tr><td>{{.Month}}</td><td>{{amount .Revenue}}</td><td>{{amount .Expenses}}</td><td>{{amount .LoanPayment}}</td><td>{{amount .CashInBank}}</td></tr>
    {{end}}
    </tbody>
  </table>
</div>

<div class="tiles">
  <div class="tile"><div class="label">Total Revenue</div><div class="value">{{whole .Assessment.Aggregates.TotalRevenue}}</div></div>
  <div class="tile"><div class="label">Total Profit</div><div class="value">{{whole .Assessment.Aggregates.TotalProfit}}</div></div>
  <div class="tile"><div class="label">Profit Margin</div><div class="value">{{percent .Assessment.Ratios.ProfitMargin}}</div></div>
  <div class="tile"><div class="label">Risk Level</div><div class="value">{{.Assessment.Risk}}</div></div>
</div>

<div class="card">
  <h3>Financial Health Score: {{.Assessment.Score}}/100</h3>
  <div class="progress {{.RiskClass}}"><div style="width: {{.Assessment.Score}}%"></div></div>
  {{if .Assessment.Penalties}}<ul>{{range .Assessment.Penalties}}<li class="muted">{{.Rule}}: -{{.Points}}</li>{{end}}</ul>{{end}}
</div>

<div class="card">
  {{.Chart}}
</div>

<div class="card">
  <h3>Expense Anomaly Detection</h3>
  {{if .Assessment.Anomalies}}
  <p class="warn">Unusual expense spikes detected</p>
  <table>
    <thead><tr><th>Month</th><th>Expenses</th></tr></thead>
    <tbody>{{range .Assessment.Anomalies}}<tr><td>{{.Month}}</td><td>{{amount .Expenses}}</td></tr>{{end}}</tbody>
  </table>
  {{else}}
  <p class="ok">No major expense anomalies detected.</p>
  {{end}}
</div>

<div class="card">
  <h3>Revenue Forecast</h3>
  {{if .Assessment.Forecast.Available}}
  <p>Estimated Next Month Revenue: <strong>{{whole .Assessment.Forecast.Value}}</strong></p>
  {{else}}
  <p class="warn">Not enough data for forecast.</p>
  {{end}}
</div>

<div class="reports">
  <div class="card"><h3>AI Financial Report (English)</h3>{{.EnglishReport}}</div>
  <div class="card" lang="ta"><h3>AI Financial Report (Tamil)</h3>{{.TamilReport}}</div>
</div>
{{end}}
</body>
</html>
`

// pageView é o modelo da página; Dashboard fica nil antes do upload.
type pageView struct {
	Error     string
	Dashboard *dashboardView
}

type dashboardView struct {
	Records       []entity.MonthlyRecord
	Assessment    entity.Assessment
	RiskClass     string
	Chart         template.HTML
	EnglishReport template.HTML
	TamilReport   template.HTML
}

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"amount":  format.Amount,
	"whole":   format.Whole,
	"percent": format.Percent,
}).Parse(pageLayout))

func newDashboardView(records []entity.MonthlyRecord, a entity.Assessment) *dashboardView {
	// O SVG é gerado a partir de números e de rótulos escapados.
	chart := template.HTML(revenueExpenseChart(records, defaultChartConfig()))

	return &dashboardView{
		Records:       records,
		Assessment:    a,
		RiskClass:     riskClass(a.Risk),
		Chart:         chart,
		EnglishReport: reportHTML(a.Report.English),
		TamilReport:   reportHTML(a.Report.Tamil),
	}
}

func riskClass(t entity.RiskTier) string {
	switch t {
	case entity.RiskLow:
		return "low"
	case entity.RiskModerate:
		return "moderate"
	default:
		return "high"
	}
}
