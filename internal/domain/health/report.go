package health

import (
	"strings"
	"text/template"

	"github.com/diillson/sme-health-dashboard-go/internal/domain/entity"
)

// Report thresholds, independent of the scoring ones.
const (
	AdviceMinProfitMargin = 15.0
	AdviceMaxExpenseRatio = 75.0
	AdviceMaxDebtRatio    = 20.0
	AdviceStableMinScore  = 75
)

type reportInput struct {
	score  entity.HealthScore
	ratios entity.Ratios
}

type recommendationRule struct {
	key     string
	applies func(in reportInput) bool
	english string
	tamil   string
}

var recommendationRules = []recommendationRule{
	{
		key:     "margin",
		applies: func(in reportInput) bool { return in.ratios.ProfitMargin < AdviceMinProfitMargin },
		english: "Profit margin is low — improve pricing or product mix.",
		tamil:   "லாப விகிதம் குறைவு — விலை அல்லது பொருள் கலவை மேம்படுத்தவும்.",
	},
	{
		key:     "cost",
		applies: func(in reportInput) bool { return in.ratios.ExpenseRatio > AdviceMaxExpenseRatio },
		english: "Operating expenses are high — reduce unnecessary costs.",
		tamil:   "செலவுகள் அதிகம் — தேவையற்ற செலவுகளை குறைக்கவும்.",
	},
	{
		key:     "debt",
		applies: func(in reportInput) bool { return in.ratios.DebtRatio > AdviceMaxDebtRatio },
		english: "Debt burden is high — consider restructuring loans.",
		tamil:   "கடன் சுமை அதிகம் — கடனை மறுசீரமைக்கவும்.",
	},
	{
		key:     "stability",
		applies: func(in reportInput) bool { return in.score >= AdviceStableMinScore },
		english: "Business shows strong financial stability.",
		tamil:   "வணிகம் நிதி ரீதியாக நிலையாக உள்ளது.",
	},
}

type reportLabel struct {
	key     string
	english string
	tamil   string
}

var reportLabels = []reportLabel{
	{key: "title", english: "SME Financial Health AI Report", tamil: "SME நிதி ஆரோக்கிய AI அறிக்கை"},
	{key: "risk", english: "Risk Level", tamil: "அபாய நிலை"},
	{key: "score", english: "Score", tamil: "மதிப்பெண்"},
	{key: "profit_margin", english: "Profit Margin", tamil: "லாப விகிதம்"},
	{key: "expense_ratio", english: "Expense Ratio", tamil: "செலவு விகிதம்"},
	{key: "debt_ratio", english: "Debt Ratio", tamil: "கடன் விகிதம்"},
	{key: "recommendations", english: "Recommendations", tamil: "பரிந்துரைகள்"},
}

const reportLayout = `{{.L.title}}

{{.L.risk}}: {{.Risk}}
{{.L.score}}: {{.Score}}/100

{{.L.profit_margin}}: {{printf "%.2f" .Ratios.ProfitMargin}}%
{{.L.expense_ratio}}: {{printf "%.2f" .Ratios.ExpenseRatio}}%
{{.L.debt_ratio}}: {{printf "%.2f" .Ratios.DebtRatio}}%

{{.L.recommendations}}:
- {{join .Items "\n- "}}`

var reportTemplate = template.Must(template.New("report").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(reportLayout))

type reportView struct {
	L      map[string]string
	Risk   string
	Score  int
	Ratios entity.Ratios
	Items  []string
}

// Recommendations evaluates every gate and returns the triggered ones in
// declaration order.
func Recommendations(score entity.HealthScore, ratios entity.Ratios) []entity.Recommendation {
	in := reportInput{score: score, ratios: ratios}

	recs := []entity.Recommendation{}
	for _, rule := range recommendationRules {
		if rule.applies(in) {
			recs = append(recs, entity.Recommendation{
				Key:     rule.key,
				English: rule.english,
				Tamil:   rule.tamil,
			})
		}
	}
	return recs
}

// GenerateReport renders the English and Tamil narrative reports.
func GenerateReport(score entity.HealthScore, ratios entity.Ratios, risk entity.RiskTier) entity.Report {
	recs := Recommendations(score, ratios)

	return entity.Report{
		English:         renderReport(entity.LanguageEnglish, score, ratios, risk, recs),
		Tamil:           renderReport(entity.LanguageTamil, score, ratios, risk, recs),
		Recommendations: recs,
	}
}

func renderReport(lang entity.Language, score entity.HealthScore, ratios entity.Ratios, risk entity.RiskTier, recs []entity.Recommendation) string {
	view := reportView{
		L:      labelsFor(lang),
		Risk:   risk.String(),
		Score:  int(score),
		Ratios: ratios,
		Items:  make([]string, len(recs)),
	}
	for i, rec := range recs {
		view.Items[i] = rec.Text(lang)
	}

	var sb strings.Builder
	// O template é estático; escrever num strings.Builder não falha.
	_ = reportTemplate.Execute(&sb, view)
	return sb.String()
}

func labelsFor(lang entity.Language) map[string]string {
	labels := make(map[string]string, len(reportLabels))
	for _, l := range reportLabels {
		if lang == entity.LanguageTamil {
			labels[l.key] = l.tamil
		} else {
			labels[l.key] = l.english
		}
	}
	return labels
}

// Render returns the report text for one language.
func Render(report entity.Report, lang entity.Language) string {
	return report.Text(lang)
}
