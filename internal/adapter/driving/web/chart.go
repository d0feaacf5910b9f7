package web

import (
	"fmt"
	"math"
	"strings"

	"github.com/diillson/sme-health-dashboard-go/internal/domain/entity"
	"github.com/diillson/sme-health-dashboard-go/pkg/format"
)

// chartConfig holds rendering parameters for the SVG line chart.
type chartConfig struct {
	Width        int
	Height       int
	MarginTop    int
	MarginRight  int
	MarginBottom int
	MarginLeft   int
	GridColor    string
	TextColor    string
	FontSize     int
	Title        string
}

func defaultChartConfig() chartConfig {
	return chartConfig{
		Width:        760,
		Height:       340,
		MarginTop:    40,
		MarginRight:  30,
		MarginBottom: 60,
		MarginLeft:   90,
		GridColor:    "#e8e8e8",
		TextColor:    "#333333",
		FontSize:     11,
		Title:        "Revenue vs Expenses Trend",
	}
}

func (c chartConfig) plotArea() (x, y, w, h int) {
	return c.MarginLeft, c.MarginTop,
		c.Width - c.MarginLeft - c.MarginRight,
		c.Height - c.MarginTop - c.MarginBottom
}

type chartSeries struct {
	Name   string
	Color  string
	Values []float64
}

// revenueExpenseChart desenha receita e despesa por mês como duas linhas.
func revenueExpenseChart(records []entity.MonthlyRecord, cfg chartConfig) string {
	if len(records) == 0 {
		return emptySVG(cfg, "No data")
	}

	labels := make([]string, len(records))
	revenue := make([]float64, len(records))
	expenses := make([]float64, len(records))
	for i, rec := range records {
		labels[i] = rec.Month
		revenue[i] = rec.Revenue
		expenses[i] = rec.Expenses
	}

	return lineChart([]chartSeries{
		{Name: "Revenue", Color: "#2e7d32", Values: revenue},
		{Name: "Expenses", Color: "#c62828", Values: expenses},
	}, labels, cfg)
}

func lineChart(series []chartSeries, labels []string, cfg chartConfig) string {
	px, py, pw, ph := cfg.plotArea()
	n := len(labels)

	minVal, maxVal := math.MaxFloat64, -math.MaxFloat64
	for _, s := range series {
		for _, v := range s.Values {
			minVal = math.Min(minVal, v)
			maxVal = math.Max(maxVal, v)
		}
	}
	vRange := maxVal - minVal
	if vRange < 0.001 {
		vRange = math.Max(math.Abs(maxVal), 1)
	}
	minVal -= vRange * 0.05
	maxVal += vRange * 0.05
	vRange = maxVal - minVal

	xFor := func(i int) float64 {
		if n == 1 {
			return float64(px) + float64(pw)/2
		}
		return float64(px) + float64(i)*float64(pw)/float64(n-1)
	}
	yFor := func(v float64) float64 {
		return float64(py+ph) - (v-minVal)/vRange*float64(ph)
	}

	var sb strings.Builder
	sb.WriteString(svgHeader(cfg))
	sb.WriteString(fmt.Sprintf(`<rect x="0" y="0" width="%d" height="%d" fill="#ffffff"/>`, cfg.Width, cfg.Height))
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="20" font-size="14" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`,
		cfg.Width/2, cfg.TextColor, escapeXML(cfg.Title)))

	gridLines := 5
	for i := 0; i <= gridLines; i++ {
		val := minVal + vRange*float64(i)/float64(gridLines)
		y := yFor(val)
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="%s" stroke-dasharray="3,3"/>`,
			px, y, px+pw, y, cfg.GridColor))
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%.1f" font-size="%d" fill="%s" text-anchor="end">%s</text>`,
			px-6, y+4, cfg.FontSize, cfg.TextColor, format.Whole(val)))
	}

	for i, label := range labels {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%d" font-size="%d" fill="%s" text-anchor="middle">%s</text>`,
			xFor(i), py+ph+18, cfg.FontSize, cfg.TextColor, escapeXML(label)))
	}

	for _, s := range series {
		parts := make([]string, 0, len(s.Values))
		for i, v := range s.Values {
			cmd := "L"
			if i == 0 {
				cmd = "M"
			}
			parts = append(parts, fmt.Sprintf("%s%.1f,%.1f", cmd, xFor(i), yFor(v)))
		}
		sb.WriteString(fmt.Sprintf(`<path d="%s" fill="none" stroke="%s" stroke-width="2"/>`,
			strings.Join(parts, " "), s.Color))
		for i, v := range s.Values {
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="%s"><title>%s %s: %s</title></circle>`,
				xFor(i), yFor(v), s.Color, escapeXML(s.Name), escapeXML(labels[i]), format.Amount(v)))
		}
	}

	// Legenda
	legendY := cfg.Height - 16
	for i, s := range series {
		lx := px + i*120
		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="12" height="12" fill="%s"/>`, lx, legendY-10, s.Color))
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-size="%d" fill="%s">%s</text>`,
			lx+18, legendY, cfg.FontSize, cfg.TextColor, escapeXML(s.Name)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func svgHeader(cfg chartConfig) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">`,
		cfg.Width, cfg.Height, cfg.Width, cfg.Height)
}

func emptySVG(cfg chartConfig, msg string) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d"><rect width="%d" height="%d" fill="#f5f5f5"/><text x="%d" y="%d" text-anchor="middle" fill="#999" font-size="14">%s</text></svg>`,
		cfg.Width, cfg.Height, cfg.Width, cfg.Height, cfg.Width/2, cfg.Height/2, escapeXML(msg))
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}
