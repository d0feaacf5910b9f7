package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/diillson/sme-health-dashboard-go/internal/shared/types"
	"github.com/pterm/pterm"
)

const (
	trendBarWidth = 30
	gaugeWidth    = 40
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		_ = h.spinner.Stop()
	}
}

// progressHandle é uma implementação do ProgressHandle.
type progressHandle struct {
	bar *pterm.ProgressbarPrinter
}

// ProgressWithTotal cria uma barra de progresso para a geração de relatórios.
func (c *Console) ProgressWithTotal(total int) types.ProgressHandle {
	bar, _ := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle("Exporting reports").
		WithShowElapsedTime(true).
		WithShowCount(true).
		WithRemoveWhenDone(false).
		Start()
	return &progressHandle{bar: bar}
}

// Increment incrementa a barra de progresso.
func (h *progressHandle) Increment() {
	if h.bar != nil {
		h.bar.Increment()
	}
}

// Stop pára a barra de progresso.
func (h *progressHandle) Stop() {
	if h.bar != nil {
		_, _ = h.bar.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayTrendBars exibe receita e despesa mês a mês, com a variação da receita.
func (c *Console) DisplayTrendBars(points []types.MonthlyPoint) {
	maxValue := 0.0
	for _, p := range points {
		maxValue = math.Max(maxValue, math.Max(p.Revenue, p.Expenses))
	}

	if maxValue <= 0 {
		pterm.Warning.Println("Revenue and expenses are all zero for this period")
		return
	}

	tableData := pterm.TableData{
		{"Month", "Revenue", "", "Expenses", "", "Revenue MoM"},
	}

	for i, p := range points {
		change := ""
		if i > 0 {
			change = colorChange(revenueChange(points[i-1].Revenue, p.Revenue))
		}

		tableData = append(tableData, []string{
			p.Month,
			fmt.Sprintf("%.2f", p.Revenue),
			pterm.FgGreen.Sprint(bar(p.Revenue, maxValue, trendBarWidth)),
			fmt.Sprintf("%.2f", p.Expenses),
			pterm.FgRed.Sprint(bar(p.Expenses, maxValue, trendBarWidth)),
			change,
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle("Revenue vs Expenses Trend").WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}

// DisplayScoreGauge exibe o score como uma barra horizontal de 0 a 100.
func (c *Console) DisplayScoreGauge(score int, label string) {
	filled := bar(float64(score), 100, gaugeWidth)
	empty := strings.Repeat("░", gaugeWidth-len([]rune(filled)))

	line := fmt.Sprintf("%s%s  %d/100  %s", scoreColor(score).Sprint(filled), empty, score, label)
	fmt.Println(pterm.DefaultBox.WithTitle("Financial Health Score").Sprint(line))
}

// DisplayReport exibe um relatório narrativo dentro de um painel.
func (c *Console) DisplayReport(title, body string) {
	fmt.Println("\n" + pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgLightMagenta)).Sprint(body))
}

// bar devolve uma barra proporcional a value/limit com no máximo width blocos.
func bar(value, limit float64, width int) string {
	if limit <= 0 || value <= 0 {
		return ""
	}
	n := int(math.Round(value / limit * float64(width)))
	if n > width {
		n = width
	}
	return strings.Repeat("█", n)
}

type changeKind int

const (
	changeFlat changeKind = iota
	changeUp
	changeDown
	changeUndefined
)

// revenueChange calcula a variação percentual entre dois meses.
func revenueChange(prev, cur float64) (string, changeKind) {
	if math.Abs(prev) < 0.01 {
		if math.Abs(cur) < 0.01 {
			return "0%", changeFlat
		}
		return "N/A", changeUndefined
	}

	pct := (cur - prev) / math.Abs(prev) * 100
	switch {
	case math.Abs(pct) < 0.01:
		return "0%", changeFlat
	case pct > 999:
		return ">+999%", changeUp
	case pct < -999:
		return ">-999%", changeDown
	case pct > 0:
		return fmt.Sprintf("+%.2f%%", pct), changeUp
	default:
		return fmt.Sprintf("%.2f%%", pct), changeDown
	}
}

// Receita subindo é verde, caindo é vermelho.
func colorChange(text string, kind changeKind) string {
	switch kind {
	case changeUp:
		return pterm.FgGreen.Sprint(text)
	case changeDown:
		return pterm.FgRed.Sprint(text)
	default:
		return pterm.FgYellow.Sprint(text)
	}
}

func scoreColor(score int) pterm.Color {
	switch {
	case score >= 75:
		return pterm.FgGreen
	case score >= 50:
		return pterm.FgYellow
	default:
		return pterm.FgRed
	}
}
