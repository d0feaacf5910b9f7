package console

import (
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestTable_Render(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	table := NewConsole().CreateTable()
	table.AddColumn("Month")
	table.AddColumn("Revenue")
	table.AddRow("Jan", 120000.5)
	table.AddRow("Feb", 98000)

	out := table.Render()

	assert.Contains(t, out, "Month")
	assert.Contains(t, out, "Revenue")
	assert.Contains(t, out, "120000.5")
	assert.Contains(t, out, "98000")
	assert.Less(t, strings.Index(out, "Jan"), strings.Index(out, "Feb"))
}

func TestBar(t *testing.T) {
	assert.Equal(t, "", bar(0, 100, 10))
	assert.Equal(t, "", bar(50, 0, 10))
	assert.Equal(t, strings.Repeat("█", 5), bar(50, 100, 10))
	assert.Equal(t, strings.Repeat("█", 10), bar(150, 100, 10))
}

func TestRevenueChange(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur float64
		text      string
		kind      changeKind
	}{
		{"flat", 100, 100, "0%", changeFlat},
		{"up", 100, 110, "+10.00%", changeUp},
		{"down", 100, 75, "-25.00%", changeDown},
		{"from zero", 0, 50, "N/A", changeUndefined},
		{"zero to zero", 0, 0, "0%", changeFlat},
		{"huge jump", 1, 20000, ">+999%", changeUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, kind := revenueChange(tt.prev, tt.cur)
			assert.Equal(t, tt.text, text)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestScoreColor(t *testing.T) {
	assert.Equal(t, pterm.FgGreen, scoreColor(100))
	assert.Equal(t, pterm.FgGreen, scoreColor(75))
	assert.Equal(t, pterm.FgYellow, scoreColor(50))
	assert.Equal(t, pterm.FgRed, scoreColor(25))
}
