// Package format renders amounts and percentages the same way across the
// console, the web dashboard and the exported reports.
package format

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Amount formata um valor com separador de milhar e duas casas decimais.
func Amount(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// Whole formata um valor arredondado, com separador de milhar.
func Whole(v float64) string {
	return printer.Sprintf("%.0f", v)
}

// Percent formats a ratio already scaled to 0-100.
func Percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// Full prints the shortest exact representation of v, without rounding.
func Full(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
