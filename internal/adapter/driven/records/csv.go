package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/diillson/sme-health-dashboard-go/internal/domain/entity"
	"github.com/diillson/sme-health-dashboard-go/internal/shared/types"
)

// Colunas obrigatórias do arquivo de entrada.
const (
	ColumnMonth       = "month"
	ColumnRevenue     = "revenue"
	ColumnExpenses    = "expenses"
	ColumnLoanPayment = "loan_payment"
	ColumnCashInBank  = "cash_in_bank"
)

// RequiredColumns lists the header columns every record set must provide.
var RequiredColumns = []string{ColumnMonth, ColumnRevenue, ColumnExpenses, ColumnLoanPayment, ColumnCashInBank}

const utf8BOM = "\ufeff"

// ParseCSV reads a header row followed by one row per month. Column names are
// matched case-insensitively and may appear in any order; unknown columns are
// ignored. Any non-numeric amount fails the whole load.
func ParseCSV(r io.Reader) ([]entity.MonthlyRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s", types.ErrMissingColumn, strings.Join(RequiredColumns, ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", types.ErrMalformedRow, err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	records := []entity.MonthlyRecord{}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrMalformedRow, err)
		}

		line, _ := reader.FieldPos(0)
		record, err := parseRow(row, index, line)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", types.ErrMissingColumn, strings.Join(missing, ", "))
	}

	return index, nil
}

func parseRow(row []string, index map[string]int, line int) (entity.MonthlyRecord, error) {
	amount := func(col string) (float64, error) {
		return parseAmount(row[index[col]], col, line)
	}

	record := entity.MonthlyRecord{Month: strings.TrimSpace(row[index[ColumnMonth]])}

	var err error
	if record.Revenue, err = amount(ColumnRevenue); err != nil {
		return entity.MonthlyRecord{}, err
	}
	if record.Expenses, err = amount(ColumnExpenses); err != nil {
		return entity.MonthlyRecord{}, err
	}
	if record.LoanPayment, err = amount(ColumnLoanPayment); err != nil {
		return entity.MonthlyRecord{}, err
	}
	if record.CashInBank, err = amount(ColumnCashInBank); err != nil {
		return entity.MonthlyRecord{}, err
	}

	return record, nil
}

func parseAmount(raw, col string, line int) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: line %d, column %s: %q is not a number", types.ErrMalformedRow, line, col, raw)
	}
	return value, nil
}
