package types

import "errors"

var (
	ErrEmptyRecordSet        = errors.New("empty record set: no aggregates computable")
	ErrZeroRevenue           = errors.New("zero revenue: ratios undefined")
	ErrMissingColumn         = errors.New("missing required column")
	ErrMalformedRow          = errors.New("malformed row")
	ErrUnsupportedSource     = errors.New("unsupported record source")
	ErrUnsupportedReportType = errors.New("unsupported report type")
	ErrUnsupportedLanguage   = errors.New("unsupported language")
)
