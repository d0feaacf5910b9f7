package repository

import (
	"github.com/diillson/sme-health-dashboard-go/internal/domain/entity"
)

// ExportRepository writes an assessment to disk and returns the absolute path
// of the written file.
type ExportRepository interface {
	ExportToCSV(records []entity.MonthlyRecord, assessment entity.Assessment, filename, outputDir string) (string, error)
	ExportToJSON(records []entity.MonthlyRecord, assessment entity.Assessment, filename, outputDir string) (string, error)
	// fontPath is a UTF-8 TrueType font used for the Tamil page; when empty
	// the PDF only carries the English report.
	ExportToPDF(records []entity.MonthlyRecord, assessment entity.Assessment, filename, outputDir, fontPath string) (string, error)
}
