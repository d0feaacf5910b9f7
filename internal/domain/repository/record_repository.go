package repository

import (
	"context"

	"github.com/diillson/sme-health-dashboard-go/internal/domain/entity"
)

// RecordRepository loads the monthly record set from a source. The source is
// a local file path or an s3://bucket/key URI.
type RecordRepository interface {
	LoadRecords(ctx context.Context, source string) ([]entity.MonthlyRecord, error)
}
