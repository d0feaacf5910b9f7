package records

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/diillson/sme-health-dashboard-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoadRecords_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample_financials.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0600))

	records, err := NewRecordRepository("", "").LoadRecords(context.Background(), path)

	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestLoadRecords_LocalFileErrors(t *testing.T) {
	repo := NewRecordRepository("", "")
	dir := t.TempDir()

	_, err := repo.LoadRecords(context.Background(), "")
	assert.ErrorIs(t, err, types.ErrUnsupportedSource)

	_, err = repo.LoadRecords(context.Background(), filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = repo.LoadRecords(context.Background(), dir)
	assert.ErrorContains(t, err, "is a directory")

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("month,revenue\nJan,1\n"), 0600))
	_, err = repo.LoadRecords(context.Background(), bad)
	assert.ErrorIs(t, err, types.ErrMissingColumn)
	assert.ErrorContains(t, err, "bad.csv")
}

func TestLoadRecords_S3(t *testing.T) {
	client := new(mockS3Client)
	client.On("GetObject", mock.Anything, objectInput("finance", "2024.csv")).
		Return(&s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(sampleCSV))}, nil)

	repo := &RecordRepositoryImpl{s3Source: NewS3Source(client)}
	records, err := repo.LoadRecords(context.Background(), "s3://finance/2024.csv")

	require.NoError(t, err)
	assert.Len(t, records, 3)
	client.AssertExpectations(t)
}

func TestLoadRecords_InvalidS3URI(t *testing.T) {
	repo := &RecordRepositoryImpl{}

	_, err := repo.LoadRecords(context.Background(), "s3://only-bucket")

	assert.ErrorIs(t, err, types.ErrUnsupportedSource)
}
