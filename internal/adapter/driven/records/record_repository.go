package records

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/diillson/sme-health-dashboard-go/internal/domain/entity"
	"github.com/diillson/sme-health-dashboard-go/internal/domain/repository"
	"github.com/diillson/sme-health-dashboard-go/internal/shared/types"
)

// RecordRepositoryImpl implementa o RecordRepository para arquivos locais e S3.
type RecordRepositoryImpl struct {
	profile  string
	region   string
	s3Source *S3Source
	mu       sync.Mutex
}

// NewRecordRepository cria uma nova implementação do RecordRepository. Profile
// and region only matter for s3:// sources; empty values use the AWS defaults.
func NewRecordRepository(profile, region string) repository.RecordRepository {
	return &RecordRepositoryImpl{
		profile: profile,
		region:  region,
	}
}

// LoadRecords loads the record set from a local CSV file or an S3 object.
func (r *RecordRepositoryImpl) LoadRecords(ctx context.Context, source string) ([]entity.MonthlyRecord, error) {
	if source == "" {
		return nil, fmt.Errorf("%w: no input file given", types.ErrUnsupportedSource)
	}

	if isS3URI(source) {
		bucket, key, err := parseS3URI(source)
		if err != nil {
			return nil, err
		}
		src, err := r.getS3Source(ctx)
		if err != nil {
			return nil, err
		}
		return src.Load(ctx, bucket, key)
	}

	return loadFile(source)
}

func loadFile(path string) ([]entity.MonthlyRecord, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing input file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening input file: %w", err)
	}
	defer file.Close()

	records, err := ParseCSV(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

func (r *RecordRepositoryImpl) getS3Source(ctx context.Context) (*S3Source, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.s3Source != nil {
		return r.s3Source, nil
	}

	var opts []func(*config.LoadOptions) error
	if r.profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(r.profile))
	}
	if r.region != "" {
		opts = append(opts, config.WithRegion(r.region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for profile %s: %w", r.profile, err)
	}

	r.s3Source = NewS3Source(s3.NewFromConfig(cfg))
	return r.s3Source, nil
}
