package records

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/diillson/sme-health-dashboard-go/internal/domain/entity"
	"github.com/diillson/sme-health-dashboard-go/internal/shared/types"
)

const s3Scheme = "s3://"

// objectGetter é o subconjunto do cliente S3 usado pelo loader.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads CSV record sets stored as S3 objects.
type S3Source struct {
	client objectGetter
}

// NewS3Source creates an S3Source around an S3 client.
func NewS3Source(client objectGetter) *S3Source {
	return &S3Source{client: client}
}

// Load fetches bucket/key and parses it as CSV.
func (s *S3Source) Load(ctx context.Context, bucket, key string) ([]entity.MonthlyRecord, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	return ParseCSV(out.Body)
}

// isS3URI reports whether source uses the s3:// scheme.
func isS3URI(source string) bool {
	return strings.HasPrefix(strings.ToLower(source), s3Scheme)
}

// parseS3URI splits s3://bucket/key into its bucket and key.
func parseS3URI(source string) (string, string, error) {
	rest := source[len(s3Scheme):]
	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %q must look like s3://bucket/key", types.ErrUnsupportedSource, source)
	}
	return bucket, key, nil
}
