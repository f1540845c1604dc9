// Package storage uploads workflow artifacts to object storage and owns
// the key scheme shared by the dataset packager and the job submitter.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage uploads objects to a single bucket.
type S3Storage struct {
	bucket   string
	uploader *manager.Uploader
}

// New creates S3Storage for the given region and bucket
func New(ctx context.Context, region, bucket string) (*S3Storage, error) {
	if len(bucket) == 0 {
		return nil, fmt.Errorf("bucket must be set")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error while loading aws config: %s", err)
	}
	return NewWithClient(bucket, s3.NewFromConfig(cfg)), nil
}

// NewWithClient creates S3Storage from a preconfigured s3 client
func NewWithClient(bucket string, client manager.UploadAPIClient) *S3Storage {
	return &S3Storage{
		bucket:   bucket,
		uploader: manager.NewUploader(client),
	}
}

// Upload puts body under key and returns the resulting storage location
func (s *S3Storage) Upload(ctx context.Context, key string, body io.Reader) (string, error) {
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	})
	if err != nil {
		return "", fmt.Errorf("error while uploading %q to bucket %q: %s", key, s.bucket, err)
	}
	return Location(s.bucket, key), nil
}

// Bucket returns the backing bucket name
func (s *S3Storage) Bucket() string { return s.bucket }

// DataKey returns the storage key of a packaged dataset channel file
func DataKey(prefix, channel, file string) string {
	return path.Join("data", prefix, channel, file)
}

// OutputLocation returns the location training artifacts are written to
func OutputLocation(bucket, prefix string) string {
	return Location(bucket, path.Join(prefix, "output"))
}

// Location renders a storage URI for the given bucket and key
func Location(bucket, key string) string {
	return fmt.Sprintf("s3://%s/%s", bucket, key)
}
