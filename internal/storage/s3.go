package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	appconfig "github.com/Marco-XM/arixyDashboardBack/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3Store implements BlobStore against any S3-compatible endpoint
// (AWS S3, Cloudflare R2, MinIO).
type s3Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3Store creates a BlobStore from the application configuration.
func NewS3Store(cfg *appconfig.Config) (BlobStore, error) {
	if cfg.StorageAccessKey == "" || cfg.StorageSecretKey == "" {
		return nil, fmt.Errorf("%w: access key and secret key are required", ErrNotConfigured)
	}
	if cfg.StorageBucket == "" {
		return nil, fmt.Errorf("%w: bucket name is required", ErrNotConfigured)
	}

	region := cfg.StorageRegion
	if region == "" {
		region = "auto"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			"",
		)),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage credentials: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.StorageEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.StorageEndpoint)
		}
		// Path-style addressing works with every S3-compatible vendor
		o.UsePathStyle = true
	})

	publicURL := strings.TrimSuffix(cfg.StoragePublicURL, "/")
	if publicURL == "" {
		publicURL = fmt.Sprintf("%s/%s", strings.TrimSuffix(cfg.StorageEndpoint, "/"), cfg.StorageBucket)
	}

	return &s3Store{
		client:    client,
		bucket:    cfg.StorageBucket,
		publicURL: publicURL,
	}, nil
}

func (s *s3Store) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %q: %w", key, err)
	}

	return s.URL(key), nil
}

func (s *s3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %q: %w", key, err)
	}
	return nil
}

func (s *s3Store) URL(key string) string {
	return fmt.Sprintf("%s/%s", s.publicURL, key)
}
