// Package storage uploads user files (profile pictures, listing photos)
// to an S3-compatible bucket and hands back public URLs.
package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type Config struct {
	Region    string
	Endpoint  string // optional, for MinIO-style deployments
	PathStyle bool
	PublicURL string // optional base for constructing public links
}

type Store struct {
	client    *s3.Client
	region    string
	publicURL string
}

func New(ctx context.Context, cfg Config) (*Store, error) {
	region := cfg.Region
	if region == "" {
		region = "ap-southeast-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	publicURL := strings.TrimSuffix(cfg.PublicURL, "/")
	if publicURL == "" && cfg.Endpoint != "" {
		publicURL = strings.TrimSuffix(cfg.Endpoint, "/")
	}

	return &Store{client: client, region: region, publicURL: publicURL}, nil
}

// NewFromEnv builds the store from STORAGE_* environment variables.
func NewFromEnv(ctx context.Context) (*Store, error) {
	return New(ctx, Config{
		Region:    os.Getenv("STORAGE_REGION"),
		Endpoint:  os.Getenv("STORAGE_ENDPOINT"),
		PathStyle: strings.EqualFold(os.Getenv("STORAGE_PATH_STYLE"), "true"),
		PublicURL: os.Getenv("STORAGE_PUBLIC_URL"),
	})
}

// Upload writes the blob and returns its public URL.
func (s *Store) Upload(ctx context.Context, bucket, filename string, body io.Reader, contentType string) (string, error) {
	if bucket == "" || filename == "" {
		return "", fmt.Errorf("bucket and filename are required")
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(filename),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("upload %s/%s: %w", bucket, filename, err)
	}

	return s.objectURL(bucket, filename), nil
}

func (s *Store) objectURL(bucket, filename string) string {
	escaped := url.PathEscape(filename)
	if s.publicURL != "" {
		return fmt.Sprintf("%s/%s/%s", s.publicURL, bucket, escaped)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, s.region, escaped)
}
