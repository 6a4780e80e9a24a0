package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/traineme-api/internal/config"
)

// Storage saves an object and returns its public URL.
type Storage interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

type S3Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3Storage returns nil when no bucket is configured.
func NewS3Storage(cfg *config.Config) *S3Storage {
	if cfg.S3Bucket == "" {
		return nil
	}

	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	publicURL := strings.TrimRight(cfg.S3PublicURL, "/")
	if publicURL == "" {
		if cfg.S3Endpoint != "" {
			publicURL = strings.TrimRight(cfg.S3Endpoint, "/") + "/" + cfg.S3Bucket
		} else {
			publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
		}
	}

	return &S3Storage{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		publicURL: publicURL,
	}
}

func (s *S3Storage) Put(
	ctx context.Context,
	key string,
	body []byte,
	contentType string,
) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return s.publicURL + "/" + key, nil
}
