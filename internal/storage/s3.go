package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/TallerServices01/maintenance-tracker/internal/config"
)

// Uploader abstracts the photo object store so handlers can run without S3
// (and tests can substitute a fake).
type Uploader interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) error
	PresignURL(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

func NewPhotoKey() string {
	return fmt.Sprintf("equipos/%s.webp", uuid.NewString())
}

// ======================================================
// S3 implementation
// ======================================================

type S3Uploader struct {
	client *s3.Client
	bucket string
}

func NewS3Uploader(cfg *config.Config) *S3Uploader {
	awsCfg := aws.Config{
		Region: cfg.AWSRegion,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	}

	return &S3Uploader{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.AWSS3Bucket,
	}
}

func (u *S3Uploader) Upload(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}
	return nil
}

// PresignURL returns a time-limited download URL for a private object.
func (u *S3Uploader) PresignURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}

	presignClient := s3.NewPresignClient(u.client)
	request, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return request.URL, nil
}

func (u *S3Uploader) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}

	_, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	return nil
}

var _ Uploader = (*S3Uploader)(nil)
