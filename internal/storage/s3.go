// Package storage uploads exported documents to an S3-compatible bucket.
// Cloudflare R2 and MinIO both work through the custom endpoint.
package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Storage struct {
	client *s3.Client
	bucket string
}

// New builds the S3 client, or returns nil when storage is not configured.
// Callers treat a nil *S3Storage as "archival disabled".
func New(endpoint, region, accessKey, secretKey, bucket string) (*S3Storage, error) {
	if bucket == "" || accessKey == "" || secretKey == "" {
		return nil, nil
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKey, secretKey, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = true
	})

	return &S3Storage{client: client, bucket: bucket}, nil
}

// UploadPDF archives a generated document under the given key.
func (s *S3Storage) UploadPDF(ctx context.Context, key string, data []byte) error {
	if s == nil {
		return nil
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}
