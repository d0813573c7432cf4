// Copyright (c) 2026 Arch.krd. All rights reserved.

/*
Package media handles image uploads to S3-compatible object storage.

Uploads are deliberately decoupled from buildings: the admin dashboard first
streams files here, receives public URLs, and only then associates those URLs
with a building row. A failed upload therefore never creates a dangling
image association.
*/
package media

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/archkrd/api/internal/platform/config"
)

// ObjectStorage abstracts the blob store behind the upload endpoint.
type ObjectStorage interface {

	/*
		Put streams one object into the bucket.

		Parameters:
		  - ctx: context.Context
		  - key: string (object key, unique per upload)
		  - contentType: string (e.g. "image/jpeg")
		  - body: io.Reader (file content)

		Returns:
		  - string: Public URL of the stored object
		  - error: Upload failures
	*/
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// S3Storage implements [ObjectStorage] on any S3-compatible endpoint
// (AWS S3, Cloudflare R2, MinIO).
type S3Storage struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

/*
NewS3Storage builds the S3 client from application configuration.

Description: Static credentials and an optional custom endpoint support
R2/MinIO deployments; with no endpoint configured the client targets AWS S3
in the configured region.

Returns:
  - *S3Storage: Ready-to-use storage
  - error: Credential or configuration loading failures
*/
func NewS3Storage(ctx context.Context, cfg *config.Config) (*S3Storage, error) {

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("media: failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(options *s3.Options) {
		if cfg.S3Endpoint != "" {
			options.BaseEndpoint = aws.String(cfg.S3Endpoint)
			options.UsePathStyle = true
		}
	})

	return &S3Storage{
		client:        client,
		bucket:        cfg.S3Bucket,
		publicBaseURL: strings.TrimRight(cfg.S3PublicBaseURL, "/"),
	}, nil
}

// Put streams one object into the bucket and returns its public URL.
func (storage *S3Storage) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {

	_, err := storage.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(storage.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("media: failed to upload object %s: %w", key, err)
	}

	return storage.publicBaseURL + "/" + key, nil
}
