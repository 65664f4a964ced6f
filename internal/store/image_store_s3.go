package store

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-hub/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-user-hub/internal/config"
)

// s3ImageStore is the S3-backed implementation of [ImageStore]. It uploads
// avatar bytes to a bucket on an S3-compatible endpoint (AWS or MinIO) and
// returns the resulting public URL. Only the URL is handed back to the
// credential store; image bytes never touch the database.
type s3ImageStore struct {
	client *s3.Client
	cfg    config.Images
	logger *logger.Logger
}

// NewS3ImageStore constructs an [ImageStore] talking to the endpoint
// described by cfg. Static credentials are used so the same code path works
// against MinIO in development and AWS in production.
func NewS3ImageStore(ctx context.Context, cfg config.Images, log *logger.Logger) (ImageStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		log.Err(err).Str("func", "NewS3ImageStore").Msg("error loading S3 configuration")
		return nil, fmt.Errorf("%w: %w", ErrImageStoreUnavailable, err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	log.Info().Str("func", "NewS3ImageStore").Str("bucket", cfg.Bucket).Msg("image store created")

	return &s3ImageStore{client: client, cfg: cfg, logger: log}, nil
}

// Upload stores the given image bytes under a fresh random key and returns
// the stable public URL of the object.
//
// Any S3-level failure is wrapped into [ErrImageStoreUnavailable] so the
// boundary can map it to the public StorageError taxonomy entry without
// inspecting AWS SDK error types.
func (s *s3ImageStore) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	log := logger.FromContext(ctx)

	key := imageStorageKey(contentType)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Err(err).Str("func", "*s3ImageStore.Upload").Str("key", key).Msg("failed to upload image")
		return "", fmt.Errorf("%w: %w", ErrImageStoreUnavailable, err)
	}

	url := s.objectURL(key)
	log.Debug().Str("func", "*s3ImageStore.Upload").Str("url", url).Msg("image uploaded")

	return url, nil
}

// objectURL builds the stable public URL of an uploaded object. When a
// dedicated PublicBaseURL is configured (e.g. a CDN front) it wins over the
// raw endpoint address.
func (s *s3ImageStore) objectURL(key string) string {
	base := s.cfg.PublicBaseURL
	if base == "" {
		base = s.cfg.Endpoint
	}

	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(base, "/"), s.cfg.Bucket, key)
}

// imageStorageKey generates a collision-free object key of the form
// "user_profiles/<year>/<uuid>.<ext>". The year segment keeps buckets
// browsable; the uuid guarantees uniqueness.
func imageStorageKey(contentType string) string {
	ext := "bin"
	switch contentType {
	case "image/jpeg":
		ext = "jpg"
	case "image/png":
		ext = "png"
	}

	return fmt.Sprintf("user_profiles/%d/%s.%s", time.Now().Year(), uuid.NewString(), ext)
}
