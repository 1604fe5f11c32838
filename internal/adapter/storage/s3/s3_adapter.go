package s3

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// S3Storage stores property images in a MinIO/S3 bucket. Every upload gets a
// fresh uuid-based key so concurrent uploads never collide.
type S3Storage struct {
	client      *minio.Client
	bucket      string
	endpointURL string
	logger      *zap.Logger
}

func NewS3Storage(endpoint, accessKey, secretKey, bucketName string, useSSL bool, logger *zap.Logger) (*S3Storage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for %s: %w", endpoint, err)
	}

	err = client.MakeBucket(context.Background(), bucketName, minio.MakeBucketOptions{})
	if err != nil {
		exists, errBucketExists := client.BucketExists(context.Background(), bucketName)
		if errBucketExists != nil || !exists {
			return nil, fmt.Errorf("failed to make/verify bucket %s: %w", bucketName, err)
		}
	}

	logger.Info("S3 storage initialized",
		zap.String("endpoint", endpoint), zap.String("bucket", bucketName))

	return &S3Storage{
		client:      client,
		bucket:      bucketName,
		endpointURL: client.EndpointURL().String(),
		logger:      logger,
	}, nil
}

func (s *S3Storage) Upload(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
	ext := filepath.Ext(fileName)
	objectKey := fmt.Sprintf("properties/%s%s", uuid.New().String(), ext)

	_, err := s.client.PutObject(ctx, s.bucket, objectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"original-filename": fileName},
	})
	if err != nil {
		s.logger.Error("PutObject failed",
			zap.String("bucket", s.bucket), zap.String("key", objectKey), zap.Error(err))
		return "", fmt.Errorf("failed to upload object %s: %w", objectKey, err)
	}

	fileURL := fmt.Sprintf("%s/%s/%s", s.endpointURL, s.bucket, objectKey)
	s.logger.Debug("object uploaded",
		zap.String("key", objectKey), zap.Int("size_bytes", len(data)))
	return fileURL, nil
}

// Delete removes the object behind a previously returned URL. Deleting an
// object that is already gone is not an error.
func (s *S3Storage) Delete(ctx context.Context, url string) error {
	prefix := fmt.Sprintf("%s/%s/", s.endpointURL, s.bucket)
	objectKey := strings.TrimPrefix(url, prefix)
	if objectKey == url {
		return fmt.Errorf("url %q does not belong to bucket %s", url, s.bucket)
	}

	if err := s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{}); err != nil {
		s.logger.Error("RemoveObject failed",
			zap.String("bucket", s.bucket), zap.String("key", objectKey), zap.Error(err))
		return fmt.Errorf("failed to remove object %s: %w", objectKey, err)
	}
	return nil
}
