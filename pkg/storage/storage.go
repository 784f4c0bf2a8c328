package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"glassfinder/pkg/utils"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// BlobStore persists uploaded image bytes and returns a public URL.
type BlobStore interface {
	Store(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error)
}

// minioAPI is the slice of the MinIO client this package uses, split
// out so tests can substitute a fake.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type minioStore struct {
	api       minioAPI
	bucket    string
	publicURL string
	log       *zap.Logger
}

// NewMinioStore connects to the configured object storage endpoint and
// ensures the image bucket exists.
func NewMinioStore(ctx context.Context, config utils.StorageConfig, log *zap.Logger) (BlobStore, error) {
	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return NewMinioStoreWithAPI(ctx, client, config, log)
}

// NewMinioStoreWithAPI wires an explicit API implementation.
func NewMinioStoreWithAPI(ctx context.Context, api minioAPI, config utils.StorageConfig, log *zap.Logger) (BlobStore, error) {
	store := &minioStore{
		api:       api,
		bucket:    config.Bucket,
		publicURL: strings.TrimRight(config.PublicURL, "/"),
		log:       log,
	}

	exists, err := api.BucketExists(ctx, config.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", config.Bucket, err)
	}
	if !exists {
		if err := api.MakeBucket(ctx, config.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", config.Bucket, err)
		}
	}

	return store, nil
}

// Store writes the blob under a random key and returns its public URL.
func (s *minioStore) Store(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error) {
	key := uuid.New().String()

	_, err := s.api.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.log.Error("Failed to store blob",
			zap.Error(err),
			zap.String("bucket", s.bucket),
			zap.String("key", key),
		)
		return "", fmt.Errorf("store blob %s: %w", key, err)
	}

	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key), nil
}
