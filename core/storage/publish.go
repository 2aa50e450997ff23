package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Publisher uploads snapshot artifacts to the configured bucket.
type Publisher struct {
	client Client
	bucket string
	logger *zap.Logger
}

// NewPublisher creates a publisher for the given bucket.
func NewPublisher(client Client, bucket string, logger *zap.Logger) *Publisher {
	return &Publisher{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// PublishFile uploads a local file under the given object name, creating the
// bucket first if it does not exist yet.
func (p *Publisher) PublishFile(ctx context.Context, path, objectName, contentType string) error {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", p.bucket, err)
		}
		p.logger.Info("created bucket", zap.String("bucket", p.bucket))
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	_, err = p.client.PutObject(ctx, p.bucket, objectName, file, info.Size(), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", objectName, err)
	}

	p.logger.Info("published artifact",
		zap.String("bucket", p.bucket),
		zap.String("object", objectName),
		zap.Int64("bytes", info.Size()),
		zap.String("source", filepath.Base(path)))
	return nil
}
