package api

import (
	"context"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
)

// objectStorage is the blob-store surface the handlers depend on, satisfied
// by *storage.Client and by the fake in the tests.
type objectStorage interface {
	UploadFile(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (*minio.UploadInfo, error)
	GeneratePresignedURL(ctx context.Context, objectKey string, duration time.Duration) (string, error)
	DeleteObject(ctx context.Context, objectKey string) error
}

const presignTTL = 15 * time.Minute
