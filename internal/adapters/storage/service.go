// Package storage provides a domain-agnostic interface for S3-compatible
// object storage. The series tool uses it to publish generated CSV files.
package storage

import (
	"context"
	"io"
)

// DefaultMaxObjectSize bounds a single upload (50 MiB).
const DefaultMaxObjectSize int64 = 50 << 20

// ObjectStore defines the object storage operations the application needs.
type ObjectStore interface {
	// EnsureBucketExists creates the bucket if it doesn't exist.
	EnsureBucketExists(ctx context.Context, bucket string) error

	// UploadFile uploads reader under folder and returns the object key.
	// A short random suffix is added to fileName so runs never overwrite
	// each other.
	UploadFile(ctx context.Context, bucket, folder, fileName, contentType string, reader io.Reader, size int64) (string, error)
}

// Config defines the configuration interface for storage.
type Config interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	IsMinIOEnabled() bool
}
