// Package storage archives submitted source texts in an S3-compatible object store.
// Implementations stream the text and never touch local disk.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// TextContentType is the content type of archived texts.
const TextContentType = "text/plain; charset=utf-8"

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known, or -1 to let the backend chunk the upload.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the archive used by the dictionary service.
type Storage interface {
	// Put uploads an object under the given key.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
}

// TextKey returns a fresh object key for a text submitted by userID.
func TextKey(userID int64) string {
	return fmt.Sprintf("texts/%d/%s.txt", userID, uuid.NewString())
}
