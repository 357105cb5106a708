// Package media uploads profile photos to an external store and returns the
// public URL of the stored object.
package media

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// Providers understood by New.
const (
	ProviderNone       = "none"
	ProviderCloudinary = "cloudinary"
	ProviderS3         = "s3"
)

// Uploader stores content under a name derived from name and returns its URL.
type Uploader interface {
	Upload(ctx context.Context, name string, content io.Reader) (string, error)
}

// Noop accepts every upload and stores nothing. The returned URL is empty,
// which leaves the profile photo unset.
type Noop struct{}

func (Noop) Upload(ctx context.Context, name string, content io.Reader) (string, error) {
	return "", ctx.Err()
}

// objectKey builds a collision free key that keeps the original extension.
func objectKey(folder, name string) string {
	ext := strings.ToLower(path.Ext(name))
	key := uuid.NewString() + ext
	if folder == "" {
		return key
	}
	return strings.Trim(folder, "/") + "/" + key
}
