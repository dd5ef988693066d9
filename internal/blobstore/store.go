package blobstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Namespace prefixes separate user uploads from generated outputs inside
// the shared storage namespace.
const (
	PrefixUploads   = "uploads"
	PrefixGenerated = "generated"
)

// Store is the object-storage contract the pipeline depends on. Upload
// returns the public URL of the stored object; Delete is addressed by that
// URL and may fail without failing the request that triggered it.
type Store interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
}

// NewKey builds a fresh collision-resistant object key under the given
// namespace prefix: timestamp, random suffix, extension matching the mime
// type. Concurrent requests never collide, so no locking is needed around
// the storage namespace.
func NewKey(prefix, mimeType string) string {
	ts := time.Now().UTC().Format("20060102-150405")
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%s/%s-%s%s", prefix, ts, suffix, ExtensionForMIME(mimeType))
}

// ExtensionForMIME maps a mime type onto a file extension, defaulting to
// .png for anything unrecognized.
func ExtensionForMIME(mimeType string) string {
	switch {
	case strings.Contains(mimeType, "jpeg"), strings.Contains(mimeType, "jpg"):
		return ".jpg"
	case strings.Contains(mimeType, "png"):
		return ".png"
	case strings.Contains(mimeType, "gif"):
		return ".gif"
	case strings.Contains(mimeType, "webp"):
		return ".webp"
	default:
		return ".png"
	}
}
