package storage

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
)

// Backend names accepted by the upload endpoint.
const (
	BackendR2     = "r2"
	BackendImages = "images"
)

// ObjectStore puts one object and returns its public URL.
type ObjectStore interface {
	Name() string
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

var AllowedImageTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"image/webp",
}

var (
	unsafeKeyChars = regexp.MustCompile(`[^a-z0-9.]`)
	dashRun        = regexp.MustCompile(`-+`)
)

// SanitizeFilename lowercases name, replaces every character outside
// [a-z0-9.] with a dash and collapses dash runs.
func SanitizeFilename(name string) string {
	clean := unsafeKeyChars.ReplaceAllString(strings.ToLower(name), "-")
	return dashRun.ReplaceAllString(clean, "-")
}

// ObjectKey builds the stored key "{unix millis}-{sanitized name}".
func ObjectKey(now time.Time, filename string) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), SanitizeFilename(filename))
}

// ValidateFileSize validates the file size
func ValidateFileSize(size int64, maxSize int64) error {
	if size > maxSize {
		return fmt.Errorf("file size exceeds maximum allowed size of %d bytes", maxSize)
	}
	return nil
}

// ValidateContentType validates the content type
func ValidateContentType(contentType string, allowedTypes []string) error {
	for _, allowed := range allowedTypes {
		if contentType == allowed {
			return nil
		}
	}
	return fmt.Errorf("content type %s is not allowed", contentType)
}
