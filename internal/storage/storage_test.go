package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "photo.jpg", want: "photo.jpg"},
		{input: "My Photo.JPG", want: "my-photo.jpg"},
		{input: "café  crème (1).png", want: "caf-cr-me-1-.png"},
		{input: "a---b", want: "a-b"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.input))
		})
	}
}

func TestObjectKey(t *testing.T) {
	now := time.UnixMilli(1712345678901)
	assert.Equal(t, "1712345678901-iced-latte.webp", ObjectKey(now, "Iced Latte.webp"))
}

func TestValidateContentType(t *testing.T) {
	assert.NoError(t, ValidateContentType("image/png", AllowedImageTypes))
	assert.Error(t, ValidateContentType("application/pdf", AllowedImageTypes))
}

func TestValidateFileSize(t *testing.T) {
	assert.NoError(t, ValidateFileSize(10, 10))
	assert.Error(t, ValidateFileSize(11, 10))
}

func TestNewS3StorageRequiresBucketAndKey(t *testing.T) {
	assert.Nil(t, NewS3Storage(s3ConfigForTest("", "key")))
	assert.Nil(t, NewS3Storage(s3ConfigForTest("bucket", "")))
	assert.NotNil(t, NewS3Storage(s3ConfigForTest("bucket", "key")))
}

func TestNewCloudinaryStorageUnconfigured(t *testing.T) {
	s, err := NewCloudinaryStorage("", "")
	assert.NoError(t, err)
	assert.Nil(t, s)
}
