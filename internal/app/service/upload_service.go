package service

import (
	"context"
	"io"
	"time"

	"github.com/ikkim/creme-backend/internal/storage"
	"github.com/ikkim/creme-backend/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// FileUpload is one file handed to the upload gateway.
type FileUpload struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// UploadService stores images and returns their public URLs. Failures are
// logged and reported as ok == false; callers keep the previous image.
type UploadService interface {
	Upload(ctx context.Context, backend string, file FileUpload) (url string, ok bool)
	UploadMany(ctx context.Context, backend string, files []FileUpload) []string
	DefaultBackend() string
	Backends() []string
}

type uploadService struct {
	backends       map[string]storage.ObjectStore
	defaultBackend string
	now            func() time.Time
}

// NewUploadService registers the configured stores. Nil stores are skipped so
// uploads to them fail softly.
func NewUploadService(defaultBackend string, stores ...storage.ObjectStore) UploadService {
	backends := make(map[string]storage.ObjectStore, len(stores))
	for _, s := range stores {
		if s == nil {
			continue
		}
		backends[s.Name()] = s
	}
	if defaultBackend == "" {
		defaultBackend = storage.BackendImages
	}
	return &uploadService{
		backends:       backends,
		defaultBackend: defaultBackend,
		now:            time.Now,
	}
}

func (s *uploadService) DefaultBackend() string {
	return s.defaultBackend
}

func (s *uploadService) Backends() []string {
	names := make([]string, 0, len(s.backends))
	for name := range s.backends {
		names = append(names, name)
	}
	return names
}

func (s *uploadService) Upload(ctx context.Context, backend string, file FileUpload) (string, bool) {
	if backend == "" {
		backend = s.defaultBackend
	}

	store, exists := s.backends[backend]
	if !exists {
		logger.Warn("Upload backend not configured", map[string]interface{}{
			"backend":  backend,
			"filename": file.Name,
		})
		return "", false
	}

	key := storage.ObjectKey(s.now(), file.Name)
	url, err := store.Put(ctx, key, file.ContentType, file.Body)
	if err != nil {
		logger.Error("Failed to upload file", err, map[string]interface{}{
			"backend":  backend,
			"key":      key,
			"filename": file.Name,
		})
		return "", false
	}

	logger.Info("File uploaded successfully", map[string]interface{}{
		"backend": backend,
		"key":     key,
	})
	return url, true
}

// UploadMany uploads in parallel and returns the URLs that succeeded, in input
// order.
func (s *uploadService) UploadMany(ctx context.Context, backend string, files []FileUpload) []string {
	results := make([]string, len(files))

	// Goroutines never return an error: a failed file is dropped, not fatal.
	var group errgroup.Group
	for i, file := range files {
		i, file := i, file
		group.Go(func() error {
			if url, ok := s.Upload(ctx, backend, file); ok {
				results[i] = url
			}
			return nil
		})
	}
	_ = group.Wait()

	urls := make([]string, 0, len(files))
	for _, url := range results {
		if url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}
