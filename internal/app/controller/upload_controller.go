package controller

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/creme-backend/internal/app/service"
	apperrors "github.com/ikkim/creme-backend/internal/errors"
	"github.com/ikkim/creme-backend/internal/middleware"
	"github.com/ikkim/creme-backend/internal/storage"
)

type UploadController struct {
	uploadService service.UploadService
	maxFileSize   int64
}

func NewUploadController(uploadService service.UploadService, maxFileSize int64) *UploadController {
	return &UploadController{
		uploadService: uploadService,
		maxFileSize:   maxFileSize,
	}
}

// Upload stores one or more images and returns the URLs that succeeded. A
// file that fails to upload is left out of the result; the request itself
// still succeeds.
// POST /api/v1/admin/upload (multipart: files, backend)
func (ctrl *UploadController) Upload(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	form, err := c.MultipartForm()
	if err != nil {
		log.Warn("Invalid multipart upload", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Expected a multipart form with files")
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		headers = form.File["file"]
	}
	if len(headers) == 0 {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "No files provided")
		return
	}

	backend := c.PostForm("backend")
	if backend == "" {
		backend = ctrl.uploadService.DefaultBackend()
	}

	for _, h := range headers {
		contentType := h.Header.Get("Content-Type")
		if err := storage.ValidateContentType(contentType, storage.AllowedImageTypes); err != nil {
			log.Warn("Invalid content type", map[string]interface{}{
				"filename":     h.Filename,
				"content_type": contentType,
			})
			apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "Only image files are allowed (JPEG, PNG, GIF, WEBP)")
			return
		}
		if err := storage.ValidateFileSize(h.Size, ctrl.maxFileSize); err != nil {
			apperrors.BadRequest(c, apperrors.UploadFileTooLarge, err.Error())
			return
		}
	}

	files := make([]service.FileUpload, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			log.Error("Failed to open uploaded file", err, map[string]interface{}{
				"filename": h.Filename,
			})
			continue
		}
		defer func(f multipart.File) { _ = f.Close() }(f)

		files = append(files, service.FileUpload{
			Name:        h.Filename,
			ContentType: h.Header.Get("Content-Type"),
			Body:        f,
		})
	}

	urls := ctrl.uploadService.UploadMany(c.Request.Context(), backend, files)

	log.Info("Upload request handled", map[string]interface{}{
		"backend":   backend,
		"requested": len(headers),
		"uploaded":  len(urls),
	})

	c.JSON(http.StatusOK, gin.H{
		"urls":    urls,
		"backend": backend,
	})
}
