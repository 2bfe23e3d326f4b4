package handler

import (
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"legalease/internal/config"
	"legalease/internal/domain"
	"legalease/internal/pipeline"
	"legalease/internal/service"
)

// DocumentHandler handles document upload and processing endpoints.
type DocumentHandler struct {
	pipeline    *pipeline.Pipeline
	userService service.UserService
	s3Config    config.S3Config
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(p *pipeline.Pipeline, userService service.UserService, s3Config config.S3Config) *DocumentHandler {
	return &DocumentHandler{pipeline: p, userService: userService, s3Config: s3Config}
}

// Upload handles POST /api/v1/documents/upload
// It validates the file and starts an asynchronous processing job. The
// returned job snapshot carries the job ID clients poll for progress.
func (h *DocumentHandler) Upload(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	fileType, okExt := domain.AllowedExtensions[ext]
	if !okExt {
		HandleError(c, domain.ErrUnsupportedFileType)
		return
	}

	// Validate file size
	maxBytes := h.s3Config.MaxFileSizeMB * 1024 * 1024
	if header.Size > maxBytes {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}

	body, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "READ_FAILED", "could not read uploaded file")
		return
	}
	if int64(len(body)) > maxBytes {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}

	// Magic-byte content type detection; the client-supplied extension
	// alone is not trusted
	probe := body
	if len(probe) > 512 {
		probe = probe[:512]
	}
	detectedType := http.DetectContentType(probe)
	if _, validContent := domain.AllowedContentTypes[detectedType]; !validContent {
		HandleError(c, domain.ErrUnsupportedFileType)
		return
	}

	owner, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	job := h.pipeline.Submit(pipeline.SubmitInput{
		FileName:    header.Filename,
		FileSize:    int64(len(body)),
		ContentType: domain.AllowedFileTypes[fileType],
		FileBytes:   body,
		Owner:       owner,
	})

	log.Printf("documentHandler.Upload: started job %s for %s (%d bytes) by user %s",
		job.ID, header.Filename, len(body), userID)

	RespondCreated(c, job)
}
