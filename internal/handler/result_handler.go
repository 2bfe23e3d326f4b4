package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"legalease/internal/domain"
	"legalease/internal/service"
)

// ResultHandler handles processed document result endpoints.
type ResultHandler struct {
	resultService service.ResultService
}

// NewResultHandler creates a new ResultHandler.
func NewResultHandler(resultService service.ResultService) *ResultHandler {
	return &ResultHandler{resultService: resultService}
}

// List handles GET /api/v1/results
// Admins see every result; members see their own.
func (h *ResultHandler) List(c *gin.Context) {
	userID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var (
		results []domain.DocumentProcessingResult
		total   int
		err     error
	)
	if role == domain.RoleAdmin {
		results, total, err = h.resultService.List(c.Request.Context(), offset, limit)
	} else {
		results, total, err = h.resultService.ListByOwner(c.Request.Context(), userID, offset, limit)
	}
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, results, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/results/:id
func (h *ResultHandler) GetByID(c *gin.Context) {
	userID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	resultID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid result ID")
		return
	}

	result, err := h.resultService.GetByID(c.Request.Context(), resultID)
	if err != nil {
		HandleError(c, err)
		return
	}

	if role != domain.RoleAdmin && result.OwnerID != userID {
		RespondError(c, http.StatusForbidden, "FORBIDDEN", "insufficient permissions")
		return
	}

	RespondOK(c, gin.H{
		"result":        result,
		"reading_level": result.ReadingLevelImprovement(),
	})
}

// Delete handles DELETE /api/v1/results/:id
func (h *ResultHandler) Delete(c *gin.Context) {
	resultID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid result ID")
		return
	}

	if err := h.resultService.Delete(c.Request.Context(), resultID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "result deleted"})
}

// Download handles GET /api/v1/results/:id/download
// Returns a presigned URL for the original uploaded file.
func (h *ResultHandler) Download(c *gin.Context) {
	userID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	resultID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid result ID")
		return
	}

	result, err := h.resultService.GetByID(c.Request.Context(), resultID)
	if err != nil {
		HandleError(c, err)
		return
	}
	if role != domain.RoleAdmin && result.OwnerID != userID {
		RespondError(c, http.StatusForbidden, "FORBIDDEN", "insufficient permissions")
		return
	}

	url, err := h.resultService.DownloadURL(c.Request.Context(), resultID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"download_url": url})
}

// Export handles GET /api/v1/results/export
// Streams an XLSX workbook of all processed results (admin only).
func (h *ResultHandler) Export(c *gin.Context) {
	data, err := h.resultService.ExportXLSX(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	fileName := fmt.Sprintf("results-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
