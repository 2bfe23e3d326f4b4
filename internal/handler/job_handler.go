package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"legalease/internal/pipeline"
)

// JobHandler handles processing job status and cancellation endpoints.
type JobHandler struct {
	tracker *pipeline.Tracker
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(tracker *pipeline.Tracker) *JobHandler {
	return &JobHandler{tracker: tracker}
}

// List handles GET /api/v1/jobs
func (h *JobHandler) List(c *gin.Context) {
	RespondOK(c, h.tracker.List())
}

// GetByID handles GET /api/v1/jobs/:id
func (h *JobHandler) GetByID(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid job ID")
		return
	}

	job, err := h.tracker.Get(jobID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, job)
}

// Cancel handles DELETE /api/v1/jobs/:id
func (h *JobHandler) Cancel(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid job ID")
		return
	}

	if err := h.tracker.Cancel(jobID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "job cancelled"})
}
