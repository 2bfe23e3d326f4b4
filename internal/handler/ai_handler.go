package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"legalease/internal/domain"
	"legalease/internal/port"
	"legalease/internal/service"
)

// AIHandler exposes the text-generation features directly, outside the
// processing pipeline. Simplify and Question degrade to canned fallbacks
// when the model call fails; Security falls back to a neutral verdict.
type AIHandler struct {
	generator port.TextGenerator
	qaService service.QAService
}

// NewAIHandler creates a new AIHandler.
func NewAIHandler(generator port.TextGenerator, qaService service.QAService) *AIHandler {
	return &AIHandler{generator: generator, qaService: qaService}
}

type simplifyRequest struct {
	OriginalText string `json:"originalText"`
	DocumentType string `json:"documentType"`
}

type questionRequest struct {
	Question        string  `json:"question"`
	DocumentContext string  `json:"documentContext"`
	DocumentType    string  `json:"documentType"`
	DocumentID      *string `json:"documentId"`
}

type securityRequest struct {
	DocumentMetadata *domain.DocumentMetadata `json:"documentMetadata"`
}

// Simplify handles POST /api/v1/ai/simplify
func (h *AIHandler) Simplify(c *gin.Context) {
	var req simplifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if req.OriginalText == "" || req.DocumentType == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing required fields: originalText and documentType")
		return
	}

	result, err := h.generator.Simplify(c.Request.Context(), req.OriginalText, domain.DocumentType(req.DocumentType))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Question handles POST /api/v1/ai/question
// When documentId is present, conversation history is kept per document and
// threaded into subsequent prompts.
func (h *AIHandler) Question(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if req.Question == "" || req.DocumentContext == "" || req.DocumentType == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing required fields: question, documentContext, and documentType")
		return
	}

	input := service.AskInput{
		Question:        req.Question,
		DocumentContext: req.DocumentContext,
		DocumentType:    domain.DocumentType(req.DocumentType),
	}
	if req.DocumentID != nil {
		docID, err := uuid.Parse(*req.DocumentID)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid documentId")
			return
		}
		input.DocumentID = &docID
	}

	answer, err := h.qaService.Ask(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"answer": answer})
}

// Security handles POST /api/v1/ai/security
func (h *AIHandler) Security(c *gin.Context) {
	var req securityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if req.DocumentMetadata == nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing required field: documentMetadata")
		return
	}

	analysis, err := h.generator.AnalyzeSecurity(c.Request.Context(), *req.DocumentMetadata)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, analysis)
}
