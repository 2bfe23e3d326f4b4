package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated user who may submit documents.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// FileMeta stores metadata about an uploaded file.
type FileMeta struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UploadedBy   uuid.UUID `db:"uploaded_by" json:"uploaded_by"`
	FileName     string    `db:"file_name" json:"file_name"`
	OriginalName string    `db:"original_name" json:"original_name"`
	FileType     FileType  `db:"file_type" json:"file_type"`
	FileSize     int64     `db:"file_size" json:"file_size"`
	S3Bucket     string    `db:"s3_bucket" json:"s3_bucket"`
	S3Key        string    `db:"s3_key" json:"s3_key"`
	ContentType  string    `db:"content_type" json:"content_type"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Stage is one ordered step of the processing pipeline.
type Stage struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Progress    int         `json:"progress"`
	Status      StageStatus `json:"status"`
	DurationMs  int64       `json:"duration_ms,omitempty"`
}

// ProcessingJob tracks one uploaded document across all pipeline stages.
type ProcessingJob struct {
	ID                  uuid.UUID  `json:"id"`
	FileName            string     `json:"file_name"`
	FileSize            int64      `json:"file_size"`
	Stages              []Stage    `json:"stages"`
	OverallProgress     int        `json:"overall_progress"`
	Status              JobStatus  `json:"status"`
	StartedAt           time.Time  `json:"started_at"`
	EstimatedCompletion *time.Time `json:"estimated_completion,omitempty"`
	Error               string     `json:"error,omitempty"`
}

// DocumentMetadata carries extraction metadata into the security analysis.
type DocumentMetadata struct {
	Title            string `json:"title,omitempty"`
	Author           string `json:"author,omitempty"`
	CreationDate     string `json:"creation_date,omitempty"`
	ModificationDate string `json:"modification_date,omitempty"`
	FileName         string `json:"file_name"`
	FileSize         int64  `json:"file_size"`
}

// ExtractionResult is the output of the text-extraction stage.
type ExtractionResult struct {
	Text       string           `json:"text"`
	Confidence float64          `json:"confidence"`
	Pages      int              `json:"pages"`
	Metadata   DocumentMetadata `json:"metadata"`
}

// ComponentReport is the verdict of one authenticity sub-analysis.
type ComponentReport struct {
	Score   int             `json:"score"`
	Issues  []string        `json:"issues"`
	Details json.RawMessage `json:"details,omitempty"`
}

// AuthenticityReport is the composite security verdict for a document.
type AuthenticityReport struct {
	OverallScore    int             `json:"overall_score"`
	RiskLevel       RiskLevel       `json:"risk_level"`
	Confidence      float64         `json:"confidence"`
	AnalysisTimeMs  int64           `json:"analysis_time_ms"`
	Metadata        ComponentReport `json:"metadata_analysis"`
	Signature       ComponentReport `json:"signature_verification"`
	ImageForensics  ComponentReport `json:"image_forensics"`
	Recommendations []string        `json:"recommendations"`
}

// ReadingLevel is the before/after complexity pair for simplified text.
type ReadingLevel struct {
	Original   string `json:"original"`
	Simplified string `json:"simplified"`
}

// SimplificationResult is the output of the simplification stage.
type SimplificationResult struct {
	SimplifiedText string       `json:"simplified_text"`
	ReadingLevel   ReadingLevel `json:"reading_level"`
	KeyPoints      []string     `json:"key_points"`
	Warnings       []string     `json:"warnings"`
	FairnessScore  int          `json:"fairness_score"`
}

// SecurityAnalysis is the payload of the best-effort AI security endpoint.
type SecurityAnalysis struct {
	Score           int      `json:"score"`
	Risks           []string `json:"risks"`
	Recommendations []string `json:"recommendations"`
}

// DocumentProcessingResult is the immutable artifact of a completed job.
type DocumentProcessingResult struct {
	ID                   uuid.UUID       `db:"id" json:"id"`
	FileID               uuid.UUID       `db:"file_id" json:"file_id"`
	OwnerID              uuid.UUID       `db:"owner_id" json:"owner_id"`
	FileName             string          `db:"file_name" json:"file_name"`
	DocumentType         DocumentType    `db:"document_type" json:"document_type"`
	SecurityScore        int             `db:"security_score" json:"security_score"`
	OriginalText         string          `db:"original_text" json:"original_text"`
	SimplifiedText       string          `db:"simplified_text" json:"simplified_text"`
	ProcessingTimeMs     int64           `db:"processing_time_ms" json:"processing_time_ms"`
	ExtractionConfidence float64         `db:"extraction_confidence" json:"extraction_confidence"`
	ReadingLevelOriginal string          `db:"reading_level_original" json:"-"`
	ReadingLevelSimple   string          `db:"reading_level_simplified" json:"-"`
	KeyPoints            json.RawMessage `db:"key_points" json:"key_points"`
	Warnings             json.RawMessage `db:"warnings" json:"warnings"`
	FairnessScore        int             `db:"fairness_score" json:"fairness_score"`
	ForgeryAnalysis      json.RawMessage `db:"forgery_analysis" json:"forgery_analysis"`
	Pages                int             `db:"pages" json:"pages"`
	CreatedAt            time.Time       `db:"created_at" json:"created_at"`
}

// ReadingLevelImprovement returns the before/after pair for API responses.
func (r *DocumentProcessingResult) ReadingLevelImprovement() ReadingLevel {
	return ReadingLevel{Original: r.ReadingLevelOriginal, Simplified: r.ReadingLevelSimple}
}

// ConversationTurn is one Q&A exchange in a document session.
type ConversationTurn struct {
	Role      ConversationRole `json:"role"`
	Content   string           `json:"content"`
	Timestamp time.Time        `json:"timestamp"`
}
