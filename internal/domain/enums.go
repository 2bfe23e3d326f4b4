package domain

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}

// UserRole defines the role hierarchy.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// DocumentType is the coarse classification of an uploaded legal document.
type DocumentType string

const (
	DocTypeRentalAgreement    DocumentType = "Rental Agreement"
	DocTypeEmploymentContract DocumentType = "Employment Contract"
	DocTypeLoanAgreement      DocumentType = "Loan Agreement"
	DocTypeServiceAgreement   DocumentType = "Service Agreement"
	DocTypeInsurancePolicy    DocumentType = "Insurance Policy"
	DocTypeLegalDocument      DocumentType = "Legal Document"
)

// JobStatus represents the lifecycle of a processing job.
type JobStatus string

const (
	JobStatusUploading  JobStatus = "uploading"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// StageStatus represents the lifecycle of one pipeline stage.
type StageStatus string

const (
	StageStatusPending   StageStatus = "pending"
	StageStatusActive    StageStatus = "active"
	StageStatusCompleted StageStatus = "completed"
	StageStatusError     StageStatus = "error"
)

// RiskLevel is the banded verdict derived from an authenticity score.
type RiskLevel string

const (
	RiskSafe       RiskLevel = "SAFE"
	RiskSuspicious RiskLevel = "SUSPICIOUS"
	RiskHigh       RiskLevel = "HIGH_RISK"
)

// RiskLevelForScore maps an overall authenticity score to its risk band.
func RiskLevelForScore(score int) RiskLevel {
	switch {
	case score >= 85:
		return RiskSafe
	case score >= 70:
		return RiskSuspicious
	default:
		return RiskHigh
	}
}

// ConversationRole identifies the author of a Q&A turn.
type ConversationRole string

const (
	TurnRoleUser      ConversationRole = "user"
	TurnRoleAssistant ConversationRole = "assistant"
)
