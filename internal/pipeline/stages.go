package pipeline

import "legalease/internal/domain"

// Stage indices, in execution order.
const (
	stageUpload = iota
	stageExtraction
	stageSecurity
	stageSimplification
	stageAnalysis

	stageCount
)

// DefaultStageDurationsMs drives the paced progress of each stage when no
// override is configured.
var DefaultStageDurationsMs = []int{3000, 8000, 5000, 10000, 4000}

type stageTemplate struct {
	id          string
	name        string
	description string
}

var stageTemplates = [stageCount]stageTemplate{
	{id: "upload", name: "Uploading", description: "Securely uploading your document to our servers"},
	{id: "extraction", name: "Text Extraction", description: "Extracting the text content of your document"},
	{id: "security", name: "Security Analysis", description: "Checking document authenticity and detecting potential forgeries"},
	{id: "simplification", name: "AI Simplification", description: "Converting legal jargon to plain English"},
	{id: "analysis", name: "Final Analysis", description: "Generating insights, key points, and preparing Q&A system"},
}

func newStages() []domain.Stage {
	stages := make([]domain.Stage, stageCount)
	for i, tpl := range stageTemplates {
		status := domain.StageStatusPending
		if i == 0 {
			status = domain.StageStatusActive
		}
		stages[i] = domain.Stage{
			ID:          tpl.id,
			Name:        tpl.name,
			Description: tpl.description,
			Progress:    0,
			Status:      status,
		}
	}
	return stages
}
