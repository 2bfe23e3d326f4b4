package pipeline

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"legalease/internal/config"
	"legalease/internal/domain"
	"legalease/internal/port"
	"legalease/mocks"
)

type pipelineFixture struct {
	pipeline  *Pipeline
	storage   *mocks.MockObjectStorage
	fileRepo  *mocks.MockFileMetaRepo
	extractor *mocks.MockTextExtractor
	scorer    *mocks.MockScorer
	generator *mocks.MockTextGenerator
	results   *mocks.MockResultRepo
	email     *mocks.MockEmailSender
}

func newPipelineFixture() *pipelineFixture {
	f := &pipelineFixture{
		storage:   new(mocks.MockObjectStorage),
		fileRepo:  new(mocks.MockFileMetaRepo),
		extractor: new(mocks.MockTextExtractor),
		scorer:    new(mocks.MockScorer),
		generator: new(mocks.MockTextGenerator),
		results:   new(mocks.MockResultRepo),
		email:     new(mocks.MockEmailSender),
	}
	cfg := config.PipelineConfig{
		TickIntervalMs:    10,
		Concurrency:       2,
		StageTimeoutSecs:  5,
		StageDurationsMs:  []int{10, 10, 10, 10, 10},
		RetainFinishedMin: 60,
	}
	f.pipeline = New(cfg, "legalease-test", f.storage, f.fileRepo, f.extractor, f.scorer, f.generator, f.results, f.email)
	return f
}

func (f *pipelineFixture) expectHappyPath() {
	f.storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{Location: "s3://legalease-test/key"}, nil)
	f.fileRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.extractor.On("Extract", mock.Anything, mock.Anything).Return(&domain.ExtractionResult{
		Text:       "RESIDENTIAL LEASE AGREEMENT ...",
		Confidence: 0.98,
		Pages:      3,
		Metadata:   domain.DocumentMetadata{FileName: "lease.pdf", FileSize: 2048},
	}, nil)
	f.scorer.On("Score", mock.Anything, mock.Anything).Return(&domain.AuthenticityReport{
		OverallScore: 88,
		RiskLevel:    domain.RiskSafe,
	}, nil)
	f.generator.On("Simplify", mock.Anything, mock.Anything, domain.DocTypeRentalAgreement).Return(&domain.SimplificationResult{
		SimplifiedText: "You rent a home.",
		ReadingLevel:   domain.ReadingLevel{Original: "College Level (Grade 16)", Simplified: "8th Grade Level"},
		KeyPoints:      []string{"Rent is due monthly"},
		Warnings:       []string{"Late fees apply"},
		FairnessScore:  80,
	}, nil)
	f.results.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.email.On("SendProcessingComplete", mock.Anything, "tenant@example.com", "Test Tenant", mock.Anything).Return(nil)
}

// drive advances the clock until the job leaves the running states or the
// step budget runs out. Stage work executes synchronously.
func (f *pipelineFixture) drive(t *testing.T, jobID uuid.UUID, steps int) domain.ProcessingJob {
	t.Helper()
	tr := f.pipeline.tracker
	var job domain.ProcessingJob
	for i := 0; i < steps; i++ {
		for _, id := range tr.due(10 * time.Millisecond) {
			f.pipeline.runStage(id)
		}
		var err error
		job, err = tr.Get(jobID)
		require.NoError(t, err)
		if job.Status == domain.JobStatusCompleted || job.Status == domain.JobStatusFailed {
			return job
		}
	}
	return job
}

func TestPipelineHappyPath(t *testing.T) {
	f := newPipelineFixture()
	f.expectHappyPath()

	started := time.Now()
	job := f.pipeline.Submit(testSubmitInput("lease.pdf"))
	final := f.drive(t, job.ID, 50)

	assert.Equal(t, domain.JobStatusCompleted, final.Status)
	assert.Equal(t, 100, final.OverallProgress)

	f.results.AssertNumberOfCalls(t, "Create", 1)
	created := f.results.Calls[0].Arguments.Get(1).(*domain.DocumentProcessingResult)
	assert.Equal(t, "lease.pdf", created.FileName)
	assert.Equal(t, domain.DocTypeRentalAgreement, created.DocumentType)
	assert.Equal(t, 88, created.SecurityScore)
	assert.Equal(t, "You rent a home.", created.SimplifiedText)
	assert.Equal(t, "RESIDENTIAL LEASE AGREEMENT ...", created.OriginalText)
	assert.Equal(t, 0.98, created.ExtractionConfidence)
	assert.Equal(t, 80, created.FairnessScore)
	assert.Equal(t, 3, created.Pages)
	assert.GreaterOrEqual(t, created.ProcessingTimeMs, int64(0))
	assert.LessOrEqual(t, created.ProcessingTimeMs, time.Since(started).Milliseconds()+1)

	var keyPoints []string
	require.NoError(t, json.Unmarshal(created.KeyPoints, &keyPoints))
	assert.Equal(t, []string{"Rent is due monthly"}, keyPoints)

	var forgery domain.AuthenticityReport
	require.NoError(t, json.Unmarshal(created.ForgeryAnalysis, &forgery))
	assert.Equal(t, 88, forgery.OverallScore)

	f.email.AssertCalled(t, "SendProcessingComplete", mock.Anything, "tenant@example.com", "Test Tenant", mock.Anything)
}

func TestPipelineUploadKeyIsUserScoped(t *testing.T) {
	f := newPipelineFixture()
	f.expectHappyPath()

	input := testSubmitInput("lease.pdf")
	job := f.pipeline.Submit(input)
	f.drive(t, job.ID, 50)

	uploadInput := f.storage.Calls[0].Arguments.Get(1).(port.UploadInput)
	assert.Equal(t, "legalease-test", uploadInput.Bucket)
	assert.Contains(t, uploadInput.Key, "users/"+input.Owner.ID.String()+"/documents/")

	meta := f.fileRepo.Calls[0].Arguments.Get(1).(*domain.FileMeta)
	assert.Equal(t, "lease.pdf", meta.OriginalName)
	assert.Equal(t, domain.FileTypePDF, meta.FileType)
	assert.Equal(t, uploadInput.Key, meta.S3Key)
}

func TestPipelineStageErrorFailsJob(t *testing.T) {
	f := newPipelineFixture()
	f.storage.On("Upload", mock.Anything, mock.Anything).Return(nil, assert.AnError)
	f.email.On("SendProcessingFailed", mock.Anything, "tenant@example.com", "Test Tenant", "lease.pdf", mock.Anything).Return(nil)

	job := f.pipeline.Submit(testSubmitInput("lease.pdf"))
	final := f.drive(t, job.ID, 50)

	assert.Equal(t, domain.JobStatusFailed, final.Status)
	assert.NotEmpty(t, final.Error)
	assert.Equal(t, domain.StageStatusError, final.Stages[0].Status)

	f.results.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.email.AssertCalled(t, "SendProcessingFailed", mock.Anything, "tenant@example.com", "Test Tenant", "lease.pdf", mock.Anything)
}

func TestPipelineCancelMidStageProducesNoResult(t *testing.T) {
	f := newPipelineFixture()
	f.expectHappyPath()

	job := f.pipeline.Submit(testSubmitInput("lease.pdf"))
	tr := f.pipeline.tracker

	// Advance into the extraction stage, then cancel while its work is due.
	for _, id := range tr.due(10 * time.Millisecond) {
		f.pipeline.runStage(id)
	}
	ready := tr.due(10 * time.Millisecond)
	require.Equal(t, []uuid.UUID{job.ID}, ready)
	require.NoError(t, tr.Cancel(job.ID))

	f.pipeline.runStage(job.ID)

	_, err := tr.Get(job.ID)
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
	f.results.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.email.AssertNotCalled(t, "SendProcessingComplete", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPipelineSimplifyErrorFailsJob(t *testing.T) {
	f := newPipelineFixture()
	f.storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{}, nil)
	f.fileRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.extractor.On("Extract", mock.Anything, mock.Anything).Return(&domain.ExtractionResult{Text: "text", Confidence: 0.95, Pages: 1}, nil)
	f.scorer.On("Score", mock.Anything, mock.Anything).Return(&domain.AuthenticityReport{OverallScore: 90, RiskLevel: domain.RiskSafe}, nil)
	f.generator.On("Simplify", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrGenAINotConfigured)
	f.email.On("SendProcessingFailed", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	job := f.pipeline.Submit(testSubmitInput("lease.pdf"))
	final := f.drive(t, job.ID, 80)

	assert.Equal(t, domain.JobStatusFailed, final.Status)
	f.results.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
