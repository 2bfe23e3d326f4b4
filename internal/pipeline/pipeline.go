// Package pipeline drives uploaded documents through the five processing
// stages and tracks their progress for the API.
package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"legalease/internal/authenticity"
	"legalease/internal/classifier"
	"legalease/internal/config"
	"legalease/internal/domain"
	"legalease/internal/port"
)

// Pipeline owns the job tracker and executes stage work against the
// storage, extraction, scoring and generation dependencies.
type Pipeline struct {
	tracker   *Tracker
	storage   port.ObjectStorage
	fileRepo  port.FileMetaRepository
	extractor port.TextExtractor
	scorer    authenticity.Scorer
	generator port.TextGenerator
	results   port.ResultRepository
	email     port.EmailSender

	bucket       string
	stageTimeout time.Duration
}

// New creates a Pipeline.
func New(
	cfg config.PipelineConfig,
	bucket string,
	storage port.ObjectStorage,
	fileRepo port.FileMetaRepository,
	extractor port.TextExtractor,
	scorer authenticity.Scorer,
	generator port.TextGenerator,
	results port.ResultRepository,
	email port.EmailSender,
) *Pipeline {
	stageTimeout := time.Duration(cfg.StageTimeoutSecs) * time.Second
	if stageTimeout == 0 {
		stageTimeout = 2 * time.Minute
	}
	retain := time.Duration(cfg.RetainFinishedMin) * time.Minute

	return &Pipeline{
		tracker:      NewTracker(cfg.StageDurationsMs, retain),
		storage:      storage,
		fileRepo:     fileRepo,
		extractor:    extractor,
		scorer:       scorer,
		generator:    generator,
		results:      results,
		email:        email,
		bucket:       bucket,
		stageTimeout: stageTimeout,
	}
}

// Tracker exposes the job registry for the API layer.
func (p *Pipeline) Tracker() *Tracker {
	return p.tracker
}

// Submit registers a new job and returns its initial snapshot.
func (p *Pipeline) Submit(input SubmitInput) domain.ProcessingJob {
	return p.tracker.Submit(input)
}

// runStage executes the work of the job's active stage. It is invoked by
// the runner once the stage's paced progress fills. Errors fail the job;
// a job canceled mid-stage is silently dropped.
func (p *Pipeline) runStage(jobID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), p.stageTimeout)
	defer cancel()

	state, idx, ok := p.stageInput(jobID)
	if !ok {
		return
	}

	var apply func(*jobState)
	var err error

	switch idx {
	case stageUpload:
		apply, err = p.runUpload(ctx, state)
	case stageExtraction:
		apply, err = p.runExtraction(ctx, state)
	case stageSecurity:
		apply, err = p.runSecurity(ctx, state)
	case stageSimplification:
		apply, err = p.runSimplification(ctx, state)
	case stageAnalysis:
		apply, err = p.runAnalysis(ctx, state, jobID)
	default:
		err = fmt.Errorf("no work for stage index %d", idx)
	}

	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return
		}
		log.Printf("pipeline.runStage: job %s stage %d failed: %v", jobID, idx, err)
		p.tracker.failStage(jobID, err.Error())
		p.notifyFailure(state, err)
		return
	}

	p.tracker.completeStage(jobID, apply)
}

// stageInput copies the working set a stage needs out of the tracker.
func (p *Pipeline) stageInput(jobID uuid.UUID) (jobState, int, bool) {
	p.tracker.mu.RLock()
	defer p.tracker.mu.RUnlock()

	state, ok := p.tracker.jobs[jobID]
	if !ok {
		return jobState{}, -1, false
	}
	idx := activeStage(state)
	if idx < 0 {
		return jobState{}, -1, false
	}
	return *state, idx, true
}

func (p *Pipeline) runUpload(ctx context.Context, state jobState) (func(*jobState), error) {
	input := state.input
	fileType := domain.AllowedContentTypes[input.ContentType]

	meta := &domain.FileMeta{
		ID:           uuid.New(),
		UploadedBy:   input.Owner.ID,
		FileName:     fmt.Sprintf("%s.%s", uuid.New(), fileType),
		OriginalName: input.FileName,
		FileType:     fileType,
		FileSize:     input.FileSize,
		S3Bucket:     p.bucket,
		ContentType:  input.ContentType,
		CreatedAt:    time.Now(),
	}
	meta.S3Key = fmt.Sprintf("users/%s/documents/%s", input.Owner.ID, meta.FileName)

	if _, err := p.storage.Upload(ctx, port.UploadInput{
		Bucket:      p.bucket,
		Key:         meta.S3Key,
		Body:        bytes.NewReader(input.FileBytes),
		ContentType: input.ContentType,
		Size:        input.FileSize,
	}); err != nil {
		return nil, fmt.Errorf("uploading document: %w", err)
	}

	if err := p.fileRepo.Create(ctx, meta); err != nil {
		return nil, fmt.Errorf("recording file metadata: %w", err)
	}

	docType := classifier.Classify(input.FileName)
	return func(s *jobState) {
		s.fileMeta = meta
		s.docType = docType
	}, nil
}

func (p *Pipeline) runExtraction(ctx context.Context, state jobState) (func(*jobState), error) {
	result, err := p.extractor.Extract(ctx, port.ExtractInput{
		FileBytes:   state.input.FileBytes,
		ContentType: state.input.ContentType,
		FileName:    state.input.FileName,
		FileSize:    state.input.FileSize,
	})
	if err != nil {
		return nil, fmt.Errorf("extracting text: %w", err)
	}

	return func(s *jobState) {
		s.extraction = result
	}, nil
}

func (p *Pipeline) runSecurity(ctx context.Context, state jobState) (func(*jobState), error) {
	meta := domain.DocumentMetadata{
		FileName: state.input.FileName,
		FileSize: state.input.FileSize,
	}
	if state.extraction != nil {
		meta = state.extraction.Metadata
	}

	report, err := p.scorer.Score(ctx, meta)
	if err != nil {
		return nil, fmt.Errorf("scoring authenticity: %w", err)
	}

	return func(s *jobState) {
		s.report = report
	}, nil
}

func (p *Pipeline) runSimplification(ctx context.Context, state jobState) (func(*jobState), error) {
	if state.extraction == nil {
		return nil, fmt.Errorf("no extracted text available")
	}

	result, err := p.generator.Simplify(ctx, state.extraction.Text, state.docType)
	if err != nil {
		return nil, fmt.Errorf("simplifying document: %w", err)
	}

	return func(s *jobState) {
		s.simplification = result
	}, nil
}

func (p *Pipeline) runAnalysis(ctx context.Context, state jobState, jobID uuid.UUID) (func(*jobState), error) {
	if state.extraction == nil || state.report == nil || state.simplification == nil {
		return nil, fmt.Errorf("incomplete stage outputs")
	}

	result, err := assembleResult(state)
	if err != nil {
		return nil, err
	}

	// The job may have been canceled while this stage ran; never persist a
	// result for a job that is no longer tracked.
	if _, err := p.tracker.Get(jobID); err != nil {
		return nil, err
	}

	if err := p.results.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("persisting result: %w", err)
	}

	owner := state.input.Owner
	if err := p.email.SendProcessingComplete(ctx, owner.Email, owner.FullName, result); err != nil {
		log.Printf("pipeline.runAnalysis: completion email for job %s: %v", jobID, err)
	}

	return nil, nil
}

func assembleResult(state jobState) (*domain.DocumentProcessingResult, error) {
	keyPoints, err := json.Marshal(state.simplification.KeyPoints)
	if err != nil {
		return nil, fmt.Errorf("encoding key points: %w", err)
	}
	warnings, err := json.Marshal(state.simplification.Warnings)
	if err != nil {
		return nil, fmt.Errorf("encoding warnings: %w", err)
	}
	forgery, err := json.Marshal(state.report)
	if err != nil {
		return nil, fmt.Errorf("encoding forgery analysis: %w", err)
	}

	return &domain.DocumentProcessingResult{
		ID:                   uuid.New(),
		FileID:               state.fileMeta.ID,
		OwnerID:              state.input.Owner.ID,
		FileName:             state.input.FileName,
		DocumentType:         state.docType,
		SecurityScore:        state.report.OverallScore,
		OriginalText:         state.extraction.Text,
		SimplifiedText:       state.simplification.SimplifiedText,
		ProcessingTimeMs:     time.Since(state.job.StartedAt).Milliseconds(),
		ExtractionConfidence: state.extraction.Confidence,
		ReadingLevelOriginal: state.simplification.ReadingLevel.Original,
		ReadingLevelSimple:   state.simplification.ReadingLevel.Simplified,
		KeyPoints:            keyPoints,
		Warnings:             warnings,
		ForgeryAnalysis:      forgery,
		FairnessScore:        state.simplification.FairnessScore,
		Pages:                state.extraction.Pages,
		CreatedAt:            time.Now(),
	}, nil
}

func (p *Pipeline) notifyFailure(state jobState, cause error) {
	if state.input.Owner == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	owner := state.input.Owner
	if err := p.email.SendProcessingFailed(ctx, owner.Email, owner.FullName, state.input.FileName, cause.Error()); err != nil {
		log.Printf("pipeline.notifyFailure: failure email: %v", err)
	}
}
