package pipeline

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"legalease/internal/domain"
)

// SubmitInput carries everything needed to start processing one upload.
type SubmitInput struct {
	FileName    string
	FileSize    int64
	ContentType string
	FileBytes   []byte
	Owner       *domain.User
}

// jobState is the tracker's mutable record for one job. The embedded
// ProcessingJob is what API snapshots are copied from; the rest is the
// working set handed from stage to stage.
type jobState struct {
	job   domain.ProcessingJob
	input SubmitInput

	docType        domain.DocumentType
	fileMeta       *domain.FileMeta
	extraction     *domain.ExtractionResult
	report         *domain.AuthenticityReport
	simplification *domain.SimplificationResult

	// activeProgress accumulates fractional progress of the active stage;
	// Stage.Progress is its truncation.
	activeProgress float64
	stageStartedAt time.Time
	working        bool
	finishedAt     time.Time
}

// Tracker is the in-memory registry of processing jobs.
type Tracker struct {
	mu          sync.RWMutex
	jobs        map[uuid.UUID]*jobState
	durationsMs []int
	retain      time.Duration
}

// NewTracker creates a job tracker. durationsMs paces the five stages; a
// nil or wrong-length slice falls back to the defaults. Finished jobs are
// kept readable for the retain window, then pruned.
func NewTracker(durationsMs []int, retain time.Duration) *Tracker {
	if len(durationsMs) != stageCount {
		durationsMs = DefaultStageDurationsMs
	}
	return &Tracker{
		jobs:        make(map[uuid.UUID]*jobState),
		durationsMs: durationsMs,
		retain:      retain,
	}
}

// Submit registers a new job with the first stage active and returns its
// snapshot immediately.
func (t *Tracker) Submit(input SubmitInput) domain.ProcessingJob {
	now := time.Now()

	var totalMs int
	for _, d := range t.durationsMs {
		totalMs += d
	}
	estimated := now.Add(time.Duration(totalMs) * time.Millisecond)

	state := &jobState{
		job: domain.ProcessingJob{
			ID:                  uuid.New(),
			FileName:            input.FileName,
			FileSize:            input.FileSize,
			Stages:              newStages(),
			OverallProgress:     0,
			Status:              domain.JobStatusUploading,
			StartedAt:           now,
			EstimatedCompletion: &estimated,
		},
		input:          input,
		stageStartedAt: now,
	}

	t.mu.Lock()
	t.jobs[state.job.ID] = state
	t.mu.Unlock()

	return snapshot(state)
}

// Get returns a point-in-time copy of the job.
func (t *Tracker) Get(jobID uuid.UUID) (domain.ProcessingJob, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	state, ok := t.jobs[jobID]
	if !ok {
		return domain.ProcessingJob{}, domain.ErrJobNotFound
	}
	return snapshot(state), nil
}

// List returns snapshots of all tracked jobs, newest first.
func (t *Tracker) List() []domain.ProcessingJob {
	t.mu.RLock()
	defer t.mu.RUnlock()

	jobs := make([]domain.ProcessingJob, 0, len(t.jobs))
	for _, state := range t.jobs {
		jobs = append(jobs, snapshot(state))
	}
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].StartedAt.After(jobs[j].StartedAt)
	})
	return jobs
}

// Cancel removes a running job. Subsequent stage work for it becomes a
// no-op and no result is ever produced.
func (t *Tracker) Cancel(jobID uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.jobs[jobID]
	if !ok {
		return domain.ErrJobNotFound
	}
	if state.job.Status == domain.JobStatusCompleted || state.job.Status == domain.JobStatusFailed {
		return domain.ErrJobFinished
	}
	delete(t.jobs, jobID)
	return nil
}

// due advances the active stage of every running job by one tick and
// returns the IDs of jobs whose active stage just filled, marking them as
// working so they are not advanced again until the stage work lands.
func (t *Tracker) due(tick time.Duration) []uuid.UUID {
	t.mu.Lock()
	defer t.mu.Unlock()

	var ready []uuid.UUID
	for id, state := range t.jobs {
		if state.working || finished(state) {
			continue
		}

		idx := activeStage(state)
		if idx < 0 {
			continue
		}

		duration := time.Duration(t.durationsMs[idx]) * time.Millisecond
		state.activeProgress += float64(tick) / float64(duration) * 100
		if state.activeProgress >= 100 {
			state.activeProgress = 100
			state.working = true
			ready = append(ready, id)
		}
		state.job.Stages[idx].Progress = int(state.activeProgress)
		state.job.OverallProgress = overallProgress(state)
	}
	return ready
}

// completeStage records a finished stage's output and activates the next
// stage, or marks the job completed after the last one. Unknown jobs
// (canceled mid-stage) are ignored.
func (t *Tracker) completeStage(jobID uuid.UUID, apply func(*jobState)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.jobs[jobID]
	if !ok {
		return
	}

	idx := activeStage(state)
	if idx < 0 {
		return
	}

	if apply != nil {
		apply(state)
	}

	now := time.Now()
	stage := &state.job.Stages[idx]
	stage.Status = domain.StageStatusCompleted
	stage.Progress = 100
	stage.DurationMs = now.Sub(state.stageStartedAt).Milliseconds()

	state.working = false
	state.activeProgress = 0
	state.stageStartedAt = now

	if idx+1 < stageCount {
		state.job.Stages[idx+1].Status = domain.StageStatusActive
		state.job.Status = domain.JobStatusProcessing
	} else {
		state.job.Status = domain.JobStatusCompleted
		state.finishedAt = now
	}
	state.job.OverallProgress = overallProgress(state)
}

// failStage marks the active stage errored and the job failed. Other jobs
// are unaffected.
func (t *Tracker) failStage(jobID uuid.UUID, reason string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.jobs[jobID]
	if !ok {
		return
	}

	if idx := activeStage(state); idx >= 0 {
		state.job.Stages[idx].Status = domain.StageStatusError
	}
	state.working = false
	state.job.Status = domain.JobStatusFailed
	state.job.Error = reason
	state.finishedAt = time.Now()
}

// pruneFinished drops completed and failed jobs older than the retain
// window.
func (t *Tracker) pruneFinished() {
	if t.retain <= 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	cutoff := time.Now().Add(-t.retain)
	for id, state := range t.jobs {
		if finished(state) && state.finishedAt.Before(cutoff) {
			delete(t.jobs, id)
		}
	}
}

func finished(state *jobState) bool {
	return state.job.Status == domain.JobStatusCompleted || state.job.Status == domain.JobStatusFailed
}

func activeStage(state *jobState) int {
	for i := range state.job.Stages {
		if state.job.Stages[i].Status == domain.StageStatusActive {
			return i
		}
	}
	return -1
}

func overallProgress(state *jobState) int {
	completed := 0
	active := 0
	for i := range state.job.Stages {
		switch state.job.Stages[i].Status {
		case domain.StageStatusCompleted:
			completed++
		case domain.StageStatusActive:
			active = state.job.Stages[i].Progress
		}
	}
	overall := (completed*100 + active) / stageCount
	if overall > 100 {
		overall = 100
	}
	if overall < 0 {
		overall = 0
	}
	return overall
}

func snapshot(state *jobState) domain.ProcessingJob {
	job := state.job
	job.Stages = make([]domain.Stage, len(state.job.Stages))
	copy(job.Stages, state.job.Stages)
	if state.job.EstimatedCompletion != nil {
		estimated := *state.job.EstimatedCompletion
		job.EstimatedCompletion = &estimated
	}
	return job
}
