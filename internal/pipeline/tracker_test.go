package pipeline

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalease/internal/domain"
)

func testOwner() *domain.User {
	return &domain.User{
		ID:       uuid.New(),
		Email:    "tenant@example.com",
		FullName: "Test Tenant",
		Role:     domain.RoleMember,
	}
}

func testSubmitInput(fileName string) SubmitInput {
	return SubmitInput{
		FileName:    fileName,
		FileSize:    2048,
		ContentType: "application/pdf",
		FileBytes:   []byte("%PDF-1.4"),
		Owner:       testOwner(),
	}
}

func fastTracker() *Tracker {
	return NewTracker([]int{100, 100, 100, 100, 100}, time.Hour)
}

func TestSubmitInitialSnapshot(t *testing.T) {
	tr := NewTracker(nil, time.Hour)

	job := tr.Submit(testSubmitInput("lease.pdf"))

	assert.Equal(t, "lease.pdf", job.FileName)
	assert.Equal(t, int64(2048), job.FileSize)
	assert.Equal(t, domain.JobStatusUploading, job.Status)
	assert.Equal(t, 0, job.OverallProgress)
	require.Len(t, job.Stages, 5)

	assert.Equal(t, "upload", job.Stages[0].ID)
	assert.Equal(t, "Uploading", job.Stages[0].Name)
	assert.Equal(t, "Text Extraction", job.Stages[1].Name)
	assert.Equal(t, "Security Analysis", job.Stages[2].Name)
	assert.Equal(t, "AI Simplification", job.Stages[3].Name)
	assert.Equal(t, "Final Analysis", job.Stages[4].Name)

	assert.Equal(t, domain.StageStatusActive, job.Stages[0].Status)
	for i := 1; i < 5; i++ {
		assert.Equal(t, domain.StageStatusPending, job.Stages[i].Status)
	}

	require.NotNil(t, job.EstimatedCompletion)
	total := 3000 + 8000 + 5000 + 10000 + 4000
	want := job.StartedAt.Add(time.Duration(total) * time.Millisecond)
	assert.WithinDuration(t, want, *job.EstimatedCompletion, 50*time.Millisecond)
}

func TestDueAdvancesActiveStage(t *testing.T) {
	tr := fastTracker()
	job := tr.Submit(testSubmitInput("lease.pdf"))

	ready := tr.due(50 * time.Millisecond)
	assert.Empty(t, ready)

	got, err := tr.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, got.Stages[0].Progress)
	assert.Equal(t, 10, got.OverallProgress)
	assert.Equal(t, domain.StageStatusActive, got.Stages[0].Status)
}

func TestDueMarksJobWorkingWhenStageFills(t *testing.T) {
	tr := fastTracker()
	job := tr.Submit(testSubmitInput("lease.pdf"))

	ready := tr.due(100 * time.Millisecond)
	require.Equal(t, []uuid.UUID{job.ID}, ready)

	// A working job is not advanced again until its stage work lands.
	ready = tr.due(100 * time.Millisecond)
	assert.Empty(t, ready)

	got, err := tr.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, got.Stages[0].Progress)
	assert.Equal(t, domain.StageStatusActive, got.Stages[0].Status)
}

func TestCompleteStageActivatesNext(t *testing.T) {
	tr := fastTracker()
	job := tr.Submit(testSubmitInput("lease.pdf"))
	tr.due(100 * time.Millisecond)

	tr.completeStage(job.ID, func(s *jobState) {
		s.docType = domain.DocTypeRentalAgreement
	})

	got, err := tr.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageStatusCompleted, got.Stages[0].Status)
	assert.Equal(t, 100, got.Stages[0].Progress)
	assert.GreaterOrEqual(t, got.Stages[0].DurationMs, int64(0))
	assert.Equal(t, domain.StageStatusActive, got.Stages[1].Status)
	assert.Equal(t, 0, got.Stages[1].Progress)
	assert.Equal(t, domain.JobStatusProcessing, got.Status)
	assert.Equal(t, 20, got.OverallProgress)
}

func TestCompleteFinalStageFinishesJob(t *testing.T) {
	tr := fastTracker()
	job := tr.Submit(testSubmitInput("lease.pdf"))

	for i := 0; i < 5; i++ {
		tr.due(100 * time.Millisecond)
		tr.completeStage(job.ID, nil)
	}

	got, err := tr.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusCompleted, got.Status)
	assert.Equal(t, 100, got.OverallProgress)
	for i := 0; i < 5; i++ {
		assert.Equal(t, domain.StageStatusCompleted, got.Stages[i].Status)
		assert.Equal(t, 100, got.Stages[i].Progress)
	}
}

func TestOverallProgressMonotonic(t *testing.T) {
	tr := fastTracker()
	job := tr.Submit(testSubmitInput("lease.pdf"))

	last := 0
	for i := 0; i < 5; i++ {
		for tick := 0; tick < 4; tick++ {
			ready := tr.due(25 * time.Millisecond)
			got, err := tr.Get(job.ID)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got.OverallProgress, last)
			assert.LessOrEqual(t, got.OverallProgress, 100)
			last = got.OverallProgress
			if len(ready) > 0 {
				tr.completeStage(job.ID, nil)
			}
		}
	}

	got, err := tr.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, got.OverallProgress)
}

func TestSingleActiveStage(t *testing.T) {
	tr := fastTracker()
	job := tr.Submit(testSubmitInput("lease.pdf"))

	for i := 0; i < 3; i++ {
		tr.due(100 * time.Millisecond)
		tr.completeStage(job.ID, nil)

		got, err := tr.Get(job.ID)
		require.NoError(t, err)
		active := 0
		for _, stage := range got.Stages {
			if stage.Status == domain.StageStatusActive {
				active++
			}
		}
		assert.Equal(t, 1, active)
	}
}

func TestCancelRemovesRunningJob(t *testing.T) {
	tr := fastTracker()
	job := tr.Submit(testSubmitInput("lease.pdf"))

	require.NoError(t, tr.Cancel(job.ID))

	_, err := tr.Get(job.ID)
	assert.ErrorIs(t, err, domain.ErrJobNotFound)

	// Stage bookkeeping for a canceled job is a no-op.
	tr.completeStage(job.ID, nil)
	tr.failStage(job.ID, "late")
	assert.Empty(t, tr.List())
}

func TestCancelUnknownJob(t *testing.T) {
	tr := fastTracker()
	assert.ErrorIs(t, tr.Cancel(uuid.New()), domain.ErrJobNotFound)
}

func TestCancelFinishedJob(t *testing.T) {
	tr := fastTracker()
	job := tr.Submit(testSubmitInput("lease.pdf"))
	for i := 0; i < 5; i++ {
		tr.due(100 * time.Millisecond)
		tr.completeStage(job.ID, nil)
	}

	assert.ErrorIs(t, tr.Cancel(job.ID), domain.ErrJobFinished)
}

func TestFailStageLeavesOtherJobsAlone(t *testing.T) {
	tr := fastTracker()
	failing := tr.Submit(testSubmitInput("bad.pdf"))
	healthy := tr.Submit(testSubmitInput("good.pdf"))

	tr.due(100 * time.Millisecond)
	tr.failStage(failing.ID, "upstream exploded")

	got, err := tr.Get(failing.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusFailed, got.Status)
	assert.Equal(t, "upstream exploded", got.Error)
	assert.Equal(t, domain.StageStatusError, got.Stages[0].Status)

	other, err := tr.Get(healthy.ID)
	require.NoError(t, err)
	assert.NotEqual(t, domain.JobStatusFailed, other.Status)
}

func TestListNewestFirst(t *testing.T) {
	tr := fastTracker()
	tr.Submit(testSubmitInput("first.pdf"))
	time.Sleep(5 * time.Millisecond)
	second := tr.Submit(testSubmitInput("second.pdf"))

	jobs := tr.List()
	require.Len(t, jobs, 2)
	assert.Equal(t, second.ID, jobs[0].ID)
}

func TestPruneFinished(t *testing.T) {
	tr := NewTracker([]int{100, 100, 100, 100, 100}, time.Millisecond)
	job := tr.Submit(testSubmitInput("lease.pdf"))
	for i := 0; i < 5; i++ {
		tr.due(100 * time.Millisecond)
		tr.completeStage(job.ID, nil)
	}

	time.Sleep(5 * time.Millisecond)
	tr.pruneFinished()

	_, err := tr.Get(job.ID)
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
}
