package pipeline

import (
	"context"
	"log"
	"sync"
	"time"

	"legalease/internal/config"
)

// Runner drives the pipeline clock: each tick it advances paced progress
// and dispatches the stage work of jobs whose active stage has filled.
type Runner struct {
	pipeline    *Pipeline
	tick        time.Duration
	concurrency int
	wg          sync.WaitGroup
}

// NewRunner creates a Runner for the given pipeline.
func NewRunner(pipeline *Pipeline, cfg config.PipelineConfig) *Runner {
	tick := time.Duration(cfg.TickIntervalMs) * time.Millisecond
	if tick <= 0 {
		tick = 100 * time.Millisecond
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 5
	}
	return &Runner{
		pipeline:    pipeline,
		tick:        tick,
		concurrency: concurrency,
	}
}

// Start runs the tick loop until ctx is canceled. It blocks until all
// in-flight stage work has finished.
func (r *Runner) Start(ctx context.Context) {
	ticker := time.NewTicker(r.tick)
	defer ticker.Stop()

	sem := make(chan struct{}, r.concurrency)

	log.Printf("pipelineRunner: started (tick=%s, concurrency=%d)", r.tick, r.concurrency)

	for {
		select {
		case <-ctx.Done():
			log.Printf("pipelineRunner: shutting down, waiting for in-flight stage work...")
			r.wg.Wait()
			log.Printf("pipelineRunner: shutdown complete")
			return
		case <-ticker.C:
			r.pipeline.tracker.pruneFinished()

			for _, jobID := range r.pipeline.tracker.due(r.tick) {
				id := jobID

				sem <- struct{}{} // acquire
				r.wg.Add(1)
				go func() {
					defer r.wg.Done()
					defer func() { <-sem }() // release

					// Stage work runs on its own context so in-flight
					// stages complete even during shutdown.
					r.pipeline.runStage(id)
				}()
			}
		}
	}
}
