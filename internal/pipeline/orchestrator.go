package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/priorart/patdoc/internal/config"
	"github.com/priorart/patdoc/internal/store"
	"github.com/priorart/patdoc/internal/textmodel"
)

// Orchestrator manages the patent ingestion pipeline.
type Orchestrator struct {
	jobs  *JobStore
	queue chan *Job
	an    textmodel.Analyzer
	st    *store.Store
	log   *slog.Logger
	cfg   config.Config

	parseStats   *StageStats
	analyzeStats *StageStats

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewOrchestrator creates the pipeline. Call Start to launch workers.
func NewOrchestrator(cfg config.Config, an textmodel.Analyzer, st *store.Store, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		jobs:         NewJobStore(cfg.JobTTL),
		queue:        make(chan *Job, cfg.MaxQueueSize),
		an:           an,
		st:           st,
		log:          log,
		cfg:          cfg,
		parseStats:   NewStageStats(cfg.StatsWindow),
		analyzeStats: NewStageStats(cfg.StatsWindow),
	}
}

// Start launches worker goroutines.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for i := 0; i < o.cfg.WorkerCount; i++ {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			w := NewWorker(o.an, o.st, o.log, o.cfg.PDFFallbackPdftotext, o.parseStats, o.analyzeStats)
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-o.queue:
					if !ok {
						return
					}
					w.Process(workerCtx, job)
				}
			}
		}()
	}

	// Job store cleanup.
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.jobs.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the pipeline.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	close(o.queue)
	o.wg.Wait()
}

// Submit queues a new job for processing.
func (o *Orchestrator) Submit(job *Job) error {
	o.jobs.Put(job)
	select {
	case o.queue <- job:
		return nil
	default:
		job.SetStatus(StatusFailed, "queue_full")
		return fmt.Errorf("job queue is full (%d)", o.cfg.MaxQueueSize)
	}
}

// GetJob returns a job by ID.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

// Store returns the document store for direct use by API handlers.
func (o *Orchestrator) Store() *store.Store {
	return o.st
}

// ParseStats returns the parse-stage latency tracker.
func (o *Orchestrator) ParseStats() *StageStats {
	return o.parseStats
}

// AnalyzeStats returns the analyze-stage latency tracker.
func (o *Orchestrator) AnalyzeStats() *StageStats {
	return o.analyzeStats
}
