// Package worker runs prompt-generation jobs on a bounded pool of goroutines.
//
// Go Pattern: Goroutines and channels are Go's concurrency primitives.
// A goroutine is like a lightweight thread (thousands are fine), and
// channels are typed pipes for communication between goroutines.
//
// This worker pool pattern is very common in Go:
// 1. Create a buffered channel as a job queue
// 2. Spawn N worker goroutines that read from the channel
// 3. Send jobs to the channel from your HTTP handlers
// 4. The handler waits on a per-job result channel
//
// Decoding a hostile PDF can take a lot of CPU. The pool caps how many
// decodes run at once no matter how many uploads arrive.
package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Shimizu-Technology/study-prompts-api/internal/services/prompts"
)

// ErrQueueFull is returned by Submit when no queue slot is free.
var ErrQueueFull = errors.New("job queue is full; try again later")

// ErrPoolStopped is returned for jobs that were still waiting when the pool stopped.
var ErrPoolStopped = errors.New("worker pool stopped")

// Generator is the work each job performs. *prompts.Generator satisfies it.
type Generator interface {
	Generate(ctx context.Context, data []byte) (*prompts.Result, error)
}

// Job represents one uploaded document waiting to be processed.
type Job struct {
	ID        string // Run ID, also used as the request ID
	Data      []byte
	CreatedAt time.Time

	ctx    context.Context
	result chan jobResult // buffered(1) so a worker never blocks on an abandoned job
}

type jobResult struct {
	res *prompts.Result
	err error
}

// Pool manages a pool of worker goroutines.
type Pool struct {
	// Go Pattern: Channels are the backbone of Go concurrency.
	// This buffered channel acts as our job queue.
	// Buffered means it can hold `queueSize` jobs before Submit fails fast.
	jobs    chan Job
	workers int
	gen     Generator
	logger  zerolog.Logger

	// Go Pattern: sync.WaitGroup tracks running goroutines.
	wg sync.WaitGroup

	// Go Pattern: context.Context with cancel for graceful shutdown.
	// When we call cancel(), all workers' loops exit.
	ctx    context.Context
	cancel context.CancelFunc
}

// NewPool creates a new worker pool.
func NewPool(workers, queueSize int, gen Generator, logger zerolog.Logger) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		jobs:    make(chan Job, queueSize),
		workers: workers,
		gen:     gen,
		logger:  logger.With().Str("component", "worker").Logger(),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	p.logger.Info().Int("workers", p.workers).Msg("🚀 Starting workers")
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// Stop signals all workers to exit and waits for in-flight jobs to finish.
// Jobs still queued are abandoned; their submitters get ErrPoolStopped.
func (p *Pool) Stop() {
	p.logger.Info().Msg("⏹️  Stopping workers...")
	p.cancel()
	p.wg.Wait()
	p.logger.Info().Msg("✅ All workers stopped")
}

// Submit queues data for processing and waits for its result.
//
// Enqueueing is non-blocking: a full queue returns ErrQueueFull at once.
// If ctx ends first, Submit returns ctx.Err() and whatever the worker
// eventually produces is discarded.
func (p *Pool) Submit(ctx context.Context, id string, data []byte) (*prompts.Result, error) {
	if p.ctx.Err() != nil {
		return nil, ErrPoolStopped
	}

	job := Job{
		ID:        id,
		Data:      data,
		CreatedAt: time.Now(),
		ctx:       ctx,
		result:    make(chan jobResult, 1),
	}

	// Go Pattern: `select` with `default` makes channel operations non-blocking.
	// Without default, sending to a full channel would block the HTTP handler.
	select {
	case p.jobs <- job:
		p.logger.Debug().Str("job_id", id).Int("bytes", len(data)).Msg("📥 Job queued")
	default:
		return nil, ErrQueueFull
	}

	select {
	case r := <-job.result:
		return r.res, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-p.ctx.Done():
		return nil, ErrPoolStopped
	}
}

// QueueSize returns the current number of jobs in the queue.
func (p *Pool) QueueSize() int {
	return len(p.jobs)
}

// WorkerCount returns the number of workers.
func (p *Pool) WorkerCount() int {
	return p.workers
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			p.logger.Debug().Int("worker", id).Msg("👷 Worker stopped")
			return
		case job := <-p.jobs:
			p.process(id, job)
		}
	}
}

// process runs one job unless its submitter already gave up.
func (p *Pool) process(workerID int, job Job) {
	log := p.logger.With().Int("worker", workerID).Str("job_id", job.ID).Logger()

	if err := job.ctx.Err(); err != nil {
		log.Debug().Err(err).Msg("skipping abandoned job")
		job.result <- jobResult{err: err}
		return
	}

	res, err := p.gen.Generate(job.ctx, job.Data)
	if err != nil {
		log.Warn().Err(err).Dur("waited", time.Since(job.CreatedAt)).Msg("❌ Job failed")
	} else {
		log.Info().
			Int("pages", res.PageCount).
			Int("prompts", len(res.Prompts)).
			Dur("waited", time.Since(job.CreatedAt)).
			Msg("✅ Job completed")
	}

	job.result <- jobResult{res: res, err: err}
}
