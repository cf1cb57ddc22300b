// Package meshing compiles many block models concurrently.
package meshing

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"mcmodel/internal/profiling"
	"mcmodel/pkg/blockmodel"
	"mcmodel/pkg/mesh"
)

// CompileJob is a request to compile one model.
type CompileJob struct {
	Name      string
	Model     *blockmodel.Model
	Ancestors map[string]*blockmodel.Model
	// Result channel - will be sent the result when done
	ResultChan chan<- CompileResult
}

// CompileResult carries the compiled mesh of a job.
type CompileResult struct {
	Name  string
	Mesh  *mesh.Mesh
	Error error
}

// WorkerPool manages goroutines that compile models. Every job gets its
// own builder; the models handed in are only read.
type WorkerPool struct {
	jobQueue chan CompileJob
	workers  int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	log      *zap.Logger
}

// NewWorkerPool starts workers goroutines reading from a queue of queueSize.
func NewWorkerPool(workers, queueSize int, log *zap.Logger) *WorkerPool {
	if log == nil {
		log = zap.NewNop()
	}
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())

	pool := &WorkerPool{
		jobQueue: make(chan CompileJob, queueSize),
		workers:  workers,
		ctx:      ctx,
		cancel:   cancel,
		log:      log,
	}

	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker(i)
	}

	return pool
}

// SubmitJob queues a job without blocking.
// Returns false if the queue is full.
func (p *WorkerPool) SubmitJob(job CompileJob) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// SubmitJobBlocking waits until the job is queued or ctx or the pool is done.
func (p *WorkerPool) SubmitJobBlocking(ctx context.Context, job CompileJob) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case p.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ctx.Done():
		return p.ctx.Err()
	}
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			result := p.compile(job)
			p.log.Debug("model compiled",
				zap.Int("worker", id),
				zap.String("model", job.Name),
				zap.Error(result.Error))

			select {
			case job.ResultChan <- result:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

func (p *WorkerPool) compile(job CompileJob) (result CompileResult) {
	defer profiling.Track("meshing.compile")()

	result.Name = job.Name
	if job.Model == nil {
		result.Error = &MissingModelError{Name: job.Name}
		return result
	}
	result.Mesh = mesh.New(job.Model, job.Ancestors)
	return result
}

// Shutdown stops the workers and waits for them to exit. Jobs still queued
// are dropped. The pool must not be used afterwards.
func (p *WorkerPool) Shutdown() {
	p.cancel()
	close(p.jobQueue)
	p.wg.Wait()
}

// GetQueueLength returns the current number of jobs in the queue
func (p *WorkerPool) GetQueueLength() int {
	return len(p.jobQueue)
}

// Workers returns the number of worker goroutines.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// MissingModelError is reported for a job submitted without a model.
type MissingModelError struct {
	Name string
}

func (e *MissingModelError) Error() string {
	return "no model to compile for " + e.Name
}
