package notify

import (
	"log"
	"sync"
	"time"

	"taskflow/internal/domain"
	"taskflow/internal/errors"
	"taskflow/internal/logging"
)

// Sink receives formatted notifications and dispatcher diagnostics.
// *log.Logger satisfies it.
type Sink interface {
	Printf(format string, v ...interface{})
}

// Defaults for the worker pool. The queue is sized so that enqueueing
// never applies backpressure to request handling in normal operation.
const (
	DefaultWorkers         = 4
	DefaultQueueSize       = 256
	DefaultShutdownTimeout = 10 * time.Second
)

type dispatcherState int

const (
	stateRunning dispatcherState = iota
	stateStopped
)

type job struct {
	event EventType
	task  domain.Task
}

// Dispatcher is a fire-and-forget notification worker pool. Jobs are
// handed off through a buffered channel and consumed by a fixed number
// of workers; the caller never observes a job's outcome. All job
// failures are absorbed and reported only to the sink.
type Dispatcher struct {
	jobs    chan job
	sink    Sink
	workers int

	mu    sync.RWMutex
	state dispatcherState
	wg    sync.WaitGroup
}

// New creates a Dispatcher. Zero or negative workers/queueSize select
// the defaults; a nil sink falls back to the process logger.
func New(workers, queueSize int, sink Sink) *Dispatcher {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if sink == nil {
		sink = log.Default()
	}

	return &Dispatcher{
		jobs:    make(chan job, queueSize),
		sink:    sink,
		workers: workers,
	}
}

// Start launches the worker pool.
func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}
	d.sink.Printf("notification worker pool started with %d workers", d.workers)
}

// DispatchTaskCreated enqueues a "task created" notification.
func (d *Dispatcher) DispatchTaskCreated(task domain.Task) {
	d.enqueue(EventTaskCreated, task)
}

// DispatchTaskUpdated enqueues a "task updated" notification.
func (d *Dispatcher) DispatchTaskUpdated(task domain.Task) {
	d.enqueue(EventTaskUpdated, task)
}

// enqueue hands a job to the pool without blocking the caller. A full
// queue or a stopped dispatcher drops the job; notifications are not
// durable commitments, so the loss is only recorded.
func (d *Dispatcher) enqueue(event EventType, task domain.Task) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.state != stateRunning {
		logging.Debugf("notify: dispatcher stopped, dropping %s notification for task %s\n", event, task.ID)
		return
	}

	select {
	case d.jobs <- job{event: event, task: task}:
	default:
		d.sink.Printf("notification queue full, dropping %s notification for task %s", event, task.ID)
	}
}

// Shutdown stops intake and waits up to grace for already-enqueued jobs
// to finish. Jobs still outstanding after the grace period are
// abandoned with a recorded warning.
func (d *Dispatcher) Shutdown(grace time.Duration) error {
	if grace <= 0 {
		grace = DefaultShutdownTimeout
	}

	d.mu.Lock()
	if d.state == stateStopped {
		d.mu.Unlock()
		return nil
	}
	d.state = stateStopped
	close(d.jobs)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.sink.Printf("notification worker pool drained")
		return nil
	case <-time.After(grace):
		d.sink.Printf("notification worker pool drain timed out after %v, abandoning %d queued jobs", grace, len(d.jobs))
		return errors.NewTimeoutError("notification dispatcher drain", grace)
	}
}

func (d *Dispatcher) worker(id int) {
	defer d.wg.Done()
	for j := range d.jobs {
		d.run(id, j)
	}
}

// run executes a single job. Failures never propagate past the worker:
// panics are recovered and reported to the sink only.
func (d *Dispatcher) run(id int, j job) {
	defer func() {
		if r := recover(); r != nil {
			d.sink.Printf("notification job failed (worker %d): %v", id, r)
		}
	}()

	d.sink.Printf("%s", BuildMessage(j.event, j.task))
	logging.Debugf("notify: worker %d delivered %s notification for task %s\n", id, j.event, j.task.ID)
}
