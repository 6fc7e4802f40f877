// Package startup runs the launcher's independent initialization tasks
// concurrently and merges their completions into one event stream.
//
// Tasks impose no ordering on each other and nothing waits for the whole
// set: each completion event reaches the consumer as soon as it exists.
// Conditionally disabled features are simply never registered, so they
// produce no event at all.
package startup

import (
	"context"
	"log/slog"
	"sync"

	"qlauncher/internal/logging"
)

// Task is one unit of deferred startup work. Run produces exactly one
// event; it must capture its own failures in the event payload.
type Task struct {
	Name string
	Run  func(ctx context.Context) Event
}

// Orchestrator starts registered tasks and fans their completions into a
// single channel.
type Orchestrator struct {
	logger *slog.Logger

	mu      sync.Mutex
	tasks   []Task
	started bool
}

// NewOrchestrator builds an orchestrator. A nil logger is allowed.
func NewOrchestrator(logger *slog.Logger) *Orchestrator {
	return &Orchestrator{logger: logging.WithComponent(logger, "startup")}
}

// Register adds a task to the set. Tasks with a nil Run are ignored; that
// is how disabled features opt out without producing a no-op event.
// Registering after Start is a programming error and is dropped.
func (o *Orchestrator) Register(task Task) {
	if task.Run == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.started {
		return
	}
	o.tasks = append(o.tasks, task)
}

// TaskCount returns the number of scheduled tasks.
func (o *Orchestrator) TaskCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.tasks)
}

// Start launches every registered task in its own goroutine and returns
// the merged event channel. The channel is closed once all tasks have
// delivered their event. The channel is buffered for the full task set, so
// no task blocks on a slow or departed consumer.
func (o *Orchestrator) Start(ctx context.Context) <-chan Event {
	o.mu.Lock()
	o.started = true
	tasks := o.tasks
	o.mu.Unlock()

	events := make(chan Event, len(tasks))

	var wg sync.WaitGroup
	for _, task := range tasks {
		wg.Add(1)
		go func(task Task) {
			defer wg.Done()
			o.logger.Debug("startup task running", logging.String("task", task.Name))
			events <- task.Run(ctx)
			o.logger.Debug("startup task finished", logging.String("task", task.Name))
		}(task)
	}

	go func() {
		wg.Wait()
		close(events)
	}()

	return events
}
