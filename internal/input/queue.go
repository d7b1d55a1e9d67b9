package input

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vialkov/coil/internal/term"
)

// Queue accumulates terminal events between frames and hands them to the
// game in arrival order. The terminal raw-mode lifecycle belongs to the
// backend; the queue only consumes its event stream.
type Queue struct {
	backend *term.Backend
	pending []term.Event
	logger  *log.Logger
}

// NewQueue creates a queue reading from the given backend.
func NewQueue(backend *term.Backend, logger *log.Logger) *Queue {
	return &Queue{backend: backend, logger: logger}
}

// Poll waits up to timeout for terminal events and appends every event that
// arrives before the deadline. Returning with zero new events is normal; the
// call never blocks longer than timeout. An unexpected end of the event
// stream is reported as an error and aborts the run.
func (q *Queue) Poll(timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-q.backend.Events():
			if !ok {
				return fmt.Errorf("input: terminal event stream closed")
			}
			if ev != nil {
				q.pending = append(q.pending, ev)
			}
		case <-timer.C:
			return nil
		}
	}
}

// Drain removes and returns every queued event in arrival order. The queue
// is empty afterwards; no event is ever dropped silently.
func (q *Queue) Drain() []term.Event {
	if len(q.pending) == 0 {
		return nil
	}
	events := q.pending
	q.pending = nil
	if q.logger != nil {
		q.logger.Debug("drained input events", "count", len(events))
	}
	return events
}

// Len reports how many events are currently queued.
func (q *Queue) Len() int {
	return len(q.pending)
}
