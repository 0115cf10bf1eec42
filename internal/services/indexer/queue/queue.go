// Package queue provides the unbounded multi-producer multi-consumer task
// queue between the HTTP handlers / subscriber and the index worker
package queue

import (
	"context"
	"sync"

	"hubgate/internal/services/indexer/domain"
)

// Queue is an unbounded FIFO of index tasks. Enqueue never blocks; Dequeue
// blocks until a task, queue close, or context cancellation. Safe for any
// number of producers and consumers.
type Queue struct {
	mu     sync.Mutex
	items  []domain.Task
	notify chan struct{}
	done   chan struct{}
	closed bool
}

// New builds an empty queue
func New() *Queue {
	return &Queue{
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Enqueue appends t and wakes a waiting consumer. Returns false if the
// queue has been closed; the task is dropped in that case.
func (q *Queue) Enqueue(t domain.Task) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.items = append(q.items, t)
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
	return true
}

// Dequeue pops the oldest task, blocking until one is available. The ok
// result is false when the queue is closed and drained, or ctx is done.
func (q *Queue) Dequeue(ctx context.Context) (domain.Task, bool) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			t := q.items[0]
			q.items = q.items[1:]
			remaining := len(q.items)
			q.mu.Unlock()
			if remaining > 0 {
				// keep other consumers awake; a single notify token can
				// only wake one of them
				select {
				case q.notify <- struct{}{}:
				default:
				}
			}
			return t, true
		}
		closed := q.closed
		q.mu.Unlock()
		if closed {
			return domain.Task{}, false
		}

		select {
		case <-q.notify:
		case <-q.done:
			// closed while waiting; loop once more to drain stragglers
			select {
			case <-q.notify:
			default:
			}
		case <-ctx.Done():
			return domain.Task{}, false
		}
	}
}

// Len reports the number of queued tasks
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close stops accepting new tasks and unblocks waiting consumers once the
// backlog drains. Safe to call more than once.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()
	close(q.done)
}
