package domain

// Enqueuer is the producer side of the task queue. Enqueue never blocks;
// it returns false once the queue is closed.
type Enqueuer interface {
	Enqueue(t Task) bool
}
