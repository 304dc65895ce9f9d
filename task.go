package smpsched

// Task wraps an opaque payload so it can sit in a run queue. Ownership is
// shared: the queue holding a task and any number of host-retained handles
// may reference it simultaneously, and its lifetime is that of the longest
// holder. Once returned by [Scheduler.PickNextTask] the scheduler drops its
// reference; re-admission requires another [Scheduler.AddTask] call.
//
// The scheduler never reads or writes the payload. Hosts that mutate it must
// coordinate among themselves; a task must not be admitted while it is
// already resident in a queue.
type Task[T any] struct {
	// Prevent copying (a copied task would defeat shared ownership)
	_ [0]func()

	payload T
}

// NewTask wraps payload in a new [Task]. It has no side effects beyond the
// allocation, and cannot fail.
func NewTask[T any](payload T) *Task[T] {
	return &Task[T]{payload: payload}
}

// Inner returns a reference to the wrapped payload. It does not dequeue the
// task, and does not block.
func (x *Task[T]) Inner() *T {
	return &x.payload
}
