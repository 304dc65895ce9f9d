package smpsched

type (
	// RunQueue models the scheduling policy for a single hart. The
	// [Scheduler] owns one instance per hart and serializes all calls to it
	// under that hart's lock; implementations are not required to be safe
	// for concurrent use.
	//
	// [FIFORunQueue] is the provided implementation. Alternative policies
	// implement this interface and are installed via [New].
	RunQueue[T any] interface {
		// Init resets the queue to empty. Called once, by [Scheduler.Init],
		// before any other method.
		Init()

		// AddTask admits a newly created task. It must not fail.
		AddTask(task *Task[T])

		// PickNextTask removes and returns the task the policy would run
		// next, or nil if the queue is empty.
		PickNextTask() *Task[T]

		// PutPrevTask re-admits a task whose execution was interrupted.
		// preempt reports whether the interruption was a preemption, as
		// opposed to a voluntary yield; policies may use it to decide
		// placement.
		PutPrevTask(prev *Task[T], preempt bool)

		// TaskTick informs the policy of a timer tick while current is
		// running, and reports whether current should be rescheduled.
		TaskTick(current *Task[T]) bool

		// SetPriority updates the priority of a task, reporting whether the
		// policy supports priorities.
		SetPriority(task *Task[T], prio int) bool
	}

	// FIFORunQueue is a [RunQueue] with first-in-first-out ordering and no
	// capacity bound. The zero value is ready to use.
	FIFORunQueue[T any] struct {
		ring taskRing[T]
	}
)

// Init resets the queue to empty.
func (x *FIFORunQueue[T]) Init() {
	x.ring.reset()
}

// AddTask appends task to the tail of the queue. O(1) amortized.
func (x *FIFORunQueue[T]) AddTask(task *Task[T]) {
	x.ring.pushBack(task)
}

// PickNextTask removes and returns the head of the queue, or nil if the
// queue is empty. O(1).
func (x *FIFORunQueue[T]) PickNextTask() *Task[T] {
	return x.ring.popFront()
}

// PutPrevTask appends prev to the tail of the queue. FIFO has no preemption
// policy, so preempt is ignored.
func (x *FIFORunQueue[T]) PutPrevTask(prev *Task[T], preempt bool) {
	x.ring.pushBack(prev)
}

// TaskTick reports false: FIFO tasks run until they yield.
func (x *FIFORunQueue[T]) TaskTick(current *Task[T]) bool {
	return false
}

// SetPriority reports false: FIFO has no priorities.
func (x *FIFORunQueue[T]) SetPriority(task *Task[T], prio int) bool {
	return false
}

// Len returns the number of queued tasks.
func (x *FIFORunQueue[T]) Len() int {
	return x.ring.len()
}
