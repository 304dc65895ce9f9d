package smpsched

import (
	"sync"

	"github.com/joeycumines/logiface"
)

type (
	// Scheduler distributes tasks across a fixed number of harts, one run
	// queue per hart, stealing from siblings when the calling hart's own
	// queue is empty.
	//
	// Instances must be initialized using the [New] or [NewFIFO] factory,
	// then [Scheduler.Init] called exactly once before any other method.
	// See the package documentation for the concurrency contract.
	Scheduler[T any] struct {
		// Prevent copying
		_ [0]func()

		// queues is fixed-length for the scheduler's lifetime; index = hart.
		queues []hartQueue[T]

		hartID  HartIDFunc
		logger  *logiface.Logger[logiface.Event]
		metrics *metrics
	}

	// hartQueue pairs one hart's run queue with its guarding lock. All
	// access to rq happens under lock.
	hartQueue[T any] struct {
		lock sync.Locker
		rq   RunQueue[T]
	}
)

// New initializes a new Scheduler with harts run queues, each constructed by
// newQueue and guarded by its own lock. hartID is the host's core identity
// capability; see [HartIDFunc].
//
// A panic will occur if harts < 1, hartID or newQueue is nil, newQueue
// returns nil, or an invalid option is provided.
func New[T any](harts int, hartID HartIDFunc, newQueue func() RunQueue[T], opts ...Option) *Scheduler[T] {
	if harts < 1 {
		panic(`smpsched: at least one hart is required`)
	}
	if hartID == nil {
		panic(`smpsched: nil hart id func`)
	}
	if newQueue == nil {
		panic(`smpsched: nil run queue factory`)
	}

	cfg, err := resolveOptions(opts)
	if err != nil {
		panic(err)
	}

	lockFactory := cfg.lockFactory
	if lockFactory == nil {
		lockFactory = defaultLockFactory
	}

	scheduler := Scheduler[T]{
		queues: make([]hartQueue[T], harts),
		hartID: hartID,
		logger: cfg.logger,
	}
	if cfg.metricsEnabled {
		scheduler.metrics = new(metrics)
	}

	for i := range scheduler.queues {
		rq := newQueue()
		if rq == nil {
			panic(`smpsched: run queue factory returned nil`)
		}
		scheduler.queues[i] = hartQueue[T]{lock: lockFactory(), rq: rq}
	}

	return &scheduler
}

// NewFIFO initializes a new Scheduler using a [FIFORunQueue] per hart. See
// [New] for the parameter contracts.
func NewFIFO[T any](harts int, hartID HartIDFunc, opts ...Option) *Scheduler[T] {
	return New(harts, hartID, func() RunQueue[T] { return new(FIFORunQueue[T]) }, opts...)
}

// Harts returns the fixed hart count.
func (x *Scheduler[T]) Harts() int {
	return len(x.queues)
}

// Init prepares every run queue for use, resetting each to empty. It must
// be called exactly once, before any other method; calling scheduling
// operations first is a host programming error with undefined behavior, by
// contract (not runtime-detected).
func (x *Scheduler[T]) Init() {
	for i := range x.queues {
		q := &x.queues[i]
		q.lock.Lock()
		q.rq.Init()
		q.lock.Unlock()
	}
	x.logger.Info().Int(`harts`, len(x.queues)).Log(`smpsched: initialized`)
}

// AddTask admits task to the calling hart's own queue. Admission never
// targets a remote queue. Once AddTask returns, the task is visible to
// [Scheduler.PickNextTask] on every hart (happens-before is established by
// the queue lock). It cannot fail: the queue is unbounded, and a panic on a
// nil task is the only misuse guard.
func (x *Scheduler[T]) AddTask(task *Task[T]) {
	if task == nil {
		panic(`smpsched: nil task`)
	}
	q := &x.queues[x.hartID()]
	q.lock.Lock()
	q.rq.AddTask(task)
	q.lock.Unlock()
	x.metrics.addAdmitted()
}

// PickNextTask removes and returns the next task for the calling hart, or
// nil when every queue is empty (the normal idle outcome, not an error).
//
// The calling hart's own queue is tried first. Only if it is empty are the
// sibling queues visited, in ascending index order starting after the
// calling hart and wrapping around, each exactly once; the first task found
// is stolen. At most one lock is held at any point, so the worst case is
// one acquisition per hart and there is no lock-ordering deadlock.
//
// A task is returned by exactly one PickNextTask call, ever: it is removed
// from the victim queue before that queue's lock is released.
func (x *Scheduler[T]) PickNextTask() *Task[T] {
	hart := x.hartID()

	q := &x.queues[hart]
	q.lock.Lock()
	task := q.rq.PickNextTask()
	q.lock.Unlock()
	if task != nil {
		x.metrics.addDispatched()
		return task
	}

	for i := 1; i < len(x.queues); i++ {
		victim := hart + i
		if victim >= len(x.queues) {
			victim -= len(x.queues)
		}
		q := &x.queues[victim]
		q.lock.Lock()
		task := q.rq.PickNextTask()
		q.lock.Unlock()
		if task != nil {
			x.metrics.addStolen()
			x.logger.Trace().Int(`hart`, hart).Int(`victim`, victim).Log(`smpsched: stole task`)
			return task
		}
	}

	x.metrics.addIdlePick()
	return nil
}

// PutPrevTask re-admits a previously dispatched task to the calling hart's
// queue, e.g. after the host interrupted its execution. preempt reports
// whether the interruption was a preemption rather than a voluntary yield;
// it is forwarded to the hart's [RunQueue] policy (and ignored by FIFO).
func (x *Scheduler[T]) PutPrevTask(prev *Task[T], preempt bool) {
	if prev == nil {
		panic(`smpsched: nil task`)
	}
	q := &x.queues[x.hartID()]
	q.lock.Lock()
	q.rq.PutPrevTask(prev, preempt)
	q.lock.Unlock()
	x.metrics.addRequeued()
}

// TaskTick informs the calling hart's policy of a timer tick while current
// is running, reporting whether current should be rescheduled. Always false
// for FIFO.
func (x *Scheduler[T]) TaskTick(current *Task[T]) bool {
	q := &x.queues[x.hartID()]
	q.lock.Lock()
	resched := q.rq.TaskTick(current)
	q.lock.Unlock()
	return resched
}

// SetPriority forwards a priority change for task to the calling hart's
// policy, reporting whether the policy supports priorities. Always false
// for FIFO.
func (x *Scheduler[T]) SetPriority(task *Task[T], prio int) bool {
	q := &x.queues[x.hartID()]
	q.lock.Lock()
	ok := q.rq.SetPriority(task, prio)
	q.lock.Unlock()
	return ok
}

// Metrics returns a snapshot of the scheduler's counters. It returns the
// zero value unless collection was enabled via [WithMetrics].
func (x *Scheduler[T]) Metrics() Metrics {
	return x.metrics.snapshot()
}
