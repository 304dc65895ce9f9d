// Package smpsched implements a symmetric-multiprocessing (SMP) task
// scheduler core: one run queue per hart (hardware execution context), FIFO
// selection, and cross-hart work stealing when a hart's own queue is empty.
//
// It is designed to be embedded in a host kernel or runtime that knows how to
// identify the currently executing hart and how to context-switch into a
// chosen task. The package only orders opaque, shareable units of work; what
// "running" a task means is the host's business.
//
// # Architecture
//
// A [Scheduler] owns a fixed number of run queues, one per hart, each guarded
// by its own lock. The hart count is fixed at construction and never changes.
// There is no scheduler-wide lock: operations on different harts' queues
// proceed fully in parallel.
//
// The per-hart scheduling policy is the [RunQueue] interface, with
// [FIFORunQueue] as the provided implementation. Richer policies (round
// robin, deadline, etc.) can be layered on the same queue/steal substrate by
// implementing [RunQueue].
//
// Two capabilities are supplied by the host:
//   - [HartIDFunc] reports the index of the hart executing the calling
//     goroutine. It must be cheap, non-blocking, and stable for the duration
//     of a single scheduler operation.
//   - [LockFactory] constructs the lock guarding each queue, allowing the
//     host to choose between sleeping mutexes (the default), [SpinLock], or
//     its own locking discipline.
//
// # Thread Safety
//
// All [Scheduler] methods except [Scheduler.Init] are safe to call
// concurrently from any number of harts. [Scheduler.Init] must complete,
// exactly once, before any other method is called; this precondition is
// deliberately not runtime-checked, to keep the hot path lock-light.
//
// Within one hart's queue, tasks are returned in exactly the order admitted.
// Across queues there is no global order. A task is delivered to at most one
// caller of [Scheduler.PickNextTask], ever.
//
// # Usage
//
//	sched := smpsched.NewFIFO[func()](numHarts, hartID)
//	sched.Init()
//
//	// on any hart, when new work is created:
//	sched.AddTask(smpsched.NewTask(work))
//
//	// on any hart, when idle:
//	if task := sched.PickNextTask(); task != nil {
//		(*task.Inner())()
//	}
//
// An empty result from [Scheduler.PickNextTask] is nil, not an error: it is
// the normal "nothing to run" outcome.
package smpsched
