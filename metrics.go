package smpsched

import "sync/atomic"

// Metrics is a point-in-time snapshot of scheduler counters, as returned by
// [Scheduler.Metrics]. Collection is enabled via [WithMetrics]; when
// disabled, the snapshot is always zero.
//
// All counters are monotonic over the scheduler's lifetime. The snapshot is
// internally consistent only in the absence of concurrent operations; under
// load, counters may be mid-update relative to one another.
type Metrics struct {
	// Admitted counts tasks accepted by [Scheduler.AddTask].
	Admitted uint64

	// Requeued counts tasks re-admitted by [Scheduler.PutPrevTask].
	Requeued uint64

	// Dispatched counts tasks returned by [Scheduler.PickNextTask] from the
	// calling hart's own queue.
	Dispatched uint64

	// Stolen counts tasks returned by [Scheduler.PickNextTask] from a
	// sibling hart's queue.
	Stolen uint64

	// IdlePicks counts [Scheduler.PickNextTask] calls that found no work on
	// any queue.
	IdlePicks uint64
}

// metrics is the live counter set. All methods are nil-safe, so call sites
// need no enabled check.
type metrics struct {
	admitted   atomic.Uint64
	requeued   atomic.Uint64
	dispatched atomic.Uint64
	stolen     atomic.Uint64
	idlePicks  atomic.Uint64
}

func (x *metrics) addAdmitted() {
	if x != nil {
		x.admitted.Add(1)
	}
}

func (x *metrics) addRequeued() {
	if x != nil {
		x.requeued.Add(1)
	}
}

func (x *metrics) addDispatched() {
	if x != nil {
		x.dispatched.Add(1)
	}
}

func (x *metrics) addStolen() {
	if x != nil {
		x.stolen.Add(1)
	}
}

func (x *metrics) addIdlePick() {
	if x != nil {
		x.idlePicks.Add(1)
	}
}

func (x *metrics) snapshot() (m Metrics) {
	if x != nil {
		m.Admitted = x.admitted.Load()
		m.Requeued = x.requeued.Load()
		m.Dispatched = x.dispatched.Load()
		m.Stolen = x.stolen.Load()
		m.IdlePicks = x.idlePicks.Load()
	}
	return
}
