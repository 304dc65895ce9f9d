package smpsched

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// LockFactory constructs the lock guarding a single hart's run queue. It is
// called once per hart, at construction, and each call must return a
// distinct lock. The lock is never acquired re-entrantly, and is always
// released on the same call path that acquired it.
//
// The default (a *sync.Mutex per queue) suits goroutine-based hosts. Hosts
// with different suspension requirements supply their own via
// [WithLockFactory], e.g. [SpinLock] for busy-wait semantics.
type LockFactory func() sync.Locker

func defaultLockFactory() sync.Locker {
	return new(sync.Mutex)
}

// SpinLock is a test-and-set spin lock with [runtime.Gosched] backoff. The
// zero value is unlocked and ready to use. A SpinLock must not be copied
// after first use.
//
// Critical sections guarded by the scheduler are O(1) queue operations, so
// spinning is a reasonable policy where sleeping is unacceptable; it is not
// a general-purpose mutex replacement.
type SpinLock struct {
	_ [0]func()
	v atomic.Uint32
}

// Lock spins until the lock is acquired.
func (x *SpinLock) Lock() {
	for !x.v.CompareAndSwap(0, 1) {
		runtime.Gosched()
	}
}

// Unlock releases the lock. It panics if the lock is not held.
func (x *SpinLock) Unlock() {
	if x.v.Swap(0) == 0 {
		panic(`smpsched: unlock of unlocked SpinLock`)
	}
}
