package smpsched_test

import (
	"fmt"
	"sync/atomic"

	smpsched "github.com/joeycumines/go-smpsched"
)

// Demonstrates admission and selection across two harts, including the
// stealing path. The hart id capability is backed by an atomic, standing in
// for however the host identifies its execution contexts.
func ExampleScheduler() {
	var hart atomic.Int64
	sched := smpsched.NewFIFO[int](2, func() int { return int(hart.Load()) })
	sched.Init()

	sched.AddTask(smpsched.NewTask(1)) // admitted to hart 0's queue
	hart.Store(1)
	sched.AddTask(smpsched.NewTask(2)) // admitted to hart 1's queue
	hart.Store(0)

	task := sched.PickNextTask() // hart 0's own queue: local fast path
	fmt.Println(*task.Inner())

	task = sched.PickNextTask() // hart 0 is empty: stolen from hart 1
	fmt.Println(*task.Inner())

	fmt.Println(sched.PickNextTask() == nil) // nothing left anywhere

	// output:
	// 1
	// 2
	// true
}

// Demonstrates re-admitting an interrupted task. FIFO places it at the tail
// of the calling hart's queue.
func ExampleScheduler_PutPrevTask() {
	sched := smpsched.NewFIFO[string](1, smpsched.FixedHart(0))
	sched.Init()

	sched.AddTask(smpsched.NewTask("a"))
	sched.AddTask(smpsched.NewTask("b"))

	prev := sched.PickNextTask() // "a" runs, then the host preempts it
	sched.PutPrevTask(prev, true)

	fmt.Println(*sched.PickNextTask().Inner())
	fmt.Println(*sched.PickNextTask().Inner())

	// output:
	// b
	// a
}
