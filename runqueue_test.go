package smpsched

import "testing"

func TestFIFORunQueue_zeroValueReady(t *testing.T) {
	var rq FIFORunQueue[string]
	if task := rq.PickNextTask(); task != nil {
		t.Errorf("PickNextTask() = %v, want nil", task)
	}
	task := NewTask("a")
	rq.AddTask(task)
	if got := rq.PickNextTask(); got != task {
		t.Errorf("PickNextTask() = %v, want %v", got, task)
	}
}

func TestFIFORunQueue_fifoOrder(t *testing.T) {
	var rq FIFORunQueue[int]
	rq.Init()
	var tasks []*Task[int]
	for i := 1; i <= 100; i++ {
		task := NewTask(i)
		tasks = append(tasks, task)
		rq.AddTask(task)
	}
	if rq.Len() != len(tasks) {
		t.Fatalf("Len() = %v, want %v", rq.Len(), len(tasks))
	}
	for i, want := range tasks {
		if got := rq.PickNextTask(); got != want {
			t.Fatalf("PickNextTask() #%d = %v, want %v", i, got, want)
		}
	}
	if task := rq.PickNextTask(); task != nil {
		t.Errorf("PickNextTask() after drain = %v, want nil", task)
	}
}

func TestFIFORunQueue_putPrevTaskAppendsToTail(t *testing.T) {
	var rq FIFORunQueue[int]
	a, b := NewTask(1), NewTask(2)
	rq.AddTask(a)
	rq.AddTask(b)

	prev := rq.PickNextTask()
	if prev != a {
		t.Fatalf("PickNextTask() = %v, want %v", prev, a)
	}
	rq.PutPrevTask(prev, true)

	if got := rq.PickNextTask(); got != b {
		t.Errorf("PickNextTask() = %v, want %v", got, b)
	}
	if got := rq.PickNextTask(); got != a {
		t.Errorf("PickNextTask() = %v, want %v", got, a)
	}
}

func TestFIFORunQueue_policyQueries(t *testing.T) {
	var rq FIFORunQueue[int]
	task := NewTask(1)
	rq.AddTask(task)
	if rq.TaskTick(task) {
		t.Error("TaskTick() = true, want false (FIFO never reschedules on tick)")
	}
	if rq.SetPriority(task, 3) {
		t.Error("SetPriority() = true, want false (FIFO has no priorities)")
	}
	// neither query may disturb the queue
	if got := rq.PickNextTask(); got != task {
		t.Errorf("PickNextTask() = %v, want %v", got, task)
	}
}

func TestFIFORunQueue_initResets(t *testing.T) {
	var rq FIFORunQueue[int]
	rq.AddTask(NewTask(1))
	rq.AddTask(NewTask(2))
	rq.Init()
	if rq.Len() != 0 {
		t.Errorf("Len() = %v, want 0", rq.Len())
	}
	if task := rq.PickNextTask(); task != nil {
		t.Errorf("PickNextTask() = %v, want nil", task)
	}
}
