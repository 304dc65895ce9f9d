package smpsched

type taskRing[T any] struct {
	s    []*Task[T]
	r, w uint
}

// minRingSize is the backing slice length allocated on first push.
// Must be a power of 2.
const minRingSize = 64

func (x *taskRing[T]) mask(val uint) uint {
	return val & (uint(len(x.s)) - 1)
}

func (x *taskRing[T]) bounds() (i1, l1, l2 int) {
	if x.r == x.w {
		return
	}
	i1 = int(x.mask(x.r))
	l1 = int(x.mask(x.w))
	if l1 <= i1 {
		l2 = l1
		l1 = len(x.s)
	}
	return
}

func (x *taskRing[T]) len() int {
	return int(x.w - x.r)
}

func (x *taskRing[T]) pushBack(task *Task[T]) {
	if x.len() == len(x.s) {
		x.grow()
	}
	x.s[x.mask(x.w)] = task
	x.w++
}

func (x *taskRing[T]) popFront() *Task[T] {
	if x.r == x.w {
		return nil
	}
	i := x.mask(x.r)
	task := x.s[i]
	x.s[i] = nil // the caller holds the only scheduler-side reference now
	x.r++
	return task
}

func (x *taskRing[T]) reset() {
	clear(x.s)
	x.r = 0
	x.w = 0
}

// grow doubles the backing slice, unwrapping both segments so the contents
// start at offset 0.
func (x *taskRing[T]) grow() {
	if len(x.s) == 0 {
		x.s = make([]*Task[T], minRingSize)
		return
	}

	s := make([]*Task[T], uint(len(x.s))<<1)
	if len(s) == 0 {
		panic(`smpsched: ring: grow: overflow`)
	}

	i1, l1, l2 := x.bounds()
	n := copy(s, x.s[i1:l1])
	n += copy(s[n:], x.s[:l2])

	x.r = 0
	x.w = uint(n)
	x.s = s
}
