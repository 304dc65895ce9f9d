package smpsched

// HartIDFunc reports the index of the hart executing the calling goroutine,
// in [0, harts). It is supplied by the host, which is the only party that
// knows how execution contexts map to harts.
//
// Implementations must not block, must be side-effect free, and must return
// a value that is stable for the duration of a single scheduler operation.
// An out-of-range result is a host programming error; it is not checked on
// the hot path, and surfaces as an index-out-of-range panic.
type HartIDFunc func() int

// FixedHart returns a [HartIDFunc] that always reports id. Intended for
// single-hart hosts and tests.
func FixedHart(id int) HartIDFunc {
	return func() int { return id }
}
