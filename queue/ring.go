package queue

// ring holds the resident window of a queue in a circular buffer.
// Slot 0 of the window (the element at the queue's tail index) lives at
// buf[start]; the window is n slots long.
type ring[T any] struct {
	buf   []T
	start int
	n     int
	min   int // buffer never shrinks below this capacity
}

func newRing[T any](capacity int) ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return ring[T]{min: capacity}
}

// at returns the element at window offset k.
func (r *ring[T]) at(k int) T {
	assertThat(k >= 0 && k < r.n, "ring offset %d out of range, window size is %d", k, r.n)
	return r.buf[r.slot(k)]
}

func (r *ring[T]) slot(k int) int {
	return (r.start + k) % len(r.buf)
}

func (r *ring[T]) pushBack(value T) {
	if r.n == len(r.buf) {
		c := 2 * len(r.buf)
		if c < r.min {
			c = r.min
		}
		r.resize(c)
	}
	r.buf[r.slot(r.n)] = value
	r.n++
}

func (r *ring[T]) popFront() T {
	assertThat(r.n > 0, "attempt to pop from empty ring")
	var zero T
	value := r.buf[r.start]
	r.buf[r.start] = zero // release reference for GC
	r.start = (r.start + 1) % len(r.buf)
	r.n--
	if r.n == 0 {
		r.start = 0
	}
	if c := len(r.buf) / 2; r.n <= c/2 && c >= r.min {
		r.resize(c)
	}
	return value
}

// resize copies the window into a fresh buffer of capacity c, starting at slot 0.
func (r *ring[T]) resize(c int) {
	assertThat(c >= r.n, "cannot resize ring of %d elements to capacity %d", r.n, c)
	tracer().Debugf("queue: resizing ring buffer from %d to %d slots", len(r.buf), c)
	buf := make([]T, c)
	if r.n > 0 {
		if r.start+r.n <= len(r.buf) {
			copy(buf, r.buf[r.start:r.start+r.n])
		} else {
			k := copy(buf, r.buf[r.start:])
			copy(buf[k:], r.buf[:r.n-k])
		}
	}
	r.buf = buf
	r.start = 0
}
