package queue

import (
	"github.com/npillmayer/indexq/maybe"
)

const defaultCapacity = 16

// IndexedQueue is a FIFO queue with a cursor. The zero value is not usable,
// create queues with New.
type IndexedQueue[T any] struct {
	elements ring[T]
	head     int // next index to assign
	tail     int // oldest resident index
	cursor   int
}

// New creates an empty queue, with head, tail and cursor at 0.
//
//     q := queue.New[int](queue.InitialCapacity(64))
//
func New[T any](opts ...Option) *IndexedQueue[T] {
	p := props{capacity: defaultCapacity}
	for _, option := range opts {
		p = option.config(p)
	}
	return &IndexedQueue[T]{elements: newRing[T](p.capacity)}
}

// Option is a type to help initializing queues at creation time.
type Option struct {
	config func(props) props
}

type props struct {
	capacity int
}

// InitialCapacity is an option to pre-allocate storage for n elements.
// Queues grow beyond that on demand, and will not shrink below it.
// Values below 1 are treated as 1.
func InitialCapacity(n int) Option {
	conf := func(p props) props {
		if n < 1 {
			n = 1
		}
		p.capacity = n
		return p
	}
	return Option{config: conf}
}

// --- API -------------------------------------------------------------------

// Add appends value at the head index and returns q, allowing calls to be chained.
// The cursor is not moved.
func (q *IndexedQueue[T]) Add(value T) *IndexedQueue[T] {
	q.elements.pushBack(value)
	q.head++
	return q
}

func (q *IndexedQueue[T]) IsEmpty() bool {
	return q.head == q.tail
}

// Len returns the number of resident elements, i.e. head index − tail index.
func (q *IndexedQueue[T]) Len() int {
	return q.head - q.tail
}

// Peek returns the oldest element without removing it, or Nothing for an empty queue.
func (q *IndexedQueue[T]) Peek() maybe.Maybe[T] {
	if q.IsEmpty() {
		return maybe.Nothing[T]()
	}
	return maybe.Just(q.elements.at(0))
}

// Poll removes and returns the oldest element. Polling an empty queue
// returns Nothing and leaves the queue untouched.
//
// If the cursor pointed to the removed element, it is moved forward to the new
// tail index. A cursor ahead of the tail keeps its position.
func (q *IndexedQueue[T]) Poll() maybe.Maybe[T] {
	if q.IsEmpty() {
		return maybe.Nothing[T]()
	}
	value := q.elements.popFront()
	q.tail++
	if q.cursor < q.tail {
		tracer().Debugf("queue: cursor %d fell behind tail, moving to %d", q.cursor, q.tail)
		q.cursor = q.tail
	}
	return maybe.Just(value)
}

// HeadIndex returns the index the next added element will receive.
func (q *IndexedQueue[T]) HeadIndex() int {
	return q.head
}

// TailIndex returns the index of the oldest resident element, which is the next one to be polled.
func (q *IndexedQueue[T]) TailIndex() int {
	return q.tail
}

// Cursor returns the cursor position. For empty queues the value has no meaning.
func (q *IndexedQueue[T]) Cursor() int {
	return q.cursor
}

// SetCursor moves the cursor to index. If index is not in [tail … head-1],
// SetCursor returns an error wrapping ErrOutOfBounds and leaves the cursor alone.
// On an empty queue every index is out of bounds.
func (q *IndexedQueue[T]) SetCursor(index int) error {
	if !q.resident(index) {
		return outOfBounds(index, q.tail, q.head)
	}
	q.cursor = index
	return nil
}

// IncrementCursor moves the cursor one step towards the head and returns the new position.
// The new position is not checked; use PeekAtCursor to find out if it is valid,
// or AdvanceCursor for a checked step.
func (q *IndexedQueue[T]) IncrementCursor() int {
	q.cursor++
	return q.cursor
}

// DecrementCursor moves the cursor one step towards the tail and returns the new position.
// Like IncrementCursor it does not check bounds.
func (q *IndexedQueue[T]) DecrementCursor() int {
	q.cursor--
	return q.cursor
}

// AdvanceCursor is the checked variant of IncrementCursor. If the step would leave
// the resident window, the cursor stays where it is and an error wrapping
// ErrOutOfBounds is returned together with the unchanged position.
func (q *IndexedQueue[T]) AdvanceCursor() (int, error) {
	if err := q.SetCursor(q.cursor + 1); err != nil {
		return q.cursor, err
	}
	return q.cursor, nil
}

// RetreatCursor is the checked variant of DecrementCursor.
func (q *IndexedQueue[T]) RetreatCursor() (int, error) {
	if err := q.SetCursor(q.cursor - 1); err != nil {
		return q.cursor, err
	}
	return q.cursor, nil
}

// PeekAt returns the element at index without removing it. If the queue is empty
// or index is not in [tail … head-1], an error wrapping ErrOutOfBounds is returned.
func (q *IndexedQueue[T]) PeekAt(index int) (T, error) {
	if !q.resident(index) {
		var zero T
		return zero, outOfBounds(index, q.tail, q.head)
	}
	return q.elements.at(index - q.tail), nil
}

// PeekAtCursor is PeekAt(q.Cursor()).
func (q *IndexedQueue[T]) PeekAtCursor() (T, error) {
	return q.PeekAt(q.cursor)
}

// Each calls f for every resident element, oldest first, together with its index.
// Iteration stops as soon as f returns false. f must not modify q.
func (q *IndexedQueue[T]) Each(f func(index int, value T) bool) {
	for k := 0; k < q.Len(); k++ {
		if !f(q.tail+k, q.elements.at(k)) {
			return
		}
	}
}

func (q *IndexedQueue[T]) resident(index int) bool {
	return !q.IsEmpty() && index >= q.tail && index < q.head
}
