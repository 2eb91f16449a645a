package queue

import (
	"sync"

	"github.com/npillmayer/indexq/maybe"
)

// Locked serializes access to an IndexedQueue. Every method takes a mutex
// for the duration of the call. Sequences of calls which must not be
// interleaved with other goroutines' operations go through Do.
type Locked[T any] struct {
	mu sync.Mutex
	q  *IndexedQueue[T]
}

// NewLocked creates an empty queue guarded by a mutex.
func NewLocked[T any](opts ...Option) *Locked[T] {
	return &Locked[T]{q: New[T](opts...)}
}

// Do calls f with the underlying queue while holding the lock.
// f must not retain q after it returns.
//
//     lq.Do(func(q *queue.IndexedQueue[string]) {
//         q.IncrementCursor()
//         if _, err := q.PeekAtCursor(); err != nil {
//             q.DecrementCursor()
//         }
//     })
//
func (l *Locked[T]) Do(f func(q *IndexedQueue[T])) {
	l.mu.Lock()
	defer l.mu.Unlock()
	f(l.q)
}

func (l *Locked[T]) Add(value T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.q.Add(value)
}

func (l *Locked[T]) IsEmpty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.IsEmpty()
}

func (l *Locked[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.Len()
}

func (l *Locked[T]) Peek() maybe.Maybe[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.Peek()
}

func (l *Locked[T]) Poll() maybe.Maybe[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.Poll()
}

func (l *Locked[T]) HeadIndex() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.HeadIndex()
}

func (l *Locked[T]) TailIndex() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.TailIndex()
}

func (l *Locked[T]) Cursor() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.Cursor()
}

func (l *Locked[T]) SetCursor(index int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.SetCursor(index)
}

func (l *Locked[T]) IncrementCursor() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.IncrementCursor()
}

func (l *Locked[T]) DecrementCursor() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.DecrementCursor()
}

func (l *Locked[T]) AdvanceCursor() (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.AdvanceCursor()
}

func (l *Locked[T]) RetreatCursor() (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.RetreatCursor()
}

func (l *Locked[T]) PeekAt(index int) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.PeekAt(index)
}

func (l *Locked[T]) PeekAtCursor() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.PeekAtCursor()
}

func (l *Locked[T]) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.String()
}
