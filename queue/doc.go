/*
Package queue implements a FIFO queue with a read cursor.

An IndexedQueue assigns every added element a logical index, starting at 0.
Indices are never reused and never renumbered: polling removes the element at
the tail index and moves the tail forward, but all other elements keep their
indices. A client holding index k may therefore come back later and either find
the very same element at k, or get a clean out-of-bounds error once k has been polled.

Besides the usual Add/Peek/Poll, a queue carries a cursor, which may be moved
independently across the resident window [tail … head-1]. This supports clients
which browse recent entries while new ones keep arriving, like input histories:

    q := queue.New[string]()
    q.Add("ls").Add("cd /tmp").Add("make")
    q.SetCursor(q.HeadIndex() - 1)       // newest entry
    q.DecrementCursor()                  // one step back
    cmd, err := q.PeekAtCursor()         // "cd /tmp"

Cursor steps with IncrementCursor and DecrementCursor are unchecked; clients
either probe the new position with PeekAtCursor, or use the checked variants
AdvanceCursor and RetreatCursor.

Queues are not safe for concurrent use. Wrap them in a Locked if more than
one goroutine has to operate on a queue.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package queue

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'indexq.queue'.
func tracer() tracing.Trace {
	return tracing.Select("indexq.queue")
}

// ErrOutOfBounds is returned for cursor positions and indices outside of the
// queue's resident window. Errors returned by queue operations wrap it, so
// clients should test with errors.Is.
var ErrOutOfBounds = errors.New("index out of bounds")

func outOfBounds(index, tail, head int) error {
	tracer().Debugf("queue: index %d out of bounds [%d…%d)", index, tail, head)
	if head == tail {
		return fmt.Errorf("%w: index %d, queue is empty", ErrOutOfBounds, index)
	}
	return fmt.Errorf("%w: index %d not in [%d…%d]", ErrOutOfBounds, index, tail, head-1)
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("queue: "+msg, msgargs...)
		panic(msg)
	}
}
