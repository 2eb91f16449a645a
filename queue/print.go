package queue

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// String renders the resident window for debugging, one node per element,
// with the tail and cursor positions marked.
//
//     Queue(len=2, tail=3, head=5, cursor=4)
//     .
//     ├── [3] foo  ◂ tail
//     └── [4] bar  ◂ cursor
//
func (q *IndexedQueue[T]) String() string {
	header := fmt.Sprintf("Queue(len=%d, tail=%d, head=%d, cursor=%d)", q.Len(), q.tail, q.head, q.cursor)
	if q.IsEmpty() {
		return header
	}
	printer := tp.New()
	q.Each(func(index int, value T) bool {
		node := fmt.Sprintf("[%d] %v", index, value)
		if m := q.markers(index); m != "" {
			node += "  ◂ " + m
		}
		printer.AddNode(node)
		return true
	})
	return header + "\n" + printer.String()
}

func (q *IndexedQueue[T]) markers(index int) string {
	var m string
	if index == q.tail {
		m = "tail"
	}
	if index == q.cursor {
		if m != "" {
			m += ", "
		}
		m += "cursor"
	}
	return m
}
