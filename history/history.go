/*
Package history implements a bounded input history with cursor navigation,
as found in shells and REPL prompts.

Entries are kept in an IndexedQueue. Navigation moves the queue's cursor: Prev
steps towards older entries, Next towards newer ones, and stepping past the
newest entry ends navigation, which is where fresh input begins.

    h := history.New(history.MaxEntries(500))
    h.Push("make test")
    h.Push("git status")
    cmd := h.Prev().WithDefault("")    // "git status"
    cmd = h.Prev().WithDefault("")     // "make test"

A History is not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package history

import (
	"errors"
	"strings"

	"github.com/npillmayer/indexq/maybe"
	"github.com/npillmayer/indexq/queue"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'indexq.history'.
func tracer() tracing.Trace {
	return tracing.Select("indexq.history")
}

const (
	defaultMaxEntries = 100
	maxPrealloc       = 1024
)

// History holds the most recent entries, oldest first.
type History struct {
	props
	entries    *queue.IndexedQueue[string]
	navigating bool
}

// New creates an empty history. Without options it keeps the last 100 entries
// and drops consecutive duplicates.
func New(opts ...Option) *History {
	p := props{max: defaultMaxEntries, skipDuplicates: true}
	for _, option := range opts {
		p = option(p)
	}
	capacity := p.max + 1 // Push adds before trimming
	if capacity > maxPrealloc {
		capacity = maxPrealloc
	}
	return &History{
		props:   p,
		entries: queue.New[string](queue.InitialCapacity(capacity)),
	}
}

type props struct {
	max            int
	skipDuplicates bool
	skipBlank      bool
}

// Option configures a History at creation time.
type Option func(props) props

// MaxEntries sets the number of entries a history retains. Pushing beyond it
// drops the oldest entries. n < 1 is treated as 1.
func MaxEntries(n int) Option {
	return func(p props) props {
		if n < 1 {
			n = 1
		}
		p.max = n
		return p
	}
}

// KeepDuplicates records an entry even if it repeats the newest one.
func KeepDuplicates() Option {
	return func(p props) props {
		p.skipDuplicates = false
		return p
	}
}

// SkipBlank ignores entries consisting of white space only.
func SkipBlank() Option {
	return func(p props) props {
		p.skipBlank = true
		return p
	}
}

// --- API -------------------------------------------------------------------

// Push records entry as the newest one and ends navigation.
func (h *History) Push(entry string) {
	h.navigating = false
	if h.skipBlank && strings.TrimSpace(entry) == "" {
		return
	}
	if h.skipDuplicates && !h.entries.IsEmpty() && h.newest() == entry {
		tracer().Debugf("history: skipping duplicate entry %q", entry)
		return
	}
	h.entries.Add(entry)
	for h.entries.Len() > h.max {
		dropped := h.entries.Poll()
		tracer().Debugf("history: dropping oldest entry %q", dropped.WithDefault(""))
	}
}

// Prev returns the entry before the current one. The first call after Push or
// Reset returns the newest entry. At the oldest entry, Prev keeps returning it.
// For an empty history, Prev returns Nothing.
func (h *History) Prev() maybe.Maybe[string] {
	if h.entries.IsEmpty() {
		return maybe.Nothing[string]()
	}
	if !h.navigating {
		if err := h.entries.SetCursor(h.entries.HeadIndex() - 1); err != nil {
			panic(err) // cannot happen for non-empty queues
		}
		h.navigating = true
		return h.current()
	}
	h.entries.DecrementCursor()
	if _, err := h.entries.PeekAtCursor(); errors.Is(err, queue.ErrOutOfBounds) {
		h.entries.IncrementCursor() // stay at the oldest entry
	}
	return h.current()
}

// Next returns the entry after the current one. Stepping past the newest entry ends
// navigation and returns Nothing, as does calling Next while not navigating.
func (h *History) Next() maybe.Maybe[string] {
	if !h.navigating {
		return maybe.Nothing[string]()
	}
	h.entries.IncrementCursor()
	if _, err := h.entries.PeekAtCursor(); errors.Is(err, queue.ErrOutOfBounds) {
		h.entries.DecrementCursor()
		h.navigating = false
		return maybe.Nothing[string]()
	}
	return h.current()
}

// Reset ends navigation. The next call to Prev starts at the newest entry again.
func (h *History) Reset() {
	h.navigating = false
}

// Navigating is true between a successful Prev and the end of navigation.
func (h *History) Navigating() bool {
	return h.navigating
}

func (h *History) Len() int {
	return h.entries.Len()
}

// Entries returns a copy of all entries, oldest first.
func (h *History) Entries() []string {
	list := make([]string, 0, h.entries.Len())
	h.entries.Each(func(_ int, entry string) bool {
		list = append(list, entry)
		return true
	})
	return list
}

func (h *History) newest() string {
	entry, _ := h.entries.PeekAt(h.entries.HeadIndex() - 1)
	return entry
}

func (h *History) current() maybe.Maybe[string] {
	entry, err := h.entries.PeekAtCursor()
	return maybe.Of(entry, err == nil)
}
