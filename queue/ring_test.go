package queue

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRingWrapAround(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "indexq.queue")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	r := newRing[int](4)
	for i := 0; i < 4; i++ {
		r.pushBack(i)
	}
	if len(r.buf) != 4 {
		t.Fatalf("expected capacity 4, have %d", len(r.buf))
	}
	r.popFront()
	r.popFront()
	r.pushBack(4)
	r.pushBack(5) // wraps around to slots 0 and 1
	if r.start != 2 || len(r.buf) != 4 {
		t.Fatalf("expected window to start at slot 2 of 4, is %d of %d", r.start, len(r.buf))
	}
	for k := 0; k < r.n; k++ {
		if r.at(k) != k+2 {
			t.Errorf("expected offset %d to hold %d, holds %d", k, k+2, r.at(k))
		}
	}
}

func TestRingGrowKeepsOrder(t *testing.T) {
	r := newRing[int](4)
	for i := 0; i < 4; i++ {
		r.pushBack(i)
	}
	r.popFront()
	r.pushBack(4) // window wraps: slots 1,2,3,0
	r.pushBack(5) // full ⇒ grow
	if len(r.buf) != 8 {
		t.Fatalf("expected ring to double to 8 slots, has %d", len(r.buf))
	}
	if r.start != 0 {
		t.Errorf("expected resize to re-base window at slot 0, is at %d", r.start)
	}
	for k := 0; k < r.n; k++ {
		if r.at(k) != k+1 {
			t.Errorf("expected offset %d to hold %d, holds %d", k, k+1, r.at(k))
		}
	}
}

func TestRingShrink(t *testing.T) {
	r := newRing[int](2)
	for i := 0; i < 32; i++ {
		r.pushBack(i)
	}
	if len(r.buf) != 32 {
		t.Fatalf("expected 32 slots, have %d", len(r.buf))
	}
	for i := 0; i < 30; i++ {
		r.popFront()
	}
	if len(r.buf) >= 32 {
		t.Errorf("expected ring to shrink after draining, still has %d slots", len(r.buf))
	}
	if len(r.buf) < r.min {
		t.Errorf("ring shrunk below minimum capacity %d: %d", r.min, len(r.buf))
	}
	if r.at(0) != 30 || r.at(1) != 31 {
		t.Errorf("expected remaining elements 30, 31; have %d, %d", r.at(0), r.at(1))
	}
	r.popFront()
	r.popFront()
	if r.n != 0 || len(r.buf) < 2 {
		t.Errorf("expected empty ring with at least 2 slots, have n=%d, cap=%d", r.n, len(r.buf))
	}
}

func TestRingReleasesPolledSlots(t *testing.T) {
	r := newRing[*int](4)
	x, y := 1, 2
	r.pushBack(&x)
	r.pushBack(&y)
	r.popFront()
	if r.buf[0] != nil {
		t.Errorf("expected polled slot to be cleared")
	}
}

func TestQueueLogicalIndicesSurviveResize(t *testing.T) {
	q := New[int](InitialCapacity(1))
	for i := 0; i < 100; i++ {
		q.Add(i)
	}
	for i := 0; i < 90; i++ {
		q.Poll()
	}
	for i := 90; i < 100; i++ {
		v, err := q.PeekAt(i)
		if err != nil || v != i {
			t.Errorf("expected PeekAt(%d) = %d, have %d, %v", i, i, v, err)
		}
	}
	t.Logf("ring: %d of %d slots used, start=%d", q.elements.n, len(q.elements.buf), q.elements.start)
}

func TestInitialCapacityOption(t *testing.T) {
	q := New[string](InitialCapacity(0))
	if q.elements.min != 1 {
		t.Errorf("expected capacity to be clamped to 1, is %d", q.elements.min)
	}
	q = New[string](InitialCapacity(64))
	q.Add("x")
	if len(q.elements.buf) != 64 {
		t.Errorf("expected 64 pre-allocated slots, have %d", len(q.elements.buf))
	}
}

func TestAssertThatPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected pop on empty ring to panic")
		}
	}()
	r := newRing[int](2)
	r.popFront()
}
