package event

import (
	"testing"

	"github.com/lixenwraith/asteroids/parameter"
)

// TestEventQueue_FIFO tests ordering and drain semantics
func TestEventQueue_FIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventKill, Tick: 1})
	q.Push(GameEvent{Type: EventLevelStart, Tick: 2})

	if q.Len() != 2 {
		t.Fatalf("Expected 2 pending, got %d", q.Len())
	}

	events := q.Consume()
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	if events[0].Type != EventKill || events[1].Type != EventLevelStart {
		t.Errorf("Expected FIFO order, got %v then %v", events[0].Type, events[1].Type)
	}
	if q.Consume() != nil {
		t.Error("Expected empty queue after consume")
	}
}

// TestEventQueue_Overflow tests that the oldest events are dropped when full
func TestEventQueue_Overflow(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventKill, Tick: uint64(i)})
	}

	events := q.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(events))
	}
	if events[0].Tick != 10 {
		t.Errorf("Expected oldest retained tick 10, got %d", events[0].Tick)
	}
	if q.Dropped() != 10 {
		t.Errorf("Expected 10 dropped, got %d", q.Dropped())
	}
}
