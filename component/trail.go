package component

// Trail is a fixed-capacity ring keeping the most recent entries
// Push beyond capacity overwrites the oldest entry
type Trail[T any] struct {
	items []T
	start int
	n     int
}

// NewTrail creates a ring of the given capacity
func NewTrail[T any](capacity int) Trail[T] {
	if capacity < 1 {
		capacity = 1
	}
	return Trail[T]{items: make([]T, capacity)}
}

// Push appends v, evicting the oldest entry when full
func (t *Trail[T]) Push(v T) {
	if len(t.items) == 0 {
		return
	}
	if t.n < len(t.items) {
		t.items[(t.start+t.n)%len(t.items)] = v
		t.n++
		return
	}
	t.items[t.start] = v
	t.start = (t.start + 1) % len(t.items)
}

// Len returns the number of stored entries
func (t *Trail[T]) Len() int { return t.n }

// Cap returns ring capacity
func (t *Trail[T]) Cap() int { return len(t.items) }

// At returns entry i, 0 is the oldest
func (t *Trail[T]) At(i int) T {
	return t.items[(t.start+i)%len(t.items)]
}

// Ref returns a pointer to entry i for in-place updates
func (t *Trail[T]) Ref(i int) *T {
	return &t.items[(t.start+i)%len(t.items)]
}

// Clear drops all entries, capacity is kept
func (t *Trail[T]) Clear() {
	t.start = 0
	t.n = 0
}

// Retain keeps entries for which keep returns true, preserving order
func (t *Trail[T]) Retain(keep func(*T) bool) {
	w := 0
	for i := 0; i < t.n; i++ {
		v := t.items[(t.start+i)%len(t.items)]
		if keep(&v) {
			t.items[(t.start+w)%len(t.items)] = v
			w++
		}
	}
	t.n = w
}
