// Package collection provides an ordered container that tells its
// listeners when it changes.
package collection

import "iter"

// ChangeKind identifies which kind of mutation a Change describes.
type ChangeKind int

const (
	// StructureChanged means elements were added or removed. Anything that
	// depends on the list should be redrawn from scratch.
	StructureChanged ChangeKind = iota
	// ContentUpdated means the element at Change.Index was replaced or
	// mutated in place.
	ContentUpdated
)

func (k ChangeKind) String() string {
	switch k {
	case StructureChanged:
		return "structure_changed"
	case ContentUpdated:
		return "content_updated"
	default:
		return "unknown"
	}
}

// Change is the payload delivered to listeners. Index is only meaningful
// for ContentUpdated.
type Change struct {
	Kind  ChangeKind
	Index int
}

// Listener receives change notifications. Listeners are compared by
// interface equality, so implementations should be pointer types.
type Listener interface {
	Notify(Change)
}

// List is an ordered sequence that notifies its listeners on every
// mutation. The zero value is an empty list with no listeners. The read
// methods also accept a nil *List, which reads as empty.
//
// A listener subscribed twice is notified twice per change. Callers that
// care must not subscribe the same listener more than once.
type List[T comparable] struct {
	items     []T
	listeners []Listener
}

// NewList returns a list holding the given elements in order. No
// notifications are raised for the initial contents.
func NewList[T comparable](items ...T) *List[T] {
	l := &List[T]{}
	l.items = append(l.items, items...)
	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// At returns the element at index i and whether i was in range.
func (l *List[T]) At(i int) (T, bool) {
	if i < 0 || i >= l.Len() {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// IndexOf returns the position of the first element equal to v, or -1.
func (l *List[T]) IndexOf(v T) int {
	if l == nil {
		return -1
	}
	for i, item := range l.items {
		if item == v {
			return i
		}
	}
	return -1
}

// All iterates over the elements in order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil {
			return
		}
		for i, item := range l.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Items returns a snapshot copy of the elements.
func (l *List[T]) Items() []T {
	out := make([]T, l.Len())
	if l == nil {
		return out
	}
	copy(out, l.items)
	return out
}

// Append adds v to the end and raises StructureChanged.
func (l *List[T]) Append(v T) {
	l.items = append(l.items, v)
	l.notify(Change{Kind: StructureChanged})
}

// RemoveFirst removes the first element equal to v and raises
// StructureChanged. It reports false, without notifying, when v is absent.
func (l *List[T]) RemoveFirst(v T) bool {
	i := l.IndexOf(v)
	if i < 0 {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.notify(Change{Kind: StructureChanged})
	return true
}

// ReplaceAt stores v at index i and raises ContentUpdated for i. Passing
// the element already at i is how callers announce an in-place mutation.
// It reports false when i is out of range.
func (l *List[T]) ReplaceAt(i int, v T) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	l.items[i] = v
	l.notify(Change{Kind: ContentUpdated, Index: i})
	return true
}

// Subscribe registers a listener.
func (l *List[T]) Subscribe(ln Listener) {
	l.listeners = append(l.listeners, ln)
}

// Unsubscribe removes one registration of ln. Removing a listener that is
// not registered is a no-op.
func (l *List[T]) Unsubscribe(ln Listener) {
	for i, existing := range l.listeners {
		if existing == ln {
			l.listeners = append(l.listeners[:i], l.listeners[i+1:]...)
			return
		}
	}
}

// Listeners returns the number of current registrations.
func (l *List[T]) Listeners() int {
	if l == nil {
		return 0
	}
	return len(l.listeners)
}

func (l *List[T]) notify(c Change) {
	// Copy so a listener may unsubscribe itself while being notified.
	listeners := make([]Listener, len(l.listeners))
	copy(listeners, l.listeners)
	for _, ln := range listeners {
		ln.Notify(c)
	}
}
