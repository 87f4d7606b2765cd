// Package selectlist holds an ordered collection with an optional cursor.
package selectlist

import "errors"

// ErrNoSelection is returned when reading the current item before a cursor exists.
var ErrNoSelection = errors.New("no item selected")

// List is an ordered set of items with an optional cursor. Navigation wraps
// around both ends. The zero value is an empty list with no selection.
type List[T any] struct {
	items  []T
	cursor int
	set    bool
}

// WithItems builds a list with no cursor selected.
func WithItems[T any](items []T) *List[T] {
	return &List[T]{items: append([]T(nil), items...)}
}

func (l *List[T]) Items() []T {
	if l == nil {
		return nil
	}
	return append([]T(nil), l.items...)
}

func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Selected returns the cursor index. ok is false when nothing is selected or
// the cursor no longer points into the items.
func (l *List[T]) Selected() (idx int, ok bool) {
	if l == nil || !l.set || l.cursor < 0 || l.cursor >= len(l.items) {
		return 0, false
	}
	return l.cursor, true
}

// Select moves the cursor to idx. Out of range indexes clear the selection.
func (l *List[T]) Select(idx int) {
	if l == nil {
		return
	}
	if idx < 0 || idx >= len(l.items) {
		l.Clear()
		return
	}
	l.cursor, l.set = idx, true
}

func (l *List[T]) Clear() {
	if l == nil {
		return
	}
	l.cursor, l.set = 0, false
}

// Next selects the first item when nothing is selected, otherwise the
// following item, wrapping to the start. Empty lists stay unselected.
func (l *List[T]) Next() {
	if l == nil {
		return
	}
	n := len(l.items)
	if n == 0 {
		l.Clear()
		return
	}
	cur, ok := l.Selected()
	if !ok {
		l.Select(0)
		return
	}
	l.Select((cur + 1) % n)
}

// Previous selects the last item when nothing is selected, otherwise the
// preceding item, wrapping to the end. Empty lists stay unselected.
func (l *List[T]) Previous() {
	if l == nil {
		return
	}
	n := len(l.items)
	if n == 0 {
		l.Clear()
		return
	}
	cur, ok := l.Selected()
	if !ok {
		l.Select(n - 1)
		return
	}
	if cur == 0 {
		l.Select(n - 1)
		return
	}
	l.Select(cur - 1)
}

// Current returns the item under the cursor. The cursor is checked against the
// current length on every read.
func (l *List[T]) Current() (T, error) {
	var zero T
	idx, ok := l.Selected()
	if !ok {
		return zero, ErrNoSelection
	}
	return l.items[idx], nil
}

// SetItems replaces the items. A cursor that still fits is kept, otherwise it
// is cleared.
func (l *List[T]) SetItems(items []T) {
	if l == nil {
		return
	}
	l.items = append([]T(nil), items...)
	if l.set && l.cursor >= len(l.items) {
		l.Clear()
	}
}
