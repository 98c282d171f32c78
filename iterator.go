package ics

// Iterator walks a filtered snapshot of a node's children, properties or
// parameters. Each iterator owns its position, so several can run over the
// same node at once. Changes to the node after the iterator was created are
// not seen.
type Iterator[T any] struct {
	items []T
	pos   int
}

func newIterator[T any](all []T, keep func(T) bool) *Iterator[T] {
	it := &Iterator[T]{pos: -1}
	for _, item := range all {
		if keep(item) {
			it.items = append(it.items, item)
		}
	}
	return it
}

// Next moves to the next item and returns it. ok is false once the
// iterator is exhausted.
func (it *Iterator[T]) Next() (item T, ok bool) {
	if !it.Advance() {
		return item, false
	}
	return it.items[it.pos], true
}

// Advance moves to the next item, reporting whether there is one.
func (it *Iterator[T]) Advance() bool {
	if it.pos+1 >= len(it.items) {
		it.pos = len(it.items)
		return false
	}
	it.pos++
	return true
}

// Item is the current item, the zero value before the first Advance or
// after the last.
func (it *Iterator[T]) Item() T {
	var zero T
	if it.pos < 0 || it.pos >= len(it.items) {
		return zero
	}
	return it.items[it.pos]
}

// Reset rewinds to before the first item.
func (it *Iterator[T]) Reset() {
	it.pos = -1
}

func (it *Iterator[T]) Len() int {
	return len(it.items)
}
