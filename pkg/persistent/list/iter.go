package list

import "iter"

// All returns a sequence of the elements of the list, from head to tail. The
// sequence can be iterated any number of times:
//
//	for v := range l.All() {
//	    // do something with v...
//	}
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := l.head; p != nil; p = p.rest {
			if !yield(p.first) {
				return
			}
		}
	}
}

// Enumerate is like All, but also yields the position of each element.
func (l List[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for p := l.head; p != nil; p = p.rest {
			if !yield(i, p.first) {
				return
			}
			i++
		}
	}
}

// Iterator is a cursor over list elements. It can be used like this:
//
//	for it := l.Iterator(); it.HasElem(); it.Next() {
//	    elem := it.Elem()
//	    // do something with elem...
//	}
type Iterator[T any] struct {
	current *node[T]
}

// Iterator returns an iterator pointing to the first element of the list.
func (l List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{l.head}
}

// Elem returns the element at the current position. It panics if HasElem
// returns false.
func (it *Iterator[T]) Elem() T {
	if it.current == nil {
		panic("list iterator: no element")
	}
	return it.current.first
}

// HasElem returns whether the iterator is pointing to an element.
func (it *Iterator[T]) HasElem() bool {
	return it.current != nil
}

// Next moves the iterator to the next position. It is a no-op at the end of
// the list.
func (it *Iterator[T]) Next() {
	if it.current != nil {
		it.current = it.current.rest
	}
}

// Rest returns the list of the remaining elements, including the current one.
// The returned list shares all its cells with the iterated list.
func (it *Iterator[T]) Rest() List[T] {
	return List[T]{it.current}
}
