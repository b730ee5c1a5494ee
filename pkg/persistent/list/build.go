package list

import "iter"

// builder links cells front to back. The cells it creates are not reachable
// from any List until finish is called, so patching the rest of the last cell
// does not break immutability.
type builder[T any] struct {
	head *node[T]
	last *node[T]
}

func (b *builder[T]) add(v T) {
	n := &node[T]{first: v}
	if b.last == nil {
		b.head = n
	} else {
		b.last.rest = n
	}
	b.last = n
}

// finish returns the built list, with rest as the remainder of the chain. The
// builder must not be used afterwards.
func (b *builder[T]) finish(rest List[T]) List[T] {
	if b.last == nil {
		return rest
	}
	b.last.rest = rest.head
	head := b.head
	*b = builder[T]{}
	return List[T]{head}
}

// Of returns a list containing the arguments, in order.
func Of[T any](vs ...T) List[T] {
	return FromSlice(vs)
}

// FromSlice returns a list containing the elements of s, in order. Elements
// are copied with plain assignment.
func FromSlice[T any](s []T) List[T] {
	var l List[T]
	for i := len(s) - 1; i >= 0; i-- {
		l = l.PushFront(s[i])
	}
	return l
}

// FromSliceFunc is like FromSlice, but duplicates each element with dup. It is
// useful when elements hold references that must not be shared with s.
func FromSliceFunc[T any](s []T, dup func(T) T) List[T] {
	var l List[T]
	for i := len(s) - 1; i >= 0; i-- {
		l = l.PushFront(dup(s[i]))
	}
	return l
}

// Collect returns a list containing the values of seq, in order. The sequence
// must be finite.
func Collect[T any](seq iter.Seq[T]) List[T] {
	var b builder[T]
	for v := range seq {
		b.add(v)
	}
	return b.finish(List[T]{})
}

// Slice returns the elements of the list as a newly allocated slice.
func (l List[T]) Slice() []T {
	var s []T
	for p := l.head; p != nil; p = p.rest {
		s = append(s, p.first)
	}
	return s
}
