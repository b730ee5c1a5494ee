package list

import "src.elv.sh/plist/pkg/persistent/hash"

// Concat returns a list with the elements of a followed by those of b. The
// cells of a are copied, since the last of them ends the chain; the cells of b
// are shared. It is fine for a and b to be the same list.
func Concat[T any](a, b List[T]) List[T] {
	if b.head == nil {
		return a
	}
	var bd builder[T]
	for p := a.head; p != nil; p = p.rest {
		bd.add(p.first)
	}
	return bd.finish(b)
}

// Reverse returns a list with the elements of l in the opposite order.
func Reverse[T any](l List[T]) List[T] {
	var r List[T]
	for p := l.head; p != nil; p = p.rest {
		r = r.PushFront(p.first)
	}
	return r
}

// FlatMap calls f on each element of l in order, and returns the concatenation
// of all the lists it returns. The list returned for the last element is
// shared rather than copied.
func FlatMap[T, U any](l List[T], f func(T) List[U]) List[U] {
	var bd builder[U]
	var pending List[U]
	for p := l.head; p != nil; p = p.rest {
		for q := pending.head; q != nil; q = q.rest {
			bd.add(q.first)
		}
		pending = f(p.first)
	}
	return bd.finish(pending)
}

// Map returns a list of the results of calling f on each element of l.
func Map[T, U any](l List[T], f func(T) U) List[U] {
	var bd builder[U]
	for p := l.head; p != nil; p = p.rest {
		bd.add(f(p.first))
	}
	return bd.finish(List[U]{})
}

// Filter returns a list of the elements of l that satisfy pred, in order. The
// longest suffix of l in which all elements satisfy pred is shared.
func Filter[T any](l List[T], pred func(T) bool) List[T] {
	var bd builder[T]
	// keep is the start of the current run of satisfying elements.
	var keep *node[T]
	for p := l.head; p != nil; p = p.rest {
		if !pred(p.first) {
			for q := keep; q != nil && q != p; q = q.rest {
				bd.add(q.first)
			}
			keep = nil
		} else if keep == nil {
			keep = p
		}
	}
	return bd.finish(List[T]{keep})
}

// Equal reports whether two lists have the same elements in the same order.
func Equal[T comparable](a, b List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, but compares elements with eq.
func EqualFunc[T, U any](a List[T], b List[U], eq func(T, U) bool) bool {
	p, q := a.head, b.head
	for p != nil && q != nil {
		if !eq(p.first, q.first) {
			return false
		}
		p, q = p.rest, q.rest
	}
	return p == nil && q == nil
}

// Hash combines the hashes of the elements of l, computed with hashElem. Lists
// that are Equal have the same hash if hashElem is consistent with equality.
func Hash[T any](l List[T], hashElem func(T) uint32) uint32 {
	h := hash.DJBInit
	for p := l.head; p != nil; p = p.rest {
		h = hash.DJBCombine(h, hashElem(p.first))
	}
	return h
}
