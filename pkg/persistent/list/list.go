// Package list implements a persistent singly-linked list.
//
// A List is a small value that points into a chain of immutable cells. All
// operations that "modify" a list, like PushFront and Tail, return a new List
// that shares the unmodified suffix of the chain with the original, which
// stays valid and unchanged. Since no cell is ever changed after it becomes
// reachable from a List, lists can be read concurrently without locking.
//
// The zero value is a valid empty list:
//
//	var l list.List[int]
//	l = l.PushFront(3).PushFront(2).PushFront(1)
//	fmt.Println(l) // [1, 2, 3]
//
// Operations that only move values around (PushFront, Get, traversal, Of,
// FromSlice, Collect) copy elements with Go assignment. Construction that
// needs to duplicate elements in a type-specific way can use FromSliceFunc.
package list

import (
	"fmt"
	"strconv"
)

// node is a cell in a chain. A nil *node is the empty chain.
type node[T any] struct {
	first T
	rest  *node[T]
}

// List is a persistent list. It is a lightweight handle and should be passed
// by value. The zero value is an empty list.
type List[T any] struct {
	head *node[T]
}

// Empty returns an empty list.
func Empty[T any]() List[T] {
	return List[T]{}
}

// PushFront returns a new list with v in front of the elements of l. The
// receiver is not changed, and the new list shares all of its cells.
func (l List[T]) PushFront(v T) List[T] {
	return List[T]{&node[T]{v, l.head}}
}

// IsEmpty returns whether the list has no elements.
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len returns the number of elements in the list. It takes O(n) time; the
// length is not cached.
func (l List[T]) Len() int {
	n := 0
	for p := l.head; p != nil; p = p.rest {
		n++
	}
	return n
}

// Get returns the i-th element of the list, counting from 0. The second return
// value indicates whether the element exists. It takes O(i) time.
func (l List[T]) Get(i int) (T, bool) {
	if i >= 0 {
		for p := l.head; p != nil; p = p.rest {
			if i == 0 {
				return p.first, true
			}
			i--
		}
	}
	var zero T
	return zero, false
}

// Index is like Get, but panics with an OutOfRange error if the element does
// not exist. Use it when an out-of-range index is a bug in the caller.
func (l List[T]) Index(i int) T {
	v, ok := l.Get(i)
	if !ok {
		panic(OutOfRange{
			What: "list index", ValidLow: 0, ValidHigh: l.Len() - 1,
			Actual: strconv.Itoa(i)})
	}
	return v
}

// Head returns the first element of the list. The second return value is false
// if the list is empty.
func (l List[T]) Head() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.first, true
}

// Tail returns the list without its first element, sharing all of its cells.
// The second return value is false if the list is empty.
func (l List[T]) Tail() (List[T], bool) {
	if l.head == nil {
		return List[T]{}, false
	}
	return List[T]{l.head.rest}, true
}

// HeadAndTail combines Head and Tail.
func (l List[T]) HeadAndTail() (T, List[T], bool) {
	if l.head == nil {
		var zero T
		return zero, List[T]{}, false
	}
	return l.head.first, List[T]{l.head.rest}, true
}

// OutOfRange is the error that Index panics with.
type OutOfRange struct {
	What      string
	ValidLow  int
	ValidHigh int
	Actual    string
}

// Error implements the error interface.
func (e OutOfRange) Error() string {
	if e.ValidHigh < e.ValidLow {
		return fmt.Sprintf(
			"out of range: %v has no valid value, but is %v", e.What, e.Actual)
	}
	return fmt.Sprintf(
		"out of range: %s must be from %d to %d, but is %s",
		e.What, e.ValidLow, e.ValidHigh, e.Actual)
}
