// Package queue provides an in-memory queue of string values built on
// a sentinel-rooted circular doubly linked list, with in-place
// structural operations (reversal, pairwise swap, middle deletion,
// adjacent-duplicate removal) and a stable, allocation-free merge
// sort.
//
// The structure is intended for single-threaded, single-owner use:
// callers are responsible for their own concurrency control, and
// should generally use it with the same care as a slice.
//
// Removal and release are distinct operations: the Pop methods only
// unlink an element and transfer ownership of it to the caller, while
// Element.Release is the single path that destroys one. Callers that
// want to inspect a removed value before discarding it rely on this
// split.
package queue

import (
	"github.com/tychoish/fun/ft"
)

// List is a queue of string values, identified by its sentinel. The
// zero value is ready to use; New is provided for symmetry with
// Destroy.
//
// The sentinel is never data-bearing: an empty list is one whose
// sentinel points at itself in both directions, and every element is
// reachable from it going either way.
type List struct {
	head *Element
}

// New creates an empty list with its sentinel initialized.
func New() *List {
	l := &List{}
	l.root()
	return l
}

// Destroy releases every element remaining in the list and drops the
// sentinel. No-op when the list is nil. The list value itself is
// reusable afterwards; a subsequent Push re-establishes a fresh
// sentinel.
func (l *List) Destroy() {
	if l == nil || l.head == nil {
		return
	}

	for e := l.PopFront(); e.Ok(); e = l.PopFront() {
		e.Release()
	}

	l.head = nil
}

// PushFront inserts a new element holding value immediately after the
// sentinel, in constant time. Reports false, with no mutation, when
// the list is nil.
func (l *List) PushFront(value string) bool { return insertAfter(l.root(), value) }

// PushBack inserts a new element holding value immediately before the
// sentinel, in constant time. Reports false, with no mutation, when
// the list is nil.
func (l *List) PushBack(value string) bool {
	root := l.root()
	if root == nil {
		return false
	}
	return insertAfter(root.prev, value)
}

func insertAfter(after *Element, value string) bool {
	if after == nil {
		return false
	}

	e := elements.Get()
	e.value = value
	e.ok = true
	after.uncheckedAppend(e)
	return true
}

// PopFront unlinks and returns the first element of the list. The
// element's value is left intact: ownership transfers to the caller,
// who releases it when done. When the list is nil or empty, PopFront
// returns a detached element reporting Ok() false. You can use this
// to produce a C-style draining loop:
//
//	for e := list.PopFront(); e.Ok(); e = list.PopFront() {
//		// use e.Value()
//		e.Release()
//	}
func (l *List) PopFront() *Element {
	root := l.root()
	if root == nil {
		return &Element{}
	}
	return pop(root.next)
}

// PopBack unlinks and returns the last element of the list, with the
// same ownership contract as PopFront.
func (l *List) PopBack() *Element {
	root := l.root()
	if root == nil {
		return &Element{}
	}
	return pop(root.prev)
}

func pop(it *Element) *Element {
	if !it.removable() {
		return &Element{}
	}

	it.uncheckedRemove()
	return it
}

// Front returns a pointer to the first element of the list. If the
// list is empty this is the sentinel, which reports Ok() false. You
// can use this pointer to begin a C-style iteration over the list:
//
//	for e := list.Front(); e.Ok(); e = e.Next() {
//		// operate
//	}
func (l *List) Front() *Element {
	if l == nil {
		return nil
	}
	return l.root().next
}

// Back returns a pointer to the last element of the list. If the
// list is empty this is the sentinel, which reports Ok() false. You
// can use this pointer to begin a C-style iteration over the list:
//
//	for e := list.Back(); e.Ok(); e = e.Previous() {
//		// operate
//	}
func (l *List) Back() *Element {
	if l == nil {
		return nil
	}
	return l.root().prev
}

// Len counts the elements in the list by traversal; the list does not
// cache a length. O(n). Returns 0 for a nil list.
func (l *List) Len() int {
	if l == nil || l.head == nil {
		return 0
	}

	size := 0
	for e := l.head.next; e != l.head; e = e.next {
		size++
	}
	return size
}

// IsEmpty reports whether the list holds no elements. O(1).
func (l *List) IsEmpty() bool { return l == nil || l.head == nil || l.head.next == l.head }

func (l *List) root() *Element {
	if l == nil {
		return nil
	}

	ft.WhenCall(l.head == nil, l.uncheckedSetup)

	return l.head
}

func (l *List) uncheckedSetup() {
	l.head = &Element{}
	l.head.next = l.head
	l.head.prev = l.head
	l.head.list = l
}
