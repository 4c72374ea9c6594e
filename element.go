package queue

import (
	"github.com/tychoish/fun/adt"
)

// Element is a single entry in a List: one owned string value plus the
// intrusive link that threads it into the ring. Elements are produced
// by the Pop operations and the Front/Back accessors. Use the Ok
// method to distinguish a real element from the not-found result of
// popping an empty list.
type Element struct {
	next  *Element
	prev  *Element
	list  *List
	ok    bool
	value string
}

// elements recycles released Elements back into subsequent Push
// operations. The cleanup hook zeroes the element on the way into the
// pool, so a released element can never leak its old value or links.
var elements = &adt.Pool[*Element]{}

func init() {
	elements.SetConstructor(func() *Element { return &Element{} })
	elements.SetCleanupHook(func(e *Element) *Element { *e = Element{}; return e })
}

// Value accesses the element's value. The value remains readable
// after the element has been popped off of a list, and is only
// destroyed by Release.
func (e *Element) Value() string {
	if e == nil {
		return ""
	}
	return e.value
}

// String returns the string form of the value of the element.
func (e *Element) String() string { return e.Value() }

// Ok checks that an element is valid. Invalid elements are produced
// at the ends of iterations (the list's sentinel,) or by popping an
// empty list.
//
// Returns false when the element is nil.
func (e *Element) Ok() bool { return e != nil && e.ok }

// Next produces the next element. This is always non-nil, *unless*
// the element is not a member of a list. At the ends of a list, the
// value is non-nil, but returns false for Ok.
func (e *Element) Next() *Element { return e.next }

// Previous produces the previous element. This is always non-nil,
// *unless* the element is not a member of a list. At the ends of a
// list, the value is non-nil, but returns false for Ok.
func (e *Element) Previous() *Element { return e.prev }

// In checks to see if an element is in the specified list. Because
// elements hold a pointer to their list, this is an O(1) operation.
//
// Returns false when the element is nil.
func (e *Element) In(l *List) bool { return e != nil && e.list != nil && e.list == l }

// Release destroys an element, returning its storage to the element
// pool. It is the only destruction path: Pop operations unlink and
// hand the element back to the caller intact, and the caller decides
// when (or whether) to release it.
//
// Release is a no-op on nil elements and on elements that are still
// linked into a list; unlink (pop) first.
func (e *Element) Release() {
	if e == nil || e.list != nil {
		return
	}

	elements.Put(e)
}

func (e *Element) isRoot() bool { return e.list != nil && e.list.head == e }

func (e *Element) removable() bool { return e != nil && e.list != nil && e.list.head != e }

func (e *Element) uncheckedAppend(val *Element) {
	val.list = e.list
	val.prev = e
	val.next = e.next
	val.prev.next = val
	val.next.prev = val
}

func (e *Element) uncheckedRemove() {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.list = nil
	// the links are left in place so that iteration and removal can
	// interleave (ish)
}
