package queue

// DeleteMiddle unlinks and releases the middle element of the list:
// for n elements, the one at index ⌊n/2⌋ (0-based), so a six element
// list loses its fourth. A fast pointer advances two links per step
// while a slow one advances one; when the fast pointer hits the
// sentinel the slow one is on the middle element. Reports false, with
// no mutation, when the list is nil or empty.
func (l *List) DeleteMiddle() bool {
	if l == nil || l.head == nil || l.head.next == l.head {
		return false
	}

	slow := l.head.next
	for fast := slow; fast != l.head && fast.next != l.head; fast = fast.next.next {
		slow = slow.next
	}

	slow.uncheckedRemove()
	slow.Release()
	return true
}

// DeleteDuplicates removes every run of adjacent equal values of
// length two or more, releasing the removed elements and keeping only
// values that appeared exactly once. The caller must have sorted the
// list first: the pass only compares neighbors, so on unsorted input
// the result is undefined (though the link structure stays intact).
// Reports false only when the list is nil; an empty list is a trivial
// success.
func (l *List) DeleteDuplicates() bool {
	if l == nil {
		return false
	}
	if l.head == nil || l.head.next == l.head {
		return true
	}

	head := l.head
	e := head.next
	for e != head {
		run := e.next
		for run != head && run.value == e.value {
			run = run.next
		}

		if run == e.next {
			// unique value, keep it
			e = run
			continue
		}

		for x := e; x != run; {
			next := x.next
			x.uncheckedRemove()
			x.Release()
			x = next
		}
		e = run
	}
	return true
}

// SwapPairs exchanges the position of every two adjacent elements by
// relinking them, never by moving values between elements. An odd
// trailing element is left in place. No-op when the list is nil or
// empty, and allocation-free always.
func (l *List) SwapPairs() {
	if l == nil || l.head == nil || l.head.next == l.head {
		return
	}

	head := l.head
	for node := head.next; node != head && node.next != head; node = node.next {
		next := node.next
		node.prev.next = next
		next.next.prev = node
		node.next = next.next
		next.next = node
		next.prev = node.prev
		node.prev = next
	}
}

// Reverse reverses the order of the list in place by exchanging the
// next/prev links of every node, sentinel included. It does not
// allocate and does not move any element in memory, so element
// identities (and pointers held by callers) survive; applying it
// twice restores the original list exactly. No-op when the list is
// nil or empty.
func (l *List) Reverse() {
	if l == nil || l.head == nil || l.head.next == l.head {
		return
	}

	node := l.head
	next := node.next
	for {
		node.next, node.prev = node.prev, next
		node = next
		next = node.next
		if node == l.head {
			break
		}
	}
}
