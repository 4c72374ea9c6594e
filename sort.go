package queue

// sortBuckets bounds the pending-run array of Sort. Each occupied
// slot i holds a sorted run of 2^i elements (the last slot absorbs
// any overflow), so the scheme covers lists of roughly 2^32 elements.
const sortBuckets = 32

// Sort sorts the list ascending by lexicographic byte comparison of
// the values, in place and without allocating: a bottom-up natural
// merge sort over the forward links. The sort is stable, so elements
// with equal values keep their original relative order. No-op when
// the list is nil, empty, or holds a single element.
//
// The ring is temporarily opened for the duration of the sort: the
// chain is nil-terminated and only the next pointers are maintained
// while runs are merged, then a final pass rebuilds every prev
// pointer and closes the circle at the sentinel again.
func (l *List) Sort() {
	if l == nil || l.head == nil || l.head.next == l.head.prev {
		return
	}

	head := l.head
	var pending [sortBuckets]*Element

	// detach: nil-terminate the forward chain at the tail.
	run := head.next
	head.prev.next = nil

	// consume the chain one element at a time, carrying each new
	// run up through occupied slots like a binary counter
	// increment; a full counter forces the merge into the last
	// slot instead of overflowing.
	for run != nil {
		next := run.next
		run.next = nil

		i := 0
		for ; i < sortBuckets && pending[i] != nil; i++ {
			run = merge(pending[i], run)
			pending[i] = nil
		}
		if i == sortBuckets {
			i--
		}
		pending[i] = run

		run = next
	}

	// collapse the slots; the last merge rebuilds the prev
	// pointers and recloses the ring.
	var result *Element
	for i := 0; i < sortBuckets-1; i++ {
		result = merge(pending[i], result)
	}
	mergeFinal(head, result, pending[sortBuckets-1])
}

// merge combines two nil-terminated sorted chains over their next
// pointers only. Ties take from a, which is what makes the whole
// sort stable.
func merge(a, b *Element) *Element {
	var head Element
	tail := &head

	for a != nil && b != nil {
		if a.value <= b.value {
			tail.next = a
			a = a.next
		} else {
			tail.next = b
			b = b.next
		}
		tail = tail.next
	}

	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}
	return head.next
}

// mergeFinal merges the last two chains directly onto the sentinel,
// restoring prev pointers as it goes, then walks whatever remains of
// the longer chain to finish the back-links and reattach the tail to
// the sentinel.
func mergeFinal(root, a, b *Element) {
	tail := root

	for a != nil && b != nil {
		if a.value <= b.value {
			tail.next = a
			a.prev = tail
			tail = a
			a = a.next
		} else {
			tail.next = b
			b.prev = tail
			tail = b
			b = b.next
		}
	}

	rest := a
	if rest == nil {
		rest = b
	}
	tail.next = rest

	for tail.next != nil {
		tail.next.prev = tail
		tail = tail.next
	}

	tail.next = root
	root.prev = tail
}
