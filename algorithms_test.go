package queue_test

import (
	"fmt"
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"

	"github.com/tychoish/queue"
)

func buildList(t *testing.T, items ...string) *queue.List {
	t.Helper()
	list := queue.New()
	t.Cleanup(list.Destroy)
	for _, it := range items {
		assert.True(t, list.PushBack(it))
	}
	return list
}

func assertValues(t *testing.T, list *queue.List, expected ...string) {
	t.Helper()
	got := values(list)
	if len(got) != len(expected) {
		t.Fatal("wrong length", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Error(i, got[i], expected[i])
		}
	}
	checkRing(t, list)
}

func TestDeleteMiddle(t *testing.T) {
	t.Run("SixElements", func(t *testing.T) {
		// the middle of n elements is index ⌊n/2⌋, 0-based:
		// six elements lose the fourth
		list := buildList(t, "a", "b", "c", "d", "e", "f")
		assert.True(t, list.DeleteMiddle())
		assertValues(t, list, "a", "b", "c", "e", "f")
	})
	t.Run("OddCount", func(t *testing.T) {
		list := buildList(t, "a", "b", "c", "d", "e")
		assert.True(t, list.DeleteMiddle())
		assertValues(t, list, "a", "b", "d", "e")
	})
	t.Run("TwoElements", func(t *testing.T) {
		list := buildList(t, "a", "b")
		assert.True(t, list.DeleteMiddle())
		assertValues(t, list, "a")
	})
	t.Run("SingleElement", func(t *testing.T) {
		list := buildList(t, "only")
		assert.True(t, list.DeleteMiddle())
		assert.True(t, list.IsEmpty())
	})
	t.Run("RepeatedToExhaustion", func(t *testing.T) {
		list := buildList(t, "a", "b", "c", "d", "e", "f", "g")
		for i := 7; i > 0; i-- {
			assert.Equal(t, list.Len(), i)
			assert.True(t, list.DeleteMiddle())
			checkRing(t, list)
		}
		assert.True(t, !list.DeleteMiddle())
	})
	t.Run("Empty", func(t *testing.T) {
		list := queue.New()
		check.True(t, !list.DeleteMiddle())
	})
}

func TestDeleteDuplicates(t *testing.T) {
	t.Run("SortedRuns", func(t *testing.T) {
		list := buildList(t, "1", "1", "2", "3", "3", "3")
		assert.True(t, list.DeleteDuplicates())
		assertValues(t, list, "2")
	})
	t.Run("RunEndsAtBoundary", func(t *testing.T) {
		// the final run wraps into the sentinel; the splice
		// must still close the ring
		list := buildList(t, "1", "2", "2")
		assert.True(t, list.DeleteDuplicates())
		assertValues(t, list, "1")
	})
	t.Run("RunStartsAtBoundary", func(t *testing.T) {
		list := buildList(t, "1", "1", "2")
		assert.True(t, list.DeleteDuplicates())
		assertValues(t, list, "2")
	})
	t.Run("AllDuplicates", func(t *testing.T) {
		list := buildList(t, "x", "x", "x", "x")
		assert.True(t, list.DeleteDuplicates())
		assert.True(t, list.IsEmpty())
		checkRing(t, list)
	})
	t.Run("AllUnique", func(t *testing.T) {
		list := buildList(t, "a", "b", "c")
		assert.True(t, list.DeleteDuplicates())
		assertValues(t, list, "a", "b", "c")
	})
	t.Run("SingleElement", func(t *testing.T) {
		list := buildList(t, "solo")
		assert.True(t, list.DeleteDuplicates())
		assertValues(t, list, "solo")
	})
	t.Run("Empty", func(t *testing.T) {
		list := queue.New()
		// trivial success, not an error
		check.True(t, list.DeleteDuplicates())
	})
}

func TestSwapPairs(t *testing.T) {
	t.Run("OddCount", func(t *testing.T) {
		list := buildList(t, "1", "2", "3", "4", "5")
		list.SwapPairs()
		assertValues(t, list, "2", "1", "4", "3", "5")
	})
	t.Run("EvenCount", func(t *testing.T) {
		list := buildList(t, "1", "2", "3", "4")
		list.SwapPairs()
		assertValues(t, list, "2", "1", "4", "3")
	})
	t.Run("RelinksRatherThanRewrites", func(t *testing.T) {
		list := buildList(t, "1", "2")
		first := list.Front()
		second := list.Back()

		list.SwapPairs()

		// the elements themselves moved; no value was copied
		assert.Equal(t, list.Front(), second)
		assert.Equal(t, list.Back(), first)
		checkRing(t, list)
	})
	t.Run("SingleElement", func(t *testing.T) {
		list := buildList(t, "only")
		list.SwapPairs()
		assertValues(t, list, "only")
	})
	t.Run("Empty", func(t *testing.T) {
		list := queue.New()
		list.SwapPairs()
		assert.True(t, list.IsEmpty())
	})
}

func TestReverse(t *testing.T) {
	t.Run("Reverses", func(t *testing.T) {
		list := buildList(t, "a", "b", "c", "d")
		list.Reverse()
		assertValues(t, list, "d", "c", "b", "a")
	})
	t.Run("Involution", func(t *testing.T) {
		list := buildList(t, "a", "b", "c", "d", "e")

		var originals []*queue.Element
		for e := list.Front(); e.Ok(); e = e.Next() {
			originals = append(originals, e)
		}

		list.Reverse()
		list.Reverse()

		idx := 0
		for e := list.Front(); e.Ok(); e = e.Next() {
			// identity, not just value: reversal twice must
			// restore the original links
			assert.Equal(t, e, originals[idx])
			idx++
		}
		assert.Equal(t, idx, len(originals))
		checkRing(t, list)
	})
	t.Run("SingleElement", func(t *testing.T) {
		list := buildList(t, "only")
		e := list.Front()
		list.Reverse()
		assert.Equal(t, list.Front(), e)
		checkRing(t, list)
	})
	t.Run("Empty", func(t *testing.T) {
		list := queue.New()
		list.Reverse()
		assert.True(t, list.IsEmpty())
	})
	t.Run("PreservesCount", func(t *testing.T) {
		list := queue.New()
		defer list.Destroy()
		for i := 0; i < 50; i++ {
			list.PushBack(fmt.Sprint(i))
		}
		list.Reverse()
		assert.Equal(t, list.Len(), 50)
		assert.Equal(t, list.Front().Value(), "49")
		assert.Equal(t, list.Back().Value(), "0")
		checkRing(t, list)
	})
}
