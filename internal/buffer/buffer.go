// Package buffer provides the growable storage nom builds commands and
// strings with. Buffer[T] is an append-only sequence whose capacity
// doubles, starting at InitialCapacity, whenever an append would exceed it.
// Args and Builder specialize it for argument lists and text.
//
// A buffer that cannot grow is a fatal condition: Fatal is called and the
// process exits. Build tools are expected to fail loudly on resource
// exhaustion rather than continue with a truncated command.
package buffer

import (
	"fmt"
	"iter"
	"math"
	"os"

	"github.com/xdg/nom/internal/clog"
)

// InitialCapacity is the capacity a buffer takes on its first growth.
const InitialCapacity = 512

// MaxCapacity is the largest number of elements a buffer will hold.
const MaxCapacity = math.MaxInt32

// limit is MaxCapacity, lowered in tests.
var limit = MaxCapacity

// Fatal is called when a buffer cannot grow. It must not return.
// Tests replace it to observe the failure.
var Fatal = func(msg string) {
	clog.Error("%s", msg)
	os.Exit(1)
}

// Buffer is an append-only sequence with amortized doubling growth.
// The zero value is an empty buffer ready to use.
//
// Release must be called exactly once when the buffer is discarded.
// Any use after Release, including a second Release, panics.
type Buffer[T any] struct {
	items    []T
	released bool
}

// Append adds items to the end of the buffer.
func (b *Buffer[T]) Append(items ...T) {
	b.mustBeLive("Append")
	need := len(b.items) + len(items)
	if need > cap(b.items) {
		b.grow(need)
	}
	b.items = append(b.items, items...)
}

// grow reallocates storage to the smallest doubling of the current
// capacity (or InitialCapacity) that holds need elements.
func (b *Buffer[T]) grow(need int) {
	if need > limit {
		Fatal(fmt.Sprintf("buffer: cannot grow to %d elements (limit %d)", need, limit))
		return
	}

	size := cap(b.items)
	if size == 0 {
		size = InitialCapacity
	}
	for size < need {
		if size > limit/2 {
			size = limit
			break
		}
		size *= 2
	}

	grown := make([]T, len(b.items), size)
	copy(grown, b.items)
	b.items = grown
}

// Len returns the number of elements appended since the last Clear.
func (b *Buffer[T]) Len() int {
	return len(b.items)
}

// Cap returns the current storage capacity. It is never less than Len.
func (b *Buffer[T]) Cap() int {
	return cap(b.items)
}

// At returns the element at index i. It panics if i is out of range.
func (b *Buffer[T]) At(i int) T {
	if i < 0 || i >= len(b.items) {
		panic(fmt.Sprintf("buffer: index %d out of range [0:%d]", i, len(b.items)))
	}
	return b.items[i]
}

// All iterates over the elements in append order.
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range b.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements. The copy is not affected by later
// appends or by Clear.
func (b *Buffer[T]) Slice() []T {
	out := make([]T, len(b.items))
	copy(out, b.items)
	return out
}

// Clear resets the length to zero and keeps the storage for reuse.
func (b *Buffer[T]) Clear() {
	b.mustBeLive("Clear")
	clear(b.items)
	b.items = b.items[:0]
}

// Release frees the storage and resets length and capacity to zero.
func (b *Buffer[T]) Release() {
	b.mustBeLive("Release")
	b.items = nil
	b.released = true
}

// Released reports whether Release has been called.
func (b *Buffer[T]) Released() bool {
	return b.released
}

func (b *Buffer[T]) mustBeLive(op string) {
	if b.released {
		panic("buffer: " + op + " called on a released buffer")
	}
}
