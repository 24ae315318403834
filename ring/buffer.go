// Copyright 2025 The prim Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ring provides a fixed-capacity circular buffer. Put and Get
// never block: a full buffer rejects the element and an empty buffer
// reports absence. The Concurrent entry points serialize through a
// spin lock with a cooperative yield, so the buffer can be shared
// across goroutines without any other synchronization.
package ring

import (
	"math/bits"
	"runtime"
	"sync/atomic"
)

// Buffer is a circular buffer whose capacity is fixed at construction
// and rounded up to a power of two.
//
// Put/Get assume a single goroutine; PutConcurrent/GetConcurrent may
// be called from any goroutine. The two families must not be mixed on
// a shared buffer.
type Buffer[T any] struct {
	items []T
	mask  uint64
	head  uint64
	tail  uint64
	lock  atomic.Uint32
}

// New returns an empty buffer holding at least capacity elements.
func New[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		panic("ring: capacity must be positive")
	}
	n := 1 << bits.Len(uint(capacity-1))
	return &Buffer[T]{items: make([]T, n), mask: uint64(n - 1)}
}

// Cap returns the buffer capacity.
func (b *Buffer[T]) Cap() int {
	return len(b.items)
}

// Len returns the number of buffered elements.
func (b *Buffer[T]) Len() int {
	return int(b.tail - b.head)
}

// Empty reports whether the buffer holds no elements.
func (b *Buffer[T]) Empty() bool {
	return b.head == b.tail
}

// Full reports whether the buffer is at capacity.
func (b *Buffer[T]) Full() bool {
	return b.tail-b.head == uint64(len(b.items))
}

// Put appends v and reports whether there was room. A full buffer
// rejects the element rather than blocking.
func (b *Buffer[T]) Put(v T) bool {
	if b.Full() {
		return false
	}
	b.items[b.tail&b.mask] = v
	b.tail++
	return true
}

// Get removes and returns the oldest element.
func (b *Buffer[T]) Get() (T, bool) {
	var zero T
	if b.Empty() {
		return zero, false
	}
	i := b.head & b.mask
	v := b.items[i]
	b.items[i] = zero
	b.head++
	return v, true
}

// Peek returns the oldest element without removing it.
func (b *Buffer[T]) Peek() (T, bool) {
	if b.Empty() {
		var zero T
		return zero, false
	}
	return b.items[b.head&b.mask], true
}

// Clear discards every buffered element.
func (b *Buffer[T]) Clear() {
	var zero T
	for i := range b.items {
		b.items[i] = zero
	}
	b.head, b.tail = 0, 0
}

// PutConcurrent is Put serialized through the buffer's spin lock.
func (b *Buffer[T]) PutConcurrent(v T) bool {
	b.acquire()
	ok := b.Put(v)
	b.release()
	return ok
}

// GetConcurrent is Get serialized through the buffer's spin lock.
func (b *Buffer[T]) GetConcurrent() (T, bool) {
	b.acquire()
	v, ok := b.Get()
	b.release()
	return v, ok
}

func (b *Buffer[T]) acquire() {
	for !b.lock.CompareAndSwap(0, 1) {
		runtime.Gosched()
	}
}

func (b *Buffer[T]) release() {
	b.lock.Store(0)
}
