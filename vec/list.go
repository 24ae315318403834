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

// Package vec provides dynamic arrays: List is a growable array with a
// single Resize primitive behind every structural mutation, ShiftList
// rebases a narrow integer range into smaller storage, and
// NullableList stores optional values through a presence bitmap and a
// rank-compacted value array.
package vec

// List is a dynamic array. All structural mutations (Add, Insert,
// RemoveAt) funnel through Resize, which either opens or closes a gap
// and handles growth. Add is amortized O(1).
//
// A List is NOT goroutine-safe.
type List[T comparable] struct {
	items []T
}

// New returns an empty list with room for capacity elements.
func New[T comparable](capacity int) *List[T] {
	return &List[T]{items: make([]T, 0, capacity)}
}

// Of returns a list holding the given values.
func Of[T comparable](values ...T) *List[T] {
	l := New[T](len(values))
	l.items = append(l.items, values...)
	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Cap returns the capacity of the backing array.
func (l *List[T]) Cap() int {
	return cap(l.items)
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return len(l.items) == 0
}

// Get returns the element at index i.
func (l *List[T]) Get(i int) T {
	return l.items[i]
}

// Set replaces the element at index i.
func (l *List[T]) Set(i int, v T) {
	l.items[i] = v
}

// Resize is the single growth/shrink primitive. A positive delta opens
// a gap of delta zeroed elements at index, shifting the tail right; a
// negative delta removes -delta elements at index, shifting the tail
// left. When growing, fit selects an exact-fit allocation instead of
// the amortized 1.5x policy.
func (l *List[T]) Resize(index, delta int, fit bool) {
	switch {
	case delta == 0:
		return
	case delta < 0:
		if index < 0 || index-delta > len(l.items) {
			panic("vec: resize out of range")
		}
		var zero T
		n := len(l.items) + delta
		copy(l.items[index:], l.items[index-delta:])
		for i := n; i < len(l.items); i++ {
			l.items[i] = zero
		}
		l.items = l.items[:n]
	default:
		if index < 0 || index > len(l.items) {
			panic("vec: resize out of range")
		}
		n := len(l.items) + delta
		if n > cap(l.items) {
			grow := n
			if !fit && grow < cap(l.items)+cap(l.items)/2 {
				grow = cap(l.items) + cap(l.items)/2
			}
			items := make([]T, len(l.items), grow)
			copy(items, l.items)
			l.items = items
		}
		l.items = l.items[:n]
		copy(l.items[index+delta:], l.items[index:])
		var zero T
		for i := index; i < index+delta; i++ {
			l.items[i] = zero
		}
	}
}

// Add appends v at the end.
func (l *List[T]) Add(v T) {
	l.Resize(len(l.items), 1, false)
	l.items[len(l.items)-1] = v
}

// AddAll appends every value in order.
func (l *List[T]) AddAll(values ...T) {
	l.Resize(len(l.items), len(values), false)
	copy(l.items[len(l.items)-len(values):], values)
}

// Insert places v at index i, shifting subsequent elements right.
// i == Len() appends.
func (l *List[T]) Insert(i int, v T) {
	l.Resize(i, 1, false)
	l.items[i] = v
}

// RemoveAt deletes the element at index i, shifting subsequent
// elements left, and returns the removed element.
func (l *List[T]) RemoveAt(i int) T {
	v := l.items[i]
	l.Resize(i, -1, false)
	return v
}

// Remove deletes the first occurrence of v and reports whether an
// element was removed.
func (l *List[T]) Remove(v T) bool {
	i := l.IndexOf(v)
	if i < 0 {
		return false
	}
	l.RemoveAt(i)
	return true
}

// Swap exchanges the elements at i and j.
func (l *List[T]) Swap(i, j int) {
	l.items[i], l.items[j] = l.items[j], l.items[i]
}

// IndexOf returns the index of the first occurrence of v, or -1.
func (l *List[T]) IndexOf(v T) int {
	for i, x := range l.items {
		if x == v {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of v, or -1.
func (l *List[T]) LastIndexOf(v T) int {
	for i := len(l.items) - 1; i >= 0; i-- {
		if l.items[i] == v {
			return i
		}
	}
	return -1
}

// Contains reports whether v is present.
func (l *List[T]) Contains(v T) bool {
	return l.IndexOf(v) >= 0
}

// ContainsAll reports whether every element of o is present in l.
func (l *List[T]) ContainsAll(o *List[T]) bool {
	for _, v := range o.items {
		if !l.Contains(v) {
			return false
		}
	}
	return true
}

// RemoveAll deletes every element that occurs in o and returns the
// number of elements removed.
func (l *List[T]) RemoveAll(o *List[T]) int {
	return l.filter(func(v T) bool { return !o.Contains(v) })
}

// RetainAll deletes every element that does not occur in o and returns
// the number of elements removed.
func (l *List[T]) RetainAll(o *List[T]) int {
	return l.filter(o.Contains)
}

func (l *List[T]) filter(keep func(T) bool) int {
	var zero T
	n := 0
	for _, v := range l.items {
		if keep(v) {
			l.items[n] = v
			n++
		}
	}
	removed := len(l.items) - n
	for i := n; i < len(l.items); i++ {
		l.items[i] = zero
	}
	l.items = l.items[:n]
	return removed
}

// Clear resets the list to empty without releasing storage.
func (l *List[T]) Clear() {
	var zero T
	for i := range l.items {
		l.items[i] = zero
	}
	l.items = l.items[:0]
}

// Clone returns a deep copy of the list.
func (l *List[T]) Clone() *List[T] {
	c := New[T](len(l.items))
	c.items = append(c.items, l.items...)
	return c
}

// Equal reports whether l and o hold the same elements in the same
// order.
func (l *List[T]) Equal(o *List[T]) bool {
	if len(l.items) != len(o.items) {
		return false
	}
	for i, v := range l.items {
		if v != o.items[i] {
			return false
		}
	}
	return true
}

// All calls yield for each element in index order until yield returns
// false.
func (l *List[T]) All(yield func(i int, v T) bool) {
	for i, v := range l.items {
		if !yield(i, v) {
			return
		}
	}
}
