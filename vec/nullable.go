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

package vec

import "github.com/adhoc-collections/prim/bitpack"

// NullableList stores optional values without spending a full-width
// slot on every null. Presence is a bitmap; a set bit at index i means
// the compact value array holds the value at position OnesBefore(i).
// Nulls therefore cost one bit each.
//
// A NullableList is NOT goroutine-safe.
type NullableList[T comparable] struct {
	nulls  bitpack.Bitmap
	values List[T]
}

// NewNullable returns an empty nullable list with room for capacity
// non-null elements.
func NewNullable[T comparable](capacity int) *NullableList[T] {
	return &NullableList[T]{values: List[T]{items: make([]T, 0, capacity)}}
}

// Len returns the number of logical entries, nulls included.
func (l *NullableList[T]) Len() int {
	return l.nulls.Len()
}

// Get returns the value at index i and whether it is non-null.
func (l *NullableList[T]) Get(i int) (T, bool) {
	if !l.nulls.Get(i) {
		var zero T
		return zero, false
	}
	return l.values.Get(l.nulls.OnesBefore(i)), true
}

// Set replaces the entry at index i with v.
func (l *NullableList[T]) Set(i int, v T) {
	if l.nulls.Get(i) {
		l.values.Set(l.nulls.OnesBefore(i), v)
		return
	}
	l.values.Insert(l.nulls.OnesBefore(i), v)
	l.nulls.Set(i, true)
}

// SetNull replaces the entry at index i with null.
func (l *NullableList[T]) SetNull(i int) {
	if !l.nulls.Get(i) {
		return
	}
	l.values.RemoveAt(l.nulls.OnesBefore(i))
	l.nulls.Set(i, false)
}

// Add appends v.
func (l *NullableList[T]) Add(v T) {
	l.nulls.Append(true)
	l.values.Add(v)
}

// AddNull appends a null entry.
func (l *NullableList[T]) AddNull() {
	l.nulls.Append(false)
}

// Insert places v at index i, shifting subsequent entries right.
func (l *NullableList[T]) Insert(i int, v T) {
	l.nulls.InsertAt(i, true)
	l.values.Insert(l.nulls.OnesBefore(i), v)
}

// InsertNull places a null at index i, shifting subsequent entries
// right.
func (l *NullableList[T]) InsertNull(i int) {
	l.nulls.InsertAt(i, false)
}

// RemoveAt deletes the entry at index i, shifting subsequent entries
// left.
func (l *NullableList[T]) RemoveAt(i int) {
	if l.nulls.Get(i) {
		l.values.RemoveAt(l.nulls.OnesBefore(i))
	}
	l.nulls.RemoveAt(i)
}

// Clear resets the list to empty without releasing storage.
func (l *NullableList[T]) Clear() {
	l.nulls = bitpack.NewBitmap(0)
	l.values.Clear()
}

// Clone returns a deep copy of the list.
func (l *NullableList[T]) Clone() *NullableList[T] {
	return &NullableList[T]{nulls: l.nulls.Clone(), values: *l.values.Clone()}
}

// Equal reports whether l and o hold the same entries, with nulls in
// the same positions.
func (l *NullableList[T]) Equal(o *NullableList[T]) bool {
	return bitpack.EqualBitmaps(&l.nulls, &o.nulls) && l.values.Equal(&o.values)
}

// All calls yield for each entry in index order until yield returns
// false. For null entries yield receives the zero value and ok=false.
func (l *NullableList[T]) All(yield func(i int, v T, ok bool) bool) {
	for i := 0; i < l.nulls.Len(); i++ {
		v, ok := l.Get(i)
		if !yield(i, v, ok) {
			return
		}
	}
}
