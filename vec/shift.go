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

import "golang.org/x/exp/constraints"

// ShiftList stores int64 values from a narrow range in a smaller
// integer type T by rebasing every value against a fixed shift. A list
// of years in [2000, 2099] fits in a ShiftList[int8] with shift 2000.
// Values outside the representable range panic on Set/Add.
type ShiftList[T constraints.Integer] struct {
	list  List[T]
	shift int64
}

// NewShift returns an empty shift list rebased at shift with room for
// capacity elements.
func NewShift[T constraints.Integer](shift int64, capacity int) *ShiftList[T] {
	return &ShiftList[T]{list: List[T]{items: make([]T, 0, capacity)}, shift: shift}
}

// Shift returns the rebasing offset.
func (s *ShiftList[T]) Shift() int64 {
	return s.shift
}

// Len returns the number of elements.
func (s *ShiftList[T]) Len() int {
	return s.list.Len()
}

func (s *ShiftList[T]) rebase(v int64) T {
	t := T(v - s.shift)
	if int64(t) != v-s.shift {
		panic("vec: value out of the shifted range")
	}
	return t
}

// Get returns the logical value at index i.
func (s *ShiftList[T]) Get(i int) int64 {
	return s.shift + int64(s.list.Get(i))
}

// Set replaces the logical value at index i.
func (s *ShiftList[T]) Set(i int, v int64) {
	s.list.Set(i, s.rebase(v))
}

// Add appends the logical value v.
func (s *ShiftList[T]) Add(v int64) {
	s.list.Add(s.rebase(v))
}

// Insert places v at index i, shifting subsequent elements right.
func (s *ShiftList[T]) Insert(i int, v int64) {
	s.list.Insert(i, s.rebase(v))
}

// RemoveAt deletes the element at index i and returns its logical
// value.
func (s *ShiftList[T]) RemoveAt(i int) int64 {
	return s.shift + int64(s.list.RemoveAt(i))
}

// IndexOf returns the index of the first occurrence of v, or -1.
func (s *ShiftList[T]) IndexOf(v int64) int {
	t := T(v - s.shift)
	if int64(t) != v-s.shift {
		return -1
	}
	return s.list.IndexOf(t)
}

// Contains reports whether v is present.
func (s *ShiftList[T]) Contains(v int64) bool {
	return s.IndexOf(v) >= 0
}

// Clear resets the list to empty without releasing storage.
func (s *ShiftList[T]) Clear() {
	s.list.Clear()
}

// Clone returns a deep copy of the list.
func (s *ShiftList[T]) Clone() *ShiftList[T] {
	return &ShiftList[T]{list: *s.list.Clone(), shift: s.shift}
}

// All calls yield for each logical value in index order until yield
// returns false.
func (s *ShiftList[T]) All(yield func(i int, v int64) bool) {
	s.list.All(func(i int, t T) bool {
		return yield(i, s.shift+int64(t))
	})
}
