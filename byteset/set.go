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

// Package byteset provides a dense set over the fixed byte universe
// 0..255 and a byte-keyed map that uses the set's rank to compact its
// values. Four 64-bit words cover the whole universe, so membership,
// rank and iteration are a handful of popcount and trailing-zero
// operations.
package byteset

import "math/bits"

// Set is a set of byte values backed by four 64-bit words.
//
// A Set is NOT goroutine-safe. The zero value is an empty set.
type Set struct {
	words [4]uint64
	size  int
}

// Of returns a set holding the given values.
func Of(values ...byte) Set {
	var s Set
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Len returns the number of elements.
func (s *Set) Len() int {
	return s.size
}

// Empty reports whether the set has no elements.
func (s *Set) Empty() bool {
	return s.size == 0
}

// Contains reports whether v is present.
func (s *Set) Contains(v byte) bool {
	return s.words[v>>6]>>(v&63)&1 == 1
}

// Add inserts v and reports whether it was newly inserted.
func (s *Set) Add(v byte) bool {
	w, bit := v>>6, uint64(1)<<(v&63)
	if s.words[w]&bit != 0 {
		return false
	}
	s.words[w] |= bit
	s.size++
	return true
}

// Remove deletes v and reports whether it was present.
func (s *Set) Remove(v byte) bool {
	w, bit := v>>6, uint64(1)<<(v&63)
	if s.words[w]&bit == 0 {
		return false
	}
	s.words[w] &^= bit
	s.size--
	return true
}

// Rank returns the 1-based count of elements <= v when v is present.
// When v is absent it returns the bitwise complement of the position v
// would be inserted at, so callers can recover the insertion point as
// ^Rank(v).
func (s *Set) Rank(v byte) int {
	w := int(v >> 6)
	r := 0
	for i := 0; i < w; i++ {
		r += bits.OnesCount64(s.words[i])
	}
	off := uint(v & 63)
	if s.words[w]>>off&1 == 1 {
		return r + bits.OnesCount64(s.words[w]&(1<<off-1)) + 1
	}
	return ^(r + bits.OnesCount64(s.words[w]&(1<<off-1)))
}

// Clear removes every element.
func (s *Set) Clear() {
	s.words = [4]uint64{}
	s.size = 0
}

// Clone returns a copy of the set.
func (s *Set) Clone() Set {
	return *s
}

// Equal reports whether s and o hold the same elements.
func (s *Set) Equal(o *Set) bool {
	return s.words == o.words
}

// AddAll inserts every element of o and returns the number of newly
// inserted elements.
func (s *Set) AddAll(o *Set) int {
	before := s.size
	s.merge(o, func(a, b uint64) uint64 { return a | b })
	return s.size - before
}

// RemoveAll deletes every element of o and returns the number of
// elements removed.
func (s *Set) RemoveAll(o *Set) int {
	before := s.size
	s.merge(o, func(a, b uint64) uint64 { return a &^ b })
	return before - s.size
}

// RetainAll deletes every element not in o and returns the number of
// elements removed.
func (s *Set) RetainAll(o *Set) int {
	before := s.size
	s.merge(o, func(a, b uint64) uint64 { return a & b })
	return before - s.size
}

// ContainsAll reports whether every element of o is present in s.
func (s *Set) ContainsAll(o *Set) bool {
	for i, w := range o.words {
		if s.words[i]&w != w {
			return false
		}
	}
	return true
}

func (s *Set) merge(o *Set, op func(a, b uint64) uint64) {
	s.size = 0
	for i := range s.words {
		s.words[i] = op(s.words[i], o.words[i])
		s.size += bits.OnesCount64(s.words[i])
	}
}

// All calls yield for each element in ascending order until yield
// returns false.
func (s *Set) All(yield func(v byte) bool) {
	for i, w := range s.words {
		for w != 0 {
			v := byte(i<<6 + bits.TrailingZeros64(w))
			if !yield(v) {
				return
			}
			w &= w - 1
		}
	}
}
