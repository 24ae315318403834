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

// Package bitpack provides bit-level storage: List packs fixed-width
// sub-word integers contiguously into 64-bit words, and Bitmap is a
// 1-bit-per-entry presence map with rank support. Both are the
// building blocks of the nullable collection variants.
package bitpack

// List stores fixed-width unsigned integers packed contiguously into
// 64-bit words. A value whose bit range straddles a word boundary is
// split across the two words. Values wider than the configured width
// are truncated to the low width bits on Set/Add.
//
// A List is NOT goroutine-safe.
type List struct {
	words []uint64
	width uint
	n     int
}

// NewList returns an empty list of width-bit values with room for
// capacity entries. Width must be in [1, 64].
func NewList(width uint, capacity int) *List {
	if width == 0 || width > 64 {
		panic("bitpack: width must be in [1, 64]")
	}
	return &List{
		words: make([]uint64, 0, (capacity*int(width)+wordBits-1)/wordBits),
		width: width,
	}
}

// Width returns the configured bits per entry.
func (l *List) Width() uint {
	return l.width
}

// Len returns the number of entries.
func (l *List) Len() int {
	return l.n
}

func (l *List) mask() uint64 {
	if l.width == 64 {
		return ^uint64(0)
	}
	return 1<<l.width - 1
}

func (l *List) check(i int) {
	if i < 0 || i >= l.n {
		panic("bitpack: index out of range")
	}
}

// Get returns the value at index i.
func (l *List) Get(i int) uint64 {
	l.check(i)
	bit := uint(i) * l.width
	w, off := bit/wordBits, bit%wordBits
	v := l.words[w] >> off
	if off+l.width > wordBits {
		// The value straddles into the next word.
		v |= l.words[w+1] << (wordBits - off)
	}
	return v & l.mask()
}

// Set stores v (truncated to the list width) at index i.
func (l *List) Set(i int, v uint64) {
	l.check(i)
	v &= l.mask()
	bit := uint(i) * l.width
	w, off := bit/wordBits, bit%wordBits
	l.words[w] = l.words[w]&^(l.mask()<<off) | v<<off
	if off+l.width > wordBits {
		spill := l.width - (wordBits - off)
		l.words[w+1] = l.words[w+1]&^(1<<spill-1) | v>>(wordBits-off)
	}
}

// Add appends v at the end.
func (l *List) Add(v uint64) {
	bit := uint(l.n) * l.width
	if need := int(bit+l.width+wordBits-1) / wordBits; need > len(l.words) {
		for len(l.words) < need {
			l.words = append(l.words, 0)
		}
	}
	l.n++
	l.Set(l.n-1, v)
}

// RemoveAt deletes the entry at index i, shifting subsequent entries
// down by one position. It returns the removed value.
func (l *List) RemoveAt(i int) uint64 {
	v := l.Get(i)
	for j := i; j < l.n-1; j++ {
		l.Set(j, l.Get(j+1))
	}
	l.n--
	if need := (l.n*int(l.width) + wordBits - 1) / wordBits; need < len(l.words) {
		l.words = l.words[:need]
	}
	return v
}

// InsertAt inserts v at index i, shifting subsequent entries up by one
// position. i == Len() appends.
func (l *List) InsertAt(i int, v uint64) {
	if i < 0 || i > l.n {
		panic("bitpack: index out of range")
	}
	l.Add(0)
	for j := l.n - 1; j > i; j-- {
		l.Set(j, l.Get(j-1))
	}
	l.Set(i, v)
}

// Clear resets the list to empty without releasing storage.
func (l *List) Clear() {
	l.words = l.words[:0]
	l.n = 0
}

// Clone returns a deep copy of the list.
func (l *List) Clone() *List {
	words := make([]uint64, len(l.words))
	copy(words, l.words)
	return &List{words: words, width: l.width, n: l.n}
}

// All calls yield for each entry in index order until yield returns
// false.
func (l *List) All(yield func(i int, v uint64) bool) {
	for i := 0; i < l.n; i++ {
		if !yield(i, l.Get(i)) {
			return
		}
	}
}

// EqualLists reports whether a and b have the same width, length and
// values.
func EqualLists(a, b *List) bool {
	if a.width != b.width || a.n != b.n {
		return false
	}
	for i := 0; i < a.n; i++ {
		if a.Get(i) != b.Get(i) {
			return false
		}
	}
	return true
}
