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

package bitpack

import "math/bits"

const wordBits = 64

// Bitmap is a fixed-stride bitmap with rank support. It is used as the
// presence side-car of the nullable collection variants: a set bit at
// index i means the logical entry at i holds a value, and
// OnesBefore(i) is the index of that value in a parallel compact
// array. InsertAt and RemoveAt shift all higher bits so the bitmap can
// track positional containers as well as slot arrays.
//
// A Bitmap is NOT goroutine-safe.
type Bitmap struct {
	words []uint64
	n     int
}

// NewBitmap returns a bitmap of n bits, all zero.
func NewBitmap(n int) Bitmap {
	return Bitmap{words: make([]uint64, (n+wordBits-1)/wordBits), n: n}
}

// Len returns the number of bits in the bitmap.
func (b *Bitmap) Len() int {
	return b.n
}

func (b *Bitmap) check(i int) {
	if i < 0 || i >= b.n {
		panic("bitpack: bit index out of range")
	}
}

// Get reports whether bit i is set.
func (b *Bitmap) Get(i int) bool {
	b.check(i)
	return b.words[i/wordBits]>>(i%wordBits)&1 == 1
}

// Set sets bit i to v.
func (b *Bitmap) Set(i int, v bool) {
	b.check(i)
	if v {
		b.words[i/wordBits] |= 1 << (i % wordBits)
	} else {
		b.words[i/wordBits] &^= 1 << (i % wordBits)
	}
}

// Count returns the total number of set bits.
func (b *Bitmap) Count() int {
	var c int
	for _, w := range b.words {
		c += bits.OnesCount64(w)
	}
	return c
}

// Rank returns the number of set bits in [0, i].
func (b *Bitmap) Rank(i int) int {
	b.check(i)
	return b.onesBelow(i + 1)
}

// OnesBefore returns the number of set bits in [0, i). This is the
// compact-array index of the value tracked by bit i.
func (b *Bitmap) OnesBefore(i int) int {
	b.check(i)
	return b.onesBelow(i)
}

func (b *Bitmap) onesBelow(i int) int {
	c := 0
	w := i / wordBits
	for j := 0; j < w; j++ {
		c += bits.OnesCount64(b.words[j])
	}
	if r := i % wordBits; r != 0 {
		c += bits.OnesCount64(b.words[w] & (1<<r - 1))
	}
	return c
}

// Append adds one bit at the end.
func (b *Bitmap) Append(v bool) {
	if b.n == len(b.words)*wordBits {
		b.words = append(b.words, 0)
	}
	b.n++
	b.Set(b.n-1, v)
}

// InsertAt grows the bitmap by one bit, shifting bits at indexes >= i
// up by one and setting bit i to v. i == Len() appends.
func (b *Bitmap) InsertAt(i int, v bool) {
	if i < 0 || i > b.n {
		panic("bitpack: bit index out of range")
	}
	b.Append(false)
	w := i / wordBits
	for j := len(b.words) - 1; j > w; j-- {
		b.words[j] = b.words[j]<<1 | b.words[j-1]>>(wordBits-1)
	}
	low := uint64(1)<<(i%wordBits) - 1
	b.words[w] = b.words[w]&low | (b.words[w]&^low)<<1
	b.Set(i, v)
}

// RemoveAt deletes bit i, shifting bits at indexes > i down by one.
// It returns the removed bit.
func (b *Bitmap) RemoveAt(i int) bool {
	v := b.Get(i)
	w := i / wordBits
	low := uint64(1)<<(i%wordBits) - 1
	b.words[w] = b.words[w]&low | (b.words[w]>>1)&^low
	for j := w + 1; j < len(b.words); j++ {
		b.words[j-1] |= b.words[j] << (wordBits - 1)
		b.words[j] >>= 1
	}
	b.n--
	if n := (b.n + wordBits - 1) / wordBits; n < len(b.words) {
		b.words = b.words[:n]
	}
	return v
}

// Reset clears every bit without shrinking the backing storage.
func (b *Bitmap) Reset() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// Clone returns a deep copy of the bitmap.
func (b *Bitmap) Clone() Bitmap {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return Bitmap{words: words, n: b.n}
}

// EqualBitmaps reports whether a and b have the same length and bits.
func EqualBitmaps(a, b *Bitmap) bool {
	if a.n != b.n {
		return false
	}
	for i, w := range a.words {
		if w != b.words[i] {
			return false
		}
	}
	return true
}
