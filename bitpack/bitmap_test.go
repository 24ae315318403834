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

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitmapBasic(t *testing.T) {
	b := NewBitmap(200)
	require.Equal(t, 200, b.Len())
	e := make([]bool, 200)
	for i := 0; i < 1000; i++ {
		j := rand.Intn(200)
		v := rand.Intn(2) == 0
		b.Set(j, v)
		e[j] = v
	}
	count := 0
	for i, v := range e {
		require.Equal(t, v, b.Get(i), "bit %d", i)
		if v {
			count++
		}
	}
	require.Equal(t, count, b.Count())
}

func TestBitmapRank(t *testing.T) {
	b := NewBitmap(256)
	e := make([]bool, 256)
	for i := 0; i < 256; i += 3 {
		b.Set(i, true)
		e[i] = true
	}
	ones := 0
	for i := 0; i < 256; i++ {
		require.Equal(t, ones, b.OnesBefore(i), "bit %d", i)
		if e[i] {
			ones++
		}
		require.Equal(t, ones, b.Rank(i), "bit %d", i)
	}
}

func TestBitmapInsertRemove(t *testing.T) {
	b := NewBitmap(0)
	var e []bool
	for i := 0; i < 3000; i++ {
		switch r := rand.Float64(); {
		case r < 0.5 || len(e) == 0:
			v := rand.Intn(2) == 0
			at := rand.Intn(len(e) + 1)
			b.InsertAt(at, v)
			e = append(e[:at], append([]bool{v}, e[at:]...)...)
		default:
			at := rand.Intn(len(e))
			require.Equal(t, e[at], b.RemoveAt(at))
			e = append(e[:at], e[at+1:]...)
		}
		require.Equal(t, len(e), b.Len())
	}
	for i, v := range e {
		require.Equal(t, v, b.Get(i), "bit %d", i)
	}
}

func TestBitmapInsertShiftsAcrossWords(t *testing.T) {
	b := NewBitmap(0)
	for i := 0; i < 130; i++ {
		b.Append(i%2 == 0)
	}
	// Inserting at 0 must ripple every bit up through three words.
	b.InsertAt(0, true)
	require.True(t, b.Get(0))
	for i := 1; i < 131; i++ {
		require.Equal(t, (i-1)%2 == 0, b.Get(i), "bit %d", i)
	}
	b.RemoveAt(0)
	for i := 0; i < 130; i++ {
		require.Equal(t, i%2 == 0, b.Get(i), "bit %d", i)
	}
}

func TestBitmapCloneEqualReset(t *testing.T) {
	b := NewBitmap(100)
	for i := 0; i < 100; i += 7 {
		b.Set(i, true)
	}
	c := b.Clone()
	require.True(t, EqualBitmaps(&b, &c))
	c.Set(1, true)
	require.False(t, EqualBitmaps(&b, &c))

	b.Reset()
	require.Zero(t, b.Count())
	require.Equal(t, 100, b.Len())
}

func TestBitmapPanics(t *testing.T) {
	b := NewBitmap(10)
	require.Panics(t, func() { b.Get(10) })
	require.Panics(t, func() { b.Get(-1) })
	require.Panics(t, func() { b.Set(10, true) })
	require.Panics(t, func() { b.InsertAt(12, true) })
}
