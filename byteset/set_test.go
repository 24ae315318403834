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

package byteset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetBasic(t *testing.T) {
	var s Set
	require.True(t, s.Empty())

	require.True(t, s.Add(0))
	require.True(t, s.Add(63))
	require.True(t, s.Add(64))
	require.True(t, s.Add(255))
	require.False(t, s.Add(64))
	require.Equal(t, 4, s.Len())

	require.True(t, s.Contains(0))
	require.True(t, s.Contains(255))
	require.False(t, s.Contains(1))

	require.True(t, s.Remove(63))
	require.False(t, s.Remove(63))
	require.Equal(t, 3, s.Len())
	require.False(t, s.Contains(63))
}

func TestSetRank(t *testing.T) {
	s := Of(3, 64, 65, 200)

	// Present values report 1-based ordinals in ascending key order.
	require.Equal(t, 1, s.Rank(3))
	require.Equal(t, 2, s.Rank(64))
	require.Equal(t, 3, s.Rank(65))
	require.Equal(t, 4, s.Rank(200))

	// Absent values report the complement of the insertion position.
	require.Equal(t, 0, ^s.Rank(0))
	require.Equal(t, 1, ^s.Rank(4))
	require.Equal(t, 1, ^s.Rank(63))
	require.Equal(t, 3, ^s.Rank(100))
	require.Equal(t, 4, ^s.Rank(255))
}

func TestSetRankConsistency(t *testing.T) {
	var s Set
	e := make(map[byte]bool)
	for i := 0; i < 100; i++ {
		s.Add(byte(rand.Intn(256)))
	}
	s.All(func(v byte) bool {
		e[v] = true
		return true
	})

	ordinal := 0
	for v := 0; v < 256; v++ {
		r := s.Rank(byte(v))
		if e[byte(v)] {
			ordinal++
			require.Equal(t, ordinal, r, "value %d", v)
		} else {
			require.Equal(t, ordinal, ^r, "value %d", v)
		}
	}
}

func TestSetBulk(t *testing.T) {
	s := Of(1, 2, 3, 100, 200)
	o := Of(2, 100, 250)

	c := s.Clone()
	require.Equal(t, 1, c.AddAll(&o))
	require.Equal(t, 6, c.Len())
	require.True(t, c.ContainsAll(&s))
	require.True(t, c.ContainsAll(&o))
	require.False(t, s.ContainsAll(&o))

	c = s.Clone()
	require.Equal(t, 2, c.RemoveAll(&o))
	require.Equal(t, Of(1, 3, 200), c)

	c = s.Clone()
	require.Equal(t, 3, c.RetainAll(&o))
	require.Equal(t, Of(2, 100), c)
}

func TestSetAllOrder(t *testing.T) {
	s := Of(255, 0, 128, 63, 64)
	var got []byte
	s.All(func(v byte) bool {
		got = append(got, v)
		return true
	})
	require.Equal(t, []byte{0, 63, 64, 128, 255}, got)

	// Early termination.
	got = got[:0]
	s.All(func(v byte) bool {
		got = append(got, v)
		return len(got) < 2
	})
	require.Equal(t, []byte{0, 63}, got)
}

func TestSetEqualClear(t *testing.T) {
	s := Of(1, 2, 3)
	o := Of(3, 2, 1)
	require.True(t, s.Equal(&o))
	o.Add(4)
	require.False(t, s.Equal(&o))

	s.Clear()
	require.True(t, s.Empty())
	require.False(t, s.Contains(1))
}
