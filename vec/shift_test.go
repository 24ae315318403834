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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShiftRoundTrip(t *testing.T) {
	// A century of years fits in an int8 once rebased at 2000.
	s := NewShift[int8](2000, 0)
	for y := int64(2000); y < 2100; y++ {
		s.Add(y)
	}
	require.Equal(t, 100, s.Len())
	for i := 0; i < 100; i++ {
		require.Equal(t, 2000+int64(i), s.Get(i))
	}

	s.Set(50, 2127)
	require.Equal(t, int64(2127), s.Get(50))
	require.Equal(t, 50, s.IndexOf(2127))
	require.True(t, s.Contains(2127))
	require.Equal(t, -1, s.IndexOf(1999))
	require.False(t, s.Contains(5000))
}

func TestShiftOutOfRange(t *testing.T) {
	s := NewShift[int8](2000, 0)
	require.Panics(t, func() { s.Add(2128) })
	require.Panics(t, func() { s.Add(1871) })
	s.Add(1872)
	s.Add(2127)
	require.Equal(t, int64(1872), s.Get(0))
	require.Equal(t, int64(2127), s.Get(1))
}

func TestShiftInsertRemove(t *testing.T) {
	s := NewShift[int16](-100, 4)
	s.Add(-100)
	s.Add(-50)
	s.Insert(1, -75)
	require.Equal(t, int64(-75), s.Get(1))
	require.Equal(t, int64(-75), s.RemoveAt(1))
	require.Equal(t, 2, s.Len())
	require.Equal(t, int64(-50), s.Get(1))
}

func TestShiftCloneClearAll(t *testing.T) {
	s := NewShift[uint8](1000, 0)
	for i := int64(1000); i < 1010; i++ {
		s.Add(i)
	}
	c := s.Clone()
	c.Set(0, 1100)
	require.Equal(t, int64(1000), s.Get(0))
	require.Equal(t, int64(1000), c.Shift())

	var got []int64
	s.All(func(i int, v int64) bool {
		got = append(got, v)
		return true
	})
	require.Equal(t, []int64{1000, 1001, 1002, 1003, 1004, 1005, 1006, 1007, 1008, 1009}, got)

	s.Clear()
	require.Zero(t, s.Len())
}
