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

func toBuiltinMap[V any](m *Map[V]) map[byte]V {
	r := make(map[byte]V)
	m.All(func(k byte, v V) bool {
		r[k] = v
		return true
	})
	return r
}

func TestMapBasic(t *testing.T) {
	m := NewMap[string](4)
	require.True(t, m.Empty())

	require.True(t, m.Put(10, "ten"))
	require.True(t, m.Put(5, "five"))
	require.True(t, m.Put(200, "two hundred"))
	require.False(t, m.Put(10, "TEN"))
	require.Equal(t, 3, m.Len())

	v, ok := m.Get(10)
	require.True(t, ok)
	require.Equal(t, "TEN", v)
	_, ok = m.Get(11)
	require.False(t, ok)
	require.Equal(t, "none", m.GetOr(11, "none"))
	require.Equal(t, "five", m.GetOr(5, "none"))
	require.True(t, m.Contains(200))

	require.True(t, m.Delete(5))
	require.False(t, m.Delete(5))
	require.Equal(t, 2, m.Len())

	// Values stay packed in key order after the delete.
	v, _ = m.Get(10)
	require.Equal(t, "TEN", v)
	v, _ = m.Get(200)
	require.Equal(t, "two hundred", v)
}

func TestMapRandom(t *testing.T) {
	m := NewMap[int](0)
	e := make(map[byte]int)
	for i := 0; i < 10000; i++ {
		k := byte(rand.Intn(256))
		switch r := rand.Float64(); {
		case r < 0.5:
			_, ok := e[k]
			require.Equal(t, !ok, m.Put(k, i))
			e[k] = i
		case r < 0.75:
			_, ok := e[k]
			require.Equal(t, ok, m.Delete(k))
			delete(e, k)
		default:
			v, ok := m.Get(k)
			ev, ok2 := e[k]
			require.Equal(t, ok2, ok)
			if ok {
				require.Equal(t, ev, v)
			}
		}
		require.Equal(t, len(e), m.Len())
	}
	require.Equal(t, e, toBuiltinMap(m))
}

func TestMapAllOrder(t *testing.T) {
	m := NewMap[int](0)
	for _, k := range []byte{200, 3, 64, 128, 0} {
		m.Put(k, int(k)*10)
	}
	var keys []byte
	var vals []int
	m.All(func(k byte, v int) bool {
		keys = append(keys, k)
		vals = append(vals, v)
		return true
	})
	require.Equal(t, []byte{0, 3, 64, 128, 200}, keys)
	require.Equal(t, []int{0, 30, 640, 1280, 2000}, vals)
}

func TestMapKeysCloneClear(t *testing.T) {
	m := NewMap[int](0)
	m.Put(1, 10)
	m.Put(2, 20)

	keys := m.Keys()
	require.Equal(t, Of(1, 2), keys)
	keys.Add(3)
	require.False(t, m.Contains(3))

	c := m.Clone()
	c.Put(1, 99)
	v, _ := m.Get(1)
	require.Equal(t, 10, v)

	m.Clear()
	require.True(t, m.Empty())
	require.True(t, m.Put(7, 70))
	require.Equal(t, map[byte]int{7: 70}, toBuiltinMap(m))
}
