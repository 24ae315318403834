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

// Map is a byte-keyed map that keeps its keys in a Set and its values
// densely packed in key order: the value for key k lives at index
// Rank(k)-1. A sparse byte key space therefore never pays for a
// 256-entry value array.
//
// A Map is NOT goroutine-safe.
type Map[V any] struct {
	keys   Set
	values []V
}

// NewMap returns an empty map with room for capacity entries.
func NewMap[V any](capacity int) *Map[V] {
	return &Map[V]{values: make([]V, 0, capacity)}
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return m.keys.Len()
}

// Empty reports whether the map has no entries.
func (m *Map[V]) Empty() bool {
	return m.keys.Empty()
}

// Contains reports whether k is present.
func (m *Map[V]) Contains(k byte) bool {
	return m.keys.Contains(k)
}

// Get returns the value for k and whether k is present.
func (m *Map[V]) Get(k byte) (V, bool) {
	r := m.keys.Rank(k)
	if r < 0 {
		var zero V
		return zero, false
	}
	return m.values[r-1], true
}

// GetOr returns the value for k, or def when k is absent.
func (m *Map[V]) GetOr(k byte, def V) V {
	if v, ok := m.Get(k); ok {
		return v
	}
	return def
}

// Put inserts or overwrites the value for k and reports whether k was
// newly inserted.
func (m *Map[V]) Put(k byte, v V) bool {
	r := m.keys.Rank(k)
	if r >= 0 {
		m.values[r-1] = v
		return false
	}
	at := ^r
	m.values = append(m.values, v)
	copy(m.values[at+1:], m.values[at:])
	m.values[at] = v
	m.keys.Add(k)
	return true
}

// Delete removes k and reports whether it was present.
func (m *Map[V]) Delete(k byte) bool {
	r := m.keys.Rank(k)
	if r < 0 {
		return false
	}
	var zero V
	copy(m.values[r-1:], m.values[r:])
	m.values[len(m.values)-1] = zero
	m.values = m.values[:len(m.values)-1]
	m.keys.Remove(k)
	return true
}

// Clear removes every entry without releasing storage.
func (m *Map[V]) Clear() {
	var zero V
	for i := range m.values {
		m.values[i] = zero
	}
	m.values = m.values[:0]
	m.keys.Clear()
}

// Keys returns a copy of the key set.
func (m *Map[V]) Keys() Set {
	return m.keys.Clone()
}

// Clone returns a deep copy of the map.
func (m *Map[V]) Clone() *Map[V] {
	c := &Map[V]{keys: m.keys.Clone(), values: make([]V, len(m.values))}
	copy(c.values, m.values)
	return c
}

// All calls yield for each entry in ascending key order until yield
// returns false.
func (m *Map[V]) All(yield func(k byte, v V) bool) {
	i := 0
	m.keys.All(func(k byte) bool {
		ok := yield(k, m.values[i])
		i++
		return ok
	})
}
