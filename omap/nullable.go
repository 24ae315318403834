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

package omap

import (
	"unsafe"

	"github.com/adhoc-collections/prim/bitpack"
	"github.com/adhoc-collections/prim/internal/hashrt"
)

// Tri-state of the reserved zero key.
const (
	zeroAbsent = iota
	zeroNull
	zeroPresent
)

// NullableMap is a Map whose values may be logically null. Instead of
// one full-width value slot per entry, presence is a bitmap with one
// bit per slot and non-null values are packed into a compact array at
// their slot's rank, so null-valued entries cost one bit each. The key
// table is the same open-addressing, backward-shift-deleting table as
// Map.
//
// A NullableMap is NOT goroutine-safe.
type NullableMap[K comparable, V any] struct {
	hash hashrt.Fn
	seed uintptr

	keys []K
	// nulls holds one bit per slot; a set bit means the slot's value
	// lives in the compact values array at index nulls.OnesBefore(slot).
	nulls      bitpack.Bitmap
	values     []V
	mask       int
	count      int
	resizeAt   int
	loadFactor float64

	zeroState uint8
	zeroValue V
}

// NewNullable constructs a NullableMap sized so that capacity entries
// fit without growing. It accepts the same options as New.
func NewNullable[K comparable, V any](capacity int, options ...Option[K, V]) *NullableMap[K, V] {
	cfg := Map[K, V]{
		hash:       hashrt.For[K](),
		seed:       hashrt.Seed(),
		loadFactor: defaultLoadFactor,
	}
	for _, op := range options {
		op.apply(&cfg)
	}
	m := &NullableMap[K, V]{hash: cfg.hash, seed: cfg.seed, loadFactor: cfg.loadFactor}
	n := minCapacity
	for float64(n)*m.loadFactor < float64(capacity) {
		n <<= 1
	}
	m.allocate(n)
	return m
}

func (m *NullableMap[K, V]) allocate(n int) {
	m.keys = make([]K, n)
	m.nulls = bitpack.NewBitmap(n)
	m.values = m.values[:0]
	m.mask = n - 1
	m.resizeAt = int(float64(n) * m.loadFactor)
}

// Len returns the number of entries, null-valued ones included.
func (m *NullableMap[K, V]) Len() int {
	if m.zeroState != zeroAbsent {
		return m.count + 1
	}
	return m.count
}

// Empty reports whether the map has no entries.
func (m *NullableMap[K, V]) Empty() bool {
	return m.Len() == 0
}

func (m *NullableMap[K, V]) hashKey(key *K) int {
	return int(m.hash(hashrt.NoEscape(unsafe.Pointer(key)), m.seed))
}

func (m *NullableMap[K, V]) findSlot(key K) int {
	var zero K
	i := m.hashKey(&key) & m.mask
	for {
		if k := m.keys[i]; k == key || k == zero {
			return i
		}
		i = (i + 1) & m.mask
	}
}

func (m *NullableMap[K, V]) findEmpty(key K) int {
	var zero K
	i := m.hashKey(&key) & m.mask
	for m.keys[i] != zero {
		i = (i + 1) & m.mask
	}
	return i
}

// putValue stores v as slot's value in the compact array. The slot
// must currently be null.
func (m *NullableMap[K, V]) putValue(slot int, v V) {
	at := m.nulls.OnesBefore(slot)
	m.values = append(m.values, v)
	copy(m.values[at+1:], m.values[at:])
	m.values[at] = v
	m.nulls.Set(slot, true)
}

// takeValue removes and returns slot's value from the compact array.
// The slot must currently be non-null.
func (m *NullableMap[K, V]) takeValue(slot int) V {
	at := m.nulls.OnesBefore(slot)
	v := m.values[at]
	var zero V
	copy(m.values[at:], m.values[at+1:])
	m.values[len(m.values)-1] = zero
	m.values = m.values[:len(m.values)-1]
	m.nulls.Set(slot, false)
	return v
}

// Token locates key: None when absent, Null when present with a null
// value, otherwise a handle Value and Key accept.
func (m *NullableMap[K, V]) Token(key K) Token {
	var zero K
	if key == zero {
		switch m.zeroState {
		case zeroAbsent:
			return None
		case zeroNull:
			return Null
		}
		return zeroToken
	}
	i := m.findSlot(key)
	if m.keys[i] != key {
		return None
	}
	if !m.nulls.Get(i) {
		return Null
	}
	return Token(i)
}

// Value returns the value a token refers to. It panics on None and
// Null tokens.
func (m *NullableMap[K, V]) Value(t Token) V {
	if t == zeroToken {
		return m.zeroValue
	}
	if t < 0 {
		panic("omap: Value on a token without a value")
	}
	return m.values[m.nulls.OnesBefore(int(t))]
}

// Get returns the value for key. null reports a present key with a
// logical null value; ok reports presence of the key itself.
func (m *NullableMap[K, V]) Get(key K) (value V, null, ok bool) {
	switch t := m.Token(key); t {
	case None:
		return value, false, false
	case Null:
		return value, true, true
	default:
		return m.Value(t), false, true
	}
}

// Contains reports whether key is present, null-valued or not.
func (m *NullableMap[K, V]) Contains(key K) bool {
	return m.Token(key) != None
}

// Put inserts or overwrites the value for key and reports whether key
// was newly inserted.
func (m *NullableMap[K, V]) Put(key K, value V) bool {
	return m.put(key, value, false)
}

// PutNull inserts or overwrites key with the logical null value and
// reports whether key was newly inserted.
func (m *NullableMap[K, V]) PutNull(key K) bool {
	var zero V
	return m.put(key, zero, true)
}

func (m *NullableMap[K, V]) put(key K, value V, null bool) bool {
	var zero K
	if key == zero {
		inserted := m.zeroState == zeroAbsent
		if null {
			m.zeroState = zeroNull
			var zeroV V
			m.zeroValue = zeroV
		} else {
			m.zeroState = zeroPresent
			m.zeroValue = value
		}
		return inserted
	}
	i := m.findSlot(key)
	if m.keys[i] == key {
		had := m.nulls.Get(i)
		switch {
		case null && had:
			m.takeValue(i)
		case !null && had:
			m.values[m.nulls.OnesBefore(i)] = value
		case !null && !had:
			m.putValue(i, value)
		}
		return false
	}
	if m.count >= m.resizeAt {
		m.grow()
		i = m.findEmpty(key)
	}
	m.keys[i] = key
	if !null {
		m.putValue(i, value)
	}
	m.count++
	m.checkInvariants()
	return true
}

// Delete removes key and reports whether it was present.
func (m *NullableMap[K, V]) Delete(key K) bool {
	var zero K
	if key == zero {
		if m.zeroState == zeroAbsent {
			return false
		}
		m.zeroState = zeroAbsent
		var zeroV V
		m.zeroValue = zeroV
		return true
	}
	i := m.findSlot(key)
	if m.keys[i] != key {
		return false
	}
	m.removeSlot(i)
	m.checkInvariants()
	return true
}

// removeSlot is backward-shift deletion with the presence bit and the
// compact value moving along with each shifted entry.
func (m *NullableMap[K, V]) removeSlot(gap int) {
	var zero K
	if m.nulls.Get(gap) {
		m.takeValue(gap)
	}
	distance := 0
	for {
		distance++
		c := (gap + distance) & m.mask
		k := m.keys[c]
		if k == zero {
			break
		}
		home := m.hashKey(&m.keys[c]) & m.mask
		if (c-home)&m.mask >= distance {
			m.keys[gap] = k
			if m.nulls.Get(c) {
				v := m.takeValue(c)
				m.putValue(gap, v)
			}
			gap = c
			distance = 0
		}
	}
	m.keys[gap] = zero
	m.count--
}

func (m *NullableMap[K, V]) grow() {
	oldKeys, oldNulls, oldValues := m.keys, m.nulls, m.values
	m.values = nil
	m.allocate((m.mask + 1) << 1)
	var zero K
	vi := 0
	for i, k := range oldKeys {
		present := oldNulls.Get(i)
		if k != zero {
			j := m.findEmpty(k)
			m.keys[j] = k
			if present {
				m.putValue(j, oldValues[vi])
			}
		}
		if present {
			vi++
		}
	}
}

// Clear removes every entry without shrinking the backing storage.
func (m *NullableMap[K, V]) Clear() {
	var zero K
	var zeroV V
	for i := range m.keys {
		m.keys[i] = zero
	}
	for i := range m.values {
		m.values[i] = zeroV
	}
	m.values = m.values[:0]
	m.nulls.Reset()
	m.count = 0
	m.zeroState = zeroAbsent
	m.zeroValue = zeroV
}

// Clone returns a deep copy of the map.
func (m *NullableMap[K, V]) Clone() *NullableMap[K, V] {
	c := *m
	c.keys = make([]K, len(m.keys))
	copy(c.keys, m.keys)
	c.nulls = m.nulls.Clone()
	c.values = make([]V, len(m.values))
	copy(c.values, m.values)
	return &c
}

// All calls yield for each entry until yield returns false, with
// null=true for null-valued entries. The zero-key pseudo entry, when
// present, is visited first; slotted entries follow in backing-array
// order.
func (m *NullableMap[K, V]) All(yield func(key K, value V, null bool) bool) {
	var zeroK K
	var zeroV V
	switch m.zeroState {
	case zeroNull:
		if !yield(zeroK, zeroV, true) {
			return
		}
	case zeroPresent:
		if !yield(zeroK, m.zeroValue, false) {
			return
		}
	}
	for i, k := range m.keys {
		if k == zeroK {
			continue
		}
		if m.nulls.Get(i) {
			if !yield(k, m.values[m.nulls.OnesBefore(i)], false) {
				return
			}
		} else if !yield(k, zeroV, true) {
			return
		}
	}
}

func (m *NullableMap[K, V]) checkInvariants() {
	if invariants {
		var zero K
		count := 0
		for i, k := range m.keys {
			if k == zero {
				if m.nulls.Get(i) {
					panic("omap: invariant failed: presence bit on an empty slot")
				}
				continue
			}
			count++
			if j := m.findSlot(k); j != i {
				panic("omap: invariant failed: entry unreachable from its home slot")
			}
		}
		if count != m.count {
			panic("omap: invariant failed: count does not match occupied slots")
		}
		if m.nulls.Count() != len(m.values) {
			panic("omap: invariant failed: presence bits out of sync with values")
		}
	}
}
