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

// Package omap implements an open-addressing hash map over parallel
// key and value arrays.
//
// # Layout
//
// A Map's backing storage is two arrays, keys and values, of identical
// power-of-two length. A key's home slot is hash(key) & mask and
// collisions resolve by linear probing: scan forward (wrapping through
// the mask) until the key or an empty slot is found. The zero value of
// K is reserved as the empty-slot sentinel, so an entry with a real
// zero key cannot live in the slot array; it is tracked out of band by
// a flag and a dedicated value field. This is the classic trick for
// primitive-keyed tables where the key array has no way to represent
// absence, and it keeps every slot at exactly one key plus one value
// of storage.
//
// # Deletion
//
// Removal uses backward-shift deletion instead of tombstones. After
// clearing the matched slot, the probe chain following it is walked
// and any entry whose probe distance would tolerate it is shifted back
// into the gap, repeating until a genuinely empty slot terminates the
// chain:
//
//	gap = slot of removed entry
//	distance = 0
//	loop:
//	  candidate = (gap + ++distance) & mask
//	  if keys[candidate] is empty: break
//	  if ((candidate - home(candidate)) & mask) >= distance:
//	    move candidate into gap; gap = candidate; distance = 0
//	mark keys[gap] empty
//
// The shift condition guarantees no entry ends up before its home slot
// and no entry's probe length grows, so the table stays tombstone-free
// and lookups remain O(1) expected without periodic compaction.
//
// # Growth
//
// When the number of slotted entries reaches capacity*loadFactor the
// table doubles and every entry is rehashed into the new array. Probe
// order is not preserved across a resize; correctness only depends on
// each key being reachable from its new home slot.
package omap

import (
	"unsafe"

	"github.com/adhoc-collections/prim/internal/hashrt"
)

const (
	minCapacity       = 8
	defaultLoadFactor = 0.75
)

// Map is an unordered map from K to V with token-based lookup and
// cursor iteration. By default keys hash through the same runtime
// hasher Go's builtin map would use; WithHash overrides it.
//
// A Map is NOT goroutine-safe.
type Map[K comparable, V any] struct {
	hash hashrt.Fn
	seed uintptr

	keys   []K
	values []V
	// mask is len(keys)-1; len(keys) is always a power of two.
	mask int
	// count is the number of slotted entries. The zero-key pseudo
	// entry is not included; Len adds it back.
	count      int
	resizeAt   int
	loadFactor float64

	hasZero   bool
	zeroValue V
}

// New constructs a Map sized so that capacity entries fit without
// growing.
func New[K comparable, V any](capacity int, options ...Option[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		hash:       hashrt.For[K](),
		seed:       hashrt.Seed(),
		loadFactor: defaultLoadFactor,
	}
	for _, op := range options {
		op.apply(m)
	}
	n := minCapacity
	for float64(n)*m.loadFactor < float64(capacity) {
		n <<= 1
	}
	m.allocate(n)
	return m
}

func (m *Map[K, V]) allocate(n int) {
	m.keys = make([]K, n)
	m.values = make([]V, n)
	m.mask = n - 1
	m.resizeAt = int(float64(n) * m.loadFactor)
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	if m.hasZero {
		return m.count + 1
	}
	return m.count
}

// Empty reports whether the map has no entries.
func (m *Map[K, V]) Empty() bool {
	return m.Len() == 0
}

func (m *Map[K, V]) hashKey(key *K) int {
	return int(m.hash(hashrt.NoEscape(unsafe.Pointer(key)), m.seed))
}

// findSlot returns the slot holding key, or the empty slot that
// terminates key's probe chain.
func (m *Map[K, V]) findSlot(key K) int {
	var zero K
	i := m.hashKey(&key) & m.mask
	for {
		if k := m.keys[i]; k == key || k == zero {
			return i
		}
		i = (i + 1) & m.mask
	}
}

// findEmpty returns the first empty slot on key's probe chain. The key
// must not be present.
func (m *Map[K, V]) findEmpty(key K) int {
	var zero K
	i := m.hashKey(&key) & m.mask
	for m.keys[i] != zero {
		i = (i + 1) & m.mask
	}
	return i
}

// Get returns the value for key, with ok=false when key is absent.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	var zero K
	if key == zero {
		if !m.hasZero {
			return value, false
		}
		return m.zeroValue, true
	}
	i := m.findSlot(key)
	if m.keys[i] != key {
		return value, false
	}
	return m.values[i], true
}

// GetOr returns the value for key, or def when key is absent.
func (m *Map[K, V]) GetOr(key K, def V) V {
	if v, ok := m.Get(key); ok {
		return v
	}
	return def
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Put inserts or overwrites the value for key and reports whether key
// was newly inserted.
func (m *Map[K, V]) Put(key K, value V) bool {
	var zero K
	if key == zero {
		inserted := !m.hasZero
		m.hasZero = true
		m.zeroValue = value
		return inserted
	}
	i := m.findSlot(key)
	if m.keys[i] == key {
		m.values[i] = value
		return false
	}
	if m.count >= m.resizeAt {
		m.grow()
		i = m.findEmpty(key)
	}
	m.keys[i] = key
	m.values[i] = value
	m.count++
	m.checkInvariants()
	return true
}

// PutAll inserts every entry of o.
func (m *Map[K, V]) PutAll(o *Map[K, V]) {
	o.All(func(k K, v V) bool {
		m.Put(k, v)
		return true
	})
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	var zero K
	if key == zero {
		if !m.hasZero {
			return false
		}
		m.hasZero = false
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

// removeSlot clears slot gap and backward-shifts the probe chain that
// follows it so every remaining entry stays reachable.
func (m *Map[K, V]) removeSlot(gap int) {
	var zero K
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
			m.values[gap] = m.values[c]
			gap = c
			distance = 0
		}
	}
	var zeroV V
	m.keys[gap] = zero
	m.values[gap] = zeroV
	m.count--
}

func (m *Map[K, V]) grow() {
	oldKeys, oldValues := m.keys, m.values
	m.allocate((m.mask + 1) << 1)
	var zero K
	for i, k := range oldKeys {
		if k != zero {
			j := m.findEmpty(k)
			m.keys[j] = k
			m.values[j] = oldValues[i]
		}
	}
}

// Clear removes every entry without shrinking the backing storage.
func (m *Map[K, V]) Clear() {
	var zero K
	var zeroV V
	for i := range m.keys {
		m.keys[i] = zero
		m.values[i] = zeroV
	}
	m.count = 0
	m.hasZero = false
	m.zeroValue = zeroV
}

// Clone returns a deep copy of the map.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := *m
	c.keys = make([]K, len(m.keys))
	c.values = make([]V, len(m.values))
	copy(c.keys, m.keys)
	copy(c.values, m.values)
	return &c
}

// All calls yield for each entry until yield returns false. The
// zero-key pseudo entry, when present, is visited first; slotted
// entries follow in backing-array order. The backing arrays are
// snapshotted, so the map may grow during iteration without affecting
// the entries visited.
func (m *Map[K, V]) All(yield func(key K, value V) bool) {
	var zero K
	if m.hasZero && !yield(zero, m.zeroValue) {
		return
	}
	keys, values := m.keys, m.values
	for i, k := range keys {
		if k != zero && !yield(k, values[i]) {
			return
		}
	}
}

// capacity returns the slot-array length. Used by tests.
func (m *Map[K, V]) capacity() int {
	return m.mask + 1
}

func (m *Map[K, V]) checkInvariants() {
	if invariants {
		var zero K
		count := 0
		for i, k := range m.keys {
			if k == zero {
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
		if m.count >= m.mask+1 {
			panic("omap: invariant failed: table overfull")
		}
	}
}
