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

// Token is an opaque handle returned by lookup. It is either None
// (key absent), Null (key present with a logical null value, only
// produced by NullableMap), or a handle that Value and Key accept.
// Tokens are invalidated by any mutation of the map that produced
// them.
type Token int

const (
	// None reports an absent key.
	None Token = -1
	// Null reports a key that is present with a logical null value.
	Null Token = -2
	// zeroToken is the pseudo slot of the reserved zero key, which
	// lives outside the slot array.
	zeroToken Token = -3
)

// Exists reports whether the token refers to a present key (with or
// without a value).
func (t Token) Exists() bool {
	return t != None
}

// Token locates key, returning None when absent.
func (m *Map[K, V]) Token(key K) Token {
	var zero K
	if key == zero {
		if m.hasZero {
			return zeroToken
		}
		return None
	}
	i := m.findSlot(key)
	if m.keys[i] != key {
		return None
	}
	return Token(i)
}

// Value returns the value a token refers to. It panics on None and
// Null tokens and on tokens from a map that has since mutated.
func (m *Map[K, V]) Value(t Token) V {
	if t == zeroToken {
		return m.zeroValue
	}
	if t < 0 {
		panic("omap: Value on a token without a value")
	}
	return m.values[t]
}

// Key returns the key a token refers to.
func (m *Map[K, V]) Key(t Token) K {
	if t == zeroToken {
		var zero K
		return zero
	}
	if t < 0 {
		panic("omap: Key on an absent token")
	}
	return m.keys[t]
}

// Cursor returns a cursor positioned before the first entry. Iteration
// visits the zero-key pseudo entry first when present, then slotted
// entries in backing-array order. Mutating the map invalidates the
// cursor.
func (m *Map[K, V]) Cursor() Cursor[K, V] {
	return Cursor[K, V]{m: m, slot: cursorStart}
}

const cursorStart = -2

// Cursor walks a Map entry by entry:
//
//	for c := m.Cursor(); c.Next(); {
//		use(c.Key(), c.Value())
//	}
type Cursor[K comparable, V any] struct {
	m     *Map[K, V]
	slot  int
	key   K
	value V
}

// Next advances to the next entry, reporting false when the walk is
// done.
func (c *Cursor[K, V]) Next() bool {
	if c.slot == cursorStart {
		c.slot = -1
		if c.m.hasZero {
			var zero K
			c.key, c.value = zero, c.m.zeroValue
			return true
		}
	}
	var zero K
	for c.slot++; c.slot < len(c.m.keys); c.slot++ {
		if k := c.m.keys[c.slot]; k != zero {
			c.key, c.value = k, c.m.values[c.slot]
			return true
		}
	}
	c.slot--
	return false
}

// Key returns the key at the cursor position. Only valid after a Next
// that returned true.
func (c *Cursor[K, V]) Key() K {
	return c.key
}

// Value returns the value at the cursor position. Only valid after a
// Next that returned true.
func (c *Cursor[K, V]) Value() V {
	return c.value
}
