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
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// FromMap constructs a Map holding the entries of src.
func FromMap[K comparable, V any](src map[K]V, options ...Option[K, V]) *Map[K, V] {
	m := New[K, V](len(src), options...)
	for k, v := range src {
		m.Put(k, v)
	}
	return m
}

// String converts m to a string representation using K's and V's
// String functions. Entries are sorted by key string so the output is
// deterministic.
func String[K interface {
	comparable
	fmt.Stringer
}, V fmt.Stringer](m *Map[K, V]) string {
	return StringFunc(m,
		func(key K) string { return key.String() },
		func(value V) string { return value.String() },
	)
}

type strKV struct {
	k string
	v string
}

// StringFunc converts m to a string representation with the help of
// strK and strV functions to stringify m's keys and values. This is
// the debug/interop hook: it consumes only the iteration primitive, so
// any other formatter can be built the same way.
func StringFunc[K comparable, V any](m *Map[K, V],
	strK func(key K) string,
	strV func(value V) string) string {
	if m == nil || m.Len() == 0 {
		return "omap.Map[]"
	}
	strs := make([]strKV, 0, m.Len())
	size := 0
	m.All(func(key K, value V) bool {
		kv := strKV{k: strK(key), v: strV(value)}
		size += len(kv.k) + len(kv.v)
		strs = append(strs, kv)
		return true
	})
	slices.SortFunc(strs, func(a, b strKV) bool { return a.k < b.k })

	var b strings.Builder
	b.Grow(len("omap.Map[]") + len(strs)*2 - 1 + size)
	b.WriteString("omap.Map[")
	for i, kv := range strs {
		if i != 0 {
			b.WriteByte(' ')
		}
		b.WriteString(kv.k)
		b.WriteByte(':')
		b.WriteString(kv.v)
	}
	b.WriteByte(']')
	return b.String()
}

// Equal reports whether the same set of keys and values are in m1 and
// m2. Values are compared using ==.
func Equal[K comparable, V comparable](m1, m2 *Map[K, V]) bool {
	return EqualFunc(m1, m2, func(a, b V) bool { return a == b })
}

// EqualFunc reports whether the same set of keys and values are in m1
// and m2. Values are compared using eq.
func EqualFunc[K comparable, V any](m1, m2 *Map[K, V], eq func(V, V) bool) bool {
	if m1.Len() != m2.Len() {
		return false
	}
	equal := true
	m1.All(func(key K, value V) bool {
		v2, ok := m2.Get(key)
		equal = ok && eq(value, v2)
		return equal
	})
	return equal
}
