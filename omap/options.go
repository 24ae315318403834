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

	"github.com/adhoc-collections/prim/internal/hashrt"
)

// Option configures a Map while it is being created.
type Option[K comparable, V any] interface {
	apply(m *Map[K, V])
}

type hashOption[K comparable, V any] struct {
	hash func(key *K, seed uintptr) uintptr
}

func (op hashOption[K, V]) apply(m *Map[K, V]) {
	m.hash = *(*hashrt.Fn)(hashrt.NoEscape(unsafe.Pointer(&op.hash)))
}

// WithHash overrides the hash function for a Map[K,V]. The default is
// the runtime's hasher for K.
func WithHash[K comparable, V any](hash func(key *K, seed uintptr) uintptr) Option[K, V] {
	return hashOption[K, V]{hash}
}

type loadFactorOption[K comparable, V any] struct {
	loadFactor float64
}

func (op loadFactorOption[K, V]) apply(m *Map[K, V]) {
	m.loadFactor = op.loadFactor
}

// WithLoadFactor sets the occupancy fraction that triggers growth.
// It must be in (0, 1).
func WithLoadFactor[K comparable, V any](loadFactor float64) Option[K, V] {
	if loadFactor <= 0 || loadFactor >= 1 {
		panic("omap: load factor must be in (0, 1)")
	}
	return loadFactorOption[K, V]{loadFactor}
}

type seedOption[K comparable, V any] struct {
	seed uintptr
}

func (op seedOption[K, V]) apply(m *Map[K, V]) {
	m.seed = op.seed
}

// WithSeed fixes the hash seed, making probe order reproducible.
// Intended for tests.
func WithSeed[K comparable, V any](seed uintptr) Option[K, V] {
	return seedOption[K, V]{seed}
}
