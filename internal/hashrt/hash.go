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

// Package hashrt extracts the hash functions the Go runtime uses for
// its builtin map type. Using the runtime's hashers means any
// comparable key type hashes correctly (strings, structs, interfaces)
// without the caller having to supply a hash function. This reaches
// into the internals of the runtime's type descriptors and may need
// adjustment for future Go versions.
package hashrt

import "unsafe"

// Fn is the signature of the runtime's per-type hash functions: it
// hashes the value at ptr with the given seed.
type Fn func(ptr unsafe.Pointer, seed uintptr) uintptr

// For returns the hash function the runtime would use for the keys of
// a map[K]struct{}, extracted from the map's type descriptor.
func For[K comparable]() Fn {
	a := any((map[K]struct{})(nil))
	return (*mapIface)(unsafe.Pointer(&a)).typ.hasher
}

type mapIface struct {
	typ *mapType
	val unsafe.Pointer
}

// mapType mirrors runtime.maptype far enough to reach the hasher
// field. The leading rtype must match the layout of runtime._type.
type mapType struct {
	typ    rtype
	key    unsafe.Pointer
	elem   unsafe.Pointer
	bucket unsafe.Pointer
	hasher Fn
}

type rtype struct {
	size       uintptr
	ptrBytes   uintptr
	hash       uint32
	tflag      uint8
	align      uint8
	fieldAlign uint8
	kind       uint8
	equal      func(unsafe.Pointer, unsafe.Pointer) bool
	gcData     *byte
	str        int32
	ptrToThis  int32
}

//go:linkname fastrand64 runtime.fastrand64
func fastrand64() uint64

// Seed returns a process-random seed suitable for Fn.
func Seed() uintptr {
	return uintptr(fastrand64())
}

// NoEscape hides a pointer from escape analysis. It is the identity
// function, compiled down to zero instructions. Callers use it to hash
// stack-allocated keys without forcing them to the heap.
//
//go:nosplit
//go:nocheckptr
func NoEscape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}
