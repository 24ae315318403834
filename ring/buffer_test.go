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

package ring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferBasic(t *testing.T) {
	b := New[int](4)
	require.Equal(t, 4, b.Cap())
	require.True(t, b.Empty())

	for i := 1; i <= 4; i++ {
		require.True(t, b.Put(i))
	}
	require.True(t, b.Full())
	require.Equal(t, 4, b.Len())

	// A full buffer rejects the element instead of blocking.
	require.False(t, b.Put(5))

	v, ok := b.Peek()
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, 4, b.Len())

	for i := 1; i <= 4; i++ {
		v, ok := b.Get()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	_, ok = b.Get()
	require.False(t, ok)
	_, ok = b.Peek()
	require.False(t, ok)
}

func TestBufferCapacityRounding(t *testing.T) {
	for _, c := range []struct{ in, want int }{
		{1, 1}, {2, 2}, {3, 4}, {4, 4}, {5, 8}, {100, 128}, {1 << 10, 1 << 10},
	} {
		require.Equal(t, c.want, New[int](c.in).Cap(), "capacity %d", c.in)
	}
	require.Panics(t, func() { New[int](0) })
	require.Panics(t, func() { New[int](-1) })
}

func TestBufferWraparound(t *testing.T) {
	b := New[int](8)
	next := 0
	// Drive head and tail far past the array size so indices wrap many
	// times.
	for round := 0; round < 1000; round++ {
		for i := 0; i < 5; i++ {
			require.True(t, b.Put(round*5+i))
		}
		for i := 0; i < 5; i++ {
			v, ok := b.Get()
			require.True(t, ok)
			require.Equal(t, next, v)
			next++
		}
	}
	require.True(t, b.Empty())
}

func TestBufferClear(t *testing.T) {
	b := New[string](4)
	b.Put("a")
	b.Put("b")
	b.Clear()
	require.True(t, b.Empty())
	require.Equal(t, 0, b.Len())

	require.True(t, b.Put("c"))
	v, ok := b.Get()
	require.True(t, ok)
	require.Equal(t, "c", v)
}

func TestBufferConcurrent(t *testing.T) {
	const (
		producers   = 4
		consumers   = 4
		perProducer = 10000
	)
	b := New[int](64)

	var wg sync.WaitGroup
	var sumIn, sumOut, got atomic.Int64
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				v := p*perProducer + i
				for !b.PutConcurrent(v) {
					runtime.Gosched()
				}
				sumIn.Add(int64(v))
			}
		}(p)
	}
	for c := 0; c < consumers; c++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for got.Load() < producers*perProducer {
				if v, ok := b.GetConcurrent(); ok {
					sumOut.Add(int64(v))
					got.Add(1)
				} else {
					runtime.Gosched()
				}
			}
		}()
	}
	wg.Wait()
	require.EqualValues(t, producers*perProducer, got.Load())
	require.Equal(t, sumIn.Load(), sumOut.Load())
	require.True(t, b.Empty())
}
