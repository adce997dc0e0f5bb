// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bufpools implements size-classed pools of byte buffers
// used when rendering into an io.Writer.
package bufpools

import (
	"math/bits"
	"sync"
)

const (
	minPooledShift = 10 // smallest pooled capacity is 1KiB
	maxPooledShift = 24 // larger buffers are left to the GC
	numPools       = maxPooledShift - minPooledShift + 1
)

// A []byte cannot be put into a sync.Pool without allocating
// a slice header, so pointers to slice headers are pooled separately.
var sliceHeaderPool = sync.Pool{New: func() any { return new([]byte) }}

// bufferPools[i] holds buffers with capacity within
// [1<<(minPooledShift+i) : 2<<(minPooledShift+i)).
var bufferPools [numPools]sync.Pool

// Get acquires an empty buffer with capacity for at least n bytes.
// The unused buffer content is not guaranteed to be zeroed.
func Get(n int) []byte {
	if n < 1<<minPooledShift {
		n = 1 << minPooledShift
	}
	shift := bits.Len(uint(n - 1))
	if shift > maxPooledShift {
		return make([]byte, 0, n)
	}
	if p, _ := bufferPools[shift-minPooledShift].Get().(*[]byte); p != nil {
		b := (*p)[:0]
		*p = nil
		sliceHeaderPool.Put(p)
		return b
	}
	return make([]byte, 0, 1<<shift)
}

// Put releases b back to the pools.
// The caller must relinquish ownership of b.
func Put(b []byte) {
	if cap(b) < 1<<minPooledShift {
		return
	}
	shift := bits.Len(uint(cap(b))) - 1 // round down to the class b fully satisfies
	if shift > maxPooledShift {
		return
	}
	p := sliceHeaderPool.Get().(*[]byte)
	*p = b
	bufferPools[shift-minPooledShift].Put(p)
}
