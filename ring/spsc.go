// Copyright (c) 2026 The concur Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"code.hybscloud.com/atomix"
)

// RingSPSC is a single-producer single-consumer bounded queue.
//
// Based on Lamport's ring buffer with cached index optimization: the
// producer caches the consumer's pop index, and vice versa, reducing
// cross-core cache line traffic on the hot path.
//
// Memory: O(capacity), one slot of T per element.
type RingSPSC[T any] struct {
	_          pad
	head       atomix.Uint64 // consumer reads from here
	_          pad
	cachedTail uint64 // consumer's cached view of tail
	_          pad
	tail       atomix.Uint64 // producer writes here
	_          pad
	cachedHead uint64 // producer's cached view of head
	_          pad
	buffer     []T
	mask       uint64
}

// NewRingSPSC creates a new SPSC ring queue.
// Capacity rounds up to the next power of 2; panics if capacity < 2.
func NewRingSPSC[T any](capacity int) *RingSPSC[T] {
	if capacity < 2 {
		panic("ring: capacity must be >= 2")
	}
	n := uint64(roundToPow2(capacity))
	return &RingSPSC[T]{
		buffer: make([]T, n),
		mask:   n - 1,
	}
}

// Enqueue adds an element to the queue. Producer-only.
// Returns ErrWouldBlock if the queue is full.
func (q *RingSPSC[T]) Enqueue(elem T) error {
	tail := q.tail.LoadRelaxed()
	if tail-q.cachedHead > q.mask {
		q.cachedHead = q.head.LoadAcquire()
		if tail-q.cachedHead > q.mask {
			return ErrWouldBlock
		}
	}
	q.buffer[tail&q.mask] = elem
	q.tail.StoreRelease(tail + 1)
	return nil
}

// Dequeue removes and returns an element. Consumer-only.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *RingSPSC[T]) Dequeue() (T, error) {
	head := q.head.LoadRelaxed()
	if head >= q.cachedTail {
		q.cachedTail = q.tail.LoadAcquire()
		if head >= q.cachedTail {
			var zero T
			return zero, ErrWouldBlock
		}
	}
	elem := q.buffer[head&q.mask]
	var zero T
	q.buffer[head&q.mask] = zero
	q.head.StoreRelease(head + 1)
	return elem, nil
}

// Cap returns the queue's physical capacity.
func (q *RingSPSC[T]) Cap() int {
	return int(q.mask + 1)
}
