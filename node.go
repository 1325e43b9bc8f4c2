// Copyright (c) 2026 The concur Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

import (
	"sync/atomic"
)

// stackNode is the node type shared by every LIFO variant in this
// package (LockStack, TreiberStack, TreiberElimStack, LockElimStack,
// FlatCombiningStack). Per the source material's own re-architecture
// note, it deliberately carries only the field a stack needs — next —
// rather than a node type shared by inheritance with the queue side.
type stackNode struct {
	value int64
	next  *stackNode
}

// queueNode is the node type for LockQueue: a plain singly-linked node
// guarded entirely by the queue's spin lock, so next needs no atomic
// wrapper.
type queueNode struct {
	value int64
	next  *queueNode
}

// msNode is the node type for MSQueue. Unlike queueNode, next must be
// mutated via CAS: multiple producers race to link onto the current
// tail, and a lagging producer "helps" swing the shared tail pointer
// forward over a node it did not itself insert.
type msNode struct {
	value int64
	next  ptrSlot[msNode]
}

// ptrSlot is a typed compare-and-swap wrapper over a single node
// pointer, built on sync/atomic.Pointer so the garbage collector still
// sees every node the slot points to. This is the "typed CAS intrinsic"
// called for in place of a templated helper over atomic<Node*>: Go
// generics give us one implementation parameterized by the node type,
// without a generic atomic<T> doing double duty for pointers and scalars.
// Go's atomics are sequentially consistent, which covers the acquire,
// release and relaxed orderings the method names record.
type ptrSlot[N any] struct {
	v atomic.Pointer[N]
}

func (s *ptrSlot[N]) loadAcquire() *N {
	return s.v.Load()
}

func (s *ptrSlot[N]) loadRelaxed() *N {
	return s.v.Load()
}

func (s *ptrSlot[N]) storeRelease(p *N) {
	s.v.Store(p)
}

func (s *ptrSlot[N]) storeRelaxed(p *N) {
	s.v.Store(p)
}

// casAcqRel attempts to replace the pointer with desired iff it still
// equals expected, at least acquire-release on success (matching the
// memory ordering this spec's §4.1 mandates for every CAS site).
func (s *ptrSlot[N]) casAcqRel(expected, desired *N) bool {
	return s.v.CompareAndSwap(expected, desired)
}
