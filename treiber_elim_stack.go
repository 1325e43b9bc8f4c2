// Copyright (c) 2026 The concur Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

import (
	"sync"

	"github.com/jithendrahs/concur/internal/epoch"
)

// TreiberElimStack is a TreiberStack with an elimination fast path: a
// push or pop that loses its CAS race on top falls back to the shared
// elimination array before retrying the main stack, letting a
// concurrent push/pop pair cancel out without either ever touching
// top.
type TreiberElimStack struct {
	_      pad
	top    ptrSlot[stackNode]
	_      pad
	elim   *elimArray
	gc     *epoch.Reclaimer
	freeMu sync.Mutex
	free   *stackNode
}

// NewTreiberElimStack creates an empty stack. cells optionally sets
// the elimination array size; omitted, it defaults to 8.
func NewTreiberElimStack(cells ...int) *TreiberElimStack {
	return &TreiberElimStack{
		elim: newElimArray(elimSize(cells)),
		gc:   epoch.New(),
	}
}

// Push adds v to the top of the stack.
func (s *TreiberElimStack) Push(v int64) {
	n := s.allocNode(v)
	for {
		t := s.top.loadAcquire()
		n.next = t
		if s.top.casAcqRel(t, n) {
			return
		}
		if s.elim.tryPush(v) {
			s.releaseNode(n)
			return
		}
	}
}

// Pop removes and returns the top of the stack. It reports false only
// once both the stack and the elimination array have nothing to offer.
func (s *TreiberElimStack) Pop() (int64, bool) {
	g := s.gc.Enter()
	defer g.Exit()

	for {
		t := s.top.loadAcquire()
		if t == nil {
			if v, ok := s.elim.tryPop(); ok {
				return v, true
			}
			return 0, false
		}
		next := t.next
		if s.top.casAcqRel(t, next) {
			v := t.value
			s.retireNode(t)
			return v, true
		}
		if v, ok := s.elim.tryPop(); ok {
			return v, true
		}
	}
}

func (s *TreiberElimStack) allocNode(v int64) *stackNode {
	s.freeMu.Lock()
	n := s.free
	if n != nil {
		s.free = n.next
	}
	s.freeMu.Unlock()

	if n == nil {
		n = &stackNode{}
	}
	n.value = v
	n.next = nil
	return n
}

// releaseNode returns a node straight to the free list: it was never
// linked into the stack, so no concurrent reader can be tracing it and
// no epoch delay is needed.
func (s *TreiberElimStack) releaseNode(n *stackNode) {
	s.freeMu.Lock()
	n.next = s.free
	s.free = n
	s.freeMu.Unlock()
}

func (s *TreiberElimStack) retireNode(n *stackNode) {
	s.gc.Retire(func() {
		s.freeMu.Lock()
		n.next = s.free
		s.free = n
		s.freeMu.Unlock()
	})
}
