// Copyright (c) 2026 The concur Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

import (
	"sync"

	"code.hybscloud.com/spin"

	"github.com/jithendrahs/concur/internal/epoch"
)

// TreiberStack is a lock-free LIFO container: push and pop race a
// single CAS on the top pointer, with no lock on the fast path.
//
// Go's collector makes the classic use-after-free hazard (a thread
// reads the old top, gets descheduled, then dereferences memory the
// popper already freed) unreachable by construction — nothing is ever
// freed out from under a live pointer. The hazard resurfaces the
// moment a popped node's memory is handed back into circulation for a
// later push, since a goroutine still mid-retry on the old top may
// still read that node's fields. TreiberStack recycles nodes through
// an epoch-gated free list for exactly that reason: a retired node
// only becomes available to allocNode once every Guard active at the
// moment it was retired has exited.
type TreiberStack struct {
	_      pad
	top    ptrSlot[stackNode]
	_      pad
	gc     *epoch.Reclaimer
	freeMu sync.Mutex
	free   *stackNode
}

// NewTreiberStack creates an empty lock-free stack.
func NewTreiberStack() *TreiberStack {
	return &TreiberStack{gc: epoch.New()}
}

// Push adds v to the top of the stack.
func (s *TreiberStack) Push(v int64) {
	n := s.allocNode(v)
	sw := spin.Wait{}
	for {
		t := s.top.loadAcquire()
		n.next = t
		if s.top.casAcqRel(t, n) {
			return
		}
		sw.Once()
	}
}

// Pop removes and returns the top of the stack. It reports false if
// the stack was empty.
func (s *TreiberStack) Pop() (int64, bool) {
	g := s.gc.Enter()
	defer g.Exit()

	sw := spin.Wait{}
	for {
		t := s.top.loadAcquire()
		if t == nil {
			return 0, false
		}
		next := t.next
		if s.top.casAcqRel(t, next) {
			v := t.value
			s.retireNode(t)
			return v, true
		}
		sw.Once()
	}
}

func (s *TreiberStack) allocNode(v int64) *stackNode {
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

func (s *TreiberStack) retireNode(n *stackNode) {
	s.gc.Retire(func() {
		s.freeMu.Lock()
		n.next = s.free
		s.free = n
		s.freeMu.Unlock()
	})
}
