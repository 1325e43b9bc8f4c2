// Copyright (c) 2026 The concur Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

// LockElimStack is a coarse-locked stack with an elimination fast path
// that, unlike TreiberElimStack, initiates in both directions: a
// pusher that fails to take the lock tries to publish into the
// elimination array exactly as TreiberElimStack does, but a popper
// that fails to take the lock doesn't just look for an existing
// publish to claim — it also offers to receive (elimArray.offerPop)
// and waits briefly for a pusher to fulfill that offer directly.
type LockElimStack struct {
	_    pad
	lock boolLock
	_    pad
	elim *elimArray
	top  *stackNode
}

// NewLockElimStack creates an empty stack. cells optionally sets the
// elimination array size; omitted, it defaults to 8.
func NewLockElimStack(cells ...int) *LockElimStack {
	return &LockElimStack{elim: newElimArray(elimSize(cells))}
}

// Push adds v to the top of the stack.
func (s *LockElimStack) Push(v int64) {
	for {
		if s.lock.tryAcquire() {
			n := &stackNode{value: v, next: s.top}
			s.top = n
			s.lock.release()
			return
		}
		if s.elim.tryPush(v) {
			return
		}
	}
}

// Pop removes and returns the top of the stack. It reports false if
// it takes the lock and finds the stack empty; the elimination array
// is only consulted while the lock is held by another goroutine.
func (s *LockElimStack) Pop() (int64, bool) {
	for {
		if s.lock.tryAcquire() {
			n := s.top
			if n == nil {
				s.lock.release()
				return 0, false
			}
			s.top = n.next
			v := n.value
			s.lock.release()
			return v, true
		}
		if v, ok := s.elim.tryPop(); ok {
			return v, true
		}
		if v, ok := s.elim.offerPop(); ok {
			return v, true
		}
	}
}
