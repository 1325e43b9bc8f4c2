// Copyright (c) 2026 The concur Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

// FlatCombiningStack is a coarse-locked stack where the lock holder
// acts as a combiner: on every critical section it first scans the
// entire elimination array in one pass, claims every push waiting
// there and links those values onto the stack, then performs its own
// operation. A pop that fails to take the lock claims a waiting push
// directly (elimArray.tryPop); pops are never posted to the array, so
// the combiner does not pair pushes with pops or pop on behalf of
// other goroutines.
//
// Pushes collected during a combiner pass are all linked onto the
// stack within that one critical section, so a single lock
// acquisition absorbs a burst of waiting pushers instead of one lock
// acquisition per node.
type FlatCombiningStack struct {
	_    pad
	lock boolLock
	_    pad
	elim *elimArray
	top  *stackNode
}

// NewFlatCombiningStack creates an empty stack. cells optionally sets
// the elimination array size; omitted, it defaults to 8.
func NewFlatCombiningStack(cells ...int) *FlatCombiningStack {
	return &FlatCombiningStack{elim: newElimArray(elimSize(cells))}
}

// Push adds v to the top of the stack.
func (s *FlatCombiningStack) Push(v int64) {
	for {
		if s.lock.tryAcquire() {
			s.combine()
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
// the stack was empty and the elimination array had nothing to offer.
func (s *FlatCombiningStack) Pop() (int64, bool) {
	for {
		if s.lock.tryAcquire() {
			s.combine()
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
	}
}

// combine runs one combiner pass over the elimination array, claiming
// every cell it finds offering a push and splicing all of them onto
// the stack in one pass. Must be called with the lock held.
func (s *FlatCombiningStack) combine() {
	pushed := s.elim.resolvePending()
	for _, v := range pushed {
		s.top = &stackNode{value: v, next: s.top}
	}
}
