// Copyright (c) 2026 The concur Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

// LockQueue is a FIFO container guarded by a single spin lock. Head
// and tail are both protected by the same lock, matching the
// superseded-doubly-linked-queue note: this is the singly-linked
// replacement, not the legacy two-pointer design.
type LockQueue struct {
	_    pad
	lock boolLock
	_    pad
	head *queueNode
	tail *queueNode
}

// NewLockQueue creates an empty coarse-locked queue.
func NewLockQueue() *LockQueue {
	return &LockQueue{}
}

// Enqueue adds v to the back of the queue.
func (q *LockQueue) Enqueue(v int64) {
	n := &queueNode{value: v}
	q.lock.acquire()
	if q.tail == nil {
		q.head = n
		q.tail = n
	} else {
		q.tail.next = n
		q.tail = n
	}
	q.lock.release()
}

// Dequeue removes and returns the front of the queue. It reports
// false if the queue was empty.
func (q *LockQueue) Dequeue() (int64, bool) {
	q.lock.acquire()
	n := q.head
	if n == nil {
		q.lock.release()
		return 0, false
	}
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	v := n.value
	q.lock.release()
	return v, true
}
