// Copyright (c) 2026 The concur Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

import (
	"sync"

	"code.hybscloud.com/spin"

	"github.com/jithendrahs/concur/internal/epoch"
)

// MSQueue is the Michael–Scott lock-free FIFO container: head and
// tail are each advanced with their own CAS, and a lagging enqueuer
// helps swing tail forward over a node another goroutine already
// linked. The queue always holds at least one node — a dummy that
// carries no payload — so head and tail are never nil.
//
// Popping a node retires the old dummy through the same epoch-gated
// free list TreiberStack uses: a goroutine that is still helping
// advance tail may be mid-read of the node Dequeue is about to repurpose,
// so it cannot be recycled until that goroutine is known to be done.
type MSQueue struct {
	_      pad
	head   ptrSlot[msNode]
	_      pad
	tail   ptrSlot[msNode]
	_      pad
	gc     *epoch.Reclaimer
	freeMu sync.Mutex
	free   *msNode
}

// NewMSQueue creates an empty Michael–Scott queue, seeded with a
// single dummy node.
func NewMSQueue() *MSQueue {
	q := &MSQueue{gc: epoch.New()}
	dummy := &msNode{}
	q.head.storeRelaxed(dummy)
	q.tail.storeRelaxed(dummy)
	return q
}

// Enqueue adds v to the back of the queue.
func (q *MSQueue) Enqueue(v int64) {
	n := q.allocNode(v)
	g := q.gc.Enter()
	defer g.Exit()

	sw := spin.Wait{}
	for {
		tail := q.tail.loadAcquire()
		next := tail.next.loadAcquire()
		if tail != q.tail.loadAcquire() {
			sw.Once()
			continue
		}
		if next == nil {
			if tail.next.casAcqRel(nil, n) {
				q.tail.casAcqRel(tail, n)
				return
			}
		} else {
			// Another producer linked a node but has not yet swung
			// tail forward; help it along before retrying.
			q.tail.casAcqRel(tail, next)
		}
		sw.Once()
	}
}

// Dequeue removes and returns the front of the queue. It reports
// false if the queue was empty.
func (q *MSQueue) Dequeue() (int64, bool) {
	g := q.gc.Enter()
	defer g.Exit()

	sw := spin.Wait{}
	for {
		head := q.head.loadAcquire()
		tail := q.tail.loadAcquire()
		next := head.next.loadAcquire()
		if head != q.head.loadAcquire() {
			sw.Once()
			continue
		}
		if head == tail {
			if next == nil {
				return 0, false
			}
			// Tail has fallen behind a node producers already linked.
			q.tail.casAcqRel(tail, next)
			sw.Once()
			continue
		}
		v := next.value
		if q.head.casAcqRel(head, next) {
			q.retireNode(head)
			return v, true
		}
		sw.Once()
	}
}

func (q *MSQueue) allocNode(v int64) *msNode {
	q.freeMu.Lock()
	n := q.free
	if n != nil {
		q.free = n.next.loadRelaxed()
	}
	q.freeMu.Unlock()

	if n == nil {
		n = &msNode{}
	}
	n.value = v
	n.next.storeRelaxed(nil)
	return n
}

func (q *MSQueue) retireNode(n *msNode) {
	q.gc.Retire(func() {
		q.freeMu.Lock()
		n.next.storeRelaxed(q.free)
		q.free = n
		q.freeMu.Unlock()
	})
}
