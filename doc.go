// Copyright (c) 2026 The concur Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package concur provides a family of concurrent, unbounded LIFO (stack)
// and FIFO (queue) containers holding int64 payloads.
//
// Six variants are provided, trading off synchronization strategy against
// contention behavior:
//
//   - LockStack / LockQueue: a single atomic spin lock guards the whole
//     structure.
//   - TreiberStack: lock-free via CAS on a single head pointer.
//   - MSQueue: the Michael–Scott lock-free FIFO, dummy head node, two-step
//     tail advance.
//   - TreiberElimStack: TreiberStack with an elimination fast path — a
//     push racing a pop can cancel out via a side-channel array instead of
//     touching the shared head.
//   - LockElimStack: LockStack with an elimination fast path that
//     initiates in both directions — a pusher that loses the race for
//     the lock publishes into the array exactly as TreiberElimStack
//     does, but a popper that loses the race also offers to receive and
//     waits briefly for a pusher to fill that offer directly, instead of
//     only ever looking for a publish that's already waiting.
//   - FlatCombiningStack: the lock holder (the "combiner") claims every
//     push waiting in the elimination array on each critical section
//     entry and links those values onto the stack before performing its
//     own operation. Pops are never posted to the array, so the combiner
//     settles only pushes; it does not pair pushes with pops.
//
// # Quick start
//
//	s := concur.NewTreiberStack()
//	s.Push(42)
//	v, ok := s.Pop() // v == 42, ok == true
//
//	q := concur.NewMSQueue()
//	q.Enqueue(1)
//	q.Enqueue(2)
//	v, _ = q.Dequeue() // v == 1
//
// # Thread safety
//
// Every operation on every variant is safe to call from any number of
// goroutines concurrently; there are no producer/consumer cardinality
// constraints (contrast with the bounded, cardinality-constrained queues
// in the sibling [github.com/jithendrahs/concur/ring] package).
//
// # Memory reclamation
//
// The CAS-based variants (TreiberStack, MSQueue, and TreiberElimStack)
// retire unlinked nodes through an epoch-based reclaimer (internal/epoch)
// rather than returning them to their free list synchronously at the
// unlinking CAS. Go's garbage collector rules out literal use-after-free,
// but it does nothing to stop a recycled node from being handed back out
// and overwritten while a concurrent goroutine is still mid-retry with a
// stale pointer to it: the reclaimer is what gates that reuse. LockStack,
// LockQueue, LockElimStack, and FlatCombiningStack need no such gate —
// their critical sections are already serialized by a lock.
//
// # Race detection
//
// ptrSlot threads its CAS through sync/atomic.Pointer, so the race
// detector sees the happens-before edge the CAS establishes between an
// unlinking thread and a reader still holding the old pointer. The
// concurrent stress tests of the CAS-based variants scale their
// iteration counts down under -race (see the RaceEnabled build-tagged
// constant in race.go) purely to keep them fast under the detector's
// per-access overhead, not to skip coverage.
package concur
