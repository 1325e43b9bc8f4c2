// Copyright (c) 2026 The concur Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur_test

import (
	"sync"
	"testing"

	"github.com/jithendrahs/concur"
)

func TestLockQueueFIFO(t *testing.T) {
	q := concur.NewLockQueue()
	if _, ok := q.Dequeue(); ok {
		t.Fatalf("Dequeue on empty queue reported ok")
	}
	for _, v := range []int64{1, 2, 3} {
		q.Enqueue(v)
	}
	for _, want := range []int64{1, 2, 3} {
		got, ok := q.Dequeue()
		if !ok || got != want {
			t.Fatalf("Dequeue: got (%d, %v), want (%d, true)", got, ok, want)
		}
	}
	if _, ok := q.Dequeue(); ok {
		t.Fatalf("Dequeue after drain reported ok")
	}
}

func TestLockQueueReuseAfterDrain(t *testing.T) {
	q := concur.NewLockQueue()
	q.Enqueue(1)
	q.Dequeue()
	q.Enqueue(2)
	q.Enqueue(3)
	if v, ok := q.Dequeue(); !ok || v != 2 {
		t.Fatalf("Dequeue: got (%d, %v), want (2, true)", v, ok)
	}
}

func TestLockQueueConcurrentBalance(t *testing.T) {
	q := concur.NewLockQueue()
	const goroutines = 16
	const perGoroutine = 2000
	const total = goroutines * perGoroutine

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				q.Enqueue(1)
			}
		}()
	}
	wg.Wait()

	popped := 0
	for {
		if _, ok := q.Dequeue(); !ok {
			break
		}
		popped++
	}
	if popped != total {
		t.Fatalf("dequeued %d items, want %d", popped, total)
	}
}
