// Copyright (c) 2026 The concur Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur_test

import (
	"sync"
	"testing"

	"github.com/jithendrahs/concur"
)

func TestMSQueueFIFO(t *testing.T) {
	q := concur.NewMSQueue()
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

func TestMSQueueNodeRecycling(t *testing.T) {
	q := concur.NewMSQueue()
	for round := 0; round < 100; round++ {
		q.Enqueue(int64(round))
		if v, ok := q.Dequeue(); !ok || v != int64(round) {
			t.Fatalf("round %d: got (%d, %v), want (%d, true)", round, v, ok, round)
		}
	}
}

func TestMSQueueConcurrentBalance(t *testing.T) {
	q := concur.NewMSQueue()
	const goroutines = 32
	perGoroutine := 4000
	if concur.RaceEnabled {
		perGoroutine = 200
	}
	total := goroutines * perGoroutine

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

func TestMSQueueConcurrentEnqueueDequeue(t *testing.T) {
	q := concur.NewMSQueue()
	const goroutines = 16
	perGoroutine := 4000
	if concur.RaceEnabled {
		perGoroutine = 200
	}

	var wg sync.WaitGroup
	wg.Add(goroutines * 2)

	results := make(chan int64, goroutines*perGoroutine)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				q.Enqueue(1)
			}
		}()
	}
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			count := 0
			for count < perGoroutine {
				if v, ok := q.Dequeue(); ok {
					results <- v
					count++
				}
			}
		}()
	}
	wg.Wait()
	close(results)

	sum := int64(0)
	for v := range results {
		sum += v
	}
	if want := int64(goroutines * perGoroutine); sum != want {
		t.Fatalf("sum: got %d, want %d", sum, want)
	}
}
