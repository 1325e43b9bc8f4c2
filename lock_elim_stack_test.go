// Copyright (c) 2026 The concur Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur_test

import (
	"sync"
	"testing"

	"github.com/jithendrahs/concur"
)

func TestLockElimStackLIFO(t *testing.T) {
	s := concur.NewLockElimStack()
	if _, ok := s.Pop(); ok {
		t.Fatalf("Pop on empty stack reported ok")
	}
	for _, v := range []int64{1, 2, 3} {
		s.Push(v)
	}
	for _, want := range []int64{3, 2, 1} {
		got, ok := s.Pop()
		if !ok || got != want {
			t.Fatalf("Pop: got (%d, %v), want (%d, true)", got, ok, want)
		}
	}
	if _, ok := s.Pop(); ok {
		t.Fatalf("Pop after drain reported ok")
	}
}

func TestLockElimStackConcurrentBalance(t *testing.T) {
	s := concur.NewLockElimStack(16)
	const goroutines = 32
	const perGoroutine = 2000
	const total = goroutines * perGoroutine

	var wg sync.WaitGroup
	wg.Add(goroutines * 2)

	results := make(chan int64, total)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				s.Push(1)
			}
		}()
	}
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			count := 0
			for count < perGoroutine {
				if v, ok := s.Pop(); ok {
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
	if want := int64(total); sum != want {
		t.Fatalf("sum: got %d, want %d", sum, want)
	}
}
