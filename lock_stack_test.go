// Copyright (c) 2026 The concur Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur_test

import (
	"sync"
	"testing"

	"github.com/jithendrahs/concur"
)

func TestLockStackLIFO(t *testing.T) {
	s := concur.NewLockStack()
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

func TestLockStackConcurrentBalance(t *testing.T) {
	s := concur.NewLockStack()
	const goroutines = 16
	const perGoroutine = 2000
	const total = goroutines * perGoroutine

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				s.Push(1)
			}
		}()
	}
	wg.Wait()

	popped := 0
	for {
		if _, ok := s.Pop(); !ok {
			break
		}
		popped++
	}
	if popped != total {
		t.Fatalf("popped %d items, want %d", popped, total)
	}
}
