// Copyright (c) 2026 The concur Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

// Stack is the common contract for every LIFO container variant in this
// package. Push never fails; Pop reports false on an empty stack.
type Stack interface {
	Push(v int64)
	Pop() (int64, bool)
}

// Queue is the common contract for every FIFO container variant in this
// package. Enqueue never fails; Dequeue reports false on an empty queue.
type Queue interface {
	Enqueue(v int64)
	Dequeue() (int64, bool)
}
