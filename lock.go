// Copyright (c) 2026 The concur Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// boolLock is a spin lock built on atomix.Bool, shared by every
// coarse-grained container in this package (LockStack, LockQueue, the
// slow path of LockElimStack, and FlatCombiningStack's combiner lock).
// It exists because the source material's stack/queue classes guard
// their node chain with exactly this shape of busy-wait mutex rather
// than an OS lock.
type boolLock struct {
	held atomix.Bool
}

func (l *boolLock) acquire() {
	sw := spin.Wait{}
	for !l.held.CompareAndSwapAcqRel(false, true) {
		sw.Once()
	}
}

func (l *boolLock) release() {
	l.held.StoreRelease(false)
}

func (l *boolLock) tryAcquire() bool {
	return l.held.CompareAndSwapAcqRel(false, true)
}
