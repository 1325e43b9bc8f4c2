// Copyright (c) 2026 The concur Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

import (
	"math/rand/v2"
	"time"

	"code.hybscloud.com/atomix"
)

// spinDelay gives a matching peer a brief window to observe a published
// elimination cell before the publisher gives up on it.
func spinDelay() {
	time.Sleep(10 * time.Nanosecond)
}

// elimStatus is the state of one elimination cell.
type elimStatus int32

const (
	elimEmpty elimStatus = iota
	elimPush
	elimPop
	// elimWait, elimClaimed and elimFilled back the popper-initiated
	// offer-and-wait path (elimArray.offerPop / LockElimStack.Pop): a
	// popper publishes elimWait on an empty cell, a pusher exclusively
	// claims it (elimClaimed) before writing so two pushers can never
	// write the same cell concurrently, then publishes elimFilled once
	// the value is in place. A plain tryPush also holds an empty cell in
	// elimClaimed while it writes element, and only then publishes
	// elimPush, so no claimant can read element before it is written.
	// These are deliberately distinct from
	// elimPush/elimPop rather than reusing them for the opposite
	// direction of initiation: elimPop already means "a pusher's own
	// publish was claimed, pending that pusher's cleanup" to
	// tryPush/tryPop/resolvePending, and a pusher that stumbled onto
	// such a cell and tried to refill it would corrupt a handoff that
	// was never addressed to it.
	elimWait
	elimClaimed
	elimFilled
)

const defaultElimSize = 8

// elimCell is one side-channel slot a pusher and popper can rendezvous
// through without ever touching the main stack. status is the only
// field contended on; element is only read once status has settled.
type elimCell struct {
	_       pad
	status  atomix.Int32
	element int64
}

// elimArray is the elimination layer shared by TreiberElimStack,
// LockElimStack and FlatCombiningStack: a fixed table of rendezvous
// cells a thread falls back to when its primary-path CAS (or lock
// acquisition) loses a race.
type elimArray struct {
	cells []elimCell
}

func newElimArray(size int) *elimArray {
	if size <= 0 {
		size = defaultElimSize
	}
	return &elimArray{cells: make([]elimCell, size)}
}

// elimSize resolves the variadic `cells ...int` constructor argument
// every elimination-backed container accepts: omitted means
// defaultElimSize, given means that many cells.
func elimSize(cells []int) int {
	if len(cells) == 0 {
		return defaultElimSize
	}
	return cells[0]
}

func (a *elimArray) randomIndex() int {
	return rand.IntN(len(a.cells))
}

// tryPush attempts to publish v into a random cell and waits briefly
// for a popper to claim it. It reports whether the value was
// consumed by a matching pop.
//
// Before publishing its own cell, it checks whether the randomly chosen
// cell already holds a popper's offer (elimWait, from offerPop): if so
// it tries to fulfill that offer directly instead of publishing a new
// one. elimClaimed is the exclusivity step that makes this safe — only
// the CAS winner ever writes cell.element, so two pushers racing to
// fulfill the same offer can never write it concurrently, and the
// offerer never observes elimFilled (and so never reads element) until
// after that write has happened.
func (a *elimArray) tryPush(v int64) bool {
	i := a.randomIndex()
	cell := &a.cells[i]

	if elimStatus(cell.status.LoadAcquire()) == elimWait {
		if cell.status.CompareAndSwapAcqRel(int32(elimWait), int32(elimClaimed)) {
			cell.element = v
			cell.status.StoreRelease(int32(elimFilled))
			return true
		}
		// Offer was withdrawn or claimed elsewhere between the load and
		// the CAS; fall through and try to publish a plain offer of our
		// own, which only succeeds if the cell is elimEmpty again.
	}

	if !cell.status.CompareAndSwapAcqRel(int32(elimEmpty), int32(elimClaimed)) {
		return false
	}
	cell.element = v
	cell.status.StoreRelease(int32(elimPush))
	spinDelay()
	if cell.status.CompareAndSwapAcqRel(int32(elimPop), int32(elimEmpty)) {
		return true
	}
	if cell.status.CompareAndSwapAcqRel(int32(elimPush), int32(elimEmpty)) {
		return false
	}
	// A popper claimed the cell between the two CASes above.
	cell.status.StoreRelease(int32(elimEmpty))
	return true
}

// tryPop attempts to claim a value a pusher already published. It
// reports the value and whether a match occurred.
//
// The cell is deliberately left in elimPop rather than reset here: the
// matching tryPush is the one polling for that transition, and it is
// the sole writer of the terminal reset to elimEmpty in either outcome
// of its own call. Earlier elimination-array code let the popper read
// the element and clear the cell in the same step, which races a
// pusher that is concurrently deciding the rendezvous failed and
// falling back to the stack; splitting ownership this way removes
// that race instead of papering over it.
func (a *elimArray) tryPop() (int64, bool) {
	i := a.randomIndex()
	cell := &a.cells[i]
	if !cell.status.CompareAndSwapAcqRel(int32(elimPush), int32(elimPop)) {
		return 0, false
	}
	return cell.element, true
}

// offerPop is the popper-initiated direction of the exchange, exercised
// only by LockElimStack.Pop: it publishes an offer to receive into a
// random empty cell and waits briefly for a pusher to fulfill it (see
// tryPush's elimWait branch), rather than only ever claiming a push
// that was already waiting. It reports the delivered value.
//
// Like tryPop reading cell.element only after its own CAS succeeds, the
// element read here happens only after observing elimFilled — which a
// fulfilling tryPush only publishes once it has finished writing
// cell.element under its exclusive elimClaimed hold. Reading any
// earlier would risk observing a stale or half-written value.
func (a *elimArray) offerPop() (int64, bool) {
	i := a.randomIndex()
	cell := &a.cells[i]
	if !cell.status.CompareAndSwapAcqRel(int32(elimEmpty), int32(elimWait)) {
		return 0, false
	}
	spinDelay()
	if cell.status.CompareAndSwapAcqRel(int32(elimWait), int32(elimEmpty)) {
		return 0, false
	}
	// A pusher claimed the offer before it could be withdrawn; wait for
	// its write to land.
	for cell.status.LoadAcquire() != int32(elimFilled) {
		spinDelay()
	}
	v := cell.element
	cell.status.StoreRelease(int32(elimEmpty))
	return v, true
}

// resolvePending is the combiner-only scan used by FlatCombiningStack:
// while holding the stack's lock, claim every cell currently offering a
// push and hand its value back for the caller to link onto the stack in
// one batch, instead of requiring a separate combiner pass per waiter.
//
// The combiner claims a cell exactly the way tryPop does — CAS
// elimPush to elimPop, never straight to elimEmpty, and reads
// cell.element only once that CAS has succeeded — so the matching
// tryPush's own follow-up poll (which waits for elimPop, not elimEmpty)
// still observes a match and reports success instead of falling through
// and re-pushing the same value, and the combiner never reads a value
// whose ownership it has not yet actually won. A Load observing
// elimPush is not itself a handoff; only the CAS is, so the element
// read must come after it, not before.
//
// A cell already in elimPop is not this combiner's concern: that status
// only ever results from a claim (this combiner's own, or a concurrent
// tryPop's) against an elimPush cell, meaning the claimant already read
// cell.element and is done with it before this scan runs. FlatCombiningStack
// never uses the offer-and-wait path (elimWait/elimClaimed/elimFilled
// only ever appear in LockElimStack's array), so resolvePending need not
// consider them.
func (a *elimArray) resolvePending() []int64 {
	var pushed []int64
	for i := range a.cells {
		cell := &a.cells[i]
		if elimStatus(cell.status.LoadAcquire()) != elimPush {
			continue
		}
		if cell.status.CompareAndSwapAcqRel(int32(elimPush), int32(elimPop)) {
			pushed = append(pushed, cell.element)
		}
	}
	return pushed
}
