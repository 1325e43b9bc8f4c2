// Copyright (c) 2026 The concur Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package epoch provides a small epoch-based reclaimer for the lock-free
// containers in the parent concur package.
//
// The textbook Treiber stack and Michael–Scott queue free a node the
// instant they unlink it. That races any other thread that read the old
// head/next pointer before the unlinking CAS and is about to dereference
// it — the classic use-after-free/ABA hazard the root spec calls out as
// an open question rather than a contract. This package resolves it:
// retired nodes are kept alive until every goroutine that announced an
// epoch at or before the retire epoch has left its read-side section.
package epoch

import (
	"sync"

	"code.hybscloud.com/atomix"
)

// maxGuards bounds the number of goroutines that may hold a Guard on one
// Reclaimer at the same time. This is generous for a worker-pool style
// caller (see internal/bench); a fixed array avoids the synchronization
// a growable registry would need on its hot Enter/Exit path.
const maxGuards = 4096

// inactive marks a registry slot as not currently pinning any epoch.
const inactive = ^uint64(0)

// claimed marks a slot as reserved by acquireSlot but not yet pinned to a
// real epoch by Enter. It is never treated as an active pin by
// oldestActiveEpoch, so a goroutine mid-claim never blocks reclamation.
const claimed = inactive - 1

// Reclaimer batches retired nodes behind an epoch counter and frees them
// once no active Guard can still observe them.
type Reclaimer struct {
	current atomix.Uint64 // global epoch counter
	slots   [maxGuards]atomix.Uint64

	retireMu sync.Mutex // guards the retired list; off the container's hot path
	retired  []retiredNode
}

type retiredNode struct {
	epoch uint64
	free  func()
}

// New creates an empty reclaimer with every slot marked inactive.
func New() *Reclaimer {
	r := &Reclaimer{}
	for i := range r.slots {
		r.slots[i].StoreRelaxed(inactive)
	}
	return r
}

// Guard represents one goroutine's pin on the current epoch for the
// duration of a lock-free traversal. Callers must call Exit when the
// traversal (the CAS loop that might still dereference a node) is done.
type Guard struct {
	r    *Reclaimer
	slot int
}

// Enter pins the calling goroutine to the current global epoch and
// returns a Guard. Any node retired at or after this epoch is guaranteed
// to survive until Exit is called.
//
// If maxGuards goroutines already hold a Guard on r, Enter spins until
// one is released rather than growing the registry, to keep the
// steady-state path lock-free.
func (r *Reclaimer) Enter() *Guard {
	slot := r.acquireSlot()
	r.slots[slot].StoreRelease(r.current.LoadAcquire())
	return &Guard{r: r, slot: slot}
}

// Exit releases the Guard's pin, making its slot available for reuse and
// unblocking reclamation of nodes retired at or after its epoch.
func (g *Guard) Exit() {
	g.r.slots[g.slot].StoreRelease(inactive)
}

// acquireSlot finds a free registry slot for the calling goroutine via a
// single CAS; steady-state Enter/Exit never take a lock.
func (r *Reclaimer) acquireSlot() int {
	for {
		for i := range r.slots {
			if r.slots[i].LoadAcquire() == inactive && r.slots[i].CompareAndSwapAcqRel(inactive, claimed) {
				return i
			}
		}
	}
}

// Retire schedules free to run once every Guard active at call time has
// exited. free must not touch any memory also reachable through the
// container's public API — it runs after the node is fully unlinked.
func (r *Reclaimer) Retire(free func()) {
	epoch := r.current.AddAcqRel(1)
	r.retireMu.Lock()
	r.retired = append(r.retired, retiredNode{epoch: epoch, free: free})
	r.reclaimLocked()
	r.retireMu.Unlock()
}

// reclaimLocked frees every retired node whose epoch is strictly less
// than the oldest epoch any active Guard has pinned. Callers must hold
// retireMu.
func (r *Reclaimer) reclaimLocked() {
	floor := r.oldestActiveEpoch()
	kept := r.retired[:0]
	for _, n := range r.retired {
		if n.epoch < floor {
			n.free()
			continue
		}
		kept = append(kept, n)
	}
	r.retired = kept
}

// oldestActiveEpoch returns the smallest epoch any Guard currently has
// pinned, or current+1 (nothing pins anything older) if none are active.
func (r *Reclaimer) oldestActiveEpoch() uint64 {
	floor := r.current.LoadAcquire() + 1
	for i := range r.slots {
		e := r.slots[i].LoadAcquire()
		if e != inactive && e != claimed && e < floor {
			floor = e
		}
	}
	return floor
}

// Pending reports how many retired nodes are still awaiting reclamation.
// Exposed for tests; not part of the container's public surface.
func (r *Reclaimer) Pending() int {
	r.retireMu.Lock()
	defer r.retireMu.Unlock()
	return len(r.retired)
}
