// Copyright (c) 2026 The concur Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ring provides bounded ring-buffer FIFO queues.
//
// Unlike the unbounded, node-based queues in the root concur package, the
// queues here trade an unbounded footprint for a fixed, pre-allocated
// buffer and the associated backpressure signal: Enqueue returns
// ErrWouldBlock instead of growing forever.
//
// Two topologies are provided:
//
//   - RingSPSC: single-producer single-consumer, a Lamport ring buffer with
//     cached index optimization. Wait-free.
//   - RingMPMC: multi-producer multi-consumer, an SCQ-style (Nikolaev,
//     DISC 2019) queue using Fetch-And-Add position counters over 2n
//     physical slots.
//
// Both use acquire/release atomics from code.hybscloud.com/atomix.
// RingMPMC also retries with the same bounded backoff
// (code.hybscloud.com/spin) as the rest of this module's lock-free
// containers; RingSPSC never retries.
package ring
