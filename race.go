// Copyright (c) 2026 The concur Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package concur

// RaceEnabled is true when the race detector is active.
// Concurrent stress tests for the lock-free variants still run under
// -race, with their iteration counts scaled down to offset the
// detector's per-access overhead.
const RaceEnabled = true
