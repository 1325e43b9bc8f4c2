// Copyright (c) 2026 The concur Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

// pad is cache line padding to prevent false sharing between hot fields
// owned by different goroutines (e.g. a lock and the chain it guards,
// or a stack's top and an elimination array it shares with another
// core).
type pad [64]byte

// padShort pads a slot out to a full cache line after an 8-byte field.
type padShort [64 - 8]byte
