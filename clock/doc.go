// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package clock - the external time-step source
//
// The ledger never reads wall time itself: it is driven by a Clock
// that reports the current time-step number.  Steps are monotonic
// non-negative integers; the genesis instant is step zero.
//
// Realtime derives steps from wall time and an estimated step
// duration.  Stepper is manually advanced and is intended for tests
// and replay tools.
package clock
