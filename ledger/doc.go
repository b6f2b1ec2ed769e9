// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the expiring-balance ledger
//
// Value is fungible but every unit carries the time-step it was
// recorded at; a unit expires once its age reaches the sliding
// window length.  Balances are held in buckets keyed by
// (account, era, slot): an aggregate, a per-step balance map and an
// ordered index of the steps with non-zero balance.
//
// Burns and transfers consume the oldest live step first.  A
// transfer mirrors every consumed unit into the recipient at the
// original step key, so moving value never resets its age.
//
// Per-call work is proportional to the number of distinct live mint
// steps touched, never to total historical mint count.  An account
// accumulating many small mints into distinct steps degrades its own
// operations linearly; this is a documented resource-growth hazard
// of the design.
//
// A Ledger is an explicit instance: calculator and clock are
// injected and several independent ledgers can coexist.  All
// operations are serialised by an internal mutex.
package ledger
