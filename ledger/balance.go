// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/expiryd/account"
	"github.com/bitmark-inc/expiryd/steplist"
	"github.com/bitmark-inc/expiryd/window"
)

// BalanceOf - the live balance of an account at the current time-step
func (l *Ledger) BalanceOf(acct account.Account) uint64 {
	l.RLock()
	defer l.RUnlock()

	now := l.clk.CurrentStep()
	return l.lookback(acct, l.calculator.Frame(now), now)
}

// BalanceOfStep - the global total recorded for one mint step
//
// this tracks what is recorded against the step, live or not; it is
// an audit figure and takes no part in balance computation
func (l *Ledger) BalanceOfStep(step uint64) uint64 {
	l.RLock()
	defer l.RUnlock()
	return l.stepTotals[step]
}

// TokenList - the ascending live step keys of one bucket
func (l *Ledger) TokenList(acct account.Account, era uint64, slot uint64) []uint64 {
	l.RLock()
	defer l.RUnlock()

	b := l.bucketFor(acct, era, slot, false)
	if nil == b {
		return nil
	}

	now := l.clk.CurrentStep()
	keys := make([]uint64, 0, b.index.Count())
	for key := l.unexpiredHead(b, now); steplist.Sentinel != key; key = b.index.Next(key) {
		keys = append(keys, key)
	}
	return keys
}

// internal: sum the live balance of an account over a frame
//
// only the lowest bucket can straddle the expiry boundary, so
// per-step filtering is bounded to that single bucket: every later
// bucket lies entirely within the window (the frame length is
// quantised to whole slots) and contributes its aggregate directly
// caller must hold at least the read lock
func (l *Ledger) lookback(acct account.Account, r window.Range, now uint64) uint64 {
	state, ok := l.accounts[acct]
	if !ok {
		return 0
	}

	total := uint64(0)
	era := r.FromEra
	slot := r.FromSlot
	lowest := true

	for {
		if b, ok := state.buckets[bucketKey{era: era, slot: slot}]; ok {
			if lowest {
				for key := l.unexpiredHead(b, now); steplist.Sentinel != key; key = b.index.Next(key) {
					total += b.balances[key]
				}
			} else {
				total += b.slotBalance
			}
		}
		lowest = false

		if era == r.ToEra && slot == r.ToSlot {
			break
		}
		era, slot = l.nextBucket(era, slot)
	}
	return total
}

// Audit - conservation check
//
// returns the sum of every account balance, the live portion of the
// global per-step totals and whether the two agree; supply shrinks
// only via expiry, never silently
func (l *Ledger) Audit() (uint64, uint64, bool) {
	l.RLock()
	defer l.RUnlock()

	now := l.clk.CurrentStep()
	frame := l.calculator.Frame(now)
	frameSize := l.calculator.FrameSizeInBlocks()

	accountTotal := uint64(0)
	for acct := range l.accounts {
		accountTotal += l.lookback(acct, frame, now)
	}

	globalLive := uint64(0)
	for step, amount := range l.stepTotals {
		if now >= step && now-step >= frameSize {
			continue // expired
		}
		globalLive += amount
	}

	return accountTotal, globalLive, accountTotal == globalLive
}
