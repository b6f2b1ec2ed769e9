// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/expiryd/account"
	"github.com/bitmark-inc/expiryd/fault"
)

// Mint - record new value on an account at the current time-step
//
// the value starts ageing immediately and expires one window length
// after this step
func (l *Ledger) Mint(to account.Account, amount uint64) error {
	if to.IsZero() {
		l.rejects.Increment()
		return fault.ErrInvalidReceiver
	}
	if 0 == amount {
		return nil
	}

	l.Lock()
	defer l.Unlock()

	now := l.clk.CurrentStep()
	l.deposit(to, now, amount)

	l.mints.Increment()
	l.log.Debugf("mint: %d to %s at step %d", amount, to, now)
	return nil
}

// internal: credit an account at a specific step key
//
// used by mint (step = now) and by transfer mirroring (step = the
// original mint step of the consumed value, preserving its age)
// caller must hold the lock
func (l *Ledger) deposit(to account.Account, step uint64, amount uint64) {
	era, slot := l.calculator.EraAndSlot(step)

	b := l.bucketFor(to, era, slot, true)
	b.balances[step] += amount
	b.slotBalance += amount
	b.index.Insert(step)
	l.stepTotals[step] += amount

	l.persistStepBalance(to, era, slot, step, b.balances[step])
	l.persistSlotBalance(to, era, slot, b.slotBalance)
	l.persistStepTotal(step, l.stepTotals[step])
}
