// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/expiryd/account"
	"github.com/bitmark-inc/expiryd/fault"
	"github.com/bitmark-inc/expiryd/steplist"
)

// Burn - consume value from an account, oldest step first
func (l *Ledger) Burn(from account.Account, amount uint64) error {
	if from.IsZero() {
		l.rejects.Increment()
		return fault.ErrInvalidSender
	}

	l.Lock()
	defer l.Unlock()

	err := l.update(from, account.Null, amount)
	if nil != err {
		return err
	}

	l.burns.Increment()
	l.log.Debugf("burn: %d from %s", amount, from)
	return nil
}

// Transfer - move value between accounts, oldest step first
//
// every consumed unit reappears on the recipient at its original
// step key, so the transfer does not reset its expiry
func (l *Ledger) Transfer(from account.Account, to account.Account, amount uint64) error {
	if from.IsZero() {
		l.rejects.Increment()
		return fault.ErrInvalidSender
	}
	if to.IsZero() {
		l.rejects.Increment()
		return fault.ErrInvalidReceiver
	}

	l.Lock()
	defer l.Unlock()

	err := l.update(from, to, amount)
	if nil != err {
		return err
	}

	l.transfers.Increment()
	l.log.Debugf("transfer: %d from %s to %s", amount, from, to)
	return nil
}

// internal: verify then consume; a null recipient discards the value
//
// verification is complete before the first mutation, so a failed
// operation leaves no partial consumption behind
// caller must hold the lock
func (l *Ledger) update(from account.Account, to account.Account, amount uint64) error {
	now := l.clk.CurrentStep()

	available := l.lookback(from, l.calculator.Frame(now), now)
	if available < amount {
		l.rejects.Increment()
		return fault.InsufficientBalanceError{
			Available: available,
			Requested: amount,
		}
	}
	if 0 == amount {
		return nil
	}

	state := l.accounts[from] // non-nil: the balance covered the amount

	// the safe frame widens the lower bound by one slot; the head
	// location below skips anything expired in the extra slot, so
	// widening can only avoid missing a partially elapsed lower slot
	r := l.calculator.SafeFrame(now)

	remaining := amount
	era := r.FromEra
	slot := r.FromSlot

	for remaining > 0 {
		if b, ok := state.buckets[bucketKey{era: era, slot: slot}]; ok {
			key := l.unexpiredHead(b, now)
			for steplist.Sentinel != key && remaining > 0 {
				next := b.index.Next(key)

				take := b.balances[key]
				if take > remaining {
					take = remaining
				}
				l.consume(from, b, era, slot, key, take)
				if !to.IsZero() {
					l.deposit(to, key, take)
				}
				remaining -= take

				key = next
			}
		}

		if era == r.ToEra && slot == r.ToSlot {
			break
		}
		era, slot = l.nextBucket(era, slot)
	}

	if 0 != remaining {
		// unreachable while the bucket invariants hold
		logger.Panicf("ledger: consumption shortfall: %d of %d left after verified balance %d", remaining, amount, available)
	}
	return nil
}

// internal: debit one step entry of one bucket
// caller must hold the lock
func (l *Ledger) consume(from account.Account, b *bucket, era uint64, slot uint64, step uint64, take uint64) {
	balance := b.balances[step] - take
	if 0 == balance {
		delete(b.balances, step)
		b.index.Remove(step)
	} else {
		b.balances[step] = balance
	}
	b.slotBalance -= take

	total := l.stepTotals[step] - take
	if 0 == total {
		delete(l.stepTotals, step)
	} else {
		l.stepTotals[step] = total
	}

	l.persistStepBalance(from, era, slot, step, balance)
	l.persistSlotBalance(from, era, slot, b.slotBalance)
	l.persistStepTotal(step, total)
}
