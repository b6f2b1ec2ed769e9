// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/expiryd/account"
	"github.com/bitmark-inc/expiryd/fault"
)

// allowance bookkeeping is a plain decrement-on-spend table and is
// independent of the expiry logic

// Approve - set the spend allowance of a spender on an owner account
func (l *Ledger) Approve(owner account.Account, spender account.Account, amount uint64) error {
	if owner.IsZero() {
		l.rejects.Increment()
		return fault.ErrInvalidSender
	}
	if spender.IsZero() {
		l.rejects.Increment()
		return fault.ErrInvalidReceiver
	}

	l.Lock()
	defer l.Unlock()

	key := allowanceKey{owner: owner, spender: spender}
	if 0 == amount {
		delete(l.allowances, key)
	} else {
		l.allowances[key] = amount
	}
	l.persistAllowance(owner, spender, amount)

	l.approvals.Increment()
	return nil
}

// Allowance - the remaining spend allowance of a spender
func (l *Ledger) Allowance(owner account.Account, spender account.Account) uint64 {
	l.RLock()
	defer l.RUnlock()
	return l.allowances[allowanceKey{owner: owner, spender: spender}]
}

// TransferFrom - allowance-gated transfer
//
// the allowance is checked before and decremented after the balance
// transfer, so a failed transfer leaves the allowance untouched
func (l *Ledger) TransferFrom(spender account.Account, from account.Account, to account.Account, amount uint64) error {
	if from.IsZero() || spender.IsZero() {
		l.rejects.Increment()
		return fault.ErrInvalidSender
	}
	if to.IsZero() {
		l.rejects.Increment()
		return fault.ErrInvalidReceiver
	}

	l.Lock()
	defer l.Unlock()

	key := allowanceKey{owner: from, spender: spender}
	available := l.allowances[key]
	if available < amount {
		l.rejects.Increment()
		return fault.InsufficientAllowanceError{
			Available: available,
			Requested: amount,
		}
	}

	err := l.update(from, to, amount)
	if nil != err {
		return err
	}

	remaining := available - amount
	if 0 == remaining {
		delete(l.allowances, key)
	} else {
		l.allowances[key] = remaining
	}
	l.persistAllowance(from, spender, remaining)

	l.transfers.Increment()
	l.log.Debugf("transfer from: %d from %s to %s by %s", amount, from, to, spender)
	return nil
}
