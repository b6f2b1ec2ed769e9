// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/expiryd/account"
	"github.com/bitmark-inc/expiryd/fault"
	"github.com/bitmark-inc/expiryd/storage"
)

// write-through helpers: records are stored on any change and
// removed once the amount reaches zero so that a restore never sees
// dead entries
//
// callers must hold the lock

func (l *Ledger) persistSlotBalance(acct account.Account, era uint64, slot uint64, amount uint64) {
	if !l.persist {
		return
	}
	key := slotKey(acct, era, slot)
	if 0 == amount {
		storage.Pool.SlotBalance.Delete(key)
	} else {
		storage.Pool.SlotBalance.PutN(key, amount)
	}
}

func (l *Ledger) persistStepBalance(acct account.Account, era uint64, slot uint64, step uint64, amount uint64) {
	if !l.persist {
		return
	}
	key := stepKey(acct, era, slot, step)
	if 0 == amount {
		storage.Pool.StepBalance.Delete(key)
	} else {
		storage.Pool.StepBalance.PutN(key, amount)
	}
}

func (l *Ledger) persistAllowance(owner account.Account, spender account.Account, amount uint64) {
	if !l.persist {
		return
	}
	key := allowanceKeyBytes(owner, spender)
	if 0 == amount {
		storage.Pool.Allowance.Delete(key)
	} else {
		storage.Pool.Allowance.PutN(key, amount)
	}
}

func (l *Ledger) persistStepTotal(step uint64, amount uint64) {
	if !l.persist {
		return
	}
	key := stepTotalKey(step)
	if 0 == amount {
		storage.Pool.StepTotal.Delete(key)
	} else {
		storage.Pool.StepTotal.PutN(key, amount)
	}
}

// Restore - rebuild the in-memory state from the storage pools
//
// aggregates are recomputed from the per-step records; the expiry
// indexes regenerate from the ascending key order of the step pool
func (l *Ledger) Restore() error {
	if !l.persist {
		return fault.ErrNotInitialised
	}

	l.Lock()
	defer l.Unlock()

	l.accounts = make(map[account.Account]*accountState)
	l.allowances = make(map[allowanceKey]uint64)
	l.stepTotals = make(map[uint64]uint64)

	restored := 0
	err := storage.Pool.StepBalance.NewFetchCursor().Map(func(key []byte, value []byte) error {
		acct, era, slot, step, ok := unpackStepKey(key)
		if !ok || len(value) < 8 {
			l.log.Criticalf("restore: corrupt step record: %x", key)
			return fault.ErrKeyNotFound
		}
		amount := binary.BigEndian.Uint64(value[:8])
		if 0 == amount {
			return nil
		}

		b := l.bucketFor(acct, era, slot, true)
		b.balances[step] = amount
		b.slotBalance += amount
		b.index.Insert(step)
		restored += 1
		return nil
	})
	if nil != err {
		return err
	}

	err = storage.Pool.Allowance.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if 2*account.Size != len(key) || len(value) < 8 {
			l.log.Criticalf("restore: corrupt allowance record: %x", key)
			return fault.ErrKeyNotFound
		}
		var owner, spender account.Account
		copy(owner[:], key[:account.Size])
		copy(spender[:], key[account.Size:])
		l.allowances[allowanceKey{owner: owner, spender: spender}] = binary.BigEndian.Uint64(value[:8])
		return nil
	})
	if nil != err {
		return err
	}

	err = storage.Pool.StepTotal.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if uint64ByteSize != len(key) || len(value) < 8 {
			l.log.Criticalf("restore: corrupt step total record: %x", key)
			return fault.ErrKeyNotFound
		}
		l.stepTotals[binary.BigEndian.Uint64(key)] = binary.BigEndian.Uint64(value[:8])
		return nil
	})
	if nil != err {
		return err
	}

	l.log.Infof("restore: %d step records loaded", restored)
	return nil
}
