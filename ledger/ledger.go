// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/expiryd/account"
	"github.com/bitmark-inc/expiryd/clock"
	"github.com/bitmark-inc/expiryd/counter"
	"github.com/bitmark-inc/expiryd/fault"
	"github.com/bitmark-inc/expiryd/steplist"
	"github.com/bitmark-inc/expiryd/storage"
	"github.com/bitmark-inc/expiryd/window"
)

// coordinates of one bucket within an account
type bucketKey struct {
	era  uint64
	slot uint64
}

// bucket - aggregate and per-step balances for one (era, slot)
//
// invariant: slotBalance is the sum of all balances and the index
// holds exactly the steps with a non-zero balance, ascending
type bucket struct {
	slotBalance uint64
	balances    map[uint64]uint64
	index       *steplist.List
}

// the per-account bucket collection
//
// buckets are created on first mint and never deleted; an emptied
// bucket costs only its empty index
type accountState struct {
	buckets map[bucketKey]*bucket
}

type allowanceKey struct {
	owner   account.Account
	spender account.Account
}

// Statistics - operation counts since construction
type Statistics struct {
	Mints     uint64 `json:"mints"`
	Burns     uint64 `json:"burns"`
	Transfers uint64 `json:"transfers"`
	Approvals uint64 `json:"approvals"`
	Rejects   uint64 `json:"rejects"`
}

// Ledger - an expiring-balance ledger instance
type Ledger struct {
	sync.RWMutex

	calculator *window.Calculator
	clk        clock.Clock
	persist    bool

	accounts   map[account.Account]*accountState
	allowances map[allowanceKey]uint64
	stepTotals map[uint64]uint64

	log *logger.L

	mints     counter.Counter
	burns     counter.Counter
	transfers counter.Counter
	approvals counter.Counter
	rejects   counter.Counter
}

// New - create a ledger over an existing calculator and clock
//
// with persist set every mutation is written through to the storage
// pools, which must already be initialised; call Restore to reload a
// previously persisted state
func New(calculator *window.Calculator, clk clock.Clock, persist bool) (*Ledger, error) {
	if persist && !storage.IsInitialised() {
		return nil, fault.ErrNotInitialised
	}

	l := &Ledger{
		calculator: calculator,
		clk:        clk,
		persist:    persist,
		accounts:   make(map[account.Account]*accountState),
		allowances: make(map[allowanceKey]uint64),
		stepTotals: make(map[uint64]uint64),
		log:        logger.New("ledger"),
	}
	return l, nil
}

// Calculator - the sliding window calculator in use
func (l *Ledger) Calculator() *window.Calculator {
	return l.calculator
}

// CurrentEraAndSlot - coordinates of the current time-step
func (l *Ledger) CurrentEraAndSlot() (uint64, uint64) {
	return l.calculator.EraAndSlot(l.clk.CurrentStep())
}

// Frame - the validity window ending at the current time-step
func (l *Ledger) Frame() window.Range {
	return l.calculator.Frame(l.clk.CurrentStep())
}

// SafeFrame - the buffered validity window at the current time-step
func (l *Ledger) SafeFrame() window.Range {
	return l.calculator.SafeFrame(l.clk.CurrentStep())
}

// ExpiryDuration - the validity window length in time-steps
func (l *Ledger) ExpiryDuration() uint64 {
	return l.calculator.FrameSizeInBlocks()
}

// Statistics - snapshot of the operation counters
func (l *Ledger) Statistics() Statistics {
	return Statistics{
		Mints:     l.mints.Uint64(),
		Burns:     l.burns.Uint64(),
		Transfers: l.transfers.Uint64(),
		Approvals: l.approvals.Uint64(),
		Rejects:   l.rejects.Uint64(),
	}
}

// internal: fetch a bucket, optionally creating it
// caller must hold the lock
func (l *Ledger) bucketFor(acct account.Account, era uint64, slot uint64, create bool) *bucket {
	state, ok := l.accounts[acct]
	if !ok {
		if !create {
			return nil
		}
		state = &accountState{buckets: make(map[bucketKey]*bucket)}
		l.accounts[acct] = state
	}

	key := bucketKey{era: era, slot: slot}
	b, ok := state.buckets[key]
	if !ok {
		if !create {
			return nil
		}
		b = &bucket{
			balances: make(map[uint64]uint64),
			index:    steplist.New(),
		}
		state.buckets[key] = b
	}
	return b
}

// internal: the bucket following (era, slot)
func (l *Ledger) nextBucket(era uint64, slot uint64) (uint64, uint64) {
	slot += 1
	if slot >= l.calculator.SlotsPerEra() {
		return era + 1, 0
	}
	return era, slot
}

// internal: first surviving key of a bucket index at the given step
//
// keys older than the window length are expired and skipped; returns
// the sentinel if nothing in the bucket is live
func (l *Ledger) unexpiredHead(b *bucket, now uint64) uint64 {
	frameSize := l.calculator.FrameSizeInBlocks()
	key := b.index.Head()
	for steplist.Sentinel != key && now >= key && now-key >= frameSize {
		key = b.index.Next(key)
	}
	return key
}
