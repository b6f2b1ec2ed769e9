// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/expiryd/clock"
	"github.com/bitmark-inc/expiryd/fault"
	"github.com/bitmark-inc/expiryd/ledger"
	"github.com/bitmark-inc/expiryd/storage"
	"github.com/bitmark-inc/expiryd/window"
)

func newPersistentLedger(t *testing.T, stepper *clock.Stepper) *ledger.Ledger {
	t.Helper()

	calculator, err := window.New(window.Config{
		BlockTimeMilliseconds: 600000,
		FrameSizeInSlots:      4,
		SlotsPerEra:           4,
		GenesisStep:           genesisStep,
	}, nil)
	if nil != err {
		t.Fatalf("calculator error: %s", err)
	}

	l, err := ledger.New(calculator, stepper, true)
	if nil != err {
		t.Fatalf("ledger error: %s", err)
	}
	return l
}

func TestPersistenceRestore(t *testing.T) {
	database := filepath.Join(dir, "ledger-leveldb")

	err := storage.Initialise(database)
	assert.NoError(t, err)
	defer storage.Finalise()

	stepper := clock.NewStepper(genesisStep)
	l := newPersistentLedger(t, stepper)

	perSlot := l.Calculator().BlocksPerSlot()

	assert.NoError(t, l.Mint(alice, 100))
	stepper.Advance(perSlot)
	assert.NoError(t, l.Mint(bob, 50))
	assert.NoError(t, l.Transfer(alice, carol, 30))
	assert.NoError(t, l.Burn(bob, 10))
	assert.NoError(t, l.Approve(alice, bob, 25))

	// a fresh ledger over the same pools must reproduce the state
	restored := newPersistentLedger(t, stepper)
	assert.NoError(t, restored.Restore())

	assert.Equal(t, uint64(70), restored.BalanceOf(alice))
	assert.Equal(t, uint64(40), restored.BalanceOf(bob))
	assert.Equal(t, uint64(30), restored.BalanceOf(carol))
	assert.Equal(t, uint64(25), restored.Allowance(alice, bob))

	// per-step global totals survive the restore
	assert.Equal(t, uint64(100), restored.BalanceOfStep(genesisStep))
	assert.Equal(t, uint64(40), restored.BalanceOfStep(genesisStep+perSlot))

	accountTotal, globalLive, ok := restored.Audit()
	assert.True(t, ok)
	assert.Equal(t, uint64(140), accountTotal)
	assert.Equal(t, globalLive, accountTotal)

	// expiry indexes regenerated: oldest-first consumption still holds
	assert.NoError(t, restored.Burn(alice, 70))
	assert.Equal(t, uint64(0), restored.BalanceOf(alice))
}

func TestPersistenceDeletesEmptyRecords(t *testing.T) {
	database := filepath.Join(dir, "ledger-leveldb-empty")

	err := storage.Initialise(database)
	assert.NoError(t, err)
	defer storage.Finalise()

	stepper := clock.NewStepper(genesisStep)
	l := newPersistentLedger(t, stepper)

	assert.NoError(t, l.Mint(alice, 10))
	assert.NoError(t, l.Burn(alice, 10))
	assert.NoError(t, l.Approve(alice, bob, 5))
	assert.NoError(t, l.Approve(alice, bob, 0))

	// everything was zeroed so a restore yields an empty ledger
	restored := newPersistentLedger(t, stepper)
	assert.NoError(t, restored.Restore())

	assert.Equal(t, uint64(0), restored.BalanceOf(alice))
	assert.Equal(t, uint64(0), restored.Allowance(alice, bob))
	assert.Equal(t, uint64(0), restored.BalanceOfStep(genesisStep))
}

func TestPersistenceRequiresStorage(t *testing.T) {
	stepper := clock.NewStepper(genesisStep)

	calculator, err := window.New(window.Config{
		BlockTimeMilliseconds: 600000,
		FrameSizeInSlots:      4,
		SlotsPerEra:           4,
		GenesisStep:           genesisStep,
	}, nil)
	assert.NoError(t, err)

	_, err = ledger.New(calculator, stepper, true)
	assert.Equal(t, fault.ErrNotInitialised, err)
}

func TestRestoreWithoutPersistence(t *testing.T) {
	l, _ := newTestLedger(t)
	assert.Equal(t, fault.ErrNotInitialised, l.Restore())
}
