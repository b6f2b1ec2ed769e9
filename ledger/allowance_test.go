// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/expiryd/account"
	"github.com/bitmark-inc/expiryd/fault"
)

func TestApprove(t *testing.T) {
	l, _ := newTestLedger(t)

	assert.Equal(t, uint64(0), l.Allowance(alice, bob))

	assert.NoError(t, l.Approve(alice, bob, 25))
	assert.Equal(t, uint64(25), l.Allowance(alice, bob))

	// approvals are absolute, not cumulative
	assert.NoError(t, l.Approve(alice, bob, 10))
	assert.Equal(t, uint64(10), l.Allowance(alice, bob))

	// zero revokes
	assert.NoError(t, l.Approve(alice, bob, 0))
	assert.Equal(t, uint64(0), l.Allowance(alice, bob))
}

func TestApproveInvalidAccounts(t *testing.T) {
	l, _ := newTestLedger(t)

	assert.Equal(t, fault.ErrInvalidSender, l.Approve(account.Null, bob, 5))
	assert.Equal(t, fault.ErrInvalidReceiver, l.Approve(alice, account.Null, 5))
}

func TestTransferFrom(t *testing.T) {
	l, _ := newTestLedger(t)

	assert.NoError(t, l.Mint(alice, 100))
	assert.NoError(t, l.Approve(alice, carol, 60))

	assert.NoError(t, l.TransferFrom(carol, alice, bob, 40))
	assert.Equal(t, uint64(60), l.BalanceOf(alice))
	assert.Equal(t, uint64(40), l.BalanceOf(bob))

	// allowance was decremented by the spend
	assert.Equal(t, uint64(20), l.Allowance(alice, carol))
}

func TestTransferFromOverAllowance(t *testing.T) {
	l, _ := newTestLedger(t)

	assert.NoError(t, l.Mint(alice, 100))
	assert.NoError(t, l.Approve(alice, carol, 30))

	err := l.TransferFrom(carol, alice, bob, 31)
	assert.Equal(t, fault.InsufficientAllowanceError{Available: 30, Requested: 31}, err)
	assert.True(t, fault.IsErrInsufficientAllowance(err))

	// nothing moved
	assert.Equal(t, uint64(100), l.BalanceOf(alice))
	assert.Equal(t, uint64(0), l.BalanceOf(bob))
	assert.Equal(t, uint64(30), l.Allowance(alice, carol))
}

// a spend that fails on balance must leave the allowance untouched
func TestTransferFromInsufficientBalance(t *testing.T) {
	l, _ := newTestLedger(t)

	assert.NoError(t, l.Mint(alice, 10))
	assert.NoError(t, l.Approve(alice, carol, 50))

	err := l.TransferFrom(carol, alice, bob, 40)
	assert.Equal(t, fault.InsufficientBalanceError{Available: 10, Requested: 40}, err)

	assert.Equal(t, uint64(50), l.Allowance(alice, carol))
	assert.Equal(t, uint64(10), l.BalanceOf(alice))
}

// expired value does not back an allowance
func TestTransferFromExpiredBalance(t *testing.T) {
	l, stepper := newTestLedger(t)

	assert.NoError(t, l.Mint(alice, 10))
	assert.NoError(t, l.Approve(alice, carol, 10))

	stepper.Advance(l.ExpiryDuration())

	err := l.TransferFrom(carol, alice, bob, 10)
	assert.Equal(t, fault.InsufficientBalanceError{Available: 0, Requested: 10}, err)
	assert.Equal(t, uint64(10), l.Allowance(alice, carol))
}

func TestTransferFromExhaustsAllowance(t *testing.T) {
	l, _ := newTestLedger(t)

	assert.NoError(t, l.Mint(alice, 100))
	assert.NoError(t, l.Approve(alice, carol, 40))

	assert.NoError(t, l.TransferFrom(carol, alice, bob, 40))
	assert.Equal(t, uint64(0), l.Allowance(alice, carol))

	err := l.TransferFrom(carol, alice, bob, 1)
	assert.Equal(t, fault.InsufficientAllowanceError{Available: 0, Requested: 1}, err)
}

func TestTransferFromInvalidAccounts(t *testing.T) {
	l, _ := newTestLedger(t)
	assert.NoError(t, l.Mint(alice, 10))
	assert.NoError(t, l.Approve(alice, carol, 10))

	assert.Equal(t, fault.ErrInvalidSender, l.TransferFrom(account.Null, alice, bob, 1))
	assert.Equal(t, fault.ErrInvalidSender, l.TransferFrom(carol, account.Null, bob, 1))
	assert.Equal(t, fault.ErrInvalidReceiver, l.TransferFrom(carol, alice, account.Null, 1))

	assert.Equal(t, uint64(10), l.Allowance(alice, carol))
	assert.Equal(t, uint64(10), l.BalanceOf(alice))
}

// allowances for distinct spenders are independent
func TestAllowanceIsolation(t *testing.T) {
	l, _ := newTestLedger(t)

	assert.NoError(t, l.Mint(alice, 100))
	assert.NoError(t, l.Approve(alice, bob, 20))
	assert.NoError(t, l.Approve(alice, carol, 30))

	assert.NoError(t, l.TransferFrom(bob, alice, bob, 20))

	assert.Equal(t, uint64(0), l.Allowance(alice, bob))
	assert.Equal(t, uint64(30), l.Allowance(alice, carol))
}
