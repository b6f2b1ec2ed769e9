// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/expiryd/account"
)

// packed storage key sizes, see storage/doc.go for the layout
const (
	uint64ByteSize = 8

	slotKeyLength = account.Size + 2*uint64ByteSize
	stepKeyLength = account.Size + 3*uint64ByteSize
)

// S pool: account ⧺ era ⧺ slot
func slotKey(acct account.Account, era uint64, slot uint64) []byte {
	buffer := make([]byte, slotKeyLength)
	copy(buffer, acct[:])
	binary.BigEndian.PutUint64(buffer[account.Size:], era)
	binary.BigEndian.PutUint64(buffer[account.Size+uint64ByteSize:], slot)
	return buffer
}

// B pool: account ⧺ era ⧺ slot ⧺ step
func stepKey(acct account.Account, era uint64, slot uint64, step uint64) []byte {
	buffer := make([]byte, stepKeyLength)
	copy(buffer, acct[:])
	binary.BigEndian.PutUint64(buffer[account.Size:], era)
	binary.BigEndian.PutUint64(buffer[account.Size+uint64ByteSize:], slot)
	binary.BigEndian.PutUint64(buffer[account.Size+2*uint64ByteSize:], step)
	return buffer
}

// decompose a B pool key
func unpackStepKey(buffer []byte) (account.Account, uint64, uint64, uint64, bool) {
	if stepKeyLength != len(buffer) {
		return account.Null, 0, 0, 0, false
	}
	var acct account.Account
	copy(acct[:], buffer[:account.Size])
	era := binary.BigEndian.Uint64(buffer[account.Size:])
	slot := binary.BigEndian.Uint64(buffer[account.Size+uint64ByteSize:])
	step := binary.BigEndian.Uint64(buffer[account.Size+2*uint64ByteSize:])
	return acct, era, slot, step, true
}

// A pool: owner ⧺ spender
func allowanceKeyBytes(owner account.Account, spender account.Account) []byte {
	buffer := make([]byte, 2*account.Size)
	copy(buffer, owner[:])
	copy(buffer[account.Size:], spender[:])
	return buffer
}

// G pool: step
func stepTotalKey(step uint64) []byte {
	buffer := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(buffer, step)
	return buffer
}
