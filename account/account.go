// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/expiryd/fault"
)

// miscellaneous constants
const (
	Size           = 32 // bytes in an account identifier
	checksumLength = 4
	versionByte    = 0x01
)

// Account - the opaque account identifier
type Account [Size]byte

// Null - the null account, not valid as a mint or transfer endpoint
var Null Account

// IsZero - true for the null account
func (account Account) IsZero() bool {
	return Null == account
}

// Bytes - the raw identifier bytes
func (account Account) Bytes() []byte {
	return account[:]
}

// String - Base58 text form with version byte and checksum
func (account Account) String() string {
	buffer := make([]byte, 0, 1+Size+checksumLength)
	buffer = append(buffer, versionByte)
	buffer = append(buffer, account[:]...)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - satisfy the encoding.TextMarshaler interface
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - satisfy the encoding.TextUnmarshaler interface
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	*account = a
	return nil
}

// AccountFromBase58 - decode the Base58 text form of an account
func AccountFromBase58(accountBase58Encoded string) (Account, error) {
	decoded, err := base58.Decode(accountBase58Encoded)
	if nil != err {
		return Null, fault.ErrCannotDecodeAccount
	}
	if 1+Size+checksumLength != len(decoded) {
		return Null, fault.ErrCannotDecodeAccount
	}
	if versionByte != decoded[0] {
		return Null, fault.ErrCannotDecodeAccount
	}

	checksum := sha3.Sum256(decoded[:1+Size])
	if !bytes.Equal(checksum[:checksumLength], decoded[1+Size:]) {
		return Null, fault.ErrChecksumMismatch
	}

	var account Account
	copy(account[:], decoded[1:1+Size])
	return account, nil
}

// AccountFromBytes - create an account from raw identifier bytes
func AccountFromBytes(buffer []byte) (Account, error) {
	if Size != len(buffer) {
		return Null, fault.ErrCannotDecodeAccount
	}
	var account Account
	copy(account[:], buffer)
	return account, nil
}
