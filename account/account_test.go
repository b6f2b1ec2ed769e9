// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"testing"

	"github.com/bitmark-inc/expiryd/account"
	"github.com/bitmark-inc/expiryd/fault"
)

// make a non-null test account
func makeAccount(fill byte) account.Account {
	var a account.Account
	for i := 0; i < account.Size; i += 1 {
		a[i] = fill
	}
	return a
}

func TestNullAccount(t *testing.T) {
	var a account.Account
	if !a.IsZero() {
		t.Errorf("zero value is not the null account")
	}
	if account.Null != a {
		t.Errorf("null constant does not match zero value")
	}

	b := makeAccount(0x22)
	if b.IsZero() {
		t.Errorf("non-zero account classified as null")
	}
}

// round trip through the Base58 text form
func TestBase58RoundTrip(t *testing.T) {
	a := makeAccount(0x9c)

	s := a.String()
	if "" == s {
		t.Fatalf("empty base58 encoding")
	}

	b, err := account.AccountFromBase58(s)
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}
	if a != b {
		t.Errorf("actual: %x  expected: %x", b, a)
	}
}

func TestBase58Corruption(t *testing.T) {
	a := makeAccount(0x55)
	s := a.String()

	// flip one character to break the checksum
	corrupted := []byte(s)
	if 'x' == corrupted[4] {
		corrupted[4] = 'y'
	} else {
		corrupted[4] = 'x'
	}

	_, err := account.AccountFromBase58(string(corrupted))
	if nil == err {
		t.Fatalf("corrupted encoding was accepted")
	}
	if !fault.IsErrInvalid(err) {
		t.Errorf("unexpected error class: %s", err)
	}

	_, err = account.AccountFromBase58("")
	if fault.ErrCannotDecodeAccount != err {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestTextMarshalling(t *testing.T) {
	a := makeAccount(0x07)

	text, err := a.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}

	var b account.Account
	err = b.UnmarshalText(text)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if a != b {
		t.Errorf("actual: %x  expected: %x", b, a)
	}
}

func TestAccountFromBytes(t *testing.T) {
	buffer := make([]byte, account.Size)
	buffer[0] = 0xff

	a, err := account.AccountFromBytes(buffer)
	if nil != err {
		t.Fatalf("from bytes error: %s", err)
	}
	if 0xff != a[0] {
		t.Errorf("actual: %x  expected: ff", a[0])
	}

	_, err = account.AccountFromBytes(buffer[1:])
	if fault.ErrCannotDecodeAccount != err {
		t.Errorf("short buffer was accepted")
	}
}
