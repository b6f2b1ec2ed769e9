// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - ledger account identifiers
//
// An account is an opaque 32 byte identifier.  The all-zero value is
// the null account: it is never a valid mint receiver or transfer
// endpoint and is used internally to denote "discard" on burn.
//
// The text form is Base58 of: version byte ⧺ identifier ⧺ checksum
// where the checksum is the first 4 bytes of SHA3-256 over the
// preceding bytes.
package account
