// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Operator tool for an expiring-balance ledger
//
// each invocation opens the configured database, restores the ledger
// state, performs one operation and prints the result as JSON
//
// e.g. to mint 100 units to an account:
//
//   expiryd-cli --config expiryd.conf mint -r ACCOUNT -a 100
package main
