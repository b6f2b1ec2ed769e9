// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key→value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ⧺             = concatenation of byte data
// 3. account       = ledger account (32 bytes)
// 4. era/slot/step = big endian uint64 (8 bytes)
// 5. amount        = big endian uint64 (8 bytes)
//
// Buckets:
//
//   S ⧺ account ⧺ era ⧺ slot          - aggregate balance of one bucket
//                                        data: amount
//   B ⧺ account ⧺ era ⧺ slot ⧺ step  - per-step balance within a bucket
//                                        data: amount
//                                        (deleted when fully consumed; the
//                                        ascending key order of this pool
//                                        regenerates the expiry index)
//
// Allowances:
//
//   A ⧺ owner ⧺ spender                - remaining spend allowance
//                                        data: amount
//
// Global totals:
//
//   G ⧺ step                           - total recorded for one mint step
//                                        data: amount
package storage
