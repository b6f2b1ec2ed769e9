// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package steplist - an ordered set of time-step keys
//
// A doubly-linked ordering over a key→{previous,next} map with a
// reserved sentinel value unifying head and tail handling: the
// successor of the sentinel is the lowest key and its predecessor is
// the highest key.  The sentinel is the maximum uint64 and is never a
// legitimate time-step, so step zero remains a valid key.
//
// Keys normally arrive in non-decreasing order, so insertion is an
// append at the tail; arbitrary positions are still supported by
// walking from whichever end is nearer.
//
// Note: an individual list is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
package steplist
