// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package window - sliding validity window arithmetic
//
// Time-steps are discretised on two levels: an era is subdivided into
// a configurable number of slots, each spanning a fixed number of
// steps derived from the estimated step time.  The frame is the
// sliding validity window: a unit recorded at step m is live while
// now − m < frame size in steps.
//
// The frame length is quantised to whole slots, so any bucket
// strictly inside a frame is entirely within the window; only the
// lowest bucket of a frame can be partially expired.
package window
