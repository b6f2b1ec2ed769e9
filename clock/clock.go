// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package clock

import (
	"time"
)

// Clock - supplies the current time-step number
type Clock interface {
	CurrentStep() uint64
}

// Realtime - wall clock driven step counter
type Realtime struct {
	genesis  time.Time
	stepTime time.Duration
}

// NewRealtime - create a clock that counts steps of the given
// duration elapsed since the genesis instant
//
// a zero or negative duration defaults to one second per step
func NewRealtime(genesis time.Time, stepTime time.Duration) *Realtime {
	if stepTime <= 0 {
		stepTime = time.Second
	}
	return &Realtime{
		genesis:  genesis,
		stepTime: stepTime,
	}
}

// CurrentStep - number of whole steps elapsed since genesis
//
// a clock read before the genesis instant reports step zero
func (c *Realtime) CurrentStep() uint64 {
	elapsed := time.Since(c.genesis)
	if elapsed <= 0 {
		return 0
	}
	return uint64(elapsed / c.stepTime)
}

// StepTime - the configured step duration
func (c *Realtime) StepTime() time.Duration {
	return c.stepTime
}

// Genesis - the configured genesis instant
func (c *Realtime) Genesis() time.Time {
	return c.genesis
}
