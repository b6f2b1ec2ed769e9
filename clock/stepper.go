// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package clock

import (
	"sync"
)

// Stepper - a manually advanced clock
//
// Note: steps only move forward; an attempt to set an earlier step is
//       ignored so that a Stepper shared between goroutines stays
//       monotonic.
type Stepper struct {
	sync.RWMutex
	step uint64
}

// NewStepper - create a manual clock positioned at the given step
func NewStepper(step uint64) *Stepper {
	return &Stepper{step: step}
}

// CurrentStep - the current step number
func (s *Stepper) CurrentStep() uint64 {
	s.RLock()
	defer s.RUnlock()
	return s.step
}

// Advance - move the clock forward by n steps, returns the new step
func (s *Stepper) Advance(n uint64) uint64 {
	s.Lock()
	defer s.Unlock()
	s.step += n
	return s.step
}

// Set - jump to a specific step, ignored if earlier than current
func (s *Stepper) Set(step uint64) uint64 {
	s.Lock()
	defer s.Unlock()
	if step > s.step {
		s.step = step
	}
	return s.step
}
