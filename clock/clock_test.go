// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package clock_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/expiryd/clock"
)

func TestRealtimeBeforeGenesis(t *testing.T) {
	c := clock.NewRealtime(time.Now().Add(time.Hour), time.Second)
	if 0 != c.CurrentStep() {
		t.Errorf("step before genesis: %d  expected: 0", c.CurrentStep())
	}
}

func TestRealtimeElapsed(t *testing.T) {
	c := clock.NewRealtime(time.Now().Add(-10*time.Second), time.Second)
	step := c.CurrentStep()
	if step < 9 || step > 11 {
		t.Errorf("step: %d  expected: ≈10", step)
	}
}

func TestRealtimeDefaultStepTime(t *testing.T) {
	c := clock.NewRealtime(time.Now(), 0)
	if time.Second != c.StepTime() {
		t.Errorf("step time: %s  expected: 1s", c.StepTime())
	}
}

func TestStepper(t *testing.T) {
	s := clock.NewStepper(100)
	if 100 != s.CurrentStep() {
		t.Fatalf("initial step: %d  expected: 100", s.CurrentStep())
	}

	n := s.Advance(25)
	if 125 != n || 125 != s.CurrentStep() {
		t.Errorf("step after advance: %d  expected: 125", s.CurrentStep())
	}

	// moving backwards must be ignored
	s.Set(50)
	if 125 != s.CurrentStep() {
		t.Errorf("step moved backwards: %d", s.CurrentStep())
	}

	s.Set(1000)
	if 1000 != s.CurrentStep() {
		t.Errorf("step after set: %d  expected: 1000", s.CurrentStep())
	}
}
