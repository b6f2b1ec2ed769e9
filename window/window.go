// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package window

import (
	"github.com/bitmark-inc/expiryd/clock"
	"github.com/bitmark-inc/expiryd/fault"
)

// configuration bounds
const (
	MinimumBlockTime = 100    // milliseconds
	MaximumBlockTime = 600000 // milliseconds

	MinimumFrameSizeInSlots = 1
	MaximumFrameSizeInSlots = 64

	MinimumSlotsPerEra = 1
	MaximumSlotsPerEra = 12

	yearInMilliseconds = 31556926000
)

// Config - construction parameters, validated by New
type Config struct {
	BlockTimeMilliseconds uint64 `gluamapper:"block_time_ms" json:"block_time_ms"`
	FrameSizeInSlots      uint64 `gluamapper:"frame_size_in_slots" json:"frame_size_in_slots"`
	SlotsPerEra           uint64 `gluamapper:"slots_per_era" json:"slots_per_era"`
	GenesisStep           uint64 `gluamapper:"genesis_step" json:"genesis_step"`
}

// Calculator - immutable sliding window calculator
type Calculator struct {
	genesisStep       uint64
	blockTime         uint64
	frameSizeInSlots  uint64
	slotsPerEra       uint64
	blocksPerSlot     uint64
	blocksPerEra      uint64
	frameSizeInBlocks uint64
}

// New - validate a configuration and derive the window geometry
//
// a zero genesis step means "now": the supplied clock is read once at
// construction and the result becomes the fixed genesis
func New(cfg Config, clk clock.Clock) (*Calculator, error) {
	if cfg.BlockTimeMilliseconds < MinimumBlockTime || cfg.BlockTimeMilliseconds > MaximumBlockTime {
		return nil, fault.ErrBlockTimeOutOfRange
	}
	if cfg.FrameSizeInSlots < MinimumFrameSizeInSlots || cfg.FrameSizeInSlots > MaximumFrameSizeInSlots {
		return nil, fault.ErrFrameSizeOutOfRange
	}
	if cfg.SlotsPerEra < MinimumSlotsPerEra || cfg.SlotsPerEra > MaximumSlotsPerEra {
		return nil, fault.ErrSlotCountOutOfRange
	}

	genesisStep := cfg.GenesisStep
	if 0 == genesisStep && nil != clk {
		genesisStep = clk.CurrentStep()
	}

	blocksPerSlot := yearInMilliseconds / cfg.BlockTimeMilliseconds / cfg.SlotsPerEra

	calculator := &Calculator{
		genesisStep:       genesisStep,
		blockTime:         cfg.BlockTimeMilliseconds,
		frameSizeInSlots:  cfg.FrameSizeInSlots,
		slotsPerEra:       cfg.SlotsPerEra,
		blocksPerSlot:     blocksPerSlot,
		blocksPerEra:      blocksPerSlot * cfg.SlotsPerEra,
		frameSizeInBlocks: blocksPerSlot * cfg.FrameSizeInSlots,
	}
	return calculator, nil
}

// GenesisStep - the fixed genesis time-step
func (calculator *Calculator) GenesisStep() uint64 {
	return calculator.genesisStep
}

// BlockTimeMilliseconds - the estimated step duration
func (calculator *Calculator) BlockTimeMilliseconds() uint64 {
	return calculator.blockTime
}

// BlocksPerSlot - steps spanned by one slot
func (calculator *Calculator) BlocksPerSlot() uint64 {
	return calculator.blocksPerSlot
}

// BlocksPerEra - steps spanned by one era
func (calculator *Calculator) BlocksPerEra() uint64 {
	return calculator.blocksPerEra
}

// SlotsPerEra - slots in one era
func (calculator *Calculator) SlotsPerEra() uint64 {
	return calculator.slotsPerEra
}

// FrameSizeInSlots - validity window length in slots
func (calculator *Calculator) FrameSizeInSlots() uint64 {
	return calculator.frameSizeInSlots
}

// FrameSizeInBlocks - validity window length in steps
//
// a unit recorded at step m is live while now − m is below this
func (calculator *Calculator) FrameSizeInBlocks() uint64 {
	return calculator.frameSizeInBlocks
}

// FrameSizeInEraAndSlot - validity window length in (era, slot) units
func (calculator *Calculator) FrameSizeInEraAndSlot() (uint64, uint64) {
	return calculator.frameSizeInSlots / calculator.slotsPerEra,
		calculator.frameSizeInSlots % calculator.slotsPerEra
}
