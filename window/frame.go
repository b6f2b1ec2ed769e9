// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package window

// Range - (era, slot) bounds of a frame, inclusive at both ends
type Range struct {
	FromEra  uint64 `json:"fromEra"`
	ToEra    uint64 `json:"toEra"`
	FromSlot uint64 `json:"fromSlot"`
	ToSlot   uint64 `json:"toSlot"`
}

// EraAndSlot - discretise a time-step into (era, slot) coordinates
//
// steps at or before genesis map to (0, 0)
func (calculator *Calculator) EraAndSlot(step uint64) (uint64, uint64) {
	if step <= calculator.genesisStep {
		return 0, 0
	}
	elapsed := step - calculator.genesisStep
	era := elapsed / calculator.blocksPerEra
	slot := elapsed % calculator.blocksPerEra / calculator.blocksPerSlot
	return era, slot
}

// Frame - the sliding validity window ending at the given step
func (calculator *Calculator) Frame(step uint64) Range {
	return calculator.frame(step, calculator.frameSizeInBlocks)
}

// SafeFrame - like Frame with the lower bound widened by one slot
//
// the extra slot buffers against undercounting a partially elapsed
// lower slot; consumers must still filter per-step expiry within the
// lowest buckets
func (calculator *Calculator) SafeFrame(step uint64) Range {
	return calculator.frame(step, calculator.frameSizeInBlocks+calculator.blocksPerSlot)
}

// internal: frame over an arbitrary look-back distance
func (calculator *Calculator) frame(step uint64, blocks uint64) Range {
	toEra, toSlot := calculator.EraAndSlot(step)

	lower := uint64(0)
	if step > blocks {
		lower = step - blocks
	}
	fromEra, fromSlot := calculator.EraAndSlot(lower)

	return Range{
		FromEra:  fromEra,
		ToEra:    toEra,
		FromSlot: fromSlot,
		ToSlot:   toSlot,
	}
}
