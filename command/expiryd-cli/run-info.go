// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/expiryd/ledger"
)

type infoReply struct {
	GenesisStep       uint64            `json:"genesis_step"`
	BlockTimeMs       uint64            `json:"block_time_ms"`
	BlocksPerSlot     uint64            `json:"blocks_per_slot"`
	BlocksPerEra      uint64            `json:"blocks_per_era"`
	SlotsPerEra       uint64            `json:"slots_per_era"`
	FrameSizeInSlots  uint64            `json:"frame_size_in_slots"`
	FrameSizeInBlocks uint64            `json:"frame_size_in_blocks"`
	CurrentEra        uint64            `json:"current_era"`
	CurrentSlot       uint64            `json:"current_slot"`
	Statistics        ledger.Statistics `json:"statistics"`
}

func runInfo(c *cli.Context) error {

	m := mustMetadata(c)
	calculator := m.ledger.Calculator()

	era, slot := m.ledger.CurrentEraAndSlot()

	reply := infoReply{
		GenesisStep:       calculator.GenesisStep(),
		BlockTimeMs:       calculator.BlockTimeMilliseconds(),
		BlocksPerSlot:     calculator.BlocksPerSlot(),
		BlocksPerEra:      calculator.BlocksPerEra(),
		SlotsPerEra:       calculator.SlotsPerEra(),
		FrameSizeInSlots:  calculator.FrameSizeInSlots(),
		FrameSizeInBlocks: calculator.FrameSizeInBlocks(),
		CurrentEra:        era,
		CurrentSlot:       slot,
		Statistics:        m.ledger.Statistics(),
	}

	printJson(m.w, reply)
	return nil
}
