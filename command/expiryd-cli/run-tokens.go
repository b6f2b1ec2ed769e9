// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/expiryd/account"
)

type tokensReply struct {
	Owner account.Account `json:"owner"`
	Era   uint64          `json:"era"`
	Slot  uint64          `json:"slot"`
	Steps []uint64        `json:"steps"`
}

func runTokens(c *cli.Context) error {

	m := mustMetadata(c)

	owner, err := checkAccount(c, "owner")
	if nil != err {
		return err
	}

	era := c.Uint64("era")
	slot := c.Uint64("slot")
	if c.Bool("current") {
		era, slot = m.ledger.CurrentEraAndSlot()
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s  era: %d  slot: %d\n", owner, era, slot)
	}

	steps := m.ledger.TokenList(owner, era, slot)
	if nil == steps {
		steps = []uint64{}
	}

	reply := tokensReply{
		Owner: owner,
		Era:   era,
		Slot:  slot,
		Steps: steps,
	}

	printJson(m.w, reply)
	return nil
}
