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

type balanceReply struct {
	Owner   account.Account `json:"owner"`
	Balance uint64          `json:"balance"`
}

func runBalance(c *cli.Context) error {

	m := mustMetadata(c)

	owner, err := checkAccount(c, "owner")
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
	}

	reply := balanceReply{
		Owner:   owner,
		Balance: m.ledger.BalanceOf(owner),
	}

	printJson(m.w, reply)
	return nil
}

type balanceStepReply struct {
	Step    uint64 `json:"step"`
	Balance uint64 `json:"balance"`
}

func runBalanceStep(c *cli.Context) error {

	m := mustMetadata(c)

	step := c.Uint64("step")

	reply := balanceStepReply{
		Step:    step,
		Balance: m.ledger.BalanceOfStep(step),
	}

	printJson(m.w, reply)
	return nil
}
