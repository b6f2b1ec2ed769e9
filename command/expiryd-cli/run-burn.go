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

type burnReply struct {
	Owner   account.Account `json:"owner"`
	Amount  uint64          `json:"amount"`
	Balance uint64          `json:"balance"`
}

func runBurn(c *cli.Context) error {

	m := mustMetadata(c)

	owner, err := checkAccount(c, "owner")
	if nil != err {
		return err
	}

	amount, err := checkAmount(c)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	err = m.ledger.Burn(owner, amount)
	if nil != err {
		return err
	}

	reply := burnReply{
		Owner:   owner,
		Amount:  amount,
		Balance: m.ledger.BalanceOf(owner),
	}

	printJson(m.w, reply)
	return nil
}
