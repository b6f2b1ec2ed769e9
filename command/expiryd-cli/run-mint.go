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

type mintReply struct {
	Receiver account.Account `json:"receiver"`
	Amount   uint64          `json:"amount"`
	Balance  uint64          `json:"balance"`
}

func runMint(c *cli.Context) error {

	m := mustMetadata(c)

	receiver, err := checkAccount(c, "receiver")
	if nil != err {
		return err
	}

	amount, err := checkAmount(c)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "receiver: %s\n", receiver)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	err = m.ledger.Mint(receiver, amount)
	if nil != err {
		return err
	}

	reply := mintReply{
		Receiver: receiver,
		Amount:   amount,
		Balance:  m.ledger.BalanceOf(receiver),
	}

	printJson(m.w, reply)
	return nil
}
