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

type transferReply struct {
	Sender          account.Account `json:"sender"`
	Receiver        account.Account `json:"receiver"`
	Amount          uint64          `json:"amount"`
	SenderBalance   uint64          `json:"sender_balance"`
	ReceiverBalance uint64          `json:"receiver_balance"`
}

func runTransfer(c *cli.Context) error {

	m := mustMetadata(c)

	sender, err := checkAccount(c, "sender")
	if nil != err {
		return err
	}

	receiver, err := checkAccount(c, "receiver")
	if nil != err {
		return err
	}

	amount, err := checkAmount(c)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "sender: %s\n", sender)
		fmt.Fprintf(m.e, "receiver: %s\n", receiver)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	err = m.ledger.Transfer(sender, receiver, amount)
	if nil != err {
		return err
	}

	reply := transferReply{
		Sender:          sender,
		Receiver:        receiver,
		Amount:          amount,
		SenderBalance:   m.ledger.BalanceOf(sender),
		ReceiverBalance: m.ledger.BalanceOf(receiver),
	}

	printJson(m.w, reply)
	return nil
}
