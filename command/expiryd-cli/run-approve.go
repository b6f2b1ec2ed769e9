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

type approveReply struct {
	Owner     account.Account `json:"owner"`
	Spender   account.Account `json:"spender"`
	Allowance uint64          `json:"allowance"`
}

func runApprove(c *cli.Context) error {

	m := mustMetadata(c)

	owner, err := checkAccount(c, "owner")
	if nil != err {
		return err
	}

	spender, err := checkAccount(c, "spender")
	if nil != err {
		return err
	}

	// zero is legitimate here: it revokes the allowance
	amount := c.Uint64("amount")

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "spender: %s\n", spender)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	err = m.ledger.Approve(owner, spender, amount)
	if nil != err {
		return err
	}

	reply := approveReply{
		Owner:     owner,
		Spender:   spender,
		Allowance: m.ledger.Allowance(owner, spender),
	}

	printJson(m.w, reply)
	return nil
}
