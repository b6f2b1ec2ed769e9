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

// fetch the metadata stored by app.Before
func mustMetadata(c *cli.Context) *metadata {
	m, ok := c.App.Metadata["config"].(*metadata)
	if !ok {
		panic("missing metadata, command run without app.Before")
	}
	return m
}

// decode a required account flag
func checkAccount(c *cli.Context, flag string) (account.Account, error) {
	s := c.String(flag)
	if "" == s {
		return account.Null, fmt.Errorf("%s is required", flag)
	}

	acct, err := account.AccountFromBase58(s)
	if nil != err {
		return account.Null, fmt.Errorf("%s: %q: %s", flag, s, err)
	}
	return acct, nil
}

// a required positive amount flag
func checkAmount(c *cli.Context) (uint64, error) {
	amount := c.Uint64("amount")
	if 0 == amount {
		return 0, fmt.Errorf("invalid amount: %d", amount)
	}
	return amount, nil
}
