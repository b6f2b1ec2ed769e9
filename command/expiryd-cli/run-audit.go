// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type auditReply struct {
	AccountTotal uint64 `json:"account_total"`
	LiveSupply   uint64 `json:"live_supply"`
	Balanced     bool   `json:"balanced"`
}

func runAudit(c *cli.Context) error {

	m := mustMetadata(c)

	accountTotal, liveSupply, balanced := m.ledger.Audit()

	reply := auditReply{
		AccountTotal: accountTotal,
		LiveSupply:   liveSupply,
		Balanced:     balanced,
	}

	printJson(m.w, reply)
	return nil
}
