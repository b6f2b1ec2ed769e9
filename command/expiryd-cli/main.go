// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/expiryd/clock"
	"github.com/bitmark-inc/expiryd/configuration"
	"github.com/bitmark-inc/expiryd/ledger"
	"github.com/bitmark-inc/expiryd/storage"
	"github.com/bitmark-inc/expiryd/window"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	ledger  *ledger.Ledger
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "expiryd-cli"
	app.Usage = "inspect and update an expiring-balance ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: "*configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "info",
			Usage:  "show window geometry, current position and statistics",
			Action: runInfo,
		},
		{
			Name:      "balance",
			Usage:     "show the live balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*account to query `ACCOUNT`",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "balance-step",
			Usage:     "show the global total recorded for one mint step",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "step, s",
					Value: 0,
					Usage: "*mint step to query `STEP`",
				},
			},
			Action: runBalanceStep,
		},
		{
			Name:      "tokens",
			Usage:     "list the live step keys of one account bucket",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*account to query `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "era, e",
					Value: 0,
					Usage: " era to query `ERA` (default: current)",
				},
				cli.Uint64Flag{
					Name:  "slot, s",
					Value: 0,
					Usage: " slot to query `SLOT` (default: current)",
				},
				cli.BoolFlag{
					Name:  "current, u",
					Usage: " query the current era and slot",
				},
			},
			Action: runTokens,
		},
		{
			Name:      "mint",
			Usage:     "create new value on an account at the current step",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*account to credit `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*amount to mint `AMOUNT`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "burn",
			Usage:     "destroy value on an account, oldest first",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*account to debit `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*amount to burn `AMOUNT`",
				},
			},
			Action: runBurn,
		},
		{
			Name:      "transfer",
			Usage:     "move value between accounts, oldest first",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "sender, s",
					Value: "",
					Usage: "*account to debit `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*account to credit `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*amount to transfer `AMOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "approve",
			Usage:     "set the spend allowance of a spender",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*account granting the allowance `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "spender, p",
					Value: "",
					Usage: "*account allowed to spend `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*allowance to set, zero revokes `AMOUNT`",
				},
			},
			Action: runApprove,
		},
		{
			Name:      "transfer-from",
			Usage:     "spend an allowance on behalf of its owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "spender, p",
					Value: "",
					Usage: "*account spending the allowance `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "sender, s",
					Value: "",
					Usage: "*account to debit `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*account to credit `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*amount to transfer `AMOUNT`",
				},
			},
			Action: runTransferFrom,
		},
		{
			Name:   "audit",
			Usage:  "verify live supply against the sum of account balances",
			Action: runAudit,
		},
		{
			Name:  "version",
			Usage: "display version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// open the database and restore the ledger before any command
	app.Before = func(c *cli.Context) error {
		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		command := c.Args().Get(0)
		switch command {
		case "version", "help", "h", "":
			return nil
		}

		file := c.GlobalString("config")
		if "" == file {
			return fmt.Errorf("configuration file is required")
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		options, err := configuration.GetConfiguration(file)
		if nil != err {
			return err
		}

		err = logger.Initialise(options.Logging)
		if nil != err {
			return err
		}

		err = storage.Initialise(options.Database.Name)
		if nil != err {
			return err
		}

		// steps count block time intervals on the shared timeline
		clk := clock.NewRealtime(
			time.Unix(0, 0),
			time.Duration(options.Window.BlockTimeMilliseconds)*time.Millisecond,
		)

		calculator, err := window.New(options.Window, clk)
		if nil != err {
			return err
		}

		l, err := ledger.New(calculator, clk, true)
		if nil != err {
			return err
		}

		err = l.Restore()
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  options,
			ledger:  l,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			storage.Finalise()
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
