// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgertx/configuration"
	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/storage"
	"github.com/bitmark-inc/ledgertx/util"
)

type metadata struct {
	config  *configuration.Configuration
	log     *logger.L
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
	app.Name = "ledger-cli"
	app.Usage = "build, sign, gather and submit ledger transactions"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr
	app.Metadata = map[string]interface{}{}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE` (needed for database and submit commands)",
		},
		cli.StringFlag{
			Name:  "connect",
			Value: "",
			Usage: " override ledger node `HOST:PORT`",
		},
	}

	transactionFlag := cli.StringFlag{
		Name:  "transaction, t",
		Value: "",
		Usage: "*packed transaction `HEX` or JSON envelope",
	}
	keyFlag := cli.StringFlag{
		Name:  "key, k",
		Value: "",
		Usage: "*private key `HEX`",
	}

	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new private key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "algorithm, a",
					Value: "ed25519",
					Usage: " key `ALGORITHM` [ed25519|secp256k1]",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "transfer",
			Usage:     "create a transfer signed by the sender's key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				keyFlag,
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: " sending `ADDRESS` [default: address of key]",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*receiving `ADDRESS`",
				},
				cli.Uint64Flag{
					Name:  "amount, n",
					Value: 0,
					Usage: "*`AMOUNT` to transfer",
				},
				cli.Uint64Flag{
					Name:  "fee",
					Value: 0,
					Usage: " charge limit `FEE`",
				},
				cli.StringSliceFlag{
					Name:  "signer, s",
					Usage: " co-signer `IDENTITY` (repeatable)",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "decode",
			Usage:     "decode a packed transaction and verify its signatures",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				transactionFlag,
				cli.BoolFlag{
					Name:  "golang",
					Usage: " print the packed bytes as a Go declaration",
				},
			},
			Action: runDecode,
		},
		{
			Name:      "sign",
			Usage:     "add a signature to a partially signed transaction",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{transactionFlag, keyFlag},
			Action:    runSign,
		},
		{
			Name:      "merge",
			Usage:     "combine co-signers' partial copies",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "transaction, t",
					Usage: "*partial copy `HEX` (repeatable)",
				},
			},
			Action: runMerge,
		},
		{
			Name:      "gather",
			Usage:     "store a partial copy, merging with copies already received",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{transactionFlag},
			Action:    runGather,
		},
		{
			Name:      "deed",
			Usage:     "show or set the deed of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "set",
					Value: "",
					Usage: " deed JSON `FILE` to store",
				},
				cli.BoolFlag{
					Name:  "remove",
					Usage: " remove the stored deed",
				},
			},
			Action: runDeed,
		},
		{
			Name:      "authorise",
			Usage:     "check a signed transaction against a deed",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				transactionFlag,
				cli.StringFlag{
					Name:  "deed, d",
					Value: "",
					Usage: " deed JSON `FILE` [default: stored deed or none]",
				},
			},
			Action: runAuthorise,
		},
		{
			Name:      "submit",
			Usage:     "check and submit a fully signed transaction",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{transactionFlag},
			Action:    runSubmit,
		},
		{
			Name:      "envelope",
			Usage:     "wrap hex in a JSON envelope or unwrap an envelope to hex",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{transactionFlag},
			Action:    runEnvelope,
		},
		{
			Name:      "expire",
			Usage:     "discard stale partial copies",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "follow",
					Usage: " keep running and expire periodically until interrupted",
				},
			},
			Action: runExpire,
		},
		{
			Name:      "version",
			Usage:     "display ledger-cli version",
			ArgsUsage: " ",
			Action:    runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		m := &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		c.App.Metadata["config"] = m

		file := c.GlobalString("config")
		if "" == file {
			return nil
		}

		if m.verbose {
			fmt.Fprintf(m.e, "reading config file: %s\n", file)
		}

		config, err := configuration.Read(file, map[string]string{
			"connect": c.GlobalString("connect"),
		})
		if nil != err {
			return err
		}
		if connect := c.GlobalString("connect"); "" != connect {
			config.Connect, err = checkConnect(connect)
			if nil != err {
				return err
			}
		}
		m.config = config

		if err := util.EnsureDirectory(config.Logging.Directory); nil != err {
			return err
		}
		if err := logger.Initialise(config.LoggerConfiguration()); nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			return err
		}
		m.log = logger.New("main")
		m.log.Infof("version: %s", version)
		m.log.Infof("chain: %s  database: %q", config.Chain, config.Database)

		if err := util.EnsureDirectory(filepath.Dir(config.Database)); nil != err {
			return err
		}
		return storage.Initialise(config.Database, storage.ReadWrite)
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || nil == m.config {
			return nil
		}
		storage.Finalise()
		if nil != m.log {
			m.log.Info("finished")
		}
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
