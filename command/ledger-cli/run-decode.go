// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgertx/transaction"
	"github.com/bitmark-inc/ledgertx/util"
)

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	packed, err := checkTransaction(c.String("transaction"))
	if nil != err {
		return err
	}

	if c.Bool("golang") {
		fmt.Fprintf(m.w, "%s\n", util.FormatBytes("packed", packed))
		return nil
	}

	allValid, tx, err := transaction.DecodeTransaction(packed)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "bytes: %d  all signatures valid: %t\n", len(packed), allValid)
	}

	view, err := describe(tx)
	if nil != err {
		return err
	}
	return printJson(m.w, view)
}

func runEnvelope(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s := strings.TrimSpace(c.String("transaction"))
	packed, err := checkTransaction(s)
	if nil != err {
		return err
	}

	// an envelope was given so return hex
	if strings.HasPrefix(s, "{") {
		fmt.Fprintf(m.w, "%s\n", hex.EncodeToString(packed))
		return nil
	}

	envelope, err := transaction.ToEnvelope(packed)
	if nil != err {
		return err
	}
	fmt.Fprintf(m.w, "%s\n", envelope)
	return nil
}
