// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgertx/transaction"
)

func runSign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	packed, err := checkTransaction(c.String("transaction"))
	if nil != err {
		return err
	}
	key, err := checkKey(c.String("key"))
	if nil != err {
		return err
	}

	tx, err := transaction.DecodePartial(packed)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "signer: %s\n", key.Identity())
	}

	if err := transaction.Sign(tx, key); nil != err {
		return err
	}
	return printPartial(m, tx)
}

func runMerge(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	list := c.StringSlice("transaction")
	if 0 == len(list) {
		return ErrTransactionRequired
	}

	copies := make([]*transaction.Transaction, 0, len(list))
	for i, s := range list {
		packed, err := checkTransaction(s)
		if nil != err {
			return fmt.Errorf("copy %d: %w", i, err)
		}
		tx, err := transaction.DecodePartial(packed)
		if nil != err {
			return fmt.Errorf("copy %d: %w", i, err)
		}
		copies = append(copies, tx)
	}

	merged, err := transaction.MergeAll(copies...)
	if nil != err {
		return err
	}
	return printPartial(m, merged)
}
