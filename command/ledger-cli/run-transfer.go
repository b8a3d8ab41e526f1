// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/transaction"
)

type partialReply struct {
	TxId        string `json:"txId"`
	Complete    bool   `json:"complete"`
	Transaction string `json:"transaction"`
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := checkKey(c.String("key"))
	if nil != err {
		return err
	}

	from := key.Identity().Address()
	if s := c.String("from"); "" != s {
		from, err = checkAddress(s)
		if nil != err {
			return err
		}
	}

	if "" == c.String("receiver") {
		return ErrReceiverRequired
	}
	to, err := checkAddress(c.String("receiver"))
	if nil != err {
		return err
	}

	amount := c.Uint64("amount")
	if 0 == amount {
		return ErrZeroAmount
	}

	signers, err := checkIdentities(c.StringSlice("signer"))
	if nil != err {
		return err
	}
	if 0 == len(signers) {
		signers = []*account.Identity{key.Identity()}
	}

	if m.verbose {
		fmt.Fprintf(m.e, "from: %s\n", from)
		fmt.Fprintf(m.e, "to: %s  amount: %d\n", to, amount)
		fmt.Fprintf(m.e, "signers: %d\n", len(signers))
	}

	tx, err := transaction.NewTransfer(from, to, amount, c.Uint64("fee"), signers...)
	if nil != err {
		return err
	}
	if err := transaction.Sign(tx, key); nil != err {
		return err
	}

	return printPartial(m, tx)
}

func printPartial(m *metadata, tx *transaction.Transaction) error {
	txId, err := tx.TxId()
	if nil != err {
		return err
	}
	packed, err := packedHex(tx)
	if nil != err {
		return err
	}
	return printJson(m.w, partialReply{
		TxId:        txId,
		Complete:    tx.IsComplete(),
		Transaction: packed,
	})
}
