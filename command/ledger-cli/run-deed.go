// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io/ioutil"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgertx/deed"
	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/storage"
	"github.com/bitmark-inc/ledgertx/transaction"
)

type authoriseReply struct {
	TxId      string         `json:"txId"`
	Operation deed.Operation `json:"operation"`
	Verified  int            `json:"verified"`
	HasDeed   bool           `json:"hasDeed"`
}

func readDeed(fileName string) (*deed.Deed, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	d := deed.New()
	if err := json.Unmarshal(data, d); nil != err {
		return nil, err
	}
	return d, nil
}

func runDeed(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)
	if nil == m.config {
		return ErrConfigurationRequired
	}

	address, err := checkAddress(c.String("address"))
	if nil != err {
		return err
	}

	if fileName := c.String("set"); "" != fileName {
		d, err := readDeed(fileName)
		if nil != err {
			return err
		}
		if err := storage.PutDeed(address, d); nil != err {
			return err
		}
		m.log.Infof("deed set: %s", address)
	} else if c.Bool("remove") {
		if err := storage.DeleteDeed(address); nil != err {
			return err
		}
		m.log.Infof("deed removed: %s", address)
		return nil
	}

	d, found, err := storage.GetDeed(address)
	if nil != err {
		return err
	}
	if !found {
		return fault.DeedNotSet
	}
	return printJson(m.w, d)
}

func runAuthorise(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	packed, err := checkTransaction(c.String("transaction"))
	if nil != err {
		return err
	}

	_, tx, err := transaction.DecodeTransaction(packed)
	if nil != err {
		return err
	}

	var d *deed.Deed
	if fileName := c.String("deed"); "" != fileName {
		d, err = readDeed(fileName)
		if nil != err {
			return err
		}
	} else if nil != m.config {
		stored, found, err := storage.GetDeed(tx.From)
		if nil != err {
			return err
		}
		if found {
			d = stored
		}
	}

	if err := deed.AuthoriseTransaction(d, tx); nil != err {
		return err
	}

	txId, err := tx.TxId()
	if nil != err {
		return err
	}
	return printJson(m.w, authoriseReply{
		TxId:      txId,
		Operation: deed.OperationForTransaction(tx),
		Verified:  len(tx.Signers.Verified()),
		HasDeed:   nil != d,
	})
}
