// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgertx/digest"
	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/storage"
	"github.com/bitmark-inc/ledgertx/submission"
)

const submitTimeout = 30 * time.Second

type submitReply struct {
	TxId      string `json:"txId"`
	Reference string `json:"reference"`
}

func runSubmit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)
	if nil == m.config {
		return ErrConfigurationRequired
	}
	if "" == m.config.Connect {
		return ErrConnectRequired
	}

	packed, err := checkTransaction(c.String("transaction"))
	if nil != err {
		return err
	}

	options := submission.Options{
		Rate:        m.config.SubmitRate,
		Burst:       m.config.SubmitBurst,
		DedupExpiry: m.config.DedupWindow(),
		Deeds:       storage.GetDeed,
		Recorder: func(txId digest.Digest, reference string) {
			if err := storage.MarkSubmitted(txId, reference, time.Now()); nil != err {
				m.log.Errorf("record submitted: %s  error: %s", txId, err)
			}
		},
	}

	// all local checks complete before connecting
	tx, err := submission.New(logger.New("check"), nil, options).Check(packed)
	if nil != err {
		return err
	}
	txId, err := tx.Digest()
	if nil != err {
		return err
	}
	if reference, when, found := storage.Submitted(txId); found {
		if m.verbose {
			fmt.Fprintf(m.e, "submitted at: %s  reference: %s\n", when, reference)
		}
		return fault.DuplicateTransaction
	}

	sink, err := submission.NewRPCSink(m.config.Connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer sink.Close()

	gate := submission.New(logger.New("submit"), sink, options)

	ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
	defer cancel()

	reference, err := gate.Submit(ctx, packed)
	if nil != err {
		return err
	}

	return printJson(m.w, submitReply{
		TxId:      txId.String(),
		Reference: reference,
	})
}
