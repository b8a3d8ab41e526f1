// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgertx/background"
	"github.com/bitmark-inc/ledgertx/storage"
	"github.com/bitmark-inc/ledgertx/transaction"
)

const minimumExpiryInterval = time.Second

func runGather(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)
	if nil == m.config {
		return ErrConfigurationRequired
	}

	packed, err := checkTransaction(c.String("transaction"))
	if nil != err {
		return err
	}

	tx, err := transaction.DecodePartial(packed)
	if nil != err {
		return err
	}

	merged, err := storage.StorePartial(tx, time.Now())
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "signatures: %d of %d\n", len(merged.Signers.Verified()), merged.Signers.Len())
	}
	return printPartial(m, merged)
}

func runExpire(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)
	if nil == m.config {
		return ErrConfigurationRequired
	}

	window := m.config.PartialWindow()

	if !c.Bool("follow") {
		n, err := storage.ExpirePartials(time.Now().Add(-window))
		if nil != err {
			return err
		}
		fmt.Fprintf(m.w, "expired: %d\n", n)
		return nil
	}

	interval := window / 10
	if interval < minimumExpiryInterval {
		interval = minimumExpiryInterval
	}

	processes := background.Processes{
		storage.NewExpirer(interval, window),
	}
	p := background.Start(processes, nil)

	m.log.Infof("expiring partials older than: %s  every: %s", window, interval)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	m.log.Infof("received signal: %v", sig)

	p.Stop()
	return nil
}
