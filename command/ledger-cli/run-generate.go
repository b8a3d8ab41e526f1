// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgertx/account"
)

type generateReply struct {
	PrivateKey *account.PrivateKey `json:"privateKey"`
	Identity   *account.Identity   `json:"identity"`
	Address    account.Address     `json:"address"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	algorithm, err := checkAlgorithm(c.String("algorithm"))
	if nil != err {
		return err
	}

	key, err := account.NewPrivateKey(algorithm, nil)
	if nil != err {
		return err
	}

	identity := key.Identity()
	return printJson(m.w, generateReply{
		PrivateKey: key,
		Identity:   identity,
		Address:    identity.Address(),
	})
}
