// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"strings"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/transaction"
	"github.com/bitmark-inc/ledgertx/util"
)

// packed bytes from hex or from a JSON envelope
func checkTransaction(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return nil, ErrTransactionRequired
	}
	if strings.HasPrefix(s, "{") {
		return transaction.FromEnvelope([]byte(s))
	}
	return hex.DecodeString(s)
}

func checkKey(s string) (*account.PrivateKey, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return nil, ErrKeyRequired
	}
	return account.PrivateKeyFromHex(s)
}

func checkAlgorithm(s string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ed25519", "":
		return account.ED25519, nil
	case "secp256k1":
		return account.SECP256K1, nil
	default:
		return 0, ErrInvalidAlgorithm
	}
}

func checkAddress(s string) (account.Address, error) {
	return account.AddressFromBase58(strings.TrimSpace(s))
}

func checkIdentities(list []string) ([]*account.Identity, error) {
	identities := make([]*account.Identity, 0, len(list))
	for _, s := range list {
		identity, err := account.IdentityFromBase58(strings.TrimSpace(s))
		if nil != err {
			return nil, err
		}
		identities = append(identities, identity)
	}
	return identities, nil
}

func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", ErrConnectRequired
	}
	return util.CanonicalIPandPort(connect)
}

// packed partial copy as hex
func packedHex(tx *transaction.Transaction) (string, error) {
	packed, err := transaction.EncodePartial(tx)
	if nil != err {
		return "", err
	}
	return hex.EncodeToString(packed), nil
}
