// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/transaction"
)

func TestCheckTransaction(t *testing.T) {
	packed := []byte{0xa1, 0x60, 0x00}

	b, err := checkTransaction("  " + hex.EncodeToString(packed) + "\n")
	assert.Nil(t, err, "hex")
	assert.Equal(t, packed, b, "hex bytes")

	envelope, err := transaction.ToEnvelope(packed)
	assert.Nil(t, err, "envelope")
	b, err = checkTransaction(string(envelope))
	assert.Nil(t, err, "from envelope")
	assert.Equal(t, packed, b, "envelope bytes")

	_, err = checkTransaction("")
	assert.Equal(t, ErrTransactionRequired, err, "empty")

	_, err = checkTransaction(`{"ver":"0.1","data":"oWAA"}`)
	assert.Equal(t, fault.InvalidEnvelope, err, "old envelope version")

	_, err = checkTransaction("xyz")
	assert.NotNil(t, err, "not hex")
}

func TestCheckAlgorithm(t *testing.T) {
	tests := []struct {
		in        string
		algorithm int
		err       error
	}{
		{"", account.ED25519, nil},
		{"ED25519", account.ED25519, nil},
		{"secp256k1", account.SECP256K1, nil},
		{"rsa", 0, ErrInvalidAlgorithm},
	}

	for i, item := range tests {
		algorithm, err := checkAlgorithm(item.in)
		assert.Equal(t, item.err, err, "%d: error", i)
		assert.Equal(t, item.algorithm, algorithm, "%d: algorithm", i)
	}
}

func TestCheckKeyAndIdentity(t *testing.T) {
	key, err := account.NewPrivateKey(account.SECP256K1, nil)
	assert.Nil(t, err, "new key")

	decoded, err := checkKey(key.String())
	assert.Nil(t, err, "check key")
	assert.True(t, key.Identity().Equal(decoded.Identity()), "same identity")

	_, err = checkKey(" ")
	assert.Equal(t, ErrKeyRequired, err, "empty key")

	identities, err := checkIdentities([]string{key.Identity().String()})
	assert.Nil(t, err, "identities")
	assert.Equal(t, 1, len(identities), "identity count")

	address, err := checkAddress(key.Identity().Address().String())
	assert.Nil(t, err, "address")
	assert.Equal(t, key.Identity().Address(), address, "address round trip")
}

func TestCheckConnect(t *testing.T) {
	connect, err := checkConnect(" 127.0.0.1:2130 ")
	assert.Nil(t, err, "connect")
	assert.Equal(t, "127.0.0.1:2130", connect, "canonical")

	_, err = checkConnect("")
	assert.Equal(t, ErrConnectRequired, err, "empty connect")

	_, err = checkConnect("127.0.0.1:99999")
	assert.Equal(t, fault.InvalidPortNumber, err, "bad port")
}
