// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package submission_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/transaction"
)

const testingDirName = "testing"

func TestMain(m *testing.M) {
	os.RemoveAll(testingDirName)
	os.Mkdir(testingDirName, 0o700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	result := m.Run()

	logger.Finalise()
	os.RemoveAll(testingDirName)
	os.Exit(result)
}

func newKey(t *testing.T) *account.PrivateKey {
	key, err := account.NewPrivateKey(account.ED25519, nil)
	if nil != err {
		t.Fatalf("new private key error: %s", err)
	}
	return key
}

// transfer from the first key's address, signed by the given signers
func packedTransfer(t *testing.T, keys []*account.PrivateKey, signers ...*account.PrivateKey) []byte {
	identities := make([]*account.Identity, 0, len(keys))
	for _, key := range keys {
		identities = append(identities, key.Identity())
	}
	tx, err := transaction.NewTransfer(keys[0].Identity().Address(), newKey(t).Identity().Address(), 500, 1, identities...)
	if nil != err {
		t.Fatalf("new transfer error: %s", err)
	}

	for _, key := range signers {
		if err := transaction.Sign(tx, key); nil != err {
			t.Fatalf("sign error: %s", err)
		}
	}
	packed, err := transaction.EncodePartial(tx)
	if nil != err {
		t.Fatalf("encode error: %s", err)
	}
	return packed
}

// transfer from the first key's address, every key signs and the
// damaged key's signature has a byte flipped
func damagedTransfer(t *testing.T, keys []*account.PrivateKey, damaged *account.PrivateKey) []byte {
	identities := make([]*account.Identity, 0, len(keys))
	for _, key := range keys {
		identities = append(identities, key.Identity())
	}
	tx, err := transaction.NewTransfer(keys[0].Identity().Address(), newKey(t).Identity().Address(), 500, 1, identities...)
	if nil != err {
		t.Fatalf("new transfer error: %s", err)
	}

	for _, key := range keys {
		if err := transaction.Sign(tx, key); nil != err {
			t.Fatalf("sign error: %s", err)
		}
	}

	signatory, ok := tx.Signers.Lookup(damaged.Identity())
	if !ok {
		t.Fatalf("damaged key is not a signer")
	}
	signatory.Signature[0] ^= 0xff

	packed, err := transaction.EncodePartial(tx)
	if nil != err {
		t.Fatalf("encode error: %s", err)
	}
	return packed
}
