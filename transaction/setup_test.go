// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"encoding/hex"
	"testing"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/transaction"
)

// RFC 8032 tests 1 and 2
const (
	seed1 = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	seed2 = "4ccd089b28ff96da9db6c346ec114e0f5b8a319f35aba624da8cf6ed4fb8a6fb"
)

// payloads and signed forms recorded from this packer with fixed keys
// and counter, so any change to the layout shows up here
const (
	goldenTransferPayload = "a164000101010101010101010101010101010101010101010101010101010101010101" +
		"0202020202020202020202020202020202020202020202020202020202020202" +
		"c103e8640132010203040506070811d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"

	goldenTransferSigned = goldenTransferPayload +
		"40daf8ee779e7353a41708e50ffa7e42214dfb520637b7bc551e0f234eeba279796255d20c6d1026cf259a4abb41efefef322cae72b11738f4565352ecb190a204"

	goldenStakePayload = "a16781010101010101010101010101010101010101010101010101010101010101010100" +
		"020202020202020202020202020202020202020202020202020202020202020201" +
		"0303030303030303030303030303030303030303030303030303030303030303c1012c" +
		"0ac107d002c103e80000000000000000" +
		"800b66657463682e746f6b656e086164645374616b65027b7d" +
		"11d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a" +
		"113d4017c3e843895a92b70aa74d1b7ebc9c982ccf2ec4968cc0cd55f12af4660c"

	// length prefixed signatures
	goldenStakeSlot1 = "405534b8bb377bf5afe32c9898aef82d05811850773e405c2c3169f44a5aba02eb6412ab2ccc3120ea656a34765fe09237ef930f788db1bae30fe2dcff0acc580f"
	goldenStakeSlot2 = "40a5e4a8694ccaef2a73a4142d0d9c6f1677135530f6173892bbd874b164e8365a211d291120400b872f254b1c5ee812035950de4ca48ad8c1d19e35e7ed4f730b"

	goldenStakeSigned   = goldenStakePayload + goldenStakeSlot1 + goldenStakeSlot2
	goldenStakePartial2 = goldenStakePayload + "00" + goldenStakeSlot2
)

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}

func seedKey(t *testing.T, seed string) *account.PrivateKey {
	key, err := account.ED25519FromSeed(decodeHex(seed))
	if nil != err {
		t.Fatalf("seed key error: %s", err)
	}
	return key
}

func newKey(t *testing.T, algorithm int) *account.PrivateKey {
	key, err := account.NewPrivateKey(algorithm, nil)
	if nil != err {
		t.Fatalf("generate key error: %s", err)
	}
	return key
}

func filledAddress(b byte) account.Address {
	address := account.Address{}
	for i := range address {
		address[i] = b
	}
	return address
}

// the transaction behind goldenTransferPayload
func goldenTransfer(t *testing.T) *transaction.Transaction {
	tx := &transaction.Transaction{
		From:        filledAddress(0x01),
		ValidUntil:  100,
		ChargeRate:  1,
		ChargeLimit: 50,
		Counter:     0x0102030405060708,
	}
	if err := tx.AddTransfer(filledAddress(0x02), 1000); nil != err {
		t.Fatalf("add transfer error: %s", err)
	}
	if err := tx.AddSigner(seedKey(t, seed1).Identity()); nil != err {
		t.Fatalf("add signer error: %s", err)
	}
	return tx
}

// the transaction behind goldenStakePayload
func goldenStake(t *testing.T) *transaction.Transaction {
	tx := &transaction.Transaction{
		From:        filledAddress(0x01),
		ValidFrom:   10,
		ValidUntil:  2000,
		ChargeRate:  2,
		ChargeLimit: 1000,
	}
	if err := tx.AddTransfer(filledAddress(0x02), 1); nil != err {
		t.Fatalf("add transfer error: %s", err)
	}
	if err := tx.AddTransfer(filledAddress(0x03), 300); nil != err {
		t.Fatalf("add transfer error: %s", err)
	}
	err := tx.SetContract(transaction.ChainCode{Name: transaction.TokenChainCode}, nil, transaction.ActionAddStake, []byte("{}"))
	if nil != err {
		t.Fatalf("set contract error: %s", err)
	}
	for _, seed := range []string{seed1, seed2} {
		if err := tx.AddSigner(seedKey(t, seed).Identity()); nil != err {
			t.Fatalf("add signer error: %s", err)
		}
	}
	return tx
}

func hexString(b []byte) string {
	return hex.EncodeToString(b)
}
