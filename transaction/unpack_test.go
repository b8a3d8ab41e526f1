// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/bitvector"
	"github.com/bitmark-inc/ledgertx/digest"
	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/transaction"
)

func TestDecodeGolden(t *testing.T) {
	tests := []struct {
		packed   string
		expected *transaction.Transaction
	}{
		{goldenTransferSigned, goldenTransfer(t)},
		{goldenStakeSigned, goldenStake(t)},
	}

	for i, test := range tests {
		ok, tx, err := transaction.DecodeTransaction(decodeHex(test.packed))
		if nil != err {
			t.Errorf("%d: decode error: %s", i, err)
			continue
		}
		if !ok {
			t.Errorf("%d: signatures did not verify", i)
		}
		if err := tx.MatchesExpected(test.expected); nil != err {
			t.Errorf("%d: mismatch: %s", i, err)
		}
		for j, signatory := range tx.Signers.Items() {
			if !signatory.Verified {
				t.Errorf("%d: signer %d not verified", i, j)
			}
		}

		// re-encoding the recorded signatures gives the same bytes
		packed, err := transaction.EncodeSigned(tx)
		if nil != err {
			t.Errorf("%d: encode error: %s", i, err)
			continue
		}
		if !bytes.Equal(decodeHex(test.packed), packed) {
			t.Errorf("%d: re-encoded: %x  expected: %s", i, packed, test.packed)
		}
	}
}

func TestSignEncodeDecodeCycle(t *testing.T) {
	key1 := newKey(t, account.ED25519)
	key2 := newKey(t, account.SECP256K1)

	mask, err := bitvector.FromIndices(16, 0, 9, 15)
	if nil != err {
		t.Fatalf("mask error: %s", err)
	}

	tx, err := transaction.NewContractCall(
		key1.Identity().Address(),
		digest.NewDigest([]byte("contract source")),
		key2.Identity().Address(),
		mask,
		"vote",
		[]byte{0x00, 0xff, 0x10},
		500,
		key1.Identity(),
		key2.Identity(),
	)
	if nil != err {
		t.Fatalf("build error: %s", err)
	}
	tx.ValidFrom = 7
	tx.ValidUntil = 1 << 40
	assert.Nil(t, tx.AddTransfer(filledAddress(0x09), 1<<63), "add transfer error")

	packed, err := transaction.EncodeTransaction(tx, []account.Signer{key1, key2})
	if nil != err {
		t.Fatalf("encode error: %s", err)
	}

	ok, decoded, err := transaction.DecodeTransaction(packed)
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}
	assert.True(t, ok, "signatures did not verify")
	assert.Nil(t, decoded.MatchesExpected(tx), "decoded transaction differs")
	assert.True(t, mask.Equal(decoded.ShardMask), "shard mask differs")
	assert.Equal(t, tx.Target, decoded.Target, "target differs")

	txId, err := tx.TxId()
	assert.Nil(t, err, "id error")
	decodedId, err := decoded.TxId()
	assert.Nil(t, err, "id error")
	assert.Equal(t, txId, decodedId, "transaction id differs")
}

func TestDecodeTamperedPayload(t *testing.T) {
	packed := decodeHex(goldenTransferSigned)

	// charge limit 50 → 51
	offset := 3 + 32 + 32 + 3 + 1 + 1
	assert.Equal(t, byte(50), packed[offset], "test offset is wrong")
	packed[offset] = 51

	ok, tx, err := transaction.DecodeTransaction(packed)
	assert.Nil(t, err, "tampering is not a structural error")
	assert.False(t, ok, "tampered transaction verified")
	assert.False(t, tx.Signers.Items()[0].Verified, "signer verified")
	assert.Equal(t, uint64(51), tx.ChargeLimit, "wrong charge limit")

	_, err = transaction.DecodePartial(packed)
	assert.Equal(t, fault.InvalidSignature, err, "partial decode accepted bad signature")
}

func TestDecodeMalformed(t *testing.T) {
	valid := decodeHex(goldenTransferSigned)
	modify := func(offset int, b byte) []byte {
		buffer := append([]byte{}, valid...)
		buffer[offset] = b
		return buffer
	}
	stake := decodeHex(goldenStakeSigned)
	shardMaskOffset := len(decodeHex(goldenStakePayload)) - 2*33 - 3 - 9 - 12 - 1
	assert.Equal(t, byte(0x80), stake[shardMaskOffset], "test offset is wrong")
	badShardMask := append([]byte{}, stake...)
	badShardMask[shardMaskOffset] = 0x47

	tests := []struct {
		buffer []byte
		err    error
	}{
		{[]byte{}, fault.TruncatedData},
		{modify(0, 0xa2), fault.InvalidMagic},
		{modify(1, 0x44), fault.UnsupportedVersion},
		{modify(1, 0x6c), fault.ChargeUnitNotSupported},
		{modify(1, 0x74), fault.ReservedHeaderBits},
		{modify(1, 0x62), fault.InvalidCount},
		{modify(2, 0x01), fault.NotPublicKey},
		{modify(3+32+32, 0x00), fault.InvalidAmount},
		{valid[:len(valid)-1], fault.TruncatedData},
		{append(append([]byte{}, valid...), 0x00), fault.TrailingData},
		{badShardMask, fault.ShardMaskOutOfRange},
	}

	for i, test := range tests {
		_, _, err := transaction.DecodeTransaction(test.buffer)
		if test.err != err {
			t.Errorf("%d: error: %v  expected: %s", i, err, test.err)
		}
	}

	_, _, err := transaction.DecodeTransaction(modify(0, 0x00))
	assert.True(t, fault.IsErrHeader(err), "bad magic is not a header error")
	_, _, err = transaction.DecodeTransaction(modify(1, 0x6c))
	assert.True(t, fault.IsErrHeader(err), "charge unit is not a header error")
}

func TestMutationAfterSigning(t *testing.T) {
	key := seedKey(t, seed1)
	tx := goldenTransfer(t)

	assert.Nil(t, transaction.Sign(tx, key), "sign error")
	ok, err := transaction.Verify(tx)
	assert.Nil(t, err, "verify error")
	assert.True(t, ok, "fresh signature did not verify")

	packed, err := transaction.EncodeSigned(tx)
	assert.Nil(t, err, "encode error")
	assert.Equal(t, goldenTransferSigned, hexString(packed), "wrong signed form")

	// the recorded signature remains but no longer matches
	tx.ChargeLimit += 1
	ok, err = transaction.Verify(tx)
	assert.Nil(t, err, "verify error")
	assert.False(t, ok, "stale signature verified")
	assert.False(t, tx.Signers.Items()[0].Verified, "stale signer still verified")

	packed, err = transaction.EncodeSigned(tx)
	assert.Nil(t, err, "encode error")
	ok, _, err = transaction.DecodeTransaction(packed)
	assert.Nil(t, err, "decode error")
	assert.False(t, ok, "stale signature verified after decode")
}

func TestSignNotSigner(t *testing.T) {
	tx := goldenTransfer(t)
	err := transaction.Sign(tx, seedKey(t, seed2))
	assert.Equal(t, fault.SignerNotInTransaction, err, "wrong error")

	_, err = transaction.EncodeSigned(tx)
	assert.Equal(t, fault.IncompleteSignatures, err, "wrong error")
}
