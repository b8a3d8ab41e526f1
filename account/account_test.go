// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/fault"
)

// RFC 8032 test 1
const (
	rfcSeed      = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	rfcPublicKey = "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"
	rfcSignature = "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b"

	rfcAddressHex    = "21fe31dfa154a261626bf854046fd2271b7bed4b6abe45aa58877ef47f9721b9"
	rfcAddressBase58 = "FyJeV7M5jsBexAqntUdrgTLHdxS8zrMvugqWj5aFFgP3GJpQj"
	rfcIdentity      = "bgVveHWnmV5qmrw5cgfKv4sZH4naUnpfBcDuEm6Sf9oybgUZKw"
)

func rfcKey(t *testing.T) *account.PrivateKey {
	key, err := account.ED25519FromSeed(decodeHex(rfcSeed))
	if nil != err {
		t.Fatalf("seed error: %s", err)
	}
	return key
}

func TestED25519KnownVector(t *testing.T) {
	key := rfcKey(t)

	identity := key.Identity()
	assert.Equal(t, account.ED25519, identity.KeyType(), "wrong key type")
	assert.Equal(t, rfcPublicKey, hex.EncodeToString(identity.PublicKeyBytes()), "wrong public key")
	assert.Equal(t, rfcIdentity, identity.String(), "wrong identity text")

	signature, err := key.Sign([]byte{})
	assert.Nil(t, err, "sign error")
	assert.Equal(t, rfcSignature, signature.String(), "wrong signature")
	assert.True(t, identity.Verify([]byte{}, signature), "signature did not verify")
	assert.False(t, identity.Verify([]byte{0}, signature), "signature verified wrong message")

	address := identity.Address()
	assert.Equal(t, rfcAddressHex, hex.EncodeToString(address.Bytes()), "wrong address")
	assert.Equal(t, rfcAddressBase58, address.String(), "wrong address text")
}

func TestIdentityFromBytes(t *testing.T) {
	for _, algorithm := range []int{account.ED25519, account.SECP256K1} {
		key, err := account.NewPrivateKey(algorithm, nil)
		if nil != err {
			t.Fatalf("%d: generate error: %s", algorithm, err)
		}
		identity := key.Identity()
		encoded := identity.Bytes()

		// trailing bytes belong to the caller
		buffer := append(append([]byte{}, encoded...), 0xaa, 0xbb)
		decoded, n, err := account.IdentityFromBytes(buffer)
		if nil != err {
			t.Fatalf("%d: decode error: %s", algorithm, err)
		}
		if n != len(encoded) {
			t.Errorf("%d: used: %d  expected: %d", algorithm, n, len(encoded))
		}
		if !decoded.Equal(identity) {
			t.Errorf("%d: identity: %x  expected: %x", algorithm, decoded.Bytes(), encoded)
		}
		if decoded.Address() != identity.Address() {
			t.Errorf("%d: address mismatch", algorithm)
		}

		_, _, err = account.IdentityFromBytes(encoded[:len(encoded)-1])
		if fault.TruncatedData != err {
			t.Errorf("%d: truncated error: %v", algorithm, err)
		}
	}
}

func TestIdentityFromBytesInvalid(t *testing.T) {
	tests := []struct {
		buffer []byte
		err    error
	}{
		{[]byte{}, fault.TruncatedData},
		{[]byte{0x10}, fault.NotPublicKey},
		{append([]byte{0x31}, make([]byte, 32)...), fault.InvalidKeyType},
		{append([]byte{0x21}, make([]byte, 33)...), fault.InvalidPublicKey},
	}

	for i, test := range tests {
		_, _, err := account.IdentityFromBytes(test.buffer)
		if test.err != err {
			t.Errorf("%d: error: %v  expected: %s", i, err, test.err)
		}
	}
}

func TestIdentityBase58(t *testing.T) {
	identity, err := account.IdentityFromBase58(rfcIdentity)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, rfcPublicKey, hex.EncodeToString(identity.PublicKeyBytes()), "wrong public key")

	// alter the final checksum character
	damaged := rfcIdentity[:len(rfcIdentity)-1] + "x"
	_, err = account.IdentityFromBase58(damaged)
	assert.Equal(t, fault.ChecksumMismatch, err, "wrong error")

	_, err = account.IdentityFromBase58("0OIl")
	assert.Equal(t, fault.CannotDecodeAddress, err, "wrong error")
}

func TestSECP256K1SignVerify(t *testing.T) {
	key, err := account.NewPrivateKey(account.SECP256K1, nil)
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}

	identity := key.Identity()
	assert.Equal(t, account.SECP256K1, identity.KeyType(), "wrong key type")
	assert.Equal(t, 33, len(identity.PublicKeyBytes()), "wrong public key size")

	message := []byte("ledger transaction payload")
	signature, err := key.Sign(message)
	assert.Nil(t, err, "sign error")
	assert.Nil(t, identity.CheckSignature(message, signature), "signature did not verify")

	message[0] ^= 1
	assert.Equal(t, fault.InvalidSignature, identity.CheckSignature(message, signature), "mutated message verified")
	assert.Equal(t, fault.InvalidSignature, identity.CheckSignature(message, account.Signature{1, 2, 3}), "garbage signature verified")
}

func TestPrivateKeyHex(t *testing.T) {
	for _, algorithm := range []int{account.ED25519, account.SECP256K1} {
		key, err := account.NewPrivateKey(algorithm, nil)
		if nil != err {
			t.Fatalf("%d: generate error: %s", algorithm, err)
		}

		decoded, err := account.PrivateKeyFromHex(key.String())
		if nil != err {
			t.Fatalf("%d: decode error: %s", algorithm, err)
		}
		if !bytes.Equal(decoded.Bytes(), key.Bytes()) {
			t.Errorf("%d: key: %x  expected: %x", algorithm, decoded.Bytes(), key.Bytes())
		}
		if !decoded.Identity().Equal(key.Identity()) {
			t.Errorf("%d: identity mismatch", algorithm)
		}
	}

	// seed form of an ed25519 key
	key, err := account.PrivateKeyFromHex("10" + rfcSeed)
	assert.Nil(t, err, "seed decode error")
	assert.Equal(t, rfcIdentity, key.Identity().String(), "wrong identity from seed")
}

func TestPrivateKeyInvalid(t *testing.T) {
	tests := []struct {
		hex string
		err error
	}{
		{"", fault.InvalidPrivateKey},
		{"zz", fault.InvalidPrivateKey},
		{"11" + rfcSeed, fault.InvalidPrivateKey}, // public key flag set
		{"30" + rfcSeed, fault.InvalidKeyType},
		{"10" + rfcSeed[2:], fault.InvalidKeyLength},
		{"20" + rfcSeed + "00", fault.InvalidKeyLength},
		{"20" + hex.EncodeToString(make([]byte, 32)), fault.InvalidPrivateKey},
	}

	for i, test := range tests {
		_, err := account.PrivateKeyFromHex(test.hex)
		if test.err != err {
			t.Errorf("%d: error: %v  expected: %s", i, err, test.err)
		}
	}
}

func TestAddressText(t *testing.T) {
	address, err := account.AddressFromBase58(rfcAddressBase58)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, rfcAddressHex, hex.EncodeToString(address[:]), "wrong address")

	_, err = account.AddressFromBase58(rfcAddressBase58[:len(rfcAddressBase58)-1] + "2")
	assert.Equal(t, fault.ChecksumMismatch, err, "wrong error")

	_, err = account.AddressFromBase58("abc")
	assert.Equal(t, fault.CannotDecodeAddress, err, "wrong error")

	_, err = account.AddressFromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.InvalidAddress, err, "wrong error")

	type holder struct {
		Owner account.Address `json:"owner"`
	}
	buffer, err := json.Marshal(holder{Owner: address})
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `{"owner":"`+rfcAddressBase58+`"}`, string(buffer), "wrong JSON")

	var h holder
	assert.Nil(t, json.Unmarshal(buffer, &h), "unmarshal error")
	assert.Equal(t, address, h.Owner, "wrong address after unmarshal")
	assert.False(t, h.Owner.IsZero(), "address should not be zero")
}

func TestSignatureText(t *testing.T) {
	signature := account.Signature(decodeHex(rfcSignature))
	text, err := signature.MarshalText()
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, rfcSignature, string(text), "wrong text")

	var s account.Signature
	assert.Nil(t, s.UnmarshalText(text), "unmarshal error")
	assert.True(t, s.Equal(signature), "signature mismatch")
	assert.True(t, account.Signature{}.IsEmpty(), "empty signature")
}

func decodeHex(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if nil != err {
		panic(err)
	}
	return b
}
