// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/ledgertx/fault"
)

// Signer - anything able to produce signatures for an identity
type Signer interface {
	Identity() *Identity
	Sign(message []byte) (Signature, error)
}

// PrivateKey - base type for private keys
type PrivateKey struct {
	PrivateKeyInterface
}

// PrivateKeyInterface - methods common to all private key algorithms
type PrivateKeyInterface interface {
	Identity() *Identity
	KeyType() int
	PrivateKeyBytes() []byte
	Sign(message []byte) (Signature, error)
	Bytes() []byte
	String() string
	MarshalText() ([]byte, error)
}

// ED25519PrivateKey - for ed25519 keys
type ED25519PrivateKey struct {
	PrivateKey []byte
}

// SECP256K1PrivateKey - for secp256k1 keys
type SECP256K1PrivateKey struct {
	PrivateKey []byte
}

const secp256k1PrivateKeySize = 32

// NewPrivateKey - generate a fresh key of the given algorithm
//
// a nil random source uses crypto/rand
func NewPrivateKey(algorithm int, random io.Reader) (*PrivateKey, error) {
	if nil == random {
		random = rand.Reader
	}

	switch algorithm {
	case ED25519:
		_, privateKey, err := ed25519.GenerateKey(random)
		if nil != err {
			return nil, err
		}
		return &PrivateKey{
			PrivateKeyInterface: &ED25519PrivateKey{
				PrivateKey: privateKey,
			},
		}, nil

	case SECP256K1:
		buffer := make([]byte, secp256k1PrivateKeySize)
		for {
			if _, err := io.ReadFull(random, buffer); nil != err {
				return nil, err
			}
			key := secp256k1.PrivKeyFromBytes(buffer)
			if !key.Key.IsZero() {
				return &PrivateKey{
					PrivateKeyInterface: &SECP256K1PrivateKey{
						PrivateKey: key.Serialize(),
					},
				}, nil
			}
		}

	default:
		return nil, fault.InvalidKeyType
	}
}

// ED25519FromSeed - deterministic ed25519 key from a 32 byte seed
func ED25519FromSeed(seed []byte) (*PrivateKey, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, fault.InvalidKeyLength
	}
	return &PrivateKey{
		PrivateKeyInterface: &ED25519PrivateKey{
			PrivateKey: ed25519.NewKeyFromSeed(seed),
		},
	}, nil
}

// PrivateKeyFromBytes - decode a key variant byte followed by the raw key
func PrivateKeyFromBytes(buffer []byte) (*PrivateKey, error) {
	if 0 == len(buffer) {
		return nil, fault.InvalidPrivateKey
	}

	keyVariant := buffer[0]
	if keyVariant&publicKeyCode == publicKeyCode {
		return nil, fault.InvalidPrivateKey
	}

	key := buffer[1:]
	switch int(keyVariant >> algorithmShift) {
	case ED25519:
		switch len(key) {
		case ed25519.SeedSize:
			return ED25519FromSeed(key)
		case ed25519.PrivateKeySize:
			privateKey := make([]byte, ed25519.PrivateKeySize)
			copy(privateKey, key)
			return &PrivateKey{
				PrivateKeyInterface: &ED25519PrivateKey{
					PrivateKey: privateKey,
				},
			}, nil
		default:
			return nil, fault.InvalidKeyLength
		}

	case SECP256K1:
		if secp256k1PrivateKeySize != len(key) {
			return nil, fault.InvalidKeyLength
		}
		k := secp256k1.PrivKeyFromBytes(key)
		if k.Key.IsZero() {
			return nil, fault.InvalidPrivateKey
		}
		return &PrivateKey{
			PrivateKeyInterface: &SECP256K1PrivateKey{
				PrivateKey: k.Serialize(),
			},
		}, nil

	default:
		return nil, fault.InvalidKeyType
	}
}

// PrivateKeyFromHex - decode the hex form produced by String
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.InvalidPrivateKey
	}
	return PrivateKeyFromBytes(buffer)
}

// UnmarshalText - convert the hex JSON form to a private key
func (privateKey *PrivateKey) UnmarshalText(s []byte) error {
	p, err := PrivateKeyFromHex(string(s))
	if nil != err {
		return err
	}
	privateKey.PrivateKeyInterface = p.PrivateKeyInterface
	return nil
}

// ED25519
// -------

// Identity - the public half of this key
func (privateKey *ED25519PrivateKey) Identity() *Identity {
	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, privateKey.PrivateKey[ed25519.PrivateKeySize-ed25519.PublicKeySize:])
	return &Identity{
		IdentityInterface: &ED25519Identity{
			PublicKey: publicKey,
		},
	}
}

// KeyType - key type code (see enumeration in account.go)
func (privateKey *ED25519PrivateKey) KeyType() int {
	return ED25519
}

// PrivateKeyBytes - fetch the private key as byte slice
func (privateKey *ED25519PrivateKey) PrivateKeyBytes() []byte {
	return privateKey.PrivateKey[:]
}

// Sign - ed25519 signature of the message itself
func (privateKey *ED25519PrivateKey) Sign(message []byte) (Signature, error) {
	return ed25519.Sign(privateKey.PrivateKey, message), nil
}

// Bytes - byte slice for encoded key
func (privateKey *ED25519PrivateKey) Bytes() []byte {
	return append([]byte{byte(ED25519 << algorithmShift)}, privateKey.PrivateKey[:]...)
}

// String - hex encoding of encoded key
func (privateKey *ED25519PrivateKey) String() string {
	return hex.EncodeToString(privateKey.Bytes())
}

// MarshalText - convert a private key to its hex JSON form
func (privateKey ED25519PrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}

// SECP256K1
// ---------

// Identity - the public half of this key
func (privateKey *SECP256K1PrivateKey) Identity() *Identity {
	key := secp256k1.PrivKeyFromBytes(privateKey.PrivateKey)
	return &Identity{
		IdentityInterface: &SECP256K1Identity{
			PublicKey: key.PubKey().SerializeCompressed(),
		},
	}
}

// KeyType - key type code (see enumeration in account.go)
func (privateKey *SECP256K1PrivateKey) KeyType() int {
	return SECP256K1
}

// PrivateKeyBytes - fetch the private key as byte slice
func (privateKey *SECP256K1PrivateKey) PrivateKeyBytes() []byte {
	return privateKey.PrivateKey[:]
}

// Sign - DER encoded ECDSA signature of the SHA-256 of the message
func (privateKey *SECP256K1PrivateKey) Sign(message []byte) (Signature, error) {
	key := secp256k1.PrivKeyFromBytes(privateKey.PrivateKey)
	hash := sha256.Sum256(message)
	return ecdsa.Sign(key, hash[:]).Serialize(), nil
}

// Bytes - byte slice for encoded key
func (privateKey *SECP256K1PrivateKey) Bytes() []byte {
	return append([]byte{byte(SECP256K1 << algorithmShift)}, privateKey.PrivateKey[:]...)
}

// String - hex encoding of encoded key
func (privateKey *SECP256K1PrivateKey) String() string {
	return hex.EncodeToString(privateKey.Bytes())
}

// MarshalText - convert a private key to its hex JSON form
func (privateKey SECP256K1PrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}
