// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/sha256"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/util"
)

// enumeration of supported key algorithms
const (
	// list of valid algorithms
	ED25519   = iota + 1
	SECP256K1 = iota + 1
	// end of list (one greater than last item)
	algorithmLimit = iota + 1
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01

	algorithmShift = 4 // shift 4 bits to get algorithm

	secp256k1PublicKeySize = 33 // compressed form
)

// Identity - the public half of a signing key
//
// on the wire an identity is a key variant byte followed by the fixed
// size public key of that algorithm
type Identity struct {
	IdentityInterface
}

// IdentityInterface - methods common to all key algorithms
type IdentityInterface interface {
	KeyType() int
	PublicKeyBytes() []byte
	CheckSignature(message []byte, signature Signature) error
	Bytes() []byte
	Address() Address
	String() string
	MarshalText() ([]byte, error)
}

// ED25519Identity - for ed25519 signatures
type ED25519Identity struct {
	PublicKey []byte
}

// SECP256K1Identity - for ECDSA signatures over SHA-256
type SECP256K1Identity struct {
	PublicKey []byte // compressed
}

// public key size for each algorithm
func publicKeySize(algorithm int) int {
	switch algorithm {
	case ED25519:
		return ed25519.PublicKeySize
	case SECP256K1:
		return secp256k1PublicKeySize
	default:
		return 0
	}
}

// IdentityFromBytes - read an identity from the start of a buffer
//
// returns the identity and the number of bytes used
func IdentityFromBytes(buffer []byte) (*Identity, int, error) {
	if 0 == len(buffer) {
		return nil, 0, fault.TruncatedData
	}

	keyVariant := buffer[0]
	if keyVariant&publicKeyCode != publicKeyCode {
		return nil, 0, fault.NotPublicKey
	}

	keyAlgorithm := int(keyVariant >> algorithmShift)
	keyLength := publicKeySize(keyAlgorithm)
	if 0 == keyLength {
		return nil, 0, fault.InvalidKeyType
	}
	if len(buffer) < 1+keyLength {
		return nil, 0, fault.TruncatedData
	}

	publicKey := make([]byte, keyLength)
	copy(publicKey, buffer[1:1+keyLength])

	identity, err := NewIdentity(keyAlgorithm, publicKey)
	if nil != err {
		return nil, 0, err
	}
	return identity, 1 + keyLength, nil
}

// NewIdentity - create an identity from a raw public key
func NewIdentity(algorithm int, publicKey []byte) (*Identity, error) {
	switch algorithm {
	case ED25519:
		if ed25519.PublicKeySize != len(publicKey) {
			return nil, fault.InvalidKeyLength
		}
		return &Identity{
			IdentityInterface: &ED25519Identity{
				PublicKey: publicKey,
			},
		}, nil

	case SECP256K1:
		if secp256k1PublicKeySize != len(publicKey) {
			return nil, fault.InvalidKeyLength
		}
		if _, err := secp256k1.ParsePubKey(publicKey); nil != err {
			return nil, fault.InvalidPublicKey
		}
		return &Identity{
			IdentityInterface: &SECP256K1Identity{
				PublicKey: publicKey,
			},
		}, nil

	default:
		return nil, fault.InvalidKeyType
	}
}

// IdentityFromBase58 - convert the checksummed text form to an identity
func IdentityFromBase58(s string) (*Identity, error) {
	decoded := util.FromBase58(s)
	if len(decoded) <= checksumLength {
		return nil, fault.CannotDecodeAddress
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha256.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	identity, n, err := IdentityFromBytes(decoded[:checksumStart])
	if nil != err {
		return nil, err
	}
	if n != checksumStart {
		return nil, fault.InvalidKeyLength
	}
	return identity, nil
}

// UnmarshalText - convert the Base58 JSON form to an identity
func (identity *Identity) UnmarshalText(s []byte) error {
	i, err := IdentityFromBase58(string(s))
	if nil != err {
		return err
	}
	identity.IdentityInterface = i.IdentityInterface
	return nil
}

// Equal - same algorithm and same public key
func (identity *Identity) Equal(other *Identity) bool {
	if nil == identity || nil == other || nil == identity.IdentityInterface || nil == other.IdentityInterface {
		return false
	}
	return bytes.Equal(identity.Bytes(), other.Bytes())
}

// Key - a comparable form of the identity for use in maps
func (identity *Identity) Key() string {
	return string(identity.Bytes())
}

// Verify - true if signature is valid for message
func (identity *Identity) Verify(message []byte, signature Signature) bool {
	return nil == identity.CheckSignature(message, signature)
}

// checksummed base58 encoding of a key variant and key
func toBase58(buffer []byte) string {
	checksum := sha256.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// ED25519
// -------

// KeyType - key type code (see enumeration above)
func (identity *ED25519Identity) KeyType() int {
	return ED25519
}

// PublicKeyBytes - fetch the public key as byte slice
func (identity *ED25519Identity) PublicKeyBytes() []byte {
	return identity.PublicKey[:]
}

// CheckSignature - check the signature of a message
func (identity *ED25519Identity) CheckSignature(message []byte, signature Signature) error {

	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}

	if !ed25519.Verify(identity.PublicKey[:], message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// Bytes - byte slice for encoded key
func (identity *ED25519Identity) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	return append([]byte{keyVariant}, identity.PublicKey[:]...)
}

// Address - the 32 byte address derived from the public key
func (identity *ED25519Identity) Address() Address {
	return NewAddress(identity.PublicKey)
}

// String - base58 encoding of encoded key
func (identity *ED25519Identity) String() string {
	return toBase58(identity.Bytes())
}

// MarshalText - convert an identity to its Base58 JSON form
func (identity ED25519Identity) MarshalText() ([]byte, error) {
	return []byte(identity.String()), nil
}

// SECP256K1
// ---------

// KeyType - key type code (see enumeration above)
func (identity *SECP256K1Identity) KeyType() int {
	return SECP256K1
}

// PublicKeyBytes - fetch the public key as byte slice
func (identity *SECP256K1Identity) PublicKeyBytes() []byte {
	return identity.PublicKey[:]
}

// CheckSignature - check a DER signature of the SHA-256 of a message
func (identity *SECP256K1Identity) CheckSignature(message []byte, signature Signature) error {

	publicKey, err := secp256k1.ParsePubKey(identity.PublicKey)
	if nil != err {
		return fault.InvalidPublicKey
	}

	sig, err := ecdsa.ParseDERSignature(signature)
	if nil != err {
		return fault.InvalidSignature
	}

	hash := sha256.Sum256(message)
	if !sig.Verify(hash[:], publicKey) {
		return fault.InvalidSignature
	}
	return nil
}

// Bytes - byte slice for encoded key
func (identity *SECP256K1Identity) Bytes() []byte {
	keyVariant := byte(SECP256K1<<algorithmShift) | publicKeyCode
	return append([]byte{keyVariant}, identity.PublicKey[:]...)
}

// Address - the 32 byte address derived from the public key
func (identity *SECP256K1Identity) Address() Address {
	return NewAddress(identity.PublicKey)
}

// String - base58 encoding of encoded key
func (identity *SECP256K1Identity) String() string {
	return toBase58(identity.Bytes())
}

// MarshalText - convert an identity to its Base58 JSON form
func (identity SECP256K1Identity) MarshalText() ([]byte, error) {
	return []byte(identity.String()), nil
}
