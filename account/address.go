// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"

	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/util"
)

// AddressLength - number of bytes in an address
const AddressLength = sha256.Size

// Address - the SHA-256 of a public key
//
// an address is the ledger's notion of an account: transfers are
// made to addresses and a transaction's from field is one
type Address [AddressLength]byte

// NewAddress - derive the address for a raw public key
func NewAddress(publicKey []byte) Address {
	return Address(sha256.Sum256(publicKey))
}

// AddressFromBytes - copy a 32 byte buffer into an address
func AddressFromBytes(buffer []byte) (Address, error) {
	address := Address{}
	if AddressLength != len(buffer) {
		return address, fault.InvalidAddress
	}
	copy(address[:], buffer)
	return address, nil
}

// AddressFromBase58 - convert the checksummed text form to an address
func AddressFromBase58(s string) (Address, error) {
	address := Address{}

	decoded := util.FromBase58(s)
	if AddressLength+checksumLength != len(decoded) {
		return address, fault.CannotDecodeAddress
	}

	checksum := sha256.Sum256(decoded[:AddressLength])
	if !bytes.Equal(checksum[:checksumLength], decoded[AddressLength:]) {
		return address, fault.ChecksumMismatch
	}

	copy(address[:], decoded[:AddressLength])
	return address, nil
}

// Bytes - the address as a byte slice
func (address Address) Bytes() []byte {
	return address[:]
}

// IsZero - true if no address was set
func (address Address) IsZero() bool {
	return Address{} == address
}

// String - base58 of the address with a 4 byte checksum
func (address Address) String() string {
	return toBase58(address[:])
}

// GoString - for the %#v format
func (address Address) GoString() string {
	return "<address:" + hex.EncodeToString(address[:]) + ">"
}

// MarshalText - convert an address to its Base58 JSON form
func (address Address) MarshalText() ([]byte, error) {
	return []byte(address.String()), nil
}

// UnmarshalText - convert the Base58 JSON form to an address
func (address *Address) UnmarshalText(s []byte) error {
	a, err := AddressFromBase58(string(s))
	if nil != err {
		return err
	}
	*address = a
	return nil
}
