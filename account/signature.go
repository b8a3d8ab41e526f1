// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// Signature - raw signature bytes, format depends on the key algorithm
type Signature []byte

// IsEmpty - an unfilled signature slot
func (signature Signature) IsEmpty() bool {
	return 0 == len(signature)
}

// Equal - byte for byte comparison
func (signature Signature) Equal(other Signature) bool {
	return bytes.Equal(signature, other)
}

// String - hex for the %s format
func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// GoString - for the %#v format
func (signature Signature) GoString() string {
	return "<signature:" + hex.EncodeToString(signature) + ">"
}

// Scan - read a hex signature for the fmt scan routines
func (signature *Signature) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, isHexDigit)
	if nil != err {
		return err
	}
	return signature.UnmarshalText(token)
}

func isHexDigit(c rune) bool {
	return c >= '0' && c <= '9' || c >= 'A' && c <= 'F' || c >= 'a' && c <= 'f'
}

// MarshalText - convert signature to hex text
func (signature Signature) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(signature)))
	hex.Encode(b, signature)
	return b, nil
}

// UnmarshalText - convert hex text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	sig := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(sig, s)
	if nil != err {
		return err
	}
	*signature = sig[:byteCount]
	return nil
}
