// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitvector

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bitmark-inc/ledgertx/fault"
)

// BitVector - a bit array of immutable size
type BitVector struct {
	size   int
	buffer []byte // reversed byte order
}

// number of bytes to hold size bits
func byteLength(size int) int {
	return (size + 7) / 8
}

// New - create a zeroed vector of size bits
func New(size int) *BitVector {
	if size < 0 {
		size = 0
	}
	return &BitVector{
		size:   size,
		buffer: make([]byte, byteLength(size)),
	}
}

// FromBytes - create a vector from natural order bytes
//
// accepts max((len(data)-1)*8, 1) <= bitSize <= len(data)*8, a surplus
// leading byte must be zero and is dropped, bits above bitSize must be clear
func FromBytes(data []byte, bitSize int) (*BitVector, error) {
	if bitSize < 1 || bitSize > 8*len(data) || bitSize < 8*(len(data)-1) {
		return nil, fault.BitVectorSizeMismatch
	}

	n := byteLength(bitSize)
	surplus := data[:len(data)-n]
	for _, b := range surplus {
		if 0 != b {
			return nil, fault.BitVectorSizeMismatch
		}
	}
	data = data[len(data)-n:]

	if spare := uint(8*n - bitSize); 0 != spare && 0 != data[0]>>(8-spare) {
		return nil, fault.BitVectorSizeMismatch
	}

	v := &BitVector{
		size:   bitSize,
		buffer: make([]byte, n),
	}
	for i, b := range data {
		v.buffer[n-1-i] = b
	}
	return v, nil
}

// FromHex - create a vector from a natural order hex string
//
// the size is taken as all bits of the decoded bytes
func FromHex(s string) (*BitVector, error) {
	data, err := hex.DecodeString(s)
	if nil != err {
		return nil, err
	}
	return FromBytes(data, 8*len(data))
}

// FromIndices - create a vector of size bits with the listed bits set
func FromIndices(size int, indices ...int) (*BitVector, error) {
	v := New(size)
	for _, i := range indices {
		if err := v.Set(i); nil != err {
			return nil, err
		}
	}
	return v, nil
}

// Copy - duplicate a vector
func (v *BitVector) Copy() *BitVector {
	if nil == v {
		return New(0)
	}
	buffer := make([]byte, len(v.buffer))
	copy(buffer, v.buffer)
	return &BitVector{
		size:   v.size,
		buffer: buffer,
	}
}

// Len - number of bits
func (v *BitVector) Len() int {
	if nil == v {
		return 0
	}
	return v.size
}

// ByteLength - number of bytes in the backing buffer
func (v *BitVector) ByteLength() int {
	if nil == v {
		return 0
	}
	return len(v.buffer)
}

// Get - read a single bit, out of range bits read as clear
func (v *BitVector) Get(i int) bool {
	if nil == v || i < 0 || i >= v.size {
		return false
	}
	return 0 != v.buffer[i/8]&(1<<uint(i%8))
}

// Set - set a single bit
func (v *BitVector) Set(i int) error {
	if nil == v || i < 0 || i >= v.size {
		return fault.InvalidBitIndex
	}
	v.buffer[i/8] |= 1 << uint(i%8)
	return nil
}

// Clear - clear a single bit
func (v *BitVector) Clear(i int) error {
	if nil == v || i < 0 || i >= v.size {
		return fault.InvalidBitIndex
	}
	v.buffer[i/8] &^= 1 << uint(i%8)
	return nil
}

// SetBit - assign 0 or 1 to a bit
func (v *BitVector) SetBit(i int, bit int) error {
	switch bit {
	case 0:
		return v.Clear(i)
	case 1:
		return v.Set(i)
	default:
		return fault.InvalidBitIndex
	}
}

// IsZero - true if no bits are set
func (v *BitVector) IsZero() bool {
	if nil == v {
		return true
	}
	for _, b := range v.buffer {
		if 0 != b {
			return false
		}
	}
	return true
}

// Bytes - the bits in natural (big endian) byte order
func (v *BitVector) Bytes() []byte {
	if nil == v {
		return []byte{}
	}
	result := make([]byte, len(v.buffer))
	for i, b := range v.buffer {
		result[len(v.buffer)-1-i] = b
	}
	return result
}

// Hex - natural order hex string
func (v *BitVector) Hex() string {
	return hex.EncodeToString(v.Bytes())
}

// Binary - natural order binary string, eight characters per byte
func (v *BitVector) Binary() string {
	var s strings.Builder
	for _, b := range v.Bytes() {
		fmt.Fprintf(&s, "%08b", b)
	}
	return s.String()
}

// String - for the fmt package
func (v *BitVector) String() string {
	return fmt.Sprintf("%d:%s", v.Len(), v.Hex())
}

// Equal - same size and same bits
func (v *BitVector) Equal(other *BitVector) bool {
	if v.Len() != other.Len() {
		return false
	}
	return bytes.Equal(v.Bytes(), other.Bytes())
}

type bitVectorJSON struct {
	Size int    `json:"size"`
	Hex  string `json:"hex"`
}

// MarshalJSON - size and natural order hex
func (v *BitVector) MarshalJSON() ([]byte, error) {
	return json.Marshal(bitVectorJSON{
		Size: v.Len(),
		Hex:  v.Hex(),
	})
}

// UnmarshalJSON - inverse of MarshalJSON
func (v *BitVector) UnmarshalJSON(s []byte) error {
	var j bitVectorJSON
	if err := json.Unmarshal(s, &j); nil != err {
		return err
	}
	if 0 == j.Size && "" == j.Hex {
		*v = *New(0)
		return nil
	}
	data, err := hex.DecodeString(j.Hex)
	if nil != err {
		return err
	}
	r, err := FromBytes(data, j.Size)
	if nil != err {
		return err
	}
	*v = *r
	return nil
}
