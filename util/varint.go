// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"math"
	"math/big"

	"github.com/bitmark-inc/ledgertx/fault"
)

// VarintMaximumBytes - maximum possible number of bytes in a Varint
const VarintMaximumBytes = 9

// header layout of the first byte
//
//   0xxx xxxx    value 0 .. 127 held directly
//   111x xxxx    value -1 .. -31 held as magnitude
//   110s 00ll    extended: s = negative, 2^ll big-endian magnitude bytes follow
const (
	smallNegativeFlag = 0xe0
	smallNegativeMask = 0x1f
	extendedFlag      = 0xc0
	extendedSignFlag  = 0x10
	extendedSizeMask  = 0x0f
	classMask         = 0xe0
	maximumLog2Bytes  = 3
)

// ToVarint - convert a signed 64 bit integer to a Varint
func ToVarint(value int64) []byte {
	if value < 0 {
		// two's complement negation is exact for MinInt64 as uint64
		return encodeMagnitude(true, uint64(-(value + 1))+1)
	}
	return encodeMagnitude(false, uint64(value))
}

// ToUvarint - convert an unsigned 64 bit integer to a Varint
func ToUvarint(value uint64) []byte {
	return encodeMagnitude(false, value)
}

// BigToVarint - convert an arbitrary precision integer to a Varint
//
// fails with EncodingOverflow if the magnitude needs more than 64 bits
func BigToVarint(value *big.Int) ([]byte, error) {
	if nil == value {
		return nil, fault.InvalidCount
	}
	magnitude := new(big.Int).Abs(value)
	if magnitude.BitLen() > 64 {
		return nil, fault.EncodingOverflow
	}
	return encodeMagnitude(value.Sign() < 0, magnitude.Uint64()), nil
}

// FromVarint - convert a Varint at the start of buffer to an int64
//
// also return the number of bytes used as second value
func FromVarint(buffer []byte) (int64, int, error) {
	negative, magnitude, n, err := decodeMagnitude(buffer)
	if nil != err {
		return 0, 0, err
	}
	if negative {
		if magnitude > uint64(math.MaxInt64)+1 {
			return 0, 0, fault.EncodingOverflow
		}
		return int64(-magnitude), n, nil
	}
	if magnitude > math.MaxInt64 {
		return 0, 0, fault.EncodingOverflow
	}
	return int64(magnitude), n, nil
}

// FromUvarint - convert a Varint at the start of buffer to a uint64
//
// also return the number of bytes used as second value
func FromUvarint(buffer []byte) (uint64, int, error) {
	negative, magnitude, n, err := decodeMagnitude(buffer)
	if nil != err {
		return 0, 0, err
	}
	if negative {
		return 0, 0, fault.NegativeUnsigned
	}
	return magnitude, n, nil
}

// FromVarintBig - convert a Varint at the start of buffer to a big.Int
func FromVarintBig(buffer []byte) (*big.Int, int, error) {
	negative, magnitude, n, err := decodeMagnitude(buffer)
	if nil != err {
		return nil, 0, err
	}
	value := new(big.Int).SetUint64(magnitude)
	if negative {
		value.Neg(value)
	}
	return value, n, nil
}

// ClippedVarint - return a value as an int restricted to minimum..maximum
//
// any value outside the range is an error
func ClippedVarint(buffer []byte, minimum int, maximum int) (int, int, error) {
	if minimum < 0 || maximum < 0 || minimum > maximum {
		return 0, 0, fault.InvalidCount
	}
	value, n, err := FromUvarint(buffer)
	if nil != err {
		return 0, 0, err
	}
	if value < uint64(minimum) || value > uint64(maximum) {
		return 0, 0, fault.InvalidCount
	}
	return int(value), n, nil
}

// number of bytes as a power of two needed to hold a magnitude
func log2Bytes(magnitude uint64) int {
	switch {
	case magnitude <= math.MaxUint8:
		return 0
	case magnitude <= math.MaxUint16:
		return 1
	case magnitude <= math.MaxUint32:
		return 2
	default:
		return 3
	}
}

func encodeMagnitude(negative bool, magnitude uint64) []byte {
	if !negative && magnitude <= 0x7f {
		return []byte{byte(magnitude)}
	}
	if negative && magnitude <= smallNegativeMask {
		return []byte{smallNegativeFlag | byte(magnitude)}
	}

	l := log2Bytes(magnitude)
	size := 1 << uint(l)

	header := byte(extendedFlag | l)
	if negative {
		header |= extendedSignFlag
	}

	result := make([]byte, 1+size, VarintMaximumBytes)
	result[0] = header
	for i := size; i > 0; i -= 1 {
		result[i] = byte(magnitude)
		magnitude >>= 8
	}
	return result
}

func decodeMagnitude(buffer []byte) (bool, uint64, int, error) {
	if 0 == len(buffer) {
		return false, 0, 0, fault.TruncatedData
	}
	header := buffer[0]

	if 0 == header&0x80 {
		return false, uint64(header), 1, nil
	}

	switch header & classMask {
	case smallNegativeFlag:
		magnitude := uint64(header & smallNegativeMask)
		if 0 == magnitude {
			return false, 0, 0, fault.NonMinimalVarint
		}
		return true, magnitude, 1, nil

	case extendedFlag: // sign bit lies below the class bits
		l := int(header & extendedSizeMask)
		if l > maximumLog2Bytes {
			return false, 0, 0, fault.InvalidVarintHeader
		}
		size := 1 << uint(l)
		if len(buffer) < 1+size {
			return false, 0, 0, fault.TruncatedData
		}
		magnitude := uint64(0)
		for _, b := range buffer[1 : 1+size] {
			magnitude = magnitude<<8 | uint64(b)
		}

		negative := 0 != header&extendedSignFlag

		// only the shortest form is accepted so that a decoded
		// payload re-encodes to identical bytes
		if log2Bytes(magnitude) != l {
			return false, 0, 0, fault.NonMinimalVarint
		}
		if !negative && magnitude <= 0x7f {
			return false, 0, 0, fault.NonMinimalVarint
		}
		if negative && magnitude <= smallNegativeMask {
			return false, 0, 0, fault.NonMinimalVarint
		}
		return negative, magnitude, 1 + size, nil

	default:
		return false, 0, 0, fault.InvalidVarintHeader
	}
}
