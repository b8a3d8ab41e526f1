// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/ledgertx/bitvector"
	"github.com/bitmark-inc/ledgertx/fault"
)

// shard mask header forms
//
//   1000 0000   wildcard, all shards
//   000f vvvv   inline, f set for a 4 bit mask else 2 bit, v = mask
//   0100 0nnn   extended, 2^(n+3) bits follow as 2^n bytes
const (
	shardMaskWildcard = 0x80
	shardMaskExtended = 0x40
	shardMaskFourBit  = 0x10
	shardMaskInline   = 0x0f

	shardMaskMinimumExtended = 3 // log2(8)
	shardMaskMaximumExtended = 9 // log2(512)
	shardMaskMaximumBits     = 1 << shardMaskMaximumExtended
)

func isWildcard(mask *bitvector.BitVector) bool {
	return nil == mask || mask.Len() <= 1
}

// every wildcard is equivalent
func sameShardMask(a *bitvector.BitVector, b *bitvector.BitVector) bool {
	if isWildcard(a) || isWildcard(b) {
		return isWildcard(a) && isWildcard(b)
	}
	return a.Equal(b)
}

// log2 of a power of two, -1 otherwise
func exactLog2(n int) int {
	if n <= 0 || 0 != n&(n-1) {
		return -1
	}
	l := 0
	for n > 1 {
		n >>= 1
		l += 1
	}
	return l
}

// EncodeShardMask - header byte followed by any extended mask bytes
func EncodeShardMask(mask *bitvector.BitVector) ([]byte, error) {
	if isWildcard(mask) {
		return []byte{shardMaskWildcard}, nil
	}

	size := mask.Len()
	if size > shardMaskMaximumBits {
		return nil, fault.ShardMaskOutOfRange
	}
	l := exactLog2(size)
	if l < 0 {
		return nil, fault.ShardMaskNotPowerOfTwo
	}

	// 2 or 4 bits
	if size < 8 {
		header := mask.Bytes()[0] & shardMaskInline
		if 4 == size {
			header |= shardMaskFourBit
		}
		return []byte{header}, nil
	}

	header := byte(shardMaskExtended | (l - shardMaskMinimumExtended))
	return append([]byte{header}, mask.Bytes()...), nil
}

// DecodeShardMask - read a shard mask from the start of buffer
//
// a wildcard decodes as nil; also returns the number of bytes used
func DecodeShardMask(buffer []byte) (*bitvector.BitVector, int, error) {
	if 0 == len(buffer) {
		return nil, 0, fault.TruncatedData
	}

	header := buffer[0]
	switch {
	case shardMaskWildcard == header:
		return nil, 1, nil

	case 0 == header&0xe0:
		size := 2
		if 0 != header&shardMaskFourBit {
			size = 4
		}
		value := header & shardMaskInline
		if value >= 1<<uint(size) {
			return nil, 0, fault.ShardMaskOutOfRange
		}
		mask, err := bitvector.FromBytes([]byte{value}, size)
		if nil != err {
			return nil, 0, err
		}
		return mask, 1, nil

	case shardMaskExtended == header&0xf8:
		l := int(header&0x07) + shardMaskMinimumExtended
		if l > shardMaskMaximumExtended {
			return nil, 0, fault.ShardMaskOutOfRange
		}
		size := 1 << uint(l)
		byteCount := size / 8
		if len(buffer) < 1+byteCount {
			return nil, 0, fault.TruncatedData
		}
		mask, err := bitvector.FromBytes(buffer[1:1+byteCount], size)
		if nil != err {
			return nil, 0, err
		}
		return mask, 1 + byteCount, nil

	default:
		return nil, 0, fault.ShardMaskOutOfRange
	}
}
