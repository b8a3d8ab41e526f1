// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/mr-tron/base58"
)

// ToBase58 - convert a byte slice to base58 text
func ToBase58(data []byte) string {
	return base58.Encode(data)
}

// FromBase58 - convert base58 text to a byte slice
//
// returns an empty slice if the text is not valid base58
func FromBase58(s string) []byte {
	data, err := base58.Decode(s)
	if nil != err {
		return []byte{}
	}
	return data
}
