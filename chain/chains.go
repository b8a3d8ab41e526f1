// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"strings"
)

// names of all ledger networks
const (
	Mainnet = "mainnet"
	Testnet = "testnet"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Mainnet, Testnet, Local:
		return true
	default:
		return false
	}
}

// Normalise - lower case name, false if it is not a known chain
func Normalise(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	return name, Valid(name)
}
