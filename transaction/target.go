// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/digest"
)

// Mode - the contract mode carried in the top two bits of header 1
type Mode uint8

// enumerate the contract modes
const (
	ModeNone          = Mode(iota)
	ModeSmartContract = Mode(iota)
	ModeChainCode     = Mode(iota)
	ModeSynergetic    = Mode(iota)
)

// String - name of the mode
func (mode Mode) String() string {
	switch mode {
	case ModeNone:
		return "none"
	case ModeSmartContract:
		return "smart-contract"
	case ModeChainCode:
		return "chain-code"
	case ModeSynergetic:
		return "synergetic"
	default:
		return "invalid"
	}
}

// Target - the contract a transaction invokes
//
// the set of implementations is closed: SmartContract, ChainCode and
// Synergetic; a nil target means no contract
type Target interface {
	Mode() Mode
	target()
}

// SmartContract - a deployed contract identified by digest and owner
type SmartContract struct {
	Digest  digest.Digest
	Address account.Address
}

// ChainCode - a built in contract identified by name
type ChainCode struct {
	Name string
}

// Synergetic - a data submission to a synergetic contract
type Synergetic struct {
	Digest  digest.Digest
	Address account.Address
}

// Mode - smart contract mode
func (SmartContract) Mode() Mode { return ModeSmartContract }

// Mode - chain code mode
func (ChainCode) Mode() Mode { return ModeChainCode }

// Mode - synergetic mode
func (Synergetic) Mode() Mode { return ModeSynergetic }

func (SmartContract) target() {}
func (ChainCode) target()     {}
func (Synergetic) target()    {}

func modeOf(target Target) Mode {
	if nil == target {
		return ModeNone
	}
	return target.Mode()
}

// targets are plain values so equality is direct
func sameTarget(a Target, b Target) bool {
	if nil == a || nil == b {
		return nil == a && nil == b
	}
	return a == b
}
