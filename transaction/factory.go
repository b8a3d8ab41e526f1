// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/json"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/bitvector"
	"github.com/bitmark-inc/ledgertx/digest"
)

// built in token contract
const (
	TokenChainCode = "fetch.token"

	ActionAddStake     = "addStake"
	ActionCollectStake = "collectStake"
	ActionDeed         = "deed"
	ActionSynergetic   = "data"
)

// default charge rate for factory built transactions
const defaultChargeRate = 1

// the JSON payload of the stake actions
type stakeData struct {
	Address account.Address `json:"address"`
	Amount  uint64          `json:"amount"`
}

// common part of every factory
func newBase(from account.Address, fee uint64, signers []*account.Identity) (*Transaction, error) {
	tx, err := New(from)
	if nil != err {
		return nil, err
	}
	tx.ChargeRate = defaultChargeRate
	tx.ChargeLimit = fee
	for _, signer := range signers {
		if err := tx.AddSigner(signer); nil != err {
			return nil, err
		}
	}
	return tx, nil
}

// NewTransfer - send an amount from one address to another
func NewTransfer(from account.Address, to account.Address, amount uint64, fee uint64, signers ...*account.Identity) (*Transaction, error) {
	tx, err := newBase(from, fee, signers)
	if nil != err {
		return nil, err
	}
	if err := tx.AddTransfer(to, amount); nil != err {
		return nil, err
	}
	return tx, nil
}

// NewStake - lock an amount of tokens as stake
func NewStake(from account.Address, amount uint64, fee uint64, signers ...*account.Identity) (*Transaction, error) {
	return newTokenAction(from, ActionAddStake, amount, fee, signers)
}

// NewCollectStake - return previously released stake to the account
func NewCollectStake(from account.Address, amount uint64, fee uint64, signers ...*account.Identity) (*Transaction, error) {
	return newTokenAction(from, ActionCollectStake, amount, fee, signers)
}

func newTokenAction(from account.Address, action string, amount uint64, fee uint64, signers []*account.Identity) (*Transaction, error) {
	tx, err := newBase(from, fee, signers)
	if nil != err {
		return nil, err
	}
	data, err := json.Marshal(stakeData{Address: from, Amount: amount})
	if nil != err {
		return nil, err
	}
	if err := tx.SetContract(ChainCode{Name: TokenChainCode}, nil, action, data); nil != err {
		return nil, err
	}
	return tx, nil
}

// NewDeedChange - replace the deed of an account
//
// the deed travels as JSON in the data field
func NewDeedChange(from account.Address, deed json.Marshaler, fee uint64, signers ...*account.Identity) (*Transaction, error) {
	tx, err := newBase(from, fee, signers)
	if nil != err {
		return nil, err
	}
	data, err := deed.MarshalJSON()
	if nil != err {
		return nil, err
	}
	if err := tx.SetContract(ChainCode{Name: TokenChainCode}, nil, ActionDeed, data); nil != err {
		return nil, err
	}
	return tx, nil
}

// NewContractCall - invoke an action on a deployed contract
func NewContractCall(from account.Address, contractDigest digest.Digest, contractOwner account.Address, shardMask *bitvector.BitVector, action string, data []byte, fee uint64, signers ...*account.Identity) (*Transaction, error) {
	tx, err := newBase(from, fee, signers)
	if nil != err {
		return nil, err
	}
	target := SmartContract{Digest: contractDigest, Address: contractOwner}
	if err := tx.SetContract(target, shardMask, action, data); nil != err {
		return nil, err
	}
	return tx, nil
}

// NewSynergetic - submit data to a synergetic contract
func NewSynergetic(from account.Address, contractDigest digest.Digest, contractOwner account.Address, shardMask *bitvector.BitVector, data []byte, fee uint64, signers ...*account.Identity) (*Transaction, error) {
	tx, err := newBase(from, fee, signers)
	if nil != err {
		return nil, err
	}
	target := Synergetic{Digest: contractDigest, Address: contractOwner}
	if err := tx.SetContract(target, shardMask, ActionSynergetic, data); nil != err {
		return nil, err
	}
	return tx, nil
}
