// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/bitvector"
	"github.com/bitmark-inc/ledgertx/digest"
	"github.com/bitmark-inc/ledgertx/fault"
)

// wire constants
const (
	Magic   = 0xa1
	Version = 3
)

// field limits
const (
	maxActionLength    = 256
	maxChainCodeLength = 256
	maxDataLength      = 1 << 20
	maxSignatureLength = 1024
	maxTransfers       = 1 << 16
	maxSigners         = 1 << 12
)

// Transaction - the unpacked transaction
//
// all fields except the signature values are covered by the payload
type Transaction struct {
	From        account.Address
	Transfers   TransferList
	ValidFrom   uint64 // 0 = unset
	ValidUntil  uint64
	ChargeRate  uint64
	ChargeLimit uint64
	Counter     uint64
	Target      Target               // nil = no contract
	ShardMask   *bitvector.BitVector // nil or length <= 1 = all shards
	Action      string
	Data        []byte
	Signers     SignerList
}

// New - empty transaction from an address with a random counter
func New(from account.Address) (*Transaction, error) {
	counter, err := randomCounter()
	if nil != err {
		return nil, err
	}
	return &Transaction{
		From:    from,
		Counter: counter,
	}, nil
}

func randomCounter() (uint64, error) {
	buffer := make([]byte, 8)
	if _, err := rand.Read(buffer); nil != err {
		return 0, err
	}
	return binary.BigEndian.Uint64(buffer), nil
}

// AddTransfer - send an amount to an address
func (tx *Transaction) AddTransfer(to account.Address, amount uint64) error {
	return tx.Transfers.Add(to, amount)
}

// AddSigner - require a signature from an identity
func (tx *Transaction) AddSigner(identity *account.Identity) error {
	return tx.Signers.Add(identity)
}

// SetContract - set the contract target together with its action and data
func (tx *Transaction) SetContract(target Target, shardMask *bitvector.BitVector, action string, data []byte) error {
	if nil == target {
		return fault.ContractTargetWithoutAction
	}
	if "" == action {
		return fault.ContractTargetWithoutAction
	}
	tx.Target = target
	tx.ShardMask = shardMask
	tx.Action = action
	tx.Data = data
	return nil
}

// ClearContract - remove the contract target, action and data
func (tx *Transaction) ClearContract() {
	tx.Target = nil
	tx.ShardMask = nil
	tx.Action = ""
	tx.Data = nil
}

// IsSynergetic - a synergetic data submission
func (tx *Transaction) IsSynergetic() bool {
	return ModeSynergetic == modeOf(tx.Target)
}

// Validate - structural checks needed before packing
func (tx *Transaction) Validate() error {
	if 0 == tx.Signers.Len() {
		return fault.NoSigners
	}
	if tx.Signers.Len() > maxSigners {
		return fault.TooManySigners
	}
	if tx.Transfers.Len() > maxTransfers {
		return fault.InvalidCount
	}

	if nil == tx.Target {
		if "" != tx.Action || 0 != len(tx.Data) {
			return fault.ContractTargetWithoutAction
		}
		return nil
	}

	if "" == tx.Action {
		return fault.ContractTargetWithoutAction
	}
	if len(tx.Action) > maxActionLength || !isPrintable(tx.Action) {
		return fault.InvalidAction
	}
	if len(tx.Data) > maxDataLength {
		return fault.InvalidCount
	}

	switch target := tx.Target.(type) {
	case ChainCode:
		if "" == target.Name || len(target.Name) > maxChainCodeLength || !isPrintable(target.Name) {
			return fault.InvalidChainCode
		}
	case SmartContract, Synergetic:
	default:
		return fault.UnknownContractMode
	}
	return nil
}

func isPrintable(s string) bool {
	for i := 0; i < len(s); i += 1 {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

// Payload - the unsigned bytes every signer signs
func (tx *Transaction) Payload() ([]byte, error) {
	return EncodePayload(tx)
}

// Digest - SHA-256 of the payload
func (tx *Transaction) Digest() (digest.Digest, error) {
	payload, err := EncodePayload(tx)
	if nil != err {
		return digest.Digest{}, err
	}
	return digest.NewDigest(payload), nil
}

// TxId - hex form of the digest
func (tx *Transaction) TxId() (string, error) {
	d, err := tx.Digest()
	if nil != err {
		return "", err
	}
	return d.String(), nil
}

// IsComplete - every signer has supplied a signature
func (tx *Transaction) IsComplete() bool {
	return tx.Signers.IsComplete()
}

// Clone - deep copy including signatures
func (tx *Transaction) Clone() *Transaction {
	c := *tx
	c.Transfers = tx.Transfers.clone()
	c.Signers = tx.Signers.clone()
	if nil != tx.ShardMask {
		c.ShardMask = tx.ShardMask.Copy()
	}
	if nil != tx.Data {
		c.Data = append([]byte{}, tx.Data...)
	}
	return &c
}

// MatchesExpected - compare every payload field with a locally built
// expectation
//
// used by a co-signer before signing a copy received from a peer;
// the error names the first field that differs
func (tx *Transaction) MatchesExpected(expected *Transaction) error {
	mismatch := func(field string) error {
		return fmt.Errorf("%w: %s", fault.PartialFieldMismatch, field)
	}

	switch {
	case tx.From != expected.From:
		return mismatch("from")
	case !tx.Transfers.Equal(&expected.Transfers):
		return mismatch("transfers")
	case tx.ValidFrom != expected.ValidFrom:
		return mismatch("valid from")
	case tx.ValidUntil != expected.ValidUntil:
		return mismatch("valid until")
	case tx.ChargeRate != expected.ChargeRate:
		return mismatch("charge rate")
	case tx.ChargeLimit != expected.ChargeLimit:
		return mismatch("charge limit")
	case tx.Counter != expected.Counter:
		return mismatch("counter")
	case !sameTarget(tx.Target, expected.Target):
		return mismatch("contract")
	case nil != tx.Target && !sameShardMask(tx.ShardMask, expected.ShardMask):
		return mismatch("shard mask")
	case tx.Action != expected.Action:
		return mismatch("action")
	case !bytes.Equal(tx.Data, expected.Data):
		return mismatch("data")
	case !tx.Signers.sameIdentities(&expected.Signers):
		return mismatch("signers")
	}
	return nil
}
