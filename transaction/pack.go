// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/binary"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/util"
)

// header bits
const (
	versionShift      = 5
	chargeUnitFlag    = 0x08
	hasTransferFlag   = 0x04
	multiTransferFlag = 0x02
	hasValidFromFlag  = 0x01

	modeShift         = 6
	signerCountMask   = 0x3f
	signerCountEscape = 0x3f
)

// EncodePayload - pack all fields up to and including the signer
// identities
//
// this is the byte sequence every signer signs
func EncodePayload(tx *Transaction) ([]byte, error) {
	if err := tx.Validate(); nil != err {
		return nil, err
	}

	transferCount := tx.Transfers.Len()
	signerCount := tx.Signers.Len()
	mode := modeOf(tx.Target)

	header0 := byte(Version << versionShift)
	if transferCount > 0 {
		header0 |= hasTransferFlag
	}
	if transferCount > 1 {
		header0 |= multiTransferFlag
	}
	if 0 != tx.ValidFrom {
		header0 |= hasValidFromFlag
	}

	signerField := signerCount - 1
	if signerField >= signerCountEscape {
		signerField = signerCountEscape
	}
	header1 := byte(mode)<<modeShift | byte(signerField)

	message := []byte{Magic, header0, header1}
	message = append(message, tx.From[:]...)

	if transferCount > 1 {
		message = appendUint64(message, uint64(transferCount-2))
	}
	for _, transfer := range tx.Transfers.items {
		message = append(message, transfer.To[:]...)
		message = appendUint64(message, transfer.Amount)
	}

	if 0 != tx.ValidFrom {
		message = appendUint64(message, tx.ValidFrom)
	}
	message = appendUint64(message, tx.ValidUntil)
	message = appendUint64(message, tx.ChargeRate)
	message = appendUint64(message, tx.ChargeLimit)

	counter := make([]byte, 8)
	binary.BigEndian.PutUint64(counter, tx.Counter)
	message = append(message, counter...)

	if ModeNone != mode {
		shardMask, err := EncodeShardMask(tx.ShardMask)
		if nil != err {
			return nil, err
		}
		message = append(message, shardMask...)

		switch target := tx.Target.(type) {
		case SmartContract:
			message = append(message, target.Digest[:]...)
			message = append(message, target.Address[:]...)
		case Synergetic:
			message = append(message, target.Digest[:]...)
			message = append(message, target.Address[:]...)
		case ChainCode:
			message = appendString(message, target.Name)
		}

		message = appendString(message, tx.Action)
		message = appendBytes(message, tx.Data)
	}

	if signerCountEscape == signerField {
		message = appendUint64(message, uint64(signerCount-(signerCountEscape+1)))
	}

	for _, signatory := range tx.Signers.items {
		message = append(message, signatory.Identity.Bytes()...)
	}

	return message, nil
}

// EncodeTransaction - pack the payload and a fresh signature from
// every signer
//
// keys must hold a signer for every identity in tx.Signers; tx is
// not modified
func EncodeTransaction(tx *Transaction, keys []account.Signer) ([]byte, error) {
	payload, err := EncodePayload(tx)
	if nil != err {
		return nil, err
	}

	message := payload
	for _, signatory := range tx.Signers.items {
		key := findSigner(keys, signatory.Identity)
		if nil == key {
			return nil, fault.MissingSigner
		}
		signature, err := key.Sign(payload)
		if nil != err {
			return nil, err
		}
		message = appendBytes(message, signature)
	}
	return message, nil
}

// EncodePartial - pack the payload and whatever signatures are present
//
// an unsigned slot is packed as an empty byte array
func EncodePartial(tx *Transaction) ([]byte, error) {
	message, err := EncodePayload(tx)
	if nil != err {
		return nil, err
	}
	for _, signatory := range tx.Signers.items {
		message = appendBytes(message, signatory.Signature)
	}
	return message, nil
}

// EncodeSigned - pack the payload and the signatures already recorded
// by Sign or Merge
func EncodeSigned(tx *Transaction) ([]byte, error) {
	if !tx.IsComplete() {
		return nil, fault.IncompleteSignatures
	}
	return EncodePartial(tx)
}

func findSigner(keys []account.Signer, identity *account.Identity) account.Signer {
	for _, key := range keys {
		if nil != key && key.Identity().Equal(identity) {
			return key
		}
	}
	return nil
}

// append a string to a buffer
//
// the field is prefixed by Varint(length)
func appendString(buffer []byte, s string) []byte {
	buffer = append(buffer, util.ToUvarint(uint64(len(s)))...)
	return append(buffer, s...)
}

// append bytes to a buffer
//
// the field is prefixed by Varint(length)
func appendBytes(buffer []byte, data []byte) []byte {
	buffer = append(buffer, util.ToUvarint(uint64(len(data)))...)
	return append(buffer, data...)
}

// append a Varint to buffer
func appendUint64(buffer []byte, value uint64) []byte {
	return append(buffer, util.ToUvarint(value)...)
}
