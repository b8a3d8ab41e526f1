// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/binary"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/digest"
	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/util"
)

const reservedHeaderBit = 0x10

// DecodeTransaction - unpack a signed transaction and verify every
// signature against the payload
//
// the boolean is true only if every signer's signature verified, each
// signatory also records its own Verified flag; structural problems
// are returned as errors
func DecodeTransaction(buffer []byte) (bool, *Transaction, error) {
	tx, payload, err := unpack(buffer)
	if nil != err {
		return false, nil, err
	}

	allValid := true
	for _, signatory := range tx.Signers.items {
		signatory.Verified = !signatory.Signature.IsEmpty() &&
			signatory.Identity.Verify(payload, signatory.Signature)
		allValid = allValid && signatory.Verified
	}
	return allValid, tx, nil
}

// DecodePartial - unpack a transaction that may have empty signature
// slots
//
// any signature that is present must verify
func DecodePartial(buffer []byte) (*Transaction, error) {
	tx, payload, err := unpack(buffer)
	if nil != err {
		return nil, err
	}

	for _, signatory := range tx.Signers.items {
		if signatory.Signature.IsEmpty() {
			continue
		}
		if err := signatory.Identity.CheckSignature(payload, signatory.Signature); nil != err {
			return nil, err
		}
		signatory.Verified = true
	}
	return tx, nil
}

// sequential reader over a packed transaction
type reader struct {
	buffer []byte
	n      int
}

func (r *reader) fixed(count int) ([]byte, error) {
	if count < 0 || len(r.buffer)-r.n < count {
		return nil, fault.TruncatedData
	}
	b := r.buffer[r.n : r.n+count]
	r.n += count
	return b, nil
}

func (r *reader) readByte() (byte, error) {
	b, err := r.fixed(1)
	if nil != err {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) readUint64() (uint64, error) {
	value, n, err := util.FromUvarint(r.buffer[r.n:])
	if nil != err {
		return 0, err
	}
	r.n += n
	return value, nil
}

func (r *reader) clipped(minimum int, maximum int) (int, error) {
	value, n, err := util.ClippedVarint(r.buffer[r.n:], minimum, maximum)
	if nil != err {
		return 0, err
	}
	r.n += n
	return value, nil
}

// varint length prefixed bytes, copied out of the buffer
func (r *reader) byteArray(maximum int) ([]byte, error) {
	length, err := r.clipped(0, maximum)
	if nil != err {
		return nil, err
	}
	b, err := r.fixed(length)
	if nil != err {
		return nil, err
	}
	return append([]byte{}, b...), nil
}

func (r *reader) readAddress() (account.Address, error) {
	b, err := r.fixed(account.AddressLength)
	if nil != err {
		return account.Address{}, err
	}
	return account.AddressFromBytes(b)
}

func (r *reader) readDigest() (digest.Digest, error) {
	d := digest.Digest{}
	b, err := r.fixed(digest.Length)
	if nil != err {
		return d, err
	}
	err = digest.FromBytes(&d, b)
	return d, err
}

// unpack the whole buffer, returning the transaction and its payload
func unpack(buffer []byte) (*Transaction, []byte, error) {
	r := &reader{buffer: buffer}
	tx := &Transaction{}

	magic, err := r.readByte()
	if nil != err {
		return nil, nil, err
	}
	if Magic != magic {
		return nil, nil, fault.InvalidMagic
	}

	header0, err := r.readByte()
	if nil != err {
		return nil, nil, err
	}
	header1, err := r.readByte()
	if nil != err {
		return nil, nil, err
	}

	if Version != header0>>versionShift {
		return nil, nil, fault.UnsupportedVersion
	}
	if 0 != header0&chargeUnitFlag {
		return nil, nil, fault.ChargeUnitNotSupported
	}
	if 0 != header0&reservedHeaderBit {
		return nil, nil, fault.ReservedHeaderBits
	}
	hasTransfer := 0 != header0&hasTransferFlag
	multiTransfer := 0 != header0&multiTransferFlag
	if multiTransfer && !hasTransfer {
		return nil, nil, fault.InvalidCount
	}

	mode := Mode(header1 >> modeShift)
	signerField := int(header1 & signerCountMask)

	tx.From, err = r.readAddress()
	if nil != err {
		return nil, nil, err
	}

	transferCount := 0
	if hasTransfer {
		transferCount = 1
	}
	if multiTransfer {
		extra, err := r.clipped(0, maxTransfers-2)
		if nil != err {
			return nil, nil, err
		}
		transferCount = extra + 2
	}
	for i := 0; i < transferCount; i += 1 {
		to, err := r.readAddress()
		if nil != err {
			return nil, nil, err
		}
		amount, err := r.readUint64()
		if nil != err {
			return nil, nil, err
		}
		if _, ok := tx.Transfers.Get(to); ok {
			return nil, nil, fault.InvalidAddress
		}
		if err := tx.Transfers.Add(to, amount); nil != err {
			return nil, nil, err
		}
	}

	if 0 != header0&hasValidFromFlag {
		tx.ValidFrom, err = r.readUint64()
		if nil != err {
			return nil, nil, err
		}
		if 0 == tx.ValidFrom {
			return nil, nil, fault.InvalidCount
		}
	}
	if tx.ValidUntil, err = r.readUint64(); nil != err {
		return nil, nil, err
	}
	if tx.ChargeRate, err = r.readUint64(); nil != err {
		return nil, nil, err
	}
	if tx.ChargeLimit, err = r.readUint64(); nil != err {
		return nil, nil, err
	}

	counter, err := r.fixed(8)
	if nil != err {
		return nil, nil, err
	}
	tx.Counter = binary.BigEndian.Uint64(counter)

	if ModeNone != mode {
		if err := unpackContract(r, tx, mode); nil != err {
			return nil, nil, err
		}
	}

	signerCount := signerField + 1
	if signerCountEscape == signerField {
		extra, err := r.clipped(0, maxSigners-(signerCountEscape+1))
		if nil != err {
			return nil, nil, err
		}
		signerCount = signerCountEscape + 1 + extra
	}

	for i := 0; i < signerCount; i += 1 {
		identity, n, err := account.IdentityFromBytes(r.buffer[r.n:])
		if nil != err {
			return nil, nil, err
		}
		r.n += n
		if _, ok := tx.Signers.Lookup(identity); ok {
			return nil, nil, fault.InvalidPublicKey
		}
		if err := tx.Signers.Add(identity); nil != err {
			return nil, nil, err
		}
	}

	payload := buffer[:r.n]

	for _, signatory := range tx.Signers.items {
		signature, err := r.byteArray(maxSignatureLength)
		if nil != err {
			return nil, nil, err
		}
		signatory.Signature = signature
	}

	if r.n != len(buffer) {
		return nil, nil, fault.TrailingData
	}

	return tx, payload, nil
}

// shard mask, target, action and data
func unpackContract(r *reader, tx *Transaction, mode Mode) error {
	shardMask, n, err := DecodeShardMask(r.buffer[r.n:])
	if nil != err {
		return err
	}
	r.n += n
	tx.ShardMask = shardMask

	switch mode {
	case ModeSmartContract, ModeSynergetic:
		d, err := r.readDigest()
		if nil != err {
			return err
		}
		address, err := r.readAddress()
		if nil != err {
			return err
		}
		if ModeSmartContract == mode {
			tx.Target = SmartContract{Digest: d, Address: address}
		} else {
			tx.Target = Synergetic{Digest: d, Address: address}
		}

	case ModeChainCode:
		name, err := r.byteArray(maxChainCodeLength)
		if nil != err {
			return err
		}
		if 0 == len(name) || !isPrintable(string(name)) {
			return fault.InvalidChainCode
		}
		tx.Target = ChainCode{Name: string(name)}

	default:
		return fault.UnknownContractMode
	}

	action, err := r.byteArray(maxActionLength)
	if nil != err {
		return err
	}
	if 0 == len(action) {
		return fault.ContractTargetWithoutAction
	}
	if !isPrintable(string(action)) {
		return fault.InvalidAction
	}
	tx.Action = string(action)

	data, err := r.byteArray(maxDataLength)
	if nil != err {
		return err
	}
	if 0 != len(data) {
		tx.Data = data
	}
	return nil
}
