// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"bytes"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/fault"
)

// Sign - record the key's signature of the current payload
//
// the key must belong to one of the transaction's signers; changing
// any field afterwards leaves the recorded signature stale and it will
// fail verification
func Sign(tx *Transaction, key account.Signer) error {
	signatory, ok := tx.Signers.Lookup(key.Identity())
	if !ok {
		return fault.SignerNotInTransaction
	}

	payload, err := EncodePayload(tx)
	if nil != err {
		return err
	}

	signature, err := key.Sign(payload)
	if nil != err {
		return err
	}

	signatory.Signature = signature
	signatory.Verified = true
	return nil
}

// Verify - check every recorded signature against the current payload
//
// updates each signatory's Verified flag and returns true only if all
// signers have a valid signature
func Verify(tx *Transaction) (bool, error) {
	payload, err := EncodePayload(tx)
	if nil != err {
		return false, err
	}

	allValid := true
	for _, signatory := range tx.Signers.items {
		signatory.Verified = !signatory.Signature.IsEmpty() &&
			signatory.Identity.Verify(payload, signatory.Signature)
		allValid = allValid && signatory.Verified
	}
	return allValid, nil
}

// Merge - combine the signatures of two copies of the same transaction
//
// both copies must pack to identical payloads; every signature taken
// from other must verify and must not contradict a signature already
// in base. Neither input is modified.
func Merge(base *Transaction, other *Transaction) (*Transaction, error) {
	basePayload, err := EncodePayload(base)
	if nil != err {
		return nil, err
	}
	otherPayload, err := EncodePayload(other)
	if nil != err {
		return nil, err
	}
	if !bytes.Equal(basePayload, otherPayload) {
		return nil, fault.PartialPayloadMismatch
	}

	merged := base.Clone()
	for i, signatory := range merged.Signers.items {
		if !signatory.Signature.IsEmpty() {
			signatory.Verified = signatory.Identity.Verify(basePayload, signatory.Signature)
			if !signatory.Verified {
				return nil, fault.InvalidSignature
			}
		}

		incoming := other.Signers.items[i]
		if incoming.Signature.IsEmpty() {
			continue
		}
		if err := incoming.Identity.CheckSignature(basePayload, incoming.Signature); nil != err {
			return nil, err
		}

		if signatory.Signature.IsEmpty() {
			signatory.Signature = append(account.Signature{}, incoming.Signature...)
			signatory.Verified = true
		} else if !signatory.Signature.Equal(incoming.Signature) {
			return nil, fault.ConflictingSignature
		}
	}
	return merged, nil
}

// MergeAll - fold a list of partial copies into the first
func MergeAll(copies ...*Transaction) (*Transaction, error) {
	if 0 == len(copies) {
		return nil, fault.NotFound
	}
	merged := copies[0]
	for _, c := range copies[1:] {
		m, err := Merge(merged, c)
		if nil != err {
			return nil, err
		}
		merged = m
	}
	return merged, nil
}
