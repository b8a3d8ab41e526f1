// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deed

import (
	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/transaction"
)

// Authorise - total the weight of the verified signers for an operation
//
// returns the satisfied weight; an address counts once however often
// it appears
func (d *Deed) Authorise(op Operation, verified []account.Address) (int64, error) {
	threshold, ok := d.thresholds[op]
	if !ok {
		if !op.IsValid() {
			return 0, fault.DeedUnknownOperation
		}
		return 0, fault.DeedOperationMissing
	}

	seen := make(map[account.Address]struct{}, len(verified))
	weight := int64(0)
	for _, address := range verified {
		if _, ok := seen[address]; ok {
			continue
		}
		seen[address] = struct{}{}
		weight, _ = addVotes(weight, d.signees[address])
	}

	if weight < threshold {
		return weight, fault.InsufficientVotes
	}
	return weight, nil
}

// AuthoriseTransaction - check a decoded transaction's verified
// signers against the deed of its sending account
//
// a nil deed means the account never set one: then the transaction
// must have a single signer, from the sending address, whose signature
// verified; with a deed only verified signers are counted and a bad
// signature fails only if the remaining weight is below the threshold
func AuthoriseTransaction(d *Deed, tx *transaction.Transaction) error {
	verified := tx.Signers.Verified()

	if nil == d {
		if 1 == tx.Signers.Len() && 1 == len(verified) && verified[0].Address() == tx.From {
			return nil
		}
		return fault.InsufficientVotes
	}

	if err := d.Validate(); nil != err {
		return err
	}

	addresses := make([]account.Address, len(verified))
	for i, identity := range verified {
		addresses[i] = identity.Address()
	}
	_, err := d.Authorise(OperationForTransaction(tx), addresses)
	return err
}
