// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deed

import (
	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/transaction"
)

// Operation - the kind of action a threshold applies to
type Operation string

// the closed set of operations
const (
	Amend    = Operation("amend")
	Transfer = Operation("transfer")
	Execute  = Operation("execute")
	Stake    = Operation("stake")
)

// Operations - all operations in a fixed order
var Operations = []Operation{Amend, Transfer, Execute, Stake}

// ParseOperation - convert a name to an operation
func ParseOperation(s string) (Operation, error) {
	for _, op := range Operations {
		if string(op) == s {
			return op, nil
		}
	}
	return "", fault.DeedUnknownOperation
}

// IsValid - one of the closed set
func (op Operation) IsValid() bool {
	_, err := ParseOperation(string(op))
	return nil == err
}

// MarshalText - operations are their names
func (op Operation) MarshalText() ([]byte, error) {
	if !op.IsValid() {
		return nil, fault.DeedUnknownOperation
	}
	return []byte(op), nil
}

// UnmarshalText - reject unknown names
func (op *Operation) UnmarshalText(s []byte) error {
	o, err := ParseOperation(string(s))
	if nil != err {
		return err
	}
	*op = o
	return nil
}

// token chain code actions that move stake
var stakeActions = map[string]struct{}{
	transaction.ActionAddStake:     {},
	transaction.ActionCollectStake: {},
	"deStake":                      {},
}

// OperationForTransaction - the operation whose threshold a
// transaction must meet
func OperationForTransaction(tx *transaction.Transaction) Operation {
	switch target := tx.Target.(type) {
	case nil:
		return Transfer
	case transaction.ChainCode:
		if transaction.TokenChainCode != target.Name {
			return Execute
		}
		if transaction.ActionDeed == tx.Action {
			return Amend
		}
		if _, ok := stakeActions[tx.Action]; ok {
			return Stake
		}
		return Execute
	default:
		return Execute
	}
}
