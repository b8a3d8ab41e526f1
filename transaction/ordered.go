// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/fault"
)

// Transfer - an amount sent to one address
type Transfer struct {
	To     account.Address `json:"to"`
	Amount uint64          `json:"amount,string"`
}

// TransferList - transfers in insertion order, one entry per address
//
// the zero value is an empty list
type TransferList struct {
	items []Transfer
	index map[account.Address]int
}

// Add - add an amount for an address
//
// a repeated address accumulates into its existing entry and keeps
// its original position
func (list *TransferList) Add(to account.Address, amount uint64) error {
	if 0 == amount {
		return fault.InvalidAmount
	}
	if nil == list.index {
		list.index = make(map[account.Address]int)
	}
	if i, ok := list.index[to]; ok {
		total := list.items[i].Amount + amount
		if total < amount {
			return fault.EncodingOverflow
		}
		list.items[i].Amount = total
		return nil
	}
	list.index[to] = len(list.items)
	list.items = append(list.items, Transfer{To: to, Amount: amount})
	return nil
}

// Len - number of distinct destinations
func (list *TransferList) Len() int {
	return len(list.items)
}

// Get - the amount for an address
func (list *TransferList) Get(to account.Address) (uint64, bool) {
	i, ok := list.index[to]
	if !ok {
		return 0, false
	}
	return list.items[i].Amount, true
}

// Items - copy of the transfers in insertion order
func (list *TransferList) Items() []Transfer {
	items := make([]Transfer, len(list.items))
	copy(items, list.items)
	return items
}

// Total - sum of all amounts
func (list *TransferList) Total() (uint64, error) {
	total := uint64(0)
	for _, item := range list.items {
		total += item.Amount
		if total < item.Amount {
			return 0, fault.EncodingOverflow
		}
	}
	return total, nil
}

// Equal - same entries in the same order
func (list *TransferList) Equal(other *TransferList) bool {
	if list.Len() != other.Len() {
		return false
	}
	for i, item := range list.items {
		if item != other.items[i] {
			return false
		}
	}
	return true
}

func (list *TransferList) clone() TransferList {
	c := TransferList{}
	for _, item := range list.items {
		c.Add(item.To, item.Amount)
	}
	return c
}

// Signatory - one signer of a transaction and its signature slot
type Signatory struct {
	Identity  *account.Identity `json:"identity"`
	Signature account.Signature `json:"signature"`

	// set by decoding or signing when Signature is valid for the payload
	Verified bool `json:"verified"`
}

// SignerList - signers in insertion order
//
// the order is the order of the identity blocks and signatures on the
// wire so it must be identical for every co-signer
type SignerList struct {
	items []*Signatory
	index map[string]int
}

// Add - append a signer, a repeated identity is ignored
func (list *SignerList) Add(identity *account.Identity) error {
	if nil == identity || nil == identity.IdentityInterface {
		return fault.InvalidPublicKey
	}
	if nil == list.index {
		list.index = make(map[string]int)
	}
	key := identity.Key()
	if _, ok := list.index[key]; ok {
		return nil
	}
	list.index[key] = len(list.items)
	list.items = append(list.items, &Signatory{Identity: identity})
	return nil
}

// Len - number of signers
func (list *SignerList) Len() int {
	return len(list.items)
}

// Lookup - the signatory for an identity
func (list *SignerList) Lookup(identity *account.Identity) (*Signatory, bool) {
	if nil == identity || nil == identity.IdentityInterface {
		return nil, false
	}
	i, ok := list.index[identity.Key()]
	if !ok {
		return nil, false
	}
	return list.items[i], true
}

// Items - the signatories in insertion order
func (list *SignerList) Items() []*Signatory {
	items := make([]*Signatory, len(list.items))
	copy(items, list.items)
	return items
}

// Identities - the signer identities in insertion order
func (list *SignerList) Identities() []*account.Identity {
	identities := make([]*account.Identity, len(list.items))
	for i, item := range list.items {
		identities[i] = item.Identity
	}
	return identities
}

// Verified - identities whose signature verified
func (list *SignerList) Verified() []*account.Identity {
	identities := make([]*account.Identity, 0, len(list.items))
	for _, item := range list.items {
		if item.Verified {
			identities = append(identities, item.Identity)
		}
	}
	return identities
}

// IsComplete - every signer has a signature
func (list *SignerList) IsComplete() bool {
	if 0 == len(list.items) {
		return false
	}
	for _, item := range list.items {
		if item.Signature.IsEmpty() {
			return false
		}
	}
	return true
}

// same identities in the same order, signatures are not compared
func (list *SignerList) sameIdentities(other *SignerList) bool {
	if list.Len() != other.Len() {
		return false
	}
	for i, item := range list.items {
		if !item.Identity.Equal(other.items[i].Identity) {
			return false
		}
	}
	return true
}

func (list *SignerList) clone() SignerList {
	c := SignerList{}
	for _, item := range list.items {
		c.Add(item.Identity)
		s := c.items[len(c.items)-1]
		s.Signature = append(account.Signature{}, item.Signature...)
		s.Verified = item.Verified
	}
	return c
}
