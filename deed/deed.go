// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deed

import (
	"encoding/json"
	"math"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/fault"
)

// Deed - the signing policy of an account
//
// each signee has a voting weight and each operation a threshold of
// total weight that its signatures must reach
type Deed struct {
	signees      map[account.Address]int64
	thresholds   map[Operation]int64
	requireAmend bool
}

// New - empty deed that requires an amend threshold
func New() *Deed {
	return &Deed{
		signees:      make(map[account.Address]int64),
		thresholds:   make(map[Operation]int64),
		requireAmend: true,
	}
}

// SetSignee - set the voting weight of an address
func (d *Deed) SetSignee(address account.Address, weight int64) error {
	if weight < 0 {
		return fault.DeedNegativeWeight
	}
	total := int64(0)
	for a, w := range d.signees {
		if a == address {
			continue
		}
		total += w
	}
	if _, ok := addVotes(total, weight); !ok {
		return fault.DeedVotesOverflow
	}
	d.signees[address] = weight
	return nil
}

// RemoveSignee - remove an address from the deed
func (d *Deed) RemoveSignee(address account.Address) {
	delete(d.signees, address)
}

// Weight - voting weight of an address
func (d *Deed) Weight(address account.Address) (int64, bool) {
	w, ok := d.signees[address]
	return w, ok
}

// Signees - number of signees
func (d *Deed) Signees() int {
	return len(d.signees)
}

// SetOperation - set the threshold for an operation
func (d *Deed) SetOperation(op Operation, threshold int64) error {
	if !op.IsValid() {
		return fault.DeedUnknownOperation
	}
	if threshold < 0 {
		return fault.DeedNegativeThreshold
	}
	d.thresholds[op] = threshold
	return nil
}

// RemoveOperation - remove the threshold for an operation
func (d *Deed) RemoveOperation(op Operation) {
	delete(d.thresholds, op)
}

// Threshold - the threshold for an operation
func (d *Deed) Threshold(op Operation) (int64, bool) {
	t, ok := d.thresholds[op]
	return t, ok
}

// SetRequireAmend - allow a deed without an amend threshold
//
// such a deed can never be changed again
func (d *Deed) SetRequireAmend(require bool) {
	d.requireAmend = require
}

// RequireAmend - whether an amend threshold is mandatory
func (d *Deed) RequireAmend() bool {
	return d.requireAmend
}

// TotalVotes - sum of all voting weights
//
// saturates at math.MaxInt64, which Validate rejects
func (d *Deed) TotalVotes() int64 {
	total := int64(0)
	for _, w := range d.signees {
		total, _ = addVotes(total, w)
	}
	return total
}

// add two non-negative weights, false and math.MaxInt64 on overflow
func addVotes(total int64, weight int64) (int64, bool) {
	if weight > math.MaxInt64-total {
		return math.MaxInt64, false
	}
	return total + weight, true
}

// Validate - check the deed is satisfiable
func (d *Deed) Validate() error {
	total := int64(0)
	for _, w := range d.signees {
		if w < 0 {
			return fault.DeedNegativeWeight
		}
		sum, ok := addVotes(total, w)
		if !ok {
			return fault.DeedVotesOverflow
		}
		total = sum
	}

	for op, t := range d.thresholds {
		if !op.IsValid() {
			return fault.DeedUnknownOperation
		}
		if t < 0 {
			return fault.DeedNegativeThreshold
		}
		if t > total {
			return fault.DeedThresholdExceedsVotes
		}
	}

	if _, ok := d.thresholds[Amend]; !ok && d.requireAmend {
		return fault.DeedAmendThresholdMissing
	}
	return nil
}

// Equal - same signees, thresholds and amend policy
func (d *Deed) Equal(other *Deed) bool {
	if nil == d || nil == other {
		return nil == d && nil == other
	}
	if d.requireAmend != other.requireAmend ||
		len(d.signees) != len(other.signees) ||
		len(d.thresholds) != len(other.thresholds) {
		return false
	}
	for a, w := range d.signees {
		if ow, ok := other.signees[a]; !ok || ow != w {
			return false
		}
	}
	for op, t := range d.thresholds {
		if ot, ok := other.thresholds[op]; !ok || ot != t {
			return false
		}
	}
	return true
}

// the JSON form
type deedJSON struct {
	Signees      map[account.Address]int64 `json:"signees"`
	Thresholds   map[Operation]int64       `json:"thresholds"`
	RequireAmend *bool                     `json:"requireAmend,omitempty"`
}

// MarshalJSON - {"signees":{address:weight},"thresholds":{operation:threshold}}
//
// requireAmend only appears when it is false
func (d *Deed) MarshalJSON() ([]byte, error) {
	j := deedJSON{
		Signees:    d.signees,
		Thresholds: d.thresholds,
	}
	if !d.requireAmend {
		j.RequireAmend = &d.requireAmend
	}
	return json.Marshal(j)
}

// UnmarshalJSON - inverse of MarshalJSON, values are validated
func (d *Deed) UnmarshalJSON(s []byte) error {
	var j deedJSON
	if err := json.Unmarshal(s, &j); nil != err {
		return err
	}

	n := New()
	if nil != j.RequireAmend {
		n.requireAmend = *j.RequireAmend
	}
	for a, w := range j.Signees {
		if err := n.SetSignee(a, w); nil != err {
			return err
		}
	}
	for op, t := range j.Thresholds {
		if err := n.SetOperation(op, t); nil != err {
			return err
		}
	}
	*d = *n
	return nil
}
