// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/json"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/deed"
	"github.com/bitmark-inc/ledgertx/fault"
)

// PutDeed - record the deed of an account
//
// the deed must be valid
func PutDeed(address account.Address, d *deed.Deed) error {
	if nil == Pool.Deeds {
		return fault.NotInitialised
	}
	if nil == d {
		return fault.DeedNotSet
	}
	if err := d.Validate(); nil != err {
		return err
	}
	data, err := json.Marshal(d)
	if nil != err {
		return err
	}
	poolData.log.Debugf("deed: %s  signees: %d", address, d.Signees())
	return Pool.Deeds.Put(address[:], data)
}

// GetDeed - fetch the deed of an account
//
// the boolean is false when the account has no deed
func GetDeed(address account.Address) (*deed.Deed, bool, error) {
	if nil == Pool.Deeds {
		return nil, false, fault.NotInitialised
	}
	data := Pool.Deeds.Get(address[:])
	if nil == data {
		return nil, false, nil
	}
	d := deed.New()
	if err := json.Unmarshal(data, d); nil != err {
		return nil, false, err
	}
	return d, true, nil
}

// DeleteDeed - remove the deed of an account
func DeleteDeed(address account.Address) error {
	if nil == Pool.Deeds {
		return fault.NotInitialised
	}
	return Pool.Deeds.Delete(address[:])
}
