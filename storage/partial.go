// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/bitmark-inc/ledgertx/digest"
	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/transaction"
)

// serialises the read-merge-write of partial copies
var partialLock sync.Mutex

// StorePartial - add a co-signer's partial copy to the gathered copy
//
// the first copy for a transaction id is stored as is, later copies
// are merged into it. Returns the merged transaction.
func StorePartial(tx *transaction.Transaction, now time.Time) (*transaction.Transaction, error) {
	txId, err := tx.Digest()
	if nil != err {
		return nil, err
	}

	partialLock.Lock()
	defer partialLock.Unlock()

	timestamp := uint64(now.Unix())
	merged := tx

	if stamp, existing, found, err := getPartial(txId); nil != err {
		return nil, err
	} else if found {
		merged, err = transaction.Merge(existing, tx)
		if nil != err {
			return nil, err
		}
		timestamp = stamp
	}

	packed, err := transaction.EncodePartial(merged)
	if nil != err {
		return nil, err
	}

	if err := Pool.Partials.PutN(txId[:], timestamp, packed); nil != err {
		return nil, err
	}

	poolData.log.Debugf("partial: %s  signed: %d of %d", txId, len(merged.Signers.Verified()), merged.Signers.Len())
	return merged, nil
}

// GetPartial - fetch the gathered copy of a transaction
func GetPartial(txId digest.Digest) (*transaction.Transaction, bool, error) {
	_, tx, found, err := getPartial(txId)
	return tx, found, err
}

func getPartial(txId digest.Digest) (uint64, *transaction.Transaction, bool, error) {
	if nil == Pool.Partials {
		return 0, nil, false, fault.NotInitialised
	}
	timestamp, packed := Pool.Partials.GetNB(txId[:])
	if nil == packed {
		return 0, nil, false, nil
	}
	tx, err := transaction.DecodePartial(packed)
	if nil != err {
		return 0, nil, false, err
	}
	return timestamp, tx, true, nil
}

// DeletePartial - discard a gathered copy
func DeletePartial(txId digest.Digest) error {
	if nil == Pool.Partials {
		return fault.NotInitialised
	}
	partialLock.Lock()
	defer partialLock.Unlock()
	return Pool.Partials.Delete(txId[:])
}

// ExpirePartials - delete gathered copies first stored before the cutoff
//
// returns the number of copies deleted
func ExpirePartials(cutoff time.Time) (int, error) {
	if nil == Pool.Partials {
		return 0, fault.NotInitialised
	}

	partialLock.Lock()
	defer partialLock.Unlock()

	limit := uint64(cutoff.Unix())
	expired := make([][]byte, 0, 16)

	err := Pool.Partials.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if len(value) < 8 {
			return fault.TruncatedData
		}
		if binary.BigEndian.Uint64(value[:8]) < limit {
			expired = append(expired, key)
		}
		return nil
	})
	if nil != err {
		return 0, err
	}

	for _, key := range expired {
		if err := Pool.Partials.Delete(key); nil != err {
			return 0, err
		}
	}
	if len(expired) > 0 {
		poolData.log.Infof("expired partials: %d", len(expired))
	}
	return len(expired), nil
}
