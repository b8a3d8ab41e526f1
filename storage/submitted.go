// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	"github.com/bitmark-inc/ledgertx/digest"
	"github.com/bitmark-inc/ledgertx/fault"
)

// MarkSubmitted - record that a transaction was accepted by the sink
//
// an empty reference is recorded as the transaction id
func MarkSubmitted(txId digest.Digest, reference string, now time.Time) error {
	if nil == Pool.Submitted {
		return fault.NotInitialised
	}
	if "" == reference {
		reference = txId.String()
	}
	return Pool.Submitted.PutN(txId[:], uint64(now.Unix()), []byte(reference))
}

// Submitted - look up the sink reference of a submitted transaction
func Submitted(txId digest.Digest) (string, time.Time, bool) {
	if nil == Pool.Submitted {
		return "", time.Time{}, false
	}
	timestamp, reference := Pool.Submitted.GetNB(txId[:])
	if nil == reference {
		return "", time.Time{}, false
	}
	return string(reference), time.Unix(int64(timestamp), 0), true
}
