// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/transaction"
)

func TestEnvelope(t *testing.T) {
	packed := decodeHex(goldenTransferSigned)

	envelope, err := transaction.ToEnvelope(packed)
	assert.Nil(t, err, "wrap error")
	assert.Contains(t, string(envelope), `"ver":"1.2"`, "missing version")

	unwrapped, err := transaction.FromEnvelope(envelope)
	assert.Nil(t, err, "unwrap error")
	assert.Equal(t, packed, unwrapped, "payload changed")

	ok, _, err := transaction.DecodeTransaction(unwrapped)
	assert.Nil(t, err, "decode error")
	assert.True(t, ok, "signature did not verify")
}

func TestEnvelopeInvalid(t *testing.T) {
	tests := []string{
		``,
		`{}`,
		`{"ver":"1.1","data":"oQ=="}`,
		`{"ver":"1.2","data":"not base64!"}`,
		`{"ver":"1.2","data":""}`,
		`[1,2]`,
	}

	for i, test := range tests {
		_, err := transaction.FromEnvelope([]byte(test))
		if fault.InvalidEnvelope != err {
			t.Errorf("%d: error: %v  expected: %s", i, err, fault.InvalidEnvelope)
		}
	}
}
