// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/base64"
	"encoding/json"

	"github.com/bitmark-inc/ledgertx/fault"
)

// EnvelopeVersion - version tag of the JSON transport wrapper
const EnvelopeVersion = "1.2"

// Envelope - JSON wrapper used to carry a packed transaction over text
// transports
type Envelope struct {
	Version string `json:"ver"`
	Data    string `json:"data"` // base64 of the packed transaction
}

// ToEnvelope - wrap a packed transaction
func ToEnvelope(packed []byte) ([]byte, error) {
	return json.Marshal(Envelope{
		Version: EnvelopeVersion,
		Data:    base64.StdEncoding.EncodeToString(packed),
	})
}

// FromEnvelope - unwrap a packed transaction
func FromEnvelope(buffer []byte) ([]byte, error) {
	var envelope Envelope
	if err := json.Unmarshal(buffer, &envelope); nil != err {
		return nil, fault.InvalidEnvelope
	}
	if EnvelopeVersion != envelope.Version {
		return nil, fault.InvalidEnvelope
	}
	packed, err := base64.StdEncoding.DecodeString(envelope.Data)
	if nil != err || 0 == len(packed) {
		return nil, fault.InvalidEnvelope
	}
	return packed, nil
}
