// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package submission - checks fully signed transactions before handing
// them to a ledger node
//
// a transaction passes the gate in this order:
//
//   1. decode and verify every signature
//   2. authorise the verified signers against the sender's deed
//   3. reject a transaction id already submitted within the dedup window
//   4. wait for the rate limiter
//   5. submit to the sink
//
// every failure before step 5 is reported without any network traffic
package submission
