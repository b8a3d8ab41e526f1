// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/ledgertx/fault"
)

// common errors - keep in alphabetic order
const (
	ErrConfigurationRequired = fault.ProcessError("command requires a configuration file")
	ErrConnectRequired       = fault.InvalidError("connect is required")
	ErrInvalidAlgorithm      = fault.InvalidError("algorithm can only be ed25519/secp256k1")
	ErrKeyRequired           = fault.InvalidError("key is required")
	ErrReceiverRequired      = fault.InvalidError("receiver is required")
	ErrTransactionRequired   = fault.InvalidError("transaction is required")
	ErrZeroAmount            = fault.InvalidError("amount must be greater than zero")
)
