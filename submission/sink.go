// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package submission

import (
	"context"
)

//go:generate mockgen -source=sink.go -destination=mocks/sink.go -package=mocks

// Sink - accepts a fully signed packed transaction
//
// returns the identifier the ledger assigned
type Sink interface {
	Submit(ctx context.Context, raw []byte) (string, error)
}
