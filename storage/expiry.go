// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	"github.com/bitmark-inc/ledgertx/background"
)

// NewExpirer - background process that discards stale partial copies
//
// every interval, copies first stored more than maxAge ago are deleted
func NewExpirer(interval time.Duration, maxAge time.Duration) background.Process {
	return &background.Periodic{
		Interval: interval,
		Tick: func(args interface{}) {
			n, err := ExpirePartials(time.Now().Add(-maxAge))
			if nil != err {
				poolData.log.Errorf("expire partials: error: %s", err)
				return
			}
			poolData.log.Debugf("expire partials: removed: %d", n)
		},
	}
}
