// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/ledgertx/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	if 0 != c.Uint64() {
		t.Errorf("counter is not zero at start: %d", c.Uint64())
	}

	c.Increment()
	c.Increment()
	if n := c.Add(10); 12 != n {
		t.Errorf("counter is not 12 after add: %d", n)
	}

	if n := c.Reset(); 12 != n {
		t.Errorf("reset returned: %d  expected: 12", n)
	}
	if 0 != c.Uint64() {
		t.Errorf("counter not zero after reset: %d", c.Uint64())
	}
}

func TestCounterConcurrent(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	for i := 0; i < 8; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	if 8000 != c.Uint64() {
		t.Errorf("counter: %d  expected: 8000", c.Uint64())
	}
}
