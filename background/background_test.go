// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/bitmark-inc/ledgertx/background"
)

type looper struct {
	count   uint64
	stopped bool
}

func (l *looper) Run(args interface{}, shutdown <-chan struct{}) {
	step := args.(uint64)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		atomic.AddUint64(&l.count, step)
		time.Sleep(time.Millisecond)
	}
	l.stopped = true
}

func TestStartStop(t *testing.T) {
	l1 := &looper{}
	l2 := &looper{}

	p := background.Start(background.Processes{l1, l2}, uint64(3))
	time.Sleep(20 * time.Millisecond)
	p.Stop()

	for i, l := range []*looper{l1, l2} {
		if !l.stopped {
			t.Errorf("%d: process did not return", i)
		}
		n := atomic.LoadUint64(&l.count)
		if 0 == n || 0 != n%3 {
			t.Errorf("%d: unexpected count: %d", i, n)
		}
	}

	// second stop must not panic or block
	p.Stop()
}

func TestPeriodic(t *testing.T) {
	ticks := uint64(0)
	periodic := &background.Periodic{
		Interval: 2 * time.Millisecond,
		Tick: func(args interface{}) {
			atomic.AddUint64(&ticks, 1)
		},
	}

	p := background.Start(background.Processes{periodic}, nil)
	time.Sleep(30 * time.Millisecond)
	p.Stop()

	after := atomic.LoadUint64(&ticks)
	if 0 == after {
		t.Fatal("periodic function was never called")
	}

	time.Sleep(10 * time.Millisecond)
	if atomic.LoadUint64(&ticks) != after {
		t.Errorf("periodic function called after stop")
	}
}
