// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/util"
)

// Test IP address detection
func TestCanonical(t *testing.T) {

	testData := []struct {
		in  string
		out string
	}{
		{"127.0.0.1:1234", "127.0.0.1:1234"},
		{"127.0.0.1:1", "127.0.0.1:1"},
		{" 127.0.0.1:1 ", "127.0.0.1:1"},
		{"127.0.0.1:65535", "127.0.0.1:65535"},
		{"0.0.0.0:1234", "0.0.0.0:1234"},
		{"[::1]:1234", "[::1]:1234"},
		{"[::]:1234", "[::]:1234"},
		{"[0:0::0:0]:1234", "[::]:1234"},
		{"[0:0:0:0::1]:1234", "[::1]:1234"},
	}

	for i, d := range testData {
		c, err := util.CanonicalIPandPort(d.in)
		if nil != err {
			t.Errorf("%d: error: %s", i, err)
			continue
		}
		if d.out != c {
			t.Errorf("%d: %q -> %q  expected: %q", i, d.in, c, d.out)
		}
	}
}

// Test IP address rejection
func TestCanonicalInvalid(t *testing.T) {

	testData := []struct {
		in  string
		err error
	}{
		{"", fault.InvalidIPAddress},
		{"*:1234", fault.InvalidIPAddress},
		{"localhost:1234", fault.InvalidIPAddress},
		{"127.0.0.1", fault.InvalidIPAddress},
		{"127.0.0.1:0", fault.InvalidPortNumber},
		{"127.0.0.1:65536", fault.InvalidPortNumber},
		{"127.0.0.1:port", fault.InvalidPortNumber},
	}

	for i, d := range testData {
		c, err := util.CanonicalIPandPort(d.in)
		if d.err != err {
			t.Errorf("%d: %q -> %q, %v  expected error: %v", i, d.in, c, err, d.err)
		}
	}
}
