// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/storage"
)

// a string data item
type stringElement struct {
	key   string
	value string
}

func TestPoolPutGet(t *testing.T) {
	p := storage.Pool.Submitted

	input := []stringElement{
		{"key-one", "data-one"},
		{"key-two", "data-two"},
		{"key-remove-me", "to be deleted"},
		{"key-three", "data-three"},
		{"key-one", "data-one(NEW)"},
	}
	for _, e := range input {
		if err := p.Put([]byte("pool-"+e.key), []byte(e.value)); nil != err {
			t.Fatalf("put error: %s", err)
		}
	}
	if err := p.Delete([]byte("pool-key-remove-me")); nil != err {
		t.Fatalf("delete error: %s", err)
	}

	if p.Has([]byte("pool-key-remove-me")) {
		t.Error("deleted key still present")
	}
	if nil != p.Get([]byte("pool-nonexistant")) {
		t.Error("get of missing key returned data")
	}
	if v := p.Get([]byte("pool-key-one")); "data-one(NEW)" != string(v) {
		t.Errorf("key-one: %q  expected: %q", v, "data-one(NEW)")
	}

	expected := []stringElement{
		{"pool-key-one", "data-one(NEW)"},
		{"pool-key-three", "data-three"},
		{"pool-key-two", "data-two"},
	}

	cursor := p.NewFetchCursor().Seek([]byte("pool-"))
	actual := make([]storage.Element, 0, 3)
	for {
		elements, err := cursor.Fetch(2)
		if nil != err {
			t.Fatalf("fetch error: %s", err)
		}
		if 0 == len(elements) {
			break
		}
		for _, e := range elements {
			if !bytes.HasPrefix(e.Key, []byte("pool-")) {
				continue
			}
			actual = append(actual, e)
		}
	}

	if len(expected) != len(actual) {
		t.Fatalf("fetched: %d elements  expected: %d", len(actual), len(expected))
	}
	for i, e := range expected {
		if e.key != string(actual[i].Key) || e.value != string(actual[i].Value) {
			t.Errorf("%d: actual: %q=%q  expected: %q=%q", i, actual[i].Key, actual[i].Value, e.key, e.value)
		}
	}

	for _, e := range expected {
		p.Delete([]byte(e.key))
	}
}

func TestPoolNB(t *testing.T) {
	p := storage.Pool.Submitted
	key := []byte("nb-key")

	if err := p.PutN(key, 0x0102030405060708, []byte("value")); nil != err {
		t.Fatalf("put error: %s", err)
	}
	n, value := p.GetNB(key)
	if 0x0102030405060708 != n || "value" != string(value) {
		t.Errorf("actual: 0x%x %q", n, value)
	}

	if _, value := p.GetNB([]byte("nb-missing")); nil != value {
		t.Errorf("missing key returned: %q", value)
	}
	p.Delete(key)
}

func TestFetchInvalidCount(t *testing.T) {
	_, err := storage.Pool.Deeds.NewFetchCursor().Fetch(0)
	if fault.InvalidCount != err {
		t.Errorf("error: %v  expected: %v", err, fault.InvalidCount)
	}
}

func TestReopenKeepsData(t *testing.T) {
	p := storage.Pool.Submitted
	key := []byte("persistent")
	p.Put(key, []byte("still here"))

	storage.Finalise()
	if err := storage.Initialise(databaseFileName, storage.ReadOnly); nil != err {
		t.Fatalf("reopen read only error: %s", err)
	}

	if v := storage.Pool.Submitted.Get(key); "still here" != string(v) {
		t.Errorf("after reopen: %q", v)
	}
	if err := storage.Pool.Submitted.Put(key, []byte("x")); fault.DatabaseIsReadOnly != err {
		t.Errorf("read only put error: %v", err)
	}

	storage.Finalise()
	if err := storage.Initialise(databaseFileName, storage.ReadWrite); nil != err {
		t.Fatalf("reopen read write error: %s", err)
	}
	if err := storage.Initialise(databaseFileName, storage.ReadWrite); fault.AlreadyInitialised != err {
		t.Errorf("second initialise error: %v", err)
	}
	storage.Pool.Submitted.Delete(key)
}
