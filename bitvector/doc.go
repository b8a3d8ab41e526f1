// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bitvector - fixed size bit array used for shard masks
//
// The backing buffer is held least significant byte first so that bit
// i is found in byte i/8 at position i%8.  The natural (big endian)
// byte form is produced on demand by Bytes.
package bitvector
