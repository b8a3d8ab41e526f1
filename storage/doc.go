// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk client state
//
// a single LevelDB database split into pools, each pool is defined by
// a prefix byte obtained from the prefix tag in the struct defining
// the available pools.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++        = concatenation of byte data
// 3. txId      = SHA-256 of a transaction payload (32 bytes)
// 4. address   = SHA-256 of a public key (32 bytes)
// 5. timestamp = unix seconds as big endian uint64 (8 bytes)
//
// Pools:
//
//   P ++ txId                  - partially signed transactions being gathered
//                                data: timestamp ++ packed partial transaction
//   D ++ address               - deed of an account
//                                data: deed JSON
//   S ++ txId                  - transactions handed to the submission sink
//                                data: timestamp ++ identifier returned by the sink
//
// Database version:
//
//   0x00 ++ "VERSION"          - big endian uint32 (4 bytes)
package storage
