// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - the ledger transaction and its wire format
//
// a transaction is packed as an unsigned payload followed by one
// length prefixed signature per signer:
//
//   magic                   0xa1
//   header 0                version:3 | 0:1 | charge unit:1 | transfer:1 | multi:1 | valid from:1
//   header 1                contract mode:2 | signers-1:6 (0x3f = extended)
//   from                    32 byte address
//   transfer count - 2      varint, only for more than one transfer
//   transfers               (32 byte address, varint amount) ...
//   valid from              varint, only if flagged
//   valid until             varint
//   charge rate             varint
//   charge limit            varint
//   counter                 8 bytes big endian
//   contract                shard mask, target, action, data (mode != none)
//   extra signers           varint, only if signer field is 0x3f
//   signer identities       variant byte + public key ...
//   signatures              varint length + bytes ...
//
// the payload is the byte sequence up to and including the signer
// identities and is what every signer signs
package transaction
