// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package deed - multi-signature policy of an account
//
// a deed gives each signee address a voting weight and each operation
// (amend, transfer, execute, stake) the weight its verified signatures
// must reach. A deed without an amend threshold can never be changed
// so it is rejected unless SetRequireAmend(false) was called.
package deed
