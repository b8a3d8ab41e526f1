// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/deed"
	"github.com/bitmark-inc/ledgertx/transaction"
)

type transferView struct {
	To     account.Address `json:"to"`
	Amount uint64          `json:"amount"`
}

type signerView struct {
	Identity  *account.Identity `json:"identity"`
	Address   account.Address   `json:"address"`
	Signature account.Signature `json:"signature,omitempty"`
	Verified  bool              `json:"verified"`
}

type contractView struct {
	Mode      string          `json:"mode"`
	Digest    string          `json:"digest,omitempty"`
	Address   account.Address `json:"address,omitempty"`
	ChainCode string          `json:"chainCode,omitempty"`
	ShardMask string          `json:"shardMask,omitempty"`
	Action    string          `json:"action"`
	Data      string          `json:"data,omitempty"`
}

type transactionView struct {
	TxId        string          `json:"txId"`
	Complete    bool            `json:"complete"`
	Operation   deed.Operation  `json:"operation"`
	From        account.Address `json:"from"`
	Transfers   []transferView  `json:"transfers,omitempty"`
	ValidFrom   uint64          `json:"validFrom,omitempty"`
	ValidUntil  uint64          `json:"validUntil"`
	ChargeRate  uint64          `json:"chargeRate"`
	ChargeLimit uint64          `json:"chargeLimit"`
	Counter     uint64          `json:"counter"`
	Contract    *contractView   `json:"contract,omitempty"`
	Signers     []signerView    `json:"signers"`
}

// JSON friendly view of a decoded transaction
func describe(tx *transaction.Transaction) (*transactionView, error) {
	txId, err := tx.TxId()
	if nil != err {
		return nil, err
	}

	view := &transactionView{
		TxId:        txId,
		Complete:    tx.IsComplete(),
		Operation:   deed.OperationForTransaction(tx),
		From:        tx.From,
		ValidFrom:   tx.ValidFrom,
		ValidUntil:  tx.ValidUntil,
		ChargeRate:  tx.ChargeRate,
		ChargeLimit: tx.ChargeLimit,
		Counter:     tx.Counter,
	}

	for _, t := range tx.Transfers.Items() {
		view.Transfers = append(view.Transfers, transferView{To: t.To, Amount: t.Amount})
	}

	if nil != tx.Target {
		c := &contractView{
			Mode:   tx.Target.Mode().String(),
			Action: tx.Action,
		}
		switch target := tx.Target.(type) {
		case transaction.SmartContract:
			c.Digest = target.Digest.String()
			c.Address = target.Address
		case transaction.Synergetic:
			c.Digest = target.Digest.String()
			c.Address = target.Address
		case transaction.ChainCode:
			c.ChainCode = target.Name
		}
		if nil != tx.ShardMask {
			c.ShardMask = tx.ShardMask.Binary()
		}
		if 0 != len(tx.Data) {
			c.Data = hex.EncodeToString(tx.Data)
		}
		view.Contract = c
	}

	for _, s := range tx.Signers.Items() {
		view.Signers = append(view.Signers, signerView{
			Identity:  s.Identity,
			Address:   s.Identity.Address(),
			Signature: s.Signature,
			Verified:  s.Verified,
		})
	}
	return view, nil
}
