// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package submission

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/ledgertx/transaction"
)

// remote procedure accepting an envelope
const submitMethod = "Transactions.Submit"

// SubmitArguments - request sent to the ledger node
type SubmitArguments struct {
	Envelope json.RawMessage `json:"envelope"`
}

// SubmitReply - response from the ledger node
type SubmitReply struct {
	TxId string `json:"txId"`
}

// RPCSink - JSON-RPC connection to a ledger node
type RPCSink struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewRPCSink - connect to a ledger node over TLS
func NewRPCSink(connect string, verbose bool, handle io.Writer) (*RPCSink, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if nil != err {
		return nil, err
	}

	return newRPCSink(conn, verbose, handle), nil
}

func newRPCSink(conn net.Conn, verbose bool, handle io.Writer) *RPCSink {
	return &RPCSink{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the connection
func (s *RPCSink) Close() {
	s.client.Close()
	s.conn.Close()
}

// Submit - send the transaction wrapped in an envelope
func (s *RPCSink) Submit(ctx context.Context, raw []byte) (string, error) {
	envelope, err := transaction.ToEnvelope(raw)
	if nil != err {
		return "", err
	}

	args := SubmitArguments{
		Envelope: envelope,
	}
	s.printJson("Submit Request", args)

	var reply SubmitReply
	call := s.client.Go(submitMethod, &args, &reply, make(chan *rpc.Call, 1))

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-call.Done:
	}
	if nil != call.Error {
		return "", call.Error
	}

	s.printJson("Submit Reply", reply)
	return reply.TxId, nil
}

func (s *RPCSink) printJson(title string, message interface{}) {

	if !s.verbose || nil == s.handle {
		return
	}

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return
	}
	fmt.Fprintf(s.handle, "%s:\n%s\n", title, b)
}
