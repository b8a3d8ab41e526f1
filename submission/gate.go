// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package submission

import (
	"context"
	"fmt"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ledgertx/account"
	"github.com/bitmark-inc/ledgertx/counter"
	"github.com/bitmark-inc/ledgertx/deed"
	"github.com/bitmark-inc/ledgertx/digest"
	"github.com/bitmark-inc/ledgertx/fault"
	"github.com/bitmark-inc/ledgertx/transaction"
)

// defaults for Options fields left zero
const (
	DefaultRate        = 10
	DefaultBurst       = 5
	DefaultDedupExpiry = 10 * time.Minute
)

// DeedLookup - fetch the deed of an account, false if it has none
type DeedLookup func(address account.Address) (*deed.Deed, bool, error)

// Recorder - called after the sink accepts a transaction
type Recorder func(txId digest.Digest, reference string)

// Options - gate tuning
type Options struct {
	Rate        float64       // sustained submissions per second
	Burst       int           // submissions allowed at once
	DedupExpiry time.Duration // how long a submitted id is remembered
	Deeds       DeedLookup    // nil means no account has a deed
	Recorder    Recorder      // optional
}

// Stats - gate counters
type Stats struct {
	Accepted   uint64 `json:"accepted"`
	Rejected   uint64 `json:"rejected"`
	Duplicates uint64 `json:"duplicates"`
	Failed     uint64 `json:"failed"`
}

// Gate - validates transactions before they reach the sink
type Gate struct {
	log      *logger.L
	sink     Sink
	deeds    DeedLookup
	recorder Recorder
	seen     *cache.Cache
	limiter  *rate.Limiter

	accepted   counter.Counter
	rejected   counter.Counter
	duplicates counter.Counter
	failed     counter.Counter
}

// New - create a gate in front of a sink
func New(log *logger.L, sink Sink, options Options) *Gate {
	if 0 == options.Rate {
		options.Rate = DefaultRate
	}
	if 0 == options.Burst {
		options.Burst = DefaultBurst
	}
	if 0 == options.DedupExpiry {
		options.DedupExpiry = DefaultDedupExpiry
	}

	return &Gate{
		log:      log,
		sink:     sink,
		deeds:    options.Deeds,
		recorder: options.Recorder,
		seen:     cache.New(options.DedupExpiry, 2*options.DedupExpiry),
		limiter:  rate.NewLimiter(rate.Limit(options.Rate), options.Burst),
	}
}

// Check - decode, verify and authorise without submitting
//
// signatures that fail to verify are not counted towards the deed
// thresholds
func (g *Gate) Check(raw []byte) (*transaction.Transaction, error) {
	_, tx, err := transaction.DecodeTransaction(raw)
	if nil != err {
		return nil, err
	}

	var d *deed.Deed
	if nil != g.deeds {
		found := false
		d, found, err = g.deeds(tx.From)
		if nil != err {
			return nil, err
		}
		if !found {
			d = nil
		}
	}

	if err := deed.AuthoriseTransaction(d, tx); nil != err {
		return nil, err
	}
	return tx, nil
}

// Submit - check a packed transaction and pass it to the sink
//
// returns the identifier assigned by the sink
func (g *Gate) Submit(ctx context.Context, raw []byte) (string, error) {
	tx, err := g.Check(raw)
	if nil != err {
		g.rejected.Increment()
		g.log.Warnf("rejected: %s", err)
		return "", err
	}

	txId, err := tx.Digest()
	if nil != err {
		g.rejected.Increment()
		return "", err
	}
	key := txId.String()

	// Add fails if the key is present, so only one caller proceeds
	if err := g.seen.Add(key, "", cache.DefaultExpiration); nil != err {
		g.duplicates.Increment()
		g.log.Debugf("duplicate: %s", key)
		return "", fault.DuplicateTransaction
	}

	if err := g.limiter.Wait(ctx); nil != err {
		g.seen.Delete(key)
		g.failed.Increment()
		return "", fmt.Errorf("%w: %s", fault.RateLimiting, err)
	}

	reference, err := g.sink.Submit(ctx, raw)
	if nil != err {
		g.seen.Delete(key)
		g.failed.Increment()
		g.log.Errorf("submit: %s  error: %s", key, err)
		return "", err
	}

	g.seen.Set(key, reference, cache.DefaultExpiration)
	g.accepted.Increment()
	g.log.Infof("submitted: %s  reference: %s", key, reference)

	if nil != g.recorder {
		g.recorder(txId, reference)
	}
	return reference, nil
}

// Stats - snapshot of the gate counters
func (g *Gate) Stats() Stats {
	return Stats{
		Accepted:   g.accepted.Uint64(),
		Rejected:   g.rejected.Uint64(),
		Duplicates: g.duplicates.Uint64(),
		Failed:     g.failed.Uint64(),
	}
}
