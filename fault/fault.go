// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	DeedError      GenericError // deed fails validation or authorisation
	ExistsError    GenericError
	HeaderError    GenericError // malformed transaction header
	InvalidError   GenericError
	LengthError    GenericError
	MismatchError  GenericError // partial copies disagree
	NotFoundError  GenericError
	OverflowError  GenericError // value does not fit the encoding
	ProcessError   GenericError
	RangeError     GenericError // shard mask length out of range
	RecordError    GenericError
	SignatureError GenericError // signature did not verify
	SignerError    GenericError // signer has no key material
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised            = ProcessError("already initialised")
	BitVectorSizeMismatch         = LengthError("bit vector size does not match data")
	CannotDecodeAddress           = InvalidError("cannot decode address")
	ChargeUnitNotSupported        = HeaderError("reserved charge unit flag is set")
	ChecksumMismatch              = ProcessError("checksum mismatch")
	ConflictingSignature          = MismatchError("conflicting signatures for the same signer")
	ContractTargetWithoutAction   = InvalidError("contract target requires an action")
	DatabaseIsReadOnly            = ProcessError("database is read only")
	DeedAmendThresholdMissing     = DeedError("deed has no amend threshold")
	DeedNegativeThreshold         = DeedError("deed threshold must not be negative")
	DeedNegativeWeight            = DeedError("deed signee weight must not be negative")
	DeedNotSet                    = NotFoundError("deed is not set")
	DeedOperationMissing          = DeedError("deed has no threshold for operation")
	DeedThresholdExceedsVotes     = DeedError("deed threshold exceeds total votes")
	DeedUnknownOperation          = DeedError("unknown deed operation")
	DeedVotesOverflow             = DeedError("deed total votes overflow")
	DuplicateTransaction          = ExistsError("transaction already submitted")
	EncodingOverflow              = OverflowError("value exceeds 64 bit encoding")
	IncompleteSignatures          = SignatureError("transaction is missing signatures")
	InsufficientVotes             = SignatureError("verified signatures do not meet threshold")
	InvalidAction                 = InvalidError("action must be printable ascii")
	InvalidAddress                = InvalidError("invalid address")
	InvalidAmount                 = InvalidError("transfer amount must be greater than zero")
	InvalidBitIndex               = RangeError("bit index out of range")
	InvalidChainCode              = InvalidError("chain code must be printable ascii")
	InvalidCount                  = InvalidError("invalid count")
	InvalidDigest                 = InvalidError("invalid digest")
	InvalidEnvelope               = InvalidError("invalid transaction envelope")
	InvalidIPAddress              = InvalidError("invalid IP address")
	InvalidKeyLength              = InvalidError("invalid key length")
	InvalidKeyType                = InvalidError("invalid key type")
	InvalidLoggerChannel          = ProcessError("invalid logger channel")
	InvalidMagic                  = HeaderError("invalid transaction magic")
	InvalidPortNumber             = InvalidError("invalid port number")
	InvalidPrivateKey             = InvalidError("invalid private key")
	InvalidPublicKey              = InvalidError("invalid public key")
	InvalidSignature              = SignatureError("invalid signature")
	InvalidStructPointer          = InvalidError("invalid struct pointer")
	InvalidVarintHeader           = HeaderError("invalid varint header")
	MissingSigner                 = SignerError("no key supplied for signer")
	NegativeUnsigned              = OverflowError("negative value for unsigned integer")
	NoSigners                     = SignerError("transaction has no signers")
	NonMinimalVarint              = HeaderError("varint is not minimally encoded")
	NotFound                      = NotFoundError("not found")
	NotInitialised                = ProcessError("not initialised")
	NotPublicKey                  = InvalidError("not a public key")
	PartialPayloadMismatch        = MismatchError("partial transactions have different payloads")
	PartialFieldMismatch          = MismatchError("partial transaction does not match expected fields")
	RateLimiting                  = ProcessError("rate limiting")
	ReservedHeaderBits            = HeaderError("reserved header bits are set")
	ShardMaskNotPowerOfTwo        = RangeError("shard mask length is not a power of two")
	ShardMaskOutOfRange           = RangeError("shard mask length out of range")
	SignerNotInTransaction        = SignerError("key is not a signer of the transaction")
	TooManySigners                = OverflowError("too many signers")
	TrailingData                  = LengthError("trailing data after transaction")
	TruncatedData                 = LengthError("truncated data")
	UnknownContractMode           = HeaderError("unknown contract mode")
	UnsupportedVersion            = HeaderError("unsupported transaction version")
	WrongSignatureCount           = LengthError("signature count does not match signers")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e DeedError) Error() string      { return string(e) }
func (e ExistsError) Error() string    { return string(e) }
func (e HeaderError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e LengthError) Error() string    { return string(e) }
func (e MismatchError) Error() string  { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e OverflowError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }
func (e RangeError) Error() string     { return string(e) }
func (e RecordError) Error() string    { return string(e) }
func (e SignatureError) Error() string { return string(e) }
func (e SignerError) Error() string    { return string(e) }

// determine the class of an error
//
// wrapped errors (fmt.Errorf with %w) are unwrapped to find the class
func IsErrDeed(e error) bool      { var t DeedError; return errors.As(e, &t) }
func IsErrExists(e error) bool    { var t ExistsError; return errors.As(e, &t) }
func IsErrHeader(e error) bool    { var t HeaderError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool   { var t InvalidError; return errors.As(e, &t) }
func IsErrLength(e error) bool    { var t LengthError; return errors.As(e, &t) }
func IsErrMismatch(e error) bool  { var t MismatchError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool  { var t NotFoundError; return errors.As(e, &t) }
func IsErrOverflow(e error) bool  { var t OverflowError; return errors.As(e, &t) }
func IsErrProcess(e error) bool   { var t ProcessError; return errors.As(e, &t) }
func IsErrRange(e error) bool     { var t RangeError; return errors.As(e, &t) }
func IsErrRecord(e error) bool    { var t RecordError; return errors.As(e, &t) }
func IsErrSignature(e error) bool { var t SignatureError; return errors.As(e, &t) }
func IsErrSigner(e error) bool    { var t SignerError; return errors.As(e, &t) }
