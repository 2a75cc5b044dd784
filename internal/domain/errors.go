package domain

import "errors"

var (
	ErrEmptyHandle      = errors.New("key handle is empty")
	ErrInvalidHandle    = errors.New("key handle contains whitespace")
	ErrHandleExists     = errors.New("key handle already exists")
	ErrUnknownHandle    = errors.New("unknown key handle")
	ErrUnknownSignature = errors.New("no signature stored for digest and handle")

	// ErrProvider wraps any failure of a curve, point, scalar or signature primitive.
	ErrProvider = errors.New("ec provider failure")

	// ErrCodecParse marks a malformed persisted record.
	ErrCodecParse = errors.New("malformed key record")

	// ErrStorageUnavailable marks a key medium that exists but cannot be
	// read or preserved. A missing medium is not an error.
	ErrStorageUnavailable = errors.New("key storage unavailable")

	// ErrClosed is returned by every vault operation after Close.
	ErrClosed = errors.New("vault is closed")
)
