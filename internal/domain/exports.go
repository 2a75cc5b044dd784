package domain

import (
	interfaces "cryptobox/internal/domain/interfaces"
	types "cryptobox/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Handle      = types.Handle
	Fingerprint = types.Fingerprint
	Digest      = types.Digest
	Point       = types.Point
	KeyPair     = types.KeyPair
	Signature   = types.Signature
	StoredKey   = types.StoredKey
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Provider = interfaces.Provider
	KeyStore = interfaces.KeyStore
)
