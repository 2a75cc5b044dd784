package interfaces

import domaintypes "cryptobox/internal/domain/types"

// KeyStore persists the vault's key pairs between sessions.
type KeyStore interface {
	// LoadKeys returns the stored entries in file order. A missing medium
	// yields no entries and no error. On a malformed record it returns the
	// entries read before it together with the error.
	LoadKeys() ([]domaintypes.StoredKey, error)
	// StoreKeys replaces the stored entries. An empty slice removes the
	// medium so that its absence keeps meaning "no keys".
	StoreKeys(keys []domaintypes.StoredKey) error
	// BackupKeys copies the medium aside, untouched, and returns where the
	// copy went. A missing medium yields "" and no error.
	BackupKeys() (string, error)
}
