package store

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sync"

	"cryptobox/internal/domain"
)

// DefaultKeyFile is the key file name used when none is configured.
const DefaultKeyFile = "storage.txt"

// BackupSuffix is appended to the key file name for a backup copy.
const BackupSuffix = ".bad"

// KeyFileStore persists key pairs to a single plain-text file.
type KeyFileStore struct {
	path string
	mu   sync.Mutex
}

// NewKeyFileStore returns a KeyFileStore for the file name inside dir.
func NewKeyFileStore(dir, name string) *KeyFileStore {
	if name == "" {
		name = DefaultKeyFile
	}
	return &KeyFileStore{path: filepath.Join(dir, name)}
}

// Path returns the location of the key file.
func (s *KeyFileStore) Path() string { return s.path }

// LoadKeys reads and decodes the key file. The file is left in place.
func (s *KeyFileStore) LoadKeys() ([]domain.StoredKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}
	if b == nil {
		return nil, nil
	}
	return Decode(bytes.NewReader(b))
}

// StoreKeys encodes keys and atomically replaces the key file. With no keys
// the file is removed instead of being left empty.
func (s *KeyFileStore) StoreKeys(keys []domain.StoredKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(keys) == 0 {
		if err := removeFile(s.path); err != nil {
			return fmt.Errorf("remove key file: %w", err)
		}
		return nil
	}
	b, err := Encode(keys)
	if err != nil {
		return err
	}
	if err := writeFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}
	return nil
}

// BackupKeys copies the key file byte for byte to "<path>.bad".
func (s *KeyFileStore) BackupKeys() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path)
	if err != nil {
		return "", fmt.Errorf("read key file: %w", err)
	}
	if b == nil {
		return "", nil
	}
	dst := s.path + BackupSuffix
	if err := writeFile(dst, b, 0o600); err != nil {
		return "", fmt.Errorf("write key backup: %w", err)
	}
	return dst, nil
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)
