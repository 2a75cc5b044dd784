package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cryptobox/internal/crypto"
	"cryptobox/internal/domain"
	"cryptobox/internal/store"
	"cryptobox/internal/vault"
)

// Wire bundles the store, provider and vault for the CLI.
type Wire struct {
	Store    *store.KeyFileStore
	Provider domain.Provider
	Vault    *vault.Vault
	Log      *slog.Logger

	// LoadErr is set when loading stopped at a bad record; the vault is
	// still usable and the original file has been backed up.
	LoadErr error
}

// NewWire constructs the dependency graph from cfg and loads the vault.
func NewWire(cfg Config, logger *slog.Logger) (*Wire, error) {
	if cfg.Home == "" {
		return nil, errors.New("home directory not set")
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, fmt.Errorf("create home: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("vault", filepath.Join(cfg.Home, cfg.StorageFile)))

	ks := store.NewKeyFileStore(cfg.Home, cfg.StorageFile)
	provider := crypto.NewSecp256k1()

	v, err := vault.Open(ks, provider, logger)
	var le *vault.LoadError
	if err != nil && !errors.As(err, &le) {
		return nil, err
	}
	if errors.Is(err, domain.ErrStorageUnavailable) {
		_ = v.Close()
		return nil, err
	}

	return &Wire{
		Store:    ks,
		Provider: provider,
		Vault:    v,
		Log:      logger,
		LoadErr:  err,
	}, nil
}

// Close flushes the vault to disk.
func (w *Wire) Close() error {
	return w.Vault.Close()
}
