package vault

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"cryptobox/internal/domain"
)

// sigKey identifies a stored signature.
type sigKey struct {
	digest string
	handle domain.Handle
}

// LoadError reports a load that stopped early. Records before the failing
// one stay in the vault; records after it are not read.
type LoadError struct {
	Loaded int
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load stopped after %d keys: %v", e.Loaded, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Vault holds key pairs by handle and the signatures made with them.
//
// A single mutex guards both maps, so a Vault may be shared between
// goroutines even though every operation runs to completion synchronously.
type Vault struct {
	mu       sync.Mutex
	keys     map[domain.Handle]domain.KeyPair
	sigs     map[sigKey]domain.Signature
	provider domain.Provider
	store    domain.KeyStore
	log      *slog.Logger
	closed   bool

	// blocked is set when the stored medium could not be read or backed
	// up; Close then leaves the medium untouched.
	blocked error
}

// New returns an empty vault. A nil logger falls back to slog.Default().
func New(store domain.KeyStore, provider domain.Provider, logger *slog.Logger) *Vault {
	if logger == nil {
		logger = slog.Default()
	}
	return &Vault{
		keys:     make(map[domain.Handle]domain.KeyPair),
		sigs:     make(map[sigKey]domain.Signature),
		provider: provider,
		store:    store,
		log:      logger,
	}
}

// Open returns a vault populated from store. The vault is usable even when
// the returned error is non-nil; the error then describes why loading
// stopped and how many keys made it in.
func Open(store domain.KeyStore, provider domain.Provider, logger *slog.Logger) (*Vault, error) {
	v := New(store, provider, logger)
	_, err := v.Load()
	return v, err
}

// Load reads stored keys into the vault and returns how many were added.
// It stops at the first record that fails to parse or validate.
func (v *Vault) Load() (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return 0, domain.ErrClosed
	}

	records, readErr := v.store.LoadKeys()
	if readErr != nil && !errors.Is(readErr, domain.ErrCodecParse) {
		err := fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, readErr)
		v.blocked = err
		v.log.Error("key storage unreadable", "error", readErr)
		return 0, &LoadError{Err: err}
	}
	if len(records) == 0 && readErr == nil {
		v.log.Info("no keys to load")
		return 0, nil
	}

	loaded := 0
	for _, rec := range records {
		if err := v.admit(rec); err != nil {
			v.log.Warn("key load stopped", "handle", rec.Handle.String(), "loaded", loaded, "error", err)
			v.preserve()
			return loaded, &LoadError{Loaded: loaded, Err: err}
		}
		loaded++
	}
	if readErr != nil {
		v.log.Warn("key load stopped", "loaded", loaded, "error", readErr)
		v.preserve()
		return loaded, &LoadError{Loaded: loaded, Err: readErr}
	}
	v.log.Info("keys loaded", "count", loaded)
	return loaded, nil
}

// preserve backs up a medium that was only partly loaded, so records past
// the failing one survive the rewrite at Close.
func (v *Vault) preserve() {
	where, err := v.store.BackupKeys()
	if err != nil {
		v.blocked = fmt.Errorf("%w: backup before rewrite: %w", domain.ErrStorageUnavailable, err)
		v.log.Error("key file backup failed", "error", err)
		return
	}
	if where != "" {
		v.log.Warn("unloaded key records kept in backup", "path", where)
	}
}

func (v *Vault) admit(rec domain.StoredKey) error {
	if err := domain.CheckHandle(rec.Handle); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCodecParse, err)
	}
	if _, ok := v.keys[rec.Handle]; ok {
		return fmt.Errorf("%q: %w", rec.Handle, domain.ErrHandleExists)
	}
	kp, err := v.provider.ImportKey(rec.Pair)
	if err != nil {
		return fmt.Errorf("%q: %w: %w", rec.Handle, domain.ErrProvider, err)
	}
	v.keys[rec.Handle] = kp
	return nil
}

// CreateKey generates a key pair under handle. On failure the vault is
// left unchanged.
func (v *Vault) CreateKey(handle domain.Handle) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return domain.ErrClosed
	}

	if err := domain.CheckHandle(handle); err != nil {
		v.log.Warn("create key rejected", "handle", handle.String(), "error", err)
		return err
	}
	if _, ok := v.keys[handle]; ok {
		v.log.Warn("create key rejected", "handle", handle.String(), "error", domain.ErrHandleExists)
		return domain.ErrHandleExists
	}

	kp, err := v.provider.GenerateKey()
	if err != nil {
		v.log.Error("key generation failed", "handle", handle.String(), "error", err)
		return fmt.Errorf("%w: %w", domain.ErrProvider, err)
	}
	v.keys[handle] = kp
	v.log.Info("key created", "handle", handle.String())
	return nil
}

// SignHash signs digest with the key under handle and stores the result,
// replacing any signature already held for the same (digest, handle).
func (v *Vault) SignHash(digest domain.Digest, handle domain.Handle) (domain.Signature, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return domain.Signature{}, domain.ErrClosed
	}

	kp, ok := v.getKey(handle)
	if !ok {
		return domain.Signature{}, domain.ErrUnknownHandle
	}
	sig, err := v.provider.Sign(kp, digest)
	if err != nil {
		v.log.Error("signing failed", "handle", handle.String(), "error", err)
		return domain.Signature{}, fmt.Errorf("%w: %w", domain.ErrProvider, err)
	}

	k := sigKey{digest: string(digest), handle: handle}
	if _, replaced := v.sigs[k]; replaced {
		v.log.Debug("replacing stored signature", "handle", handle.String())
	}
	v.sigs[k] = sig
	v.log.Info("signature stored", "handle", handle.String())
	return sig.Clone(), nil
}

// VerifySignature checks the signature previously stored for
// (digest, handle) against the key under handle.
func (v *Vault) VerifySignature(digest domain.Digest, handle domain.Handle) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return false, domain.ErrClosed
	}

	kp, ok := v.getKey(handle)
	if !ok {
		return false, domain.ErrUnknownHandle
	}
	sig, ok := v.sigs[sigKey{digest: string(digest), handle: handle}]
	if !ok {
		v.log.Warn("no stored signature", "handle", handle.String())
		return false, domain.ErrUnknownSignature
	}
	return v.verify(kp, digest, handle, sig)
}

// VerifyWith checks a caller-supplied signature over digest against the key
// under handle. Unlike VerifySignature it needs no stored signature.
func (v *Vault) VerifyWith(digest domain.Digest, handle domain.Handle, sig domain.Signature) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return false, domain.ErrClosed
	}

	kp, ok := v.getKey(handle)
	if !ok {
		return false, domain.ErrUnknownHandle
	}
	return v.verify(kp, digest, handle, sig)
}

func (v *Vault) verify(kp domain.KeyPair, digest domain.Digest, handle domain.Handle, sig domain.Signature) (bool, error) {
	ok, err := v.provider.Verify(kp.Public, digest, sig)
	if err != nil {
		v.log.Error("verification failed", "handle", handle.String(), "error", err)
		return false, fmt.Errorf("%w: %w", domain.ErrProvider, err)
	}
	if !ok {
		v.log.Info("signature rejected", "handle", handle.String())
		return false, nil
	}
	v.log.Info("signature verified", "handle", handle.String())
	return true, nil
}

// ListKeyHandles returns every handle in lexicographic order.
func (v *Vault) ListKeyHandles() []domain.Handle {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]domain.Handle, 0, len(v.keys))
	for h := range v.keys {
		out = append(out, h)
	}
	slices.Sort(out)
	return out
}

// DeleteKeyHandle removes and wipes the key under handle. Signatures made
// with it stay stored until Close.
func (v *Vault) DeleteKeyHandle(handle domain.Handle) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return domain.ErrClosed
	}

	kp, ok := v.getKey(handle)
	if !ok {
		return domain.ErrUnknownHandle
	}
	delete(v.keys, handle)
	v.provider.Release(kp)
	v.log.Info("key deleted", "handle", handle.String())
	return nil
}

// GetKey returns a copy of the key pair under handle.
func (v *Vault) GetKey(handle domain.Handle) (domain.KeyPair, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	kp, ok := v.keys[handle]
	if !ok {
		return domain.KeyPair{}, false
	}
	return kp.Clone(), true
}

// PublicKey returns the public point of the key under handle.
func (v *Vault) PublicKey(handle domain.Handle) (domain.Point, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return domain.Point{}, domain.ErrClosed
	}

	kp, ok := v.getKey(handle)
	if !ok {
		return domain.Point{}, domain.ErrUnknownHandle
	}
	return kp.Public.Clone(), nil
}

// Close writes every key to the store, then wipes keys and drops
// signatures. If the write fails the vault stays open with its contents
// intact so the caller can retry. Close after a successful Close is a no-op.
//
// When loading found the medium unreadable, Close does not touch it: the
// vault is wiped and closed and an ErrStorageUnavailable error is returned.
func (v *Vault) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return nil
	}

	if v.blocked != nil {
		v.log.Error("key storage left untouched", "dropped", len(v.keys), "error", v.blocked)
		v.release()
		return fmt.Errorf("store keys: %w", v.blocked)
	}

	handles := make([]domain.Handle, 0, len(v.keys))
	for h := range v.keys {
		handles = append(handles, h)
	}
	slices.Sort(handles)

	records := make([]domain.StoredKey, 0, len(handles))
	for _, h := range handles {
		records = append(records, domain.StoredKey{Handle: h, Pair: v.keys[h]})
	}
	if err := v.store.StoreKeys(records); err != nil {
		v.log.Error("storing keys failed", "count", len(records), "error", err)
		return fmt.Errorf("store keys: %w", err)
	}
	if len(records) == 0 {
		v.log.Info("no keys to store")
	} else {
		v.log.Info("keys stored", "count", len(records))
	}

	v.release()
	return nil
}

func (v *Vault) release() {
	for h, kp := range v.keys {
		v.provider.Release(kp)
		delete(v.keys, h)
	}
	clear(v.sigs)
	v.closed = true
}

// getKey looks up handle without failing; callers decide what a miss means.
func (v *Vault) getKey(handle domain.Handle) (domain.KeyPair, bool) {
	kp, ok := v.keys[handle]
	if !ok {
		v.log.Warn("unknown key handle", "handle", handle.String())
	}
	return kp, ok
}
