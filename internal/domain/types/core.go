package types

// Handle is a caller-chosen name for one key pair held by a vault.
type Handle string

// String returns the string form of the handle.
func (h Handle) String() string { return string(h) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// Digest is an opaque byte string signed as-is. Hashing is the caller's job.
type Digest []byte
