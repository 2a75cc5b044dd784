// Package vault implements the key vault: key pairs under caller-chosen
// handles, and the signatures made with them.
//
// Operations
//
//   - CreateKey        generate a key pair under a new handle
//   - SignHash         sign a digest, storing the signature per (digest, handle)
//   - VerifySignature  check the stored signature for (digest, handle)
//   - VerifyWith       check a caller-supplied signature against a handle's key
//   - ListKeyHandles   list handles in lexicographic order
//   - DeleteKeyHandle  remove and wipe a key pair
//
// # Persistence
//
// Open loads keys from a domain.KeyStore and Close writes them back. The
// stored copy is not consumed by loading; Close replaces it atomically, or
// removes it when the vault holds no keys. Signatures are never persisted.
//
// Loading is fail-fast: the first bad record stops it, records before it
// are kept and a *LoadError reports how many were loaded. The partly read
// medium is backed up first so the rewrite at Close loses nothing. A medium
// that exists but cannot be read is never rewritten or removed.
package vault
