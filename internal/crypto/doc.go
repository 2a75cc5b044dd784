// Package crypto exposes the elliptic-curve primitives used by cryptobox.
//
// Contents
//
//   - The secp256k1 EC provider: key generation, validation of stored keys,
//     deterministic ECDSA signing and verification (Secp256k1)
//   - Best-effort wiping of byte slices and big integers (Wipe, WipeInt)
//   - Short public-key fingerprints for display (Fingerprint)
//   - SHA3-256 message hashing for callers without a digest (HashMessage)
//
// # Notes
//
// Native key objects created by the provider live only for the duration of
// a single call and are zeroed before it returns. Key pairs crossing the
// package boundary carry big integers; callers release them with
// Secp256k1.Release.
package crypto
