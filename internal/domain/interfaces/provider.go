package interfaces

import domaintypes "cryptobox/internal/domain/types"

// Provider supplies the elliptic-curve primitives for a single fixed curve.
//
// Implementations must not retain references to the big integers they are
// handed; the vault wipes private scalars it releases.
type Provider interface {
	// GenerateKey returns a fresh key pair.
	GenerateKey() (domaintypes.KeyPair, error)
	// ImportKey validates a key pair read from storage: the point must lie
	// on the curve and the scalar must be in range and match the point.
	ImportKey(kp domaintypes.KeyPair) (domaintypes.KeyPair, error)
	// Sign produces an ECDSA signature over digest with the private scalar.
	Sign(kp domaintypes.KeyPair, digest domaintypes.Digest) (domaintypes.Signature, error)
	// Verify checks sig over digest against pub.
	Verify(pub domaintypes.Point, digest domaintypes.Digest, sig domaintypes.Signature) (bool, error)
	// Release wipes the private scalar of kp.
	Release(kp domaintypes.KeyPair)
}
