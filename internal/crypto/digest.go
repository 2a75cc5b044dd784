package crypto

import (
	"golang.org/x/crypto/sha3"

	"cryptobox/internal/domain"
)

// HashMessage returns the SHA3-256 digest of msg, for callers that want to
// sign a message rather than a precomputed digest.
func HashMessage(msg []byte) domain.Digest {
	sum := sha3.Sum256(msg)
	return domain.Digest(sum[:])
}
