package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"

	"cryptobox/internal/domain"
)

// Fingerprint returns a short hex fingerprint of a public point.
//
// It hashes the uncompressed SEC1 encoding with SHA-256 and truncates to
// 10 bytes (20 hex chars). Points with a missing, negative or over-wide
// coordinate are rejected.
func Fingerprint(pub domain.Point) (domain.Fingerprint, error) {
	if pub.X == nil || pub.Y == nil {
		return "", fmt.Errorf("fingerprint: %w", errMissingComponent)
	}
	for _, n := range []*big.Int{pub.X, pub.Y} {
		if n.Sign() < 0 || n.BitLen() > coordBytes*8 {
			return "", fmt.Errorf("fingerprint: %w", errOutOfRange)
		}
	}

	var raw [1 + 2*coordBytes]byte
	raw[0] = 0x04
	pub.X.FillBytes(raw[1 : 1+coordBytes])
	pub.Y.FillBytes(raw[1+coordBytes:])
	sum := sha256.Sum256(raw[:])
	return domain.Fingerprint(hex.EncodeToString(sum[:10])), nil
}
