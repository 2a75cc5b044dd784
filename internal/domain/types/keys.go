package types

import "math/big"

// Point is an affine point on the vault's curve.
type Point struct {
	X *big.Int
	Y *big.Int
}

// Clone returns a deep copy of p.
func (p Point) Clone() Point {
	return Point{X: cloneInt(p.X), Y: cloneInt(p.Y)}
}

// Equal reports whether p and o hold the same coordinates.
func (p Point) Equal(o Point) bool {
	return intEqual(p.X, o.X) && intEqual(p.Y, o.Y)
}

// KeyPair holds a public point and its private scalar.
type KeyPair struct {
	Public  Point
	Private *big.Int
}

// Clone returns a deep copy of kp.
func (kp KeyPair) Clone() KeyPair {
	return KeyPair{Public: kp.Public.Clone(), Private: cloneInt(kp.Private)}
}

// Signature is an ECDSA (r, s) pair.
type Signature struct {
	R *big.Int
	S *big.Int
}

// Clone returns a deep copy of s.
func (s Signature) Clone() Signature {
	return Signature{R: cloneInt(s.R), S: cloneInt(s.S)}
}

// StoredKey is one persisted entry: a handle and the key pair it names.
type StoredKey struct {
	Handle Handle
	Pair   KeyPair
}

func cloneInt(n *big.Int) *big.Int {
	if n == nil {
		return nil
	}
	return new(big.Int).Set(n)
}

func intEqual(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}
