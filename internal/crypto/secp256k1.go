package crypto

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"cryptobox/internal/domain"
)

const coordBytes = 32

var (
	errMissingComponent = errors.New("key component missing")
	errOutOfRange       = errors.New("value out of range")
	errNotOnCurve       = errors.New("point is not on curve")
	errKeyMismatch      = errors.New("private scalar does not match public point")
)

// Secp256k1 is the EC provider for the secp256k1 curve.
type Secp256k1 struct{}

// NewSecp256k1 returns the secp256k1 provider.
func NewSecp256k1() *Secp256k1 { return &Secp256k1{} }

// GenerateKey returns a fresh secp256k1 key pair.
func (Secp256k1) GenerateKey() (domain.KeyPair, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return domain.KeyPair{}, fmt.Errorf("generate key: %w", err)
	}
	defer priv.Zero()

	return keyPairFrom(priv), nil
}

// ImportKey validates kp and returns a copy of it.
func (Secp256k1) ImportKey(kp domain.KeyPair) (domain.KeyPair, error) {
	pub, err := publicKey(kp.Public)
	if err != nil {
		return domain.KeyPair{}, err
	}
	priv, err := privateKey(kp.Private)
	if err != nil {
		return domain.KeyPair{}, err
	}
	defer priv.Zero()

	if !priv.PubKey().IsEqual(pub) {
		return domain.KeyPair{}, errKeyMismatch
	}
	return kp.Clone(), nil
}

// Sign produces a deterministic (RFC 6979) ECDSA signature over digest.
func (Secp256k1) Sign(kp domain.KeyPair, digest domain.Digest) (domain.Signature, error) {
	priv, err := privateKey(kp.Private)
	if err != nil {
		return domain.Signature{}, err
	}
	defer priv.Zero()

	sig := ecdsa.Sign(priv, digest)
	r, s := sig.R(), sig.S()
	return domain.Signature{R: scalarInt(&r), S: scalarInt(&s)}, nil
}

// Verify checks sig over digest against pub. A malformed public point is an
// error; a malformed signature simply does not verify.
func (Secp256k1) Verify(pub domain.Point, digest domain.Digest, sig domain.Signature) (bool, error) {
	pk, err := publicKey(pub)
	if err != nil {
		return false, err
	}
	var r, s secp256k1.ModNScalar
	if !setScalar(&r, sig.R) || !setScalar(&s, sig.S) {
		return false, nil
	}
	return ecdsa.NewSignature(&r, &s).Verify(digest, pk), nil
}

// Release wipes the private scalar of kp.
func (Secp256k1) Release(kp domain.KeyPair) {
	WipeInt(kp.Private)
}

func keyPairFrom(priv *secp256k1.PrivateKey) domain.KeyPair {
	pub := priv.PubKey()
	d := priv.Serialize()
	defer Wipe(d)

	return domain.KeyPair{
		Public:  domain.Point{X: pub.X(), Y: pub.Y()},
		Private: new(big.Int).SetBytes(d),
	}
}

func publicKey(p domain.Point) (*secp256k1.PublicKey, error) {
	if p.X == nil || p.Y == nil {
		return nil, fmt.Errorf("public point: %w", errMissingComponent)
	}
	var x, y secp256k1.FieldVal
	if !setField(&x, p.X) || !setField(&y, p.Y) {
		return nil, fmt.Errorf("public point: %w", errOutOfRange)
	}
	pk := secp256k1.NewPublicKey(&x, &y)
	if !pk.IsOnCurve() {
		return nil, errNotOnCurve
	}
	return pk, nil
}

func privateKey(d *big.Int) (*secp256k1.PrivateKey, error) {
	if d == nil {
		return nil, fmt.Errorf("private scalar: %w", errMissingComponent)
	}
	var k secp256k1.ModNScalar
	defer k.Zero()
	if !setScalar(&k, d) {
		return nil, fmt.Errorf("private scalar: %w", errOutOfRange)
	}
	return secp256k1.NewPrivateKey(&k), nil
}

// setField loads n into f, reporting false when n does not fit the field.
func setField(f *secp256k1.FieldVal, n *big.Int) bool {
	if n.Sign() < 0 || n.BitLen() > coordBytes*8 {
		return false
	}
	var buf [coordBytes]byte
	n.FillBytes(buf[:])
	overflow := f.SetByteSlice(buf[:])
	return !overflow
}

// setScalar loads n into s, reporting false unless 0 < n < N.
func setScalar(s *secp256k1.ModNScalar, n *big.Int) bool {
	if n == nil || n.Sign() <= 0 || n.BitLen() > coordBytes*8 {
		return false
	}
	var buf [coordBytes]byte
	n.FillBytes(buf[:])
	defer Wipe(buf[:])
	overflow := s.SetByteSlice(buf[:])
	return !overflow && !s.IsZero()
}

func scalarInt(s *secp256k1.ModNScalar) *big.Int {
	b := s.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// Compile-time assertion that Secp256k1 implements domain.Provider.
var _ domain.Provider = Secp256k1{}
