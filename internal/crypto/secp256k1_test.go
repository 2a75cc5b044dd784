package crypto_test

import (
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptobox/internal/crypto"
	"cryptobox/internal/domain"
)

func TestGenerateKey_OnCurveNonZero(t *testing.T) {
	p := crypto.NewSecp256k1()

	kp, err := p.GenerateKey()
	require.NoError(t, err)
	require.NotNil(t, kp.Private)
	assert.Positive(t, kp.Private.Sign())
	assert.True(t, secp256k1.S256().IsOnCurve(kp.Public.X, kp.Public.Y))

	imported, err := p.ImportKey(kp)
	require.NoError(t, err)
	assert.True(t, imported.Public.Equal(kp.Public))
	assert.Zero(t, imported.Private.Cmp(kp.Private))
}

func TestSignVerify_RoundTrip(t *testing.T) {
	p := crypto.NewSecp256k1()
	kp, err := p.GenerateKey()
	require.NoError(t, err)

	digest := domain.Digest("4ebe7bf36ca8eca10ca28b2632e1a92da8e2a6f5937d6ceb86474e59159f8901")
	sig, err := p.Sign(kp, digest)
	require.NoError(t, err)

	ok, err := p.Verify(kp.Public, digest, sig)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Verify(kp.Public, domain.Digest("other"), sig)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSign_Deterministic(t *testing.T) {
	p := crypto.NewSecp256k1()
	kp, err := p.GenerateKey()
	require.NoError(t, err)

	a, err := p.Sign(kp, domain.Digest("abc123"))
	require.NoError(t, err)
	b, err := p.Sign(kp, domain.Digest("abc123"))
	require.NoError(t, err)
	assert.Zero(t, a.R.Cmp(b.R))
	assert.Zero(t, a.S.Cmp(b.S))
}

func TestVerify_WrongKeyFails(t *testing.T) {
	p := crypto.NewSecp256k1()
	signer, err := p.GenerateKey()
	require.NoError(t, err)
	other, err := p.GenerateKey()
	require.NoError(t, err)

	sig, err := p.Sign(signer, domain.Digest("abc123"))
	require.NoError(t, err)

	ok, err := p.Verify(other.Public, domain.Digest("abc123"), sig)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_MalformedSignatureIsFalse(t *testing.T) {
	p := crypto.NewSecp256k1()
	kp, err := p.GenerateKey()
	require.NoError(t, err)

	for name, sig := range map[string]domain.Signature{
		"zero":     {R: big.NewInt(0), S: big.NewInt(1)},
		"negative": {R: big.NewInt(-1), S: big.NewInt(1)},
		"nil":      {},
		"overflow": {R: secp256k1.S256().Params().N, S: big.NewInt(1)},
	} {
		t.Run(name, func(t *testing.T) {
			ok, err := p.Verify(kp.Public, domain.Digest("abc"), sig)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestImportKey_Rejects(t *testing.T) {
	p := crypto.NewSecp256k1()
	kp, err := p.GenerateKey()
	require.NoError(t, err)
	other, err := p.GenerateKey()
	require.NoError(t, err)

	offCurve := kp.Clone()
	offCurve.Public.Y = new(big.Int).Add(offCurve.Public.Y, big.NewInt(1))

	mismatched := kp.Clone()
	mismatched.Private = other.Private

	zero := kp.Clone()
	zero.Private = big.NewInt(0)

	missing := kp.Clone()
	missing.Public.X = nil

	tooWide := kp.Clone()
	tooWide.Public.X = new(big.Int).Lsh(big.NewInt(1), 300)

	for name, bad := range map[string]domain.KeyPair{
		"off curve":  offCurve,
		"mismatched": mismatched,
		"zero":       zero,
		"missing":    missing,
		"too wide":   tooWide,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := p.ImportKey(bad)
			assert.Error(t, err)
		})
	}
}

func TestRelease_WipesPrivateScalar(t *testing.T) {
	p := crypto.NewSecp256k1()
	kp, err := p.GenerateKey()
	require.NoError(t, err)

	words := kp.Private.Bits()
	p.Release(kp)

	assert.Zero(t, kp.Private.Sign())
	for _, w := range words {
		assert.Zero(t, w)
	}
}

func TestFingerprint_StableAndDistinct(t *testing.T) {
	p := crypto.NewSecp256k1()
	a, err := p.GenerateKey()
	require.NoError(t, err)
	b, err := p.GenerateKey()
	require.NoError(t, err)

	fa, err := crypto.Fingerprint(a.Public)
	require.NoError(t, err)
	assert.Len(t, fa.String(), 20)

	again, err := crypto.Fingerprint(a.Public.Clone())
	require.NoError(t, err)
	assert.Equal(t, fa, again)

	fb, err := crypto.Fingerprint(b.Public)
	require.NoError(t, err)
	assert.NotEqual(t, fa, fb)
}

func TestFingerprint_RejectsMalformedPoint(t *testing.T) {
	wide := new(big.Int).Lsh(big.NewInt(1), 300)
	for name, pt := range map[string]domain.Point{
		"missing x": {Y: big.NewInt(1)},
		"missing y": {X: big.NewInt(1)},
		"too wide":  {X: wide, Y: big.NewInt(1)},
		"negative":  {X: big.NewInt(1), Y: big.NewInt(-1)},
	} {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				_, err := crypto.Fingerprint(pt)
				assert.Error(t, err)
			})
		})
	}
}

func TestHashMessage_Length(t *testing.T) {
	d := crypto.HashMessage([]byte("hello"))
	assert.Len(t, d, 32)
	assert.Equal(t, d, crypto.HashMessage([]byte("hello")))
}
