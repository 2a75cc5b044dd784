package commands

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"cryptobox/internal/crypto"
	"cryptobox/internal/domain"
	"cryptobox/internal/vault"
)

var errVerifyFailed = errors.New("signature verification failed")

// digestMode selects how a digest argument is turned into bytes.
type digestMode int

const (
	digestRaw  digestMode = iota // the argument's bytes, signed as-is
	digestHex                    // the argument decoded from hex
	digestSHA3                   // SHA3-256 of the argument
)

func parseDigest(arg string, mode digestMode) (domain.Digest, error) {
	switch mode {
	case digestHex:
		b, err := hex.DecodeString(arg)
		if err != nil {
			return nil, fmt.Errorf("digest: %w", err)
		}
		return domain.Digest(b), nil
	case digestSHA3:
		return crypto.HashMessage([]byte(arg)), nil
	default:
		return domain.Digest(arg), nil
	}
}

func modeFromFlags(hexFlag, sha3Flag bool) (digestMode, error) {
	switch {
	case hexFlag && sha3Flag:
		return digestRaw, errors.New("--hex and --sha3 are mutually exclusive")
	case hexFlag:
		return digestHex, nil
	case sha3Flag:
		return digestSHA3, nil
	default:
		return digestRaw, nil
	}
}

// formatSignature renders sig as "R:S" in upper-case hex.
func formatSignature(sig domain.Signature) string {
	return strings.ToUpper(sig.R.Text(16)) + ":" + strings.ToUpper(sig.S.Text(16))
}

func parseSignature(s string) (domain.Signature, error) {
	rs, ss, ok := strings.Cut(s, ":")
	if !ok {
		return domain.Signature{}, fmt.Errorf("signature %q: want R:S", s)
	}
	r, okR := new(big.Int).SetString(rs, 16)
	sv, okS := new(big.Int).SetString(ss, 16)
	if !okR || !okS {
		return domain.Signature{}, fmt.Errorf("signature %q: invalid hex", s)
	}
	return domain.Signature{R: r, S: sv}, nil
}

func runCreate(w io.Writer, v *vault.Vault, handle domain.Handle) error {
	if err := v.CreateKey(handle); err != nil {
		return fmt.Errorf("create %q: %w", handle, err)
	}
	fmt.Fprintf(w, "Key created: %s\n", handle)
	return nil
}

func runSign(w io.Writer, v *vault.Vault, handle domain.Handle, digest domain.Digest) error {
	sig, err := v.SignHash(digest, handle)
	if err != nil {
		return fmt.Errorf("sign with %q: %w", handle, err)
	}
	fmt.Fprintf(w, "Signature: %s\n", formatSignature(sig))
	return nil
}

// runVerify checks the stored signature, or sig when it is non-nil.
func runVerify(w io.Writer, v *vault.Vault, handle domain.Handle, digest domain.Digest, sig *domain.Signature) error {
	var (
		ok  bool
		err error
	)
	if sig != nil {
		ok, err = v.VerifyWith(digest, handle, *sig)
	} else {
		ok, err = v.VerifySignature(digest, handle)
	}
	if err != nil {
		return fmt.Errorf("verify with %q: %w", handle, err)
	}
	if !ok {
		fmt.Fprintln(w, "Signature verification: Failed")
		return errVerifyFailed
	}
	fmt.Fprintln(w, "Signature verification: Passed")
	return nil
}

func runList(w io.Writer, v *vault.Vault) error {
	for _, h := range v.ListKeyHandles() {
		fmt.Fprintln(w, h)
	}
	return nil
}

func runDelete(w io.Writer, v *vault.Vault, handle domain.Handle) error {
	if err := v.DeleteKeyHandle(handle); err != nil {
		return fmt.Errorf("delete %q: %w", handle, err)
	}
	fmt.Fprintf(w, "Deleted: %s\n", handle)
	return nil
}

func runPubkey(w io.Writer, v *vault.Vault, handle domain.Handle) error {
	pub, err := v.PublicKey(handle)
	if err != nil {
		return fmt.Errorf("pubkey %q: %w", handle, err)
	}
	fp, err := crypto.Fingerprint(pub)
	if err != nil {
		return fmt.Errorf("pubkey %q: %w", handle, err)
	}
	fmt.Fprintf(w, "X: %s\nY: %s\nFingerprint: %s\n",
		strings.ToUpper(pub.X.Text(16)),
		strings.ToUpper(pub.Y.Text(16)),
		fp)
	return nil
}
