package store

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"cryptobox/internal/domain"
)

// fieldsPerRecord is handle, x, y and the private scalar.
const fieldsPerRecord = 4

var errIncompleteKey = errors.New("key pair is incomplete")

// ParseError reports the first malformed record in a key file.
type ParseError struct {
	Record int // 1-based index of the offending record
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Record, e.Err)
}

// Unwrap lets callers match both domain.ErrCodecParse and the cause.
func (e *ParseError) Unwrap() []error {
	return []error{domain.ErrCodecParse, e.Err}
}

// Encode renders keys one per line as "<handle> <x> <y> <priv>\n", each
// number in upper-case hex without padding or prefix. The whole output is
// built in memory, so a failing entry leaves nothing half-written.
func Encode(keys []domain.StoredKey) ([]byte, error) {
	var buf bytes.Buffer
	for _, k := range keys {
		if err := domain.CheckHandle(k.Handle); err != nil {
			return nil, fmt.Errorf("encode %q: %w", k.Handle, err)
		}
		kp := k.Pair
		if kp.Public.X == nil || kp.Public.Y == nil || kp.Private == nil {
			return nil, fmt.Errorf("encode %q: %w: %w", k.Handle, domain.ErrProvider, errIncompleteKey)
		}
		buf.WriteString(k.Handle.String())
		for _, n := range []*big.Int{kp.Public.X, kp.Public.Y, kp.Private} {
			buf.WriteByte(' ')
			buf.WriteString(encodeInt(n))
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// Decode reads whitespace-delimited records of four fields. It stops at the
// first malformed record and returns the records before it along with a
// *ParseError.
func Decode(r io.Reader) ([]domain.StoredKey, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var (
		out    []domain.StoredKey
		fields = make([]string, 0, fieldsPerRecord)
	)
	for sc.Scan() {
		fields = append(fields, sc.Text())
		if len(fields) < fieldsPerRecord {
			continue
		}
		k, err := decodeRecord(fields)
		if err != nil {
			return out, &ParseError{Record: len(out) + 1, Err: err}
		}
		out = append(out, k)
		fields = fields[:0]
	}
	if err := sc.Err(); err != nil {
		return out, &ParseError{Record: len(out) + 1, Err: err}
	}
	if len(fields) > 0 {
		return out, &ParseError{
			Record: len(out) + 1,
			Err:    fmt.Errorf("truncated record: %d of %d fields", len(fields), fieldsPerRecord),
		}
	}
	return out, nil
}

func decodeRecord(fields []string) (domain.StoredKey, error) {
	handle := domain.Handle(fields[0])
	var nums [3]*big.Int
	for i, name := range []string{"x", "y", "priv"} {
		n, err := decodeInt(fields[i+1])
		if err != nil {
			return domain.StoredKey{}, fmt.Errorf("%s of %q: %w", name, handle, err)
		}
		nums[i] = n
	}
	return domain.StoredKey{
		Handle: handle,
		Pair: domain.KeyPair{
			Public:  domain.Point{X: nums[0], Y: nums[1]},
			Private: nums[2],
		},
	}, nil
}

func encodeInt(n *big.Int) string {
	return strings.ToUpper(n.Text(16))
}

func decodeInt(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("invalid hex %q", s)
	}
	return n, nil
}
