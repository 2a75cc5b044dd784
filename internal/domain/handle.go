package domain

import (
	"strings"
	"unicode"
)

// CheckHandle reports whether h can name a key: it must be non-empty and
// free of whitespace so that it survives the line-oriented key file.
func CheckHandle(h Handle) error {
	if h == "" {
		return ErrEmptyHandle
	}
	if strings.ContainsFunc(string(h), unicode.IsSpace) {
		return ErrInvalidHandle
	}
	return nil
}
