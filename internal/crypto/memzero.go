package crypto

import (
	"math/big"
	"runtime"
)

// Wipe zeroes the provided buffer. This is best-effort and aims to
// reduce the chance of the compiler eliding the write.
//
//go:noinline
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}

// WipeInt zeroes the words backing n and sets it to zero.
//
//go:noinline
func WipeInt(n *big.Int) {
	if n == nil {
		return
	}
	words := n.Bits()
	for i := range words {
		words[i] = 0
	}
	runtime.KeepAlive(&words)
	n.SetInt64(0)
}
