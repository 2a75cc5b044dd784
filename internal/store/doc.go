// Package store provides file-based persistence for the vault's key pairs.
//
// Keys are written as plain text, one record per line:
//
//	<handle> <x-hex> <y-hex> <priv-hex>
//
// Numbers are upper-case hexadecimal with no padding and no prefix; the
// curve is implicit. Encode and Decode implement the format; KeyFileStore
// binds it to a file, writing through a temp file and rename so a crash
// never leaves a half-written key file. A missing file means no keys.
package store
