// Package app wires application dependencies for the CLI.
//
// Config is read from the environment; NewWire builds the key file store,
// the secp256k1 provider and the vault from it, exposing them via the Wire
// struct for commands to use.
package app
