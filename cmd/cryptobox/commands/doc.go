// Package commands defines the cryptobox CLI and wires dependencies for subcommands.
//
// Commands
//
//   - create   Generate a key pair under a new handle
//   - sign     Sign a digest with a handle's key
//   - verify   Verify a signature for a digest and handle
//   - list     List key handles
//   - delete   Delete a key pair
//   - pubkey   Print a handle's public point and fingerprint
//   - shell    Run vault operations interactively
//
// # Implementation
//
// The root command loads the vault before any subcommand runs and Execute
// writes it back afterwards. Signatures live only in memory, so verifying a
// stored signature needs both steps in one shell session; verify --sig
// checks a signature printed by an earlier sign.
package commands
