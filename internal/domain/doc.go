// Package domain defines the vault's data model and the contracts it relies on.
// It contains plain types (handles, key pairs, signatures), the EC provider
// and key store interfaces, and the sentinel errors shared by every layer.
package domain
