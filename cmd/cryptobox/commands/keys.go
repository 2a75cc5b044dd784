package commands

import (
	"github.com/spf13/cobra"

	"cryptobox/internal/domain"
)

func createCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "create <handle>",
		Short: "Generate a key pair under a new handle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd.OutOrStdout(), c.wire.Vault, domain.Handle(args[0]))
		},
	}
}

func listCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List key handles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout(), c.wire.Vault)
		},
	}
}

func deleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <handle>",
		Short: "Delete a key pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd.OutOrStdout(), c.wire.Vault, domain.Handle(args[0]))
		},
	}
}

func pubkeyCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey <handle>",
		Short: "Print a handle's public point and fingerprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPubkey(cmd.OutOrStdout(), c.wire.Vault, domain.Handle(args[0]))
		},
	}
}
