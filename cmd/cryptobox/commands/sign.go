package commands

import (
	"github.com/spf13/cobra"

	"cryptobox/internal/domain"
)

type digestFlags struct {
	hex  bool
	sha3 bool
}

func (f *digestFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.hex, "hex", false, "decode the digest argument from hex")
	cmd.Flags().BoolVar(&f.sha3, "sha3", false, "treat the argument as a message and sign its SHA3-256 digest")
}

func (f *digestFlags) digest(arg string) (domain.Digest, error) {
	mode, err := modeFromFlags(f.hex, f.sha3)
	if err != nil {
		return nil, err
	}
	return parseDigest(arg, mode)
}

func signCmd(c *cli) *cobra.Command {
	var df digestFlags
	cmd := &cobra.Command{
		Use:   "sign <handle> <digest>",
		Short: "Sign a digest with a handle's key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := df.digest(args[1])
			if err != nil {
				return err
			}
			return runSign(cmd.OutOrStdout(), c.wire.Vault, domain.Handle(args[0]), d)
		},
	}
	df.register(cmd)
	return cmd
}

func verifyCmd(c *cli) *cobra.Command {
	var (
		df     digestFlags
		sigArg string
	)
	cmd := &cobra.Command{
		Use:   "verify <handle> <digest>",
		Short: "Verify a signature for a digest and handle",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := df.digest(args[1])
			if err != nil {
				return err
			}
			var sig *domain.Signature
			if sigArg != "" {
				s, err := parseSignature(sigArg)
				if err != nil {
					return err
				}
				sig = &s
			}
			return runVerify(cmd.OutOrStdout(), c.wire.Vault, domain.Handle(args[0]), d, sig)
		},
	}
	df.register(cmd)
	cmd.Flags().StringVar(&sigArg, "sig", "", "signature R:S in hex, as printed by sign (default: the signature stored this session)")
	return cmd
}
