package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"cryptobox/internal/domain"
	"cryptobox/internal/vault"
)

const shellHelp = `Commands:
  create <handle>
  sign <handle> <digest>
  verify <handle> <digest> [R:S]
  list
  delete <handle>
  pubkey <handle>
  help
  quit
`

var errQuit = errors.New("quit")

func shellCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run vault operations interactively",
		Long: "Read vault commands from standard input, one per line. Digests are " +
			"signed as the raw bytes of the argument. Signatures made in the " +
			"session can be verified until it ends.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.InOrStdin(), cmd.OutOrStdout(), c.wire.Vault)
		},
	}
}

// runShell executes one command per input line until EOF or quit. Failed
// commands are reported and the loop continues.
func runShell(in io.Reader, out io.Writer, v *vault.Vault) error {
	sc := bufio.NewScanner(in)
	fmt.Fprint(out, "> ")
	for sc.Scan() {
		err := dispatch(out, v, strings.Fields(sc.Text()))
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil && !errors.Is(err, errVerifyFailed) {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
		fmt.Fprint(out, "> ")
	}
	fmt.Fprintln(out)
	return sc.Err()
}

func dispatch(out io.Writer, v *vault.Vault, f []string) error {
	if len(f) == 0 {
		return nil
	}
	name, args := f[0], f[1:]
	want := func(n ...int) error {
		for _, k := range n {
			if len(args) == k {
				return nil
			}
		}
		return fmt.Errorf("%s: wrong number of arguments", name)
	}

	switch name {
	case "create":
		if err := want(1); err != nil {
			return err
		}
		return runCreate(out, v, domain.Handle(args[0]))
	case "sign":
		if err := want(2); err != nil {
			return err
		}
		return runSign(out, v, domain.Handle(args[0]), domain.Digest(args[1]))
	case "verify":
		if err := want(2, 3); err != nil {
			return err
		}
		var sig *domain.Signature
		if len(args) == 3 {
			s, err := parseSignature(args[2])
			if err != nil {
				return err
			}
			sig = &s
		}
		return runVerify(out, v, domain.Handle(args[0]), domain.Digest(args[1]), sig)
	case "list":
		if err := want(0); err != nil {
			return err
		}
		return runList(out, v)
	case "delete":
		if err := want(1); err != nil {
			return err
		}
		return runDelete(out, v, domain.Handle(args[0]))
	case "pubkey":
		if err := want(1); err != nil {
			return err
		}
		return runPubkey(out, v, domain.Handle(args[0]))
	case "help":
		fmt.Fprint(out, shellHelp)
		return nil
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q (try help)", name)
	}
}
