package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cryptobox/internal/app"
)

// cli carries flag values and the wired app between the root command and
// its subcommands.
type cli struct {
	home     string
	storage  string
	logLevel string

	wire *app.Wire
}

// Execute runs the cryptobox CLI. The vault is flushed to disk afterwards
// even when the subcommand failed.
func Execute() error {
	c := &cli{}
	root := newRootCmd(c)
	err := root.Execute()
	if cerr := c.close(); cerr != nil {
		root.PrintErrln("Error:", cerr)
		err = errors.Join(err, cerr)
	}
	return err
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "cryptobox",
		Short:         "Local secp256k1 key vault",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.open(cmd)
		},
	}

	root.PersistentFlags().StringVar(&c.home, "home", "", "config dir (default $CRYPTOBOX_HOME or ~/.cryptobox)")
	root.PersistentFlags().StringVar(&c.storage, "storage", "", "key file name inside the config dir (default storage.txt)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error (default warn)")

	root.AddCommand(
		createCmd(c),
		signCmd(c),
		verifyCmd(c),
		listCmd(c),
		deleteCmd(c),
		pubkeyCmd(c),
		shellCmd(c),
	)
	return root
}

func (c *cli) open(cmd *cobra.Command) error {
	cfg, err := app.ParseEnv()
	if err != nil {
		return err
	}
	if c.home != "" {
		cfg.Home = c.home
	}
	if c.storage != "" {
		cfg.StorageFile = c.storage
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}
	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		cfg.Home = filepath.Join(dir, ".cryptobox")
	}

	logger, err := app.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	w, err := app.NewWire(cfg, logger)
	if err != nil {
		return err
	}
	if w.LoadErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", w.LoadErr)
	}
	c.wire = w
	return nil
}

func (c *cli) close() error {
	if c.wire == nil {
		return nil
	}
	err := c.wire.Close()
	c.wire = nil
	return err
}
