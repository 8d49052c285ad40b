// Package cli provides the Cobra-based CLI for stockboard.
package cli

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"stockboard/config"
	"stockboard/domain"
	"stockboard/store"

	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	vp  = config.NewViper()
	cfg = &config.Config{}

	rootCmd = &cobra.Command{
		Use:           "stockboard",
		Short:         "An in-memory inventory dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(vp)
			if err != nil {
				return err
			}
			cfg = c
			slog.SetDefault(config.NewLogger(cmd.ErrOrStderr(), c.Level()))

			// tests and the shell keep the store they already have
			if productStore != nil {
				return nil
			}
			productStore, err = store.NewStore(c.Seed, c.SeedFile)
			if err != nil {
				return err
			}
			slog.Debug("store ready", "seed", c.Seed, "products", len(productStore.Products()))
			return nil
		},
	}

	productStore domain.ProductStore

	// input feeds the shell and confirmation prompts from one buffer so
	// neither steals lines from the other.
	input = bufio.NewReader(os.Stdin)
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file")
	pf.String("log-level", "info", "log level: debug|info|warn|error")
	pf.String("seed", "demo", "initial products: demo|empty|file")
	pf.String("seed-file", "", "JSON seed fixture, used with --seed file")
	pf.String("locale", "fr-FR", "locale for number formatting")
	pf.String("currency", "€", "currency suffix for values")
	for _, name := range []string{"config", "log-level", "seed", "seed-file", "locale", "currency"} {
		_ = vp.BindPFlag(name, pf.Lookup(name))
	}

	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive session over a single store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for {
				fmt.Fprint(out, "stockboard> ")
				line, readErr := input.ReadString('\n')
				line = strings.TrimSpace(line)
				switch line {
				case "":
				case "exit", "quit":
					return nil
				default:
					runShellLine(cmd, line)
				}
				if readErr != nil {
					fmt.Fprintln(out)
					return nil
				}
			}
		},
	}
	rootCmd.AddCommand(shellCmd)
}

func runShellLine(shell *cobra.Command, line string) {
	args, err := shellwords.Parse(line)
	if err != nil {
		fmt.Fprintln(shell.ErrOrStderr(), err)
		return
	}
	if len(args) > 0 && args[0] == shell.Name() {
		fmt.Fprintln(shell.ErrOrStderr(), "already in a shell")
		return
	}
	resetFlags(rootCmd, false)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(shell.ErrOrStderr(), err)
	}
	rootCmd.SetArgs(nil)
}

// resetFlags restores subcommand flags to their defaults so values from one
// shell line do not leak into the next. Persistent flags are only reset
// when persistent is set.
func resetFlags(cmd *cobra.Command, persistent bool) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	if persistent {
		cmd.PersistentFlags().VisitAll(reset)
	}
	for _, c := range cmd.Commands() {
		c.LocalNonPersistentFlags().VisitAll(reset)
		resetFlags(c, persistent)
	}
}

func Execute() error {
	return rootCmd.Execute()
}
