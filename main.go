package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jcorbin/gridforth/internal/logio"
)

func main() {
	log := logio.New(os.Stderr)
	cmd := newRootCmd(log)
	log.ErrorIf(cmd.ExecuteContext(context.Background()))
	os.Exit(log.ExitCode())
}

func newRootCmd(log *logio.Logger) *cobra.Command {
	var (
		cfgFile string
		cfg     *Config
	)

	root := &cobra.Command{
		Use:   "gridforth [FILE...]",
		Args:  cobra.ArbitraryArgs,
		Short: "Evaluate a tiny Forth and print the resulting stack",
		Long: `gridforth evaluates each FILE (or stdin when none, or "-") with a small
Forth interpreter: integers, + - * /, DUP DROP SWAP OVER, and ": NAME ... ;"
definitions. The final stack is printed bottom first.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = loadConfig(cfgFile, cmd.Flags())
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles(cmd.Context(), cfg, log, cmd.InOrStdin(), cmd.OutOrStdout(), args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file")
	root.PersistentFlags().Bool("trace", false, "enable trace logging")
	root.PersistentFlags().Duration("timeout", 0, "specify a time limit")

	repl := &cobra.Command{
		Use:   "repl",
		Short: "Evaluate lines interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd.Context(), cfg, log, cmd.OutOrStdout())
		},
	}
	repl.Flags().String("prompt", "", "interactive prompt")
	root.AddCommand(repl)

	return root
}
