// Command jsontree is the CLI driver around the jsontree library: parse,
// re-serialize, query, and interactively browse JSON documents. The
// library itself (value, jsonparse, jsonser) has no command-line
// surface of its own; this is the ambient entry point every repository
// in its lineage ships alongside the library.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lattice-substrate/jsontree/internal/obslog"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logCfg := obslog.NewConfig()

	rootCmd := &cobra.Command{
		Use:           "jsontree",
		Short:         "Parse, serialize, query, and browse JSON documents",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			handler, err := logCfg.NewHandler(stderr)
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(handler))
			return nil
		},
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	if err := logCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(stderr, "register completions: %v\n", err)
	}

	rootCmd.AddCommand(
		newFormatCmd(stdin, stdout, stderr),
		newGetCmd(stdin, stdout, stderr),
		newViewCmd(stdin, stdout, stderr),
	)

	if err := rootCmd.Execute(); err != nil {
		var ce *cliError
		if errors.As(err, &ce) {
			fmt.Fprintf(stderr, "error: %v\n", ce.err)
			return ce.code
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitInternalIO
	}
	return 0
}
