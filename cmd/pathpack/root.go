package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Main runs the pathpack tool and returns the code for passing to os.Exit.
func Main() int {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	cmd.SetArgs(os.Args[1:])

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pathpack: %v\n", err)
		return 1
	}

	return 0
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pathpack",
		Short: "pathpack converts SVG path data to and from a compact binary format",
		Long: `pathpack converts SVG path data to and from a compact binary format.

Each path command is stored as a one byte header followed by its values in the
narrowest numeric width that reproduces them. A scale factor and a permissible
error trade precision for size; decode with the factor used for encoding.
`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newInspectCmd(),
	)

	return cmd
}

// exactlyOneInput validates the positional arguments of the subcommands.
func exactlyOneInput(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return errors.New("no input specified")
	case len(args) > 1:
		return fmt.Errorf("input already specified: %q", args[1])
	}

	return nil
}

// readInput reads a file, or stdin when name is "-".
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name != "-" {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("unable to read the input file: %w", err)
		}

		return data, nil
	}

	in := cmd.InOrStdin()
	if isTerminal(in) {
		return nil, errors.New("`-` should be used with a pipe for stdin")
	}

	return io.ReadAll(in)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
