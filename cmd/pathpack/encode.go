package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/pathpack"
	"github.com/arloliu/pathpack/codec"
)

type encodeOptions struct {
	factor *numberFlag
	err    *numberFlag
	text   bool
	out    string
	force  bool
}

func newEncodeCmd() *cobra.Command {
	opts := &encodeOptions{
		factor: newNumberFlag("factor", codec.DefaultFactor),
		err:    newNumberFlag("error", codec.DefaultPermissibleError),
	}

	cmd := &cobra.Command{
		Use:   "encode [flags] <input>",
		Short: "encode SVG path data",
		Long: `Encode reads SVG path data from a file, or from stdin when the input is "-",
and writes the binary encoding.

Every value is multiplied by the factor before encoding. Values that end up
within the permissible error of an integer are stored as integers.
`,
		Args: exactlyOneInput,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, opts, args[0])
		},
	}

	flags := cmd.Flags()
	addNumberFlag(flags, opts.factor, "f", "scale factor applied to every value")
	addNumberFlag(flags, opts.err, "e", "permissible error per value, before scaling")
	flags.BoolVar(&opts.text, "text", false, "treat the input argument as literal path data")
	flags.StringVarP(&opts.out, "out", "o", "", "write the encoding to this file instead of stdout")
	flags.BoolVar(&opts.force, "force", false, "write binary output even when stdout is a terminal")

	return cmd
}

func runEncode(cmd *cobra.Command, opts *encodeOptions, input string) error {
	pathData := input
	if !opts.text {
		b, err := readInput(cmd, input)
		if err != nil {
			return err
		}
		pathData = string(b)
	}

	data, err := pathpack.Encode(pathData,
		codec.WithFactor(opts.factor.Value()),
		codec.WithPermissibleError(opts.err.Value()),
	)
	if err != nil {
		return err
	}

	if opts.out != "" {
		if err := os.WriteFile(opts.out, data, 0o644); err != nil {
			return fmt.Errorf("unable to write the output file: %w", err)
		}

		return nil
	}

	w := cmd.OutOrStdout()
	if isTerminal(w) && !opts.force {
		return errors.New("refusing to write binary output to a terminal, use --out or --force")
	}
	_, err = w.Write(data)

	return err
}
