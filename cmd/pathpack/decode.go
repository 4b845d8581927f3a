package main

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/pathpack"
	"github.com/arloliu/pathpack/codec"
	"github.com/arloliu/pathpack/internal/pool"
)

func newDecodeCmd() *cobra.Command {
	factor := newNumberFlag("factor", codec.DefaultFactor)

	cmd := &cobra.Command{
		Use:   "decode [flags] <input>",
		Short: "decode binary path data",
		Long: `Decode reads an encoded stream from a file, or from stdin when the input
is "-", and prints the path data followed by a newline.

Commands are printed without separators. Use the factor the stream was
encoded with.
`,
		Args: exactlyOneInput,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			bb := pool.GetStreamBuffer()
			defer pool.PutStreamBuffer(bb)

			for c, err := range pathpack.Decode(data, codec.WithDecodeFactor(factor.Value())) {
				if err != nil {
					return err
				}
				bb.B = c.AppendText(bb.B)
			}
			bb.B = append(bb.B, '\n')

			_, err = bb.WriteTo(cmd.OutOrStdout())

			return err
		},
	}

	addNumberFlag(cmd.Flags(), factor, "f", "scale factor the stream was encoded with")

	return cmd
}
