package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/pathpack"
	"github.com/arloliu/pathpack/codec"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <input>",
		Short: "list the records of an encoded stream",
		Long: `Inspect prints one line per record of an encoded stream: the byte offset,
the command letter, the command code, the value width and the record size.
A summary line with the record count, the stream size and its xxHash64
digest follows.
`,
		Args: exactlyOneInput,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			dec, err := codec.NewDecoder(data)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			records := 0
			for info, err := range dec.Records() {
				if err != nil {
					return err
				}
				records++

				h := info.Header
				fmt.Fprintf(w, "%6d  %c  %-3s  %-7s  %d\n", info.Offset, h.Letter(), h.Command(), h.Width(), info.Size())
			}
			fmt.Fprintf(w, "records %d, bytes %d, xxh64 %016x\n", records, len(data), pathpack.Digest(data))

			return nil
		},
	}
}
