package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nibkit/nibble"
)

var (
	dumpFrom  int
	dumpTo    int
	dumpWidth int
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().IntVar(&dumpFrom, "from", 0, "First nibble index to print")
	cmd.Flags().IntVar(&dumpTo, "to", -1, "Stop before this nibble index (-1 for the end)")
	cmd.Flags().IntVar(&dumpWidth, "width", 32, "Digits per line (0 for a single line)")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print stored nibbles as hex digits",
		Long: `The dump command prints the nibbles of a file, one hex digit each,
prefixed with the index of the first digit on the line.

Example:
  nibctl dump pi.nib
  nibctl dump pi.nib --from 3 --to 9
  nibctl dump pi.nib --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) (err error) {
	path := args[0]

	f, err := openForRead(path)
	if err != nil {
		return err
	}
	defer closeFile(f, &err)

	from, to := dumpFrom, dumpTo
	if to < 0 {
		to = f.Len()
	}
	if from < 0 || from > to || to > f.Len() {
		return fmt.Errorf("range [%d:%d] out of bounds for %d nibbles", from, to, f.Len())
	}
	view := f.Slice().Sub(from, to)
	printVerbose("Range [%d:%d] is %s over %d pairs\n", from, to, view.Alignment(), len(view.Pairs()))

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":      path,
			"from":      from,
			"to":        to,
			"alignment": view.Alignment().String(),
			"nibbles":   view.String(),
		})
	}

	width := dumpWidth
	if width <= 0 {
		width = max(view.Len(), 1)
	}
	var line strings.Builder
	start := from
	for n := range nibble.Nibbles(view).All() {
		line.WriteString(n.String())
		if line.Len() == width {
			printInfo("%8d  %s\n", start, line.String())
			start += width
			line.Reset()
		}
	}
	if line.Len() > 0 {
		printInfo("%8d  %s\n", start, line.String())
	}
	return nil
}
