package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nibkit/cmd/nibctl/logger"
)

var popCount int

func init() {
	cmd := newPopCmd()
	cmd.Flags().IntVarP(&popCount, "count", "n", 1, "Number of nibbles to pop")
	rootCmd.AddCommand(cmd)
}

func newPopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pop <file>",
		Short: "Remove hex digits from the end",
		Long: `The pop command removes nibbles from the end of a file and prints
them in the order they were removed.

Example:
  nibctl pop pi.nib
  nibctl pop pi.nib --count 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPop(args)
		},
	}
	return cmd
}

func runPop(args []string) (err error) {
	path := args[0]
	if popCount < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", popCount)
	}

	f, err := openForWrite(path)
	if err != nil {
		return err
	}
	defer closeFile(f, &err)

	if popCount > f.Len() {
		return fmt.Errorf("cannot pop %d nibbles from %d", popCount, f.Len())
	}

	var popped strings.Builder
	for range popCount {
		v, err := f.Pop()
		if err != nil {
			return err
		}
		popped.WriteString(v.String())
	}
	logger.Info("popped", "file", path, "count", popCount, "length", f.Len())

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":   path,
			"popped": popped.String(),
			"length": f.Len(),
		})
	}
	printInfo("%s\n", popped.String())
	printVerbose("Length now %s\n", count(f.Len()))
	return nil
}
