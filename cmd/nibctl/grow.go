package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nibkit/cmd/nibctl/logger"
)

func init() {
	rootCmd.AddCommand(newGrowCmd())
}

func newGrowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grow <file> <pairs>",
		Short: "Add capacity to a nibble file",
		Long: `The grow command extends a nibble file by the given number of pairs.
Stored nibbles are kept.

Example:
  nibctl grow pi.nib 64`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrow(args)
		},
	}
	return cmd
}

func runGrow(args []string) (err error) {
	path := args[0]
	extra, err := parseIndex(args[1])
	if err != nil || extra == 0 {
		return fmt.Errorf("invalid pair count %q", args[1])
	}

	f, err := openForWrite(path)
	if err != nil {
		return err
	}
	defer closeFile(f, &err)

	before := f.Cap()
	if err := f.Grow(context.Background(), extra); err != nil {
		return fmt.Errorf("failed to grow %s: %w", path, err)
	}
	logger.Info("grew", "file", path, "pairs", extra, "capacity", f.Cap())

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":     path,
			"before":   before,
			"capacity": f.Cap(),
		})
	}
	printInfo("Capacity %s -> %s nibbles\n", count(before), count(f.Cap()))
	return nil
}
