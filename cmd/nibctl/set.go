package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/nibkit/cmd/nibctl/logger"
)

func init() {
	rootCmd.AddCommand(newSetCmd())
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <index> <digit>",
		Short: "Overwrite the hex digit at an index",
		Long: `The set command replaces the digit at index. The length is unchanged.

Example:
  nibctl set pi.nib 0 f`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) (err error) {
	path := args[0]
	index, err := parseIndex(args[1])
	if err != nil {
		return err
	}
	digit, err := parseDigit(args[2])
	if err != nil {
		return err
	}

	f, err := openForWrite(path)
	if err != nil {
		return err
	}
	defer closeFile(f, &err)

	old, err := f.Get(index)
	if err != nil {
		return err
	}
	if err := f.Set(index, digit); err != nil {
		return err
	}
	logger.Info("set", "file", path, "index", index, "old", old.String(), "new", digit.String())

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":  path,
			"index": index,
			"old":   old.String(),
			"new":   digit.String(),
		})
	}
	printInfo("Set %s: %s -> %s\n", count(index), old, digit)
	return nil
}
