package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/nibkit/cmd/nibctl/logger"
)

func init() {
	rootCmd.AddCommand(newRemoveCmd())
}

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <file> <index>",
		Short: "Remove a hex digit, shifting later digits left",
		Long: `The remove command deletes the digit at index and prints it.

Example:
  nibctl remove pi.nib 2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args)
		},
	}
	return cmd
}

func runRemove(args []string) (err error) {
	path := args[0]
	index, err := parseIndex(args[1])
	if err != nil {
		return err
	}

	f, err := openForWrite(path)
	if err != nil {
		return err
	}
	defer closeFile(f, &err)

	v, err := f.Remove(index)
	if err != nil {
		return err
	}
	logger.Info("removed", "file", path, "index", index, "digit", v.String())

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    path,
			"index":   index,
			"removed": v.String(),
			"length":  f.Len(),
		})
	}
	printInfo("%s\n", v)
	printVerbose("Length now %s\n", count(f.Len()))
	return nil
}
