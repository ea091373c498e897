package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/nibkit/cmd/nibctl/logger"
)

func init() {
	rootCmd.AddCommand(newInsertCmd())
}

func newInsertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insert <file> <index> <digit>",
		Short: "Insert a hex digit, shifting later digits right",
		Long: `The insert command places one hex digit at index. An index equal to
the length appends.

Example:
  nibctl insert pi.nib 0 3`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInsert(args)
		},
	}
	return cmd
}

func runInsert(args []string) (err error) {
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

	if err := f.Insert(index, digit); err != nil {
		return capacityHint(path, err)
	}
	logger.Info("inserted", "file", path, "index", index, "digit", digit.String())

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":   path,
			"index":  index,
			"digit":  digit.String(),
			"length": f.Len(),
		})
	}
	printInfo("Inserted %s at %s, length now %s\n", digit, count(index), count(f.Len()))
	return nil
}
