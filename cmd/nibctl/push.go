package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/nibkit/cmd/nibctl/logger"
)

func init() {
	rootCmd.AddCommand(newPushCmd())
}

func newPushCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push <file> <digits>...",
		Short: "Append hex digits",
		Long: `The push command appends hex digits to the end of a nibble file.
Digits may be given one per argument or run together.

Example:
  nibctl push pi.nib 5 3 5
  nibctl push pi.nib 535`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPush(args)
		},
	}
	return cmd
}

func runPush(args []string) (err error) {
	path := args[0]

	digits, err := parseDigits(args[1:])
	if err != nil {
		return err
	}

	f, err := openForWrite(path)
	if err != nil {
		return err
	}
	defer closeFile(f, &err)

	for i, d := range digits {
		if err := f.Push(d); err != nil {
			logger.Warn("push stopped", "file", path, "pushed", i, "error", err)
			return capacityHint(path, err)
		}
	}
	logger.Info("pushed", "file", path, "count", len(digits), "length", f.Len())

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":   path,
			"pushed": len(digits),
			"length": f.Len(),
		})
	}
	printInfo("Pushed %s nibbles, length now %s\n", count(len(digits)), count(f.Len()))
	return nil
}
