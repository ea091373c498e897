package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nibkit/cmd/nibctl/logger"
	"github.com/joshuapare/nibkit/nibble/mapped"
)

var createCapacity int

func init() {
	cmd := newCreateCmd()
	cmd.Flags().IntVar(&createCapacity, "capacity", 64, "Capacity in pairs (two nibbles each)")
	rootCmd.AddCommand(cmd)
}

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <file> [digits...]",
		Short: "Create a nibble file, optionally filled with hex digits",
		Long: `The create command writes a new nibble file with room for --capacity
pairs, replacing any existing file. Remaining arguments are hex digits to store.

Example:
  nibctl create pi.nib --capacity 16 31415926
  nibctl create empty.nib`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(args)
		},
	}
	return cmd
}

func runCreate(args []string) (err error) {
	path := args[0]

	digits, err := parseDigits(args[1:])
	if err != nil {
		return err
	}
	if len(digits) > 2*createCapacity {
		return fmt.Errorf("%d digits do not fit in %d pairs", len(digits), createCapacity)
	}
	mode, err := parseFlushMode(flushMode)
	if err != nil {
		return err
	}

	printVerbose("Creating nibble file: %s\n", path)
	f, err := mapped.Create(path, createCapacity, &mapped.OpenOptions{FlushMode: mode})
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer closeFile(f, &err)

	for _, d := range digits {
		if err := f.Push(d); err != nil {
			return err
		}
	}
	logger.Info("created", "file", path, "capacity", createCapacity, "length", f.Len())

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":     path,
			"capacity": createCapacity,
			"length":   f.Len(),
		})
	}
	printInfo("Created %s: %s of %s nibbles used\n", path, count(f.Len()), count(f.Cap()))
	return nil
}
