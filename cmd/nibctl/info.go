package main

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Validate a nibble file header and report its metadata",
		Long: `The info command validates a nibble file and displays its format
version, length, capacity and alignment.

Example:
  nibctl info pi.nib
  nibctl info pi.nib --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

type fileInfo struct {
	File          string `json:"file"`
	Size          int64  `json:"size"`
	Version       uint16 `json:"version"`
	Length        int    `json:"length"`
	CapacityPairs int    `json:"capacity_pairs"`
	Capacity      int    `json:"capacity"`
	Alignment     string `json:"alignment"`
}

func runInfo(args []string) (err error) {
	path := args[0]

	f, err := openForRead(path)
	if err != nil {
		return err
	}
	defer closeFile(f, &err)

	hdr := f.Header()
	info := fileInfo{
		File:          path,
		Version:       hdr.Version,
		Length:        f.Len(),
		CapacityPairs: int(hdr.Capacity),
		Capacity:      f.Cap(),
		Alignment:     f.Slice().Alignment().String(),
	}
	if stat, err := os.Stat(path); err == nil {
		info.Size = stat.Size()
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nNibble File Information:\n")
	printInfo("  File: %s\n", path)
	printInfo("  Size: %s bytes\n", count(int(info.Size)))
	printInfo("  Version: %d\n", info.Version)
	printInfo("  Length: %s nibbles\n", count(info.Length))
	printInfo("  Capacity: %s nibbles (%s pairs)\n", count(info.Capacity), count(info.CapacityPairs))
	printInfo("  Alignment: %s\n", info.Alignment)
	return nil
}
