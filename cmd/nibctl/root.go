package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/nibkit/cmd/nibctl/logger"
	"github.com/joshuapare/nibkit/nibble"
	"github.com/joshuapare/nibkit/nibble/dirty"
	"github.com/joshuapare/nibkit/nibble/mapped"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	jsonOut   bool
	logFile   string
	flushMode string
)

var rootCmd = &cobra.Command{
	Use:   "nibctl",
	Short: "Inspect and edit packed nibble files",
	Long: `nibctl creates, inspects and edits nibble files: a small header
followed by 4-bit values packed two per byte. Every edit is flushed to disk
before the command returns.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Init(logger.Options{Path: logFile, Verbose: verbose && !quiet})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&logFile, "log-file", "", "Write JSON logs to this file, or to a dated file in this directory")
	rootCmd.PersistentFlags().
		StringVar(&flushMode, "flush-mode", "auto", "Sync strength after edits (auto, data-only, full)")
}

func execute() {
	err := rootCmd.Execute()
	logger.Close()
	if err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

var counts = message.NewPrinter(language.English)

// count renders n with thousands separators.
func count(n int) string {
	return counts.Sprintf("%d", n)
}

// parseFlushMode maps the --flush-mode flag onto a dirty.FlushMode.
func parseFlushMode(s string) (dirty.FlushMode, error) {
	for _, m := range []dirty.FlushMode{dirty.FlushAuto, dirty.FlushDataOnly, dirty.FlushFull} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown flush mode %q (want auto, data-only or full)", s)
}

// parseDigits parses every character of each argument as one hex digit.
func parseDigits(args []string) ([]nibble.Lo, error) {
	var out []nibble.Lo
	for _, arg := range args {
		for _, r := range arg {
			v, err := strconv.ParseUint(string(r), 16, 8)
			if err != nil {
				return nil, fmt.Errorf("invalid hex digit %q in %q", r, arg)
			}
			out = append(out, nibble.Lo(v))
		}
	}
	return out, nil
}

// parseDigit parses a single hex digit.
func parseDigit(s string) (nibble.Lo, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("expected a single hex digit, got %q", s)
	}
	d, err := parseDigits([]string{s})
	if err != nil {
		return 0, err
	}
	return d[0], nil
}

// parseIndex parses a non-negative nibble index.
func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("invalid index %q", s)
	}
	return i, nil
}

// openForRead opens path read-only.
func openForRead(path string) (*mapped.File, error) {
	printVerbose("Opening nibble file: %s\n", path)
	f, err := mapped.Open(path, &mapped.OpenOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}

// openForWrite opens path read-write with the --flush-mode setting.
func openForWrite(path string) (*mapped.File, error) {
	mode, err := parseFlushMode(flushMode)
	if err != nil {
		return nil, err
	}
	printVerbose("Opening nibble file: %s (flush %s)\n", path, mode)
	f, err := mapped.Open(path, &mapped.OpenOptions{FlushMode: mode})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}

// closeFile closes f and folds its error into err.
func closeFile(f *mapped.File, err *error) {
	if cerr := f.Close(); cerr != nil {
		logger.Error("close failed", "file", f.Path(), "error", cerr)
		*err = errors.Join(*err, fmt.Errorf("failed to close %s: %w", f.Path(), cerr))
	}
}

// capacityHint adds a grow suggestion to capacity errors.
func capacityHint(path string, err error) error {
	if errors.Is(err, nibble.ErrCapacity) {
		return fmt.Errorf("%w (run 'nibctl grow %s <pairs>' to add room)", err, path)
	}
	return err
}
