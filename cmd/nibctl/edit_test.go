package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nibkit/cmd/nibctl/logger"
	"github.com/joshuapare/nibkit/nibble"
	"github.com/joshuapare/nibkit/nibble/mapped"
)

// stored returns the pairs and length of the file at path.
func stored(t *testing.T, path string) ([]nibble.Pair, int) {
	t.Helper()
	f, err := mapped.Open(path, &mapped.OpenOptions{ReadOnly: true})
	require.NoError(t, err)
	defer f.Close()
	return append([]nibble.Pair(nil), f.Pairs()...), f.Len()
}

func dumpAll(t *testing.T, path string) string {
	t.Helper()
	dumpTo, dumpWidth = -1, 0
	output, err := captureOutput(t, func() error { return runDump([]string{path}) })
	require.NoError(t, err)
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(output), "0"))
}

func TestCreateCommand(t *testing.T) {
	path := testFile(t, 2, "abc")
	pairs, n := stored(t, path)
	require.Equal(t, []nibble.Pair{0xAB, 0xC0}, pairs)
	require.Equal(t, 3, n)

	resetFlags()
	createCapacity = 1
	_, err := captureOutput(t, func() error {
		return runCreate([]string{filepath.Join(t.TempDir(), "small.nib"), "123"})
	})
	require.Error(t, err)

	_, err = captureOutput(t, func() error {
		return runCreate([]string{filepath.Join(t.TempDir(), "bad.nib"), "1g"})
	})
	require.ErrorContains(t, err, "invalid hex digit")
}

func TestPushCommand(t *testing.T) {
	path := testFile(t, 4, "12")

	output, err := captureOutput(t, func() error {
		return runPush([]string{path, "3", "4f"})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"Pushed 3 nibbles, length now 5"})
	require.Equal(t, "1234f", dumpAll(t, path))
}

func TestPushCommand_Full(t *testing.T) {
	path := testFile(t, 2, "12")

	_, err := captureOutput(t, func() error {
		return runPush([]string{path, "345"})
	})
	require.ErrorIs(t, err, nibble.ErrCapacity)
	require.ErrorContains(t, err, "nibctl grow")

	// Digits that fit were kept.
	require.Equal(t, "1234", dumpAll(t, path))
}

func TestPushCommand_QuietAndJSON(t *testing.T) {
	path := testFile(t, 4, "")

	quiet = true
	output, err := captureOutput(t, func() error { return runPush([]string{path, "1"}) })
	require.NoError(t, err)
	require.Empty(t, output)

	quiet, jsonOut = false, true
	output, err = captureOutput(t, func() error { return runPush([]string{path, "2"}) })
	require.NoError(t, err)
	assertJSON(t, output)
	assertContains(t, output, []string{`"pushed": 1`, `"length": 2`})
}

func TestPopCommand(t *testing.T) {
	path := testFile(t, 4, "31415")

	popCount = 2
	output, err := captureOutput(t, func() error { return runPop([]string{path}) })
	require.NoError(t, err)
	require.Equal(t, "51\n", output)

	pairs, n := stored(t, path)
	require.Equal(t, []nibble.Pair{0x31, 0x40}, pairs)
	require.Equal(t, 3, n)

	popCount = 4
	_, err = captureOutput(t, func() error { return runPop([]string{path}) })
	require.Error(t, err)

	popCount = 0
	_, err = captureOutput(t, func() error { return runPop([]string{path}) })
	require.Error(t, err)
}

func TestInsertCommand(t *testing.T) {
	path := testFile(t, 2, "abc")

	output, err := captureOutput(t, func() error {
		return runInsert([]string{path, "1", "f"})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"Inserted f at 1, length now 4"})

	pairs, _ := stored(t, path)
	require.Equal(t, []nibble.Pair{0xAF, 0xBC}, pairs)

	// Full now.
	_, err = captureOutput(t, func() error { return runInsert([]string{path, "0", "1"}) })
	require.ErrorIs(t, err, nibble.ErrCapacity)
}

func TestInsertCommand_BadArgs(t *testing.T) {
	path := testFile(t, 4, "12")

	for _, args := range [][]string{
		{path, "3", "1"},
		{path, "-1", "1"},
		{path, "x", "1"},
		{path, "0", "12"},
		{path, "0", "z"},
	} {
		_, err := captureOutput(t, func() error { return runInsert(args) })
		require.Error(t, err, "args %v", args)
	}
	require.Equal(t, "12", dumpAll(t, path))
}

func TestRemoveCommand(t *testing.T) {
	path := testFile(t, 4, "12345")

	output, err := captureOutput(t, func() error { return runRemove([]string{path, "2"}) })
	require.NoError(t, err)
	require.Equal(t, "3\n", output)

	pairs, n := stored(t, path)
	require.Equal(t, []nibble.Pair{0x12, 0x45}, pairs)
	require.Equal(t, 4, n)

	_, err = captureOutput(t, func() error { return runRemove([]string{path, "4"}) })
	require.ErrorIs(t, err, nibble.ErrIndexOutOfRange)
}

func TestSetCommand(t *testing.T) {
	path := testFile(t, 4, "123")

	output, err := captureOutput(t, func() error { return runSet([]string{path, "0", "f"}) })
	require.NoError(t, err)
	assertContains(t, output, []string{"Set 0: 1 -> f"})
	require.Equal(t, "f23", dumpAll(t, path))

	_, err = captureOutput(t, func() error { return runSet([]string{path, "3", "0"}) })
	require.ErrorIs(t, err, nibble.ErrIndexOutOfRange)
}

func TestGrowCommand(t *testing.T) {
	path := testFile(t, 1, "12")

	_, err := captureOutput(t, func() error { return runPush([]string{path, "3"}) })
	require.ErrorIs(t, err, nibble.ErrCapacity)

	output, err := captureOutput(t, func() error { return runGrow([]string{path, "2"}) })
	require.NoError(t, err)
	assertContains(t, output, []string{"Capacity 2 -> 6 nibbles"})

	_, err = captureOutput(t, func() error { return runPush([]string{path, "345"}) })
	require.NoError(t, err)
	require.Equal(t, "12345", dumpAll(t, path))

	_, err = captureOutput(t, func() error { return runGrow([]string{path, "0"}) })
	require.Error(t, err)
}

func TestFlushModeFlag(t *testing.T) {
	for _, mode := range []string{"auto", "data-only", "full"} {
		t.Run(mode, func(t *testing.T) {
			path := testFile(t, 2, "")
			flushMode = mode
			_, err := captureOutput(t, func() error { return runPush([]string{path, "9"}) })
			require.NoError(t, err)
		})
	}

	path := testFile(t, 2, "")
	flushMode = "sometimes"
	_, err := captureOutput(t, func() error { return runPush([]string{path, "9"}) })
	require.ErrorContains(t, err, "unknown flush mode")
}

func TestRootCommand_LogFile(t *testing.T) {
	path := testFile(t, 2, "")
	logPath := filepath.Join(t.TempDir(), "nibctl.log")
	t.Cleanup(resetFlags)

	rootCmd.SetArgs([]string{"--log-file", logPath, "push", path, "7"})
	_, err := captureOutput(t, rootCmd.Execute)
	logger.Close()
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"pushed"`)
	require.Equal(t, "7", dumpAll(t, path))
}

func TestVersionCommand(t *testing.T) {
	t.Cleanup(resetFlags)

	output, err := captureOutput(t, runVersion)
	require.NoError(t, err)
	assertContains(t, output, []string{"nibctl dev", "commit: none", "go:"})

	jsonOut = true
	output, err = captureOutput(t, runVersion)
	require.NoError(t, err)
	assertJSON(t, output)

	var info buildInfo
	require.NoError(t, json.Unmarshal([]byte(output), &info))
	require.Equal(t, buildInfo{Version: "dev", Commit: "none", Built: "unknown", Go: runtime.Version()}, info)

	quiet, jsonOut = true, false
	output, err = captureOutput(t, runVersion)
	require.NoError(t, err)
	require.Empty(t, output)
}
