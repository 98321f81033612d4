package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLexica = filepath.Join("..", "..", "testdata", "lexica")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand(&out)
	cmd.SetArgs(append([]string{"--no-color", "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestDeriveCommand(t *testing.T) {
	out, err := run(t, "derive", "φιλε", "--class", "1a")
	require.NoError(t, err)
	assert.Contains(t, out, "root1b φιλη")
	assert.Contains(t, out, "φιλησ")
	assert.Contains(t, out, "πεφιληκ")
}

func TestDeriveCommandShapeError(t *testing.T) {
	_, err := run(t, "derive", "φιλε", "--class", "3a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not fit class 3a")

	_, err = run(t, "derive", "φιλε", "--class", "7x")
	assert.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	out, err := run(t, "check", "--lexica", testLexica, "--workers", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "lexicon0a.yaml")
	assert.Contains(t, out, "16 entries derived, 4 skipped")
}

func TestCheckCommandReportsMismatch(t *testing.T) {
	dir := t.TempDir()
	bad := "φιλέω:\n    root1: φιλε\n    X: πεφιλεκ\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(bad), 0o644))
	cfg := "lexicon_dir: " + dir + "\npartitions:\n  - file: bad.yaml\n    class: 1a\n"
	cfgPath := filepath.Join(dir, "checkstems.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	out, err := run(t, "--config", cfgPath, "check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 partitions inconsistent")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "φιλέω")
	assert.Contains(t, out, `derived "πεφιληκ", recorded "πεφιλεκ"`)
}

func TestClassesCommand(t *testing.T) {
	out, err := run(t, "classes")
	require.NoError(t, err)
	assert.Contains(t, out, "0b\t-ζ")
	assert.Contains(t, out, "3a\t-ο")
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := newLogger("loud")
	assert.Error(t, err)
}
