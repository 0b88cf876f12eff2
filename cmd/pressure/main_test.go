package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pressure/config"
	"github.com/katalvlaran/pressure/internal/testutil"
)

// run executes the CLI with args and stdin, returning stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestSingle_File(t *testing.T) {
	path := writeFile(t, "input.txt", testutil.CanonicalInput)

	out, _, err := run(t, "", "single", path)
	require.NoError(t, err)
	assert.Equal(t, "1651\n", out)
}

func TestSingle_StdinAndMinutes(t *testing.T) {
	out, _, err := run(t, testutil.CanonicalInput, "single", "--minutes", "0")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestDual_Stdin(t *testing.T) {
	out, errOut, err := run(t, testutil.CanonicalInput, "dual", "--workers", "2", "--log-level", "debug")
	require.NoError(t, err)
	assert.Equal(t, "1707\n", out)
	assert.Contains(t, errOut, "release=1707")
}

func TestDual_ConfigFile(t *testing.T) {
	cfg := writeFile(t, "pressure.yaml", "dual:\n  minutes: 0\n  workers: 1\n")

	out, _, err := run(t, testutil.CanonicalInput, "dual", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestErrors(t *testing.T) {
	_, _, err := run(t, "", "single", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, _, err = run(t, "garbage\n", "single")
	assert.Error(t, err)

	_, _, err = run(t, testutil.CanonicalInput, "single", "--start", "ZZ")
	assert.Error(t, err)

	_, _, err = run(t, testutil.CanonicalInput, "dual", "--workers", "-1")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, testutil.CanonicalInput, "single", "--log-level", "loud")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
