package cmd

import (
	"bytes"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		cfgPath, logLevel, commandLine, noSplash, exitCode = ".", "", "", false, 0
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestBuiltinsCmd(t *testing.T) {
	out, err := runCLI(t, "builtins")
	require.NoError(t, err)
	assert.Equal(t, "cd\nchildren\nexit\nhelp\nhistory\npwd\nquit\n", out)
}

func TestCommandLifecycle(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}
	dir := t.TempDir()

	out, err := runCLI(t, "init", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "config.yaml")

	out, err = runCLI(t, "--config", dir, "-c", "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
	assert.Equal(t, 0, exitCode)

	out, err = runCLI(t, "--config", dir, "-c", "trsh-no-such-command")
	require.NoError(t, err)
	assert.Contains(t, out, "command not found")
	assert.Equal(t, 127, exitCode)

	out, err = runCLI(t, "--config", dir, "events", "report")
	require.NoError(t, err)
	assert.Contains(t, out, "log_entries: 2")
	assert.Contains(t, out, "echo: 1")
	assert.Contains(t, out, "trsh-no-such-command: 1")
}

func TestBadLogLevel(t *testing.T) {
	_, err := runCLI(t, "--config", t.TempDir(), "--log-level", "loud", "-c", "exit")
	assert.Error(t, err)
}
