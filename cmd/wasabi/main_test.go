package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AntonioJCosta/wasabi/internal/core/services/interaction"
	"github.com/AntonioJCosta/wasabi/internal/repositories/config"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runScript feeds script to a full session and returns what it wrote to stdout and stderr.
func runScript(t *testing.T, script string) (string, string, *interaction.Loop) {
	t.Helper()
	dir := t.TempDir()

	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	in := filepath.Join(dir, "stdin")
	require.NoError(t, os.WriteFile(in, []byte(script), 0o644))
	stdin, err := os.Open(in)
	require.NoError(t, err)
	defer stdin.Close()

	stdout, err := os.Create(filepath.Join(dir, "stdout"))
	require.NoError(t, err)
	defer stdout.Close()
	stderr, err := os.Create(filepath.Join(dir, "stderr"))
	require.NoError(t, err)
	defer stderr.Close()

	cfg := config.Default()
	cfg.Color = false
	cfg.HistoryFile = filepath.Join(dir, "history")

	loop, cleanup, err := buildSession(cfg, streams{in: stdin, out: stdout, err: stderr})
	require.NoError(t, err)
	defer cleanup()

	require.NoError(t, loop.Run())

	outBytes, err := os.ReadFile(stdout.Name())
	require.NoError(t, err)
	errBytes, err := os.ReadFile(stderr.Name())
	require.NoError(t, err)
	return string(outBytes), string(errBytes), loop
}

func TestSession_BuiltinsEndToEnd(t *testing.T) {
	workDir := t.TempDir()
	t.Chdir(workDir)
	cwd, err := os.Getwd()
	require.NoError(t, err)

	out, errOut, loop := runScript(t, "cwd\nmkdir tmp_test_dir\nls\nrmdir tmp_test_dir\nexit\ncwd\n")

	assert.Equal(t, interaction.Stopped, loop.State())
	assert.Empty(t, errOut)
	assert.Contains(t, out, cwd+"\n")
	assert.Contains(t, out, "tmp_test_dir\n")
	assert.NoDirExists(t, filepath.Join(workDir, "tmp_test_dir"))
	// exit stops the loop before the trailing cwd is read.
	assert.Equal(t, 1, strings.Count(out, cwd+"\n"))
}

func TestSession_ExternalProgramsEndToEnd(t *testing.T) {
	t.Chdir(t.TempDir())

	out, errOut, loop := runScript(t, "echo hello world\nnonexistent_binary_xyz\n\n   \t\nexit\n")

	assert.Equal(t, interaction.Stopped, loop.State())
	assert.Contains(t, out, "hello world\n")
	assert.Contains(t, errOut, "wasabi: nonexistent_binary_xyz: command not found")
}

func TestSession_EndOfInputStops(t *testing.T) {
	workDir := t.TempDir()
	t.Chdir(workDir)

	out, _, loop := runScript(t, "mkdir made_before_eof")

	assert.Equal(t, interaction.Stopped, loop.State())
	assert.DirExists(t, filepath.Join(workDir, "made_before_eof"))
	assert.True(t, strings.HasPrefix(out, config.DefaultPrompt))
}
