package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "profiledemo version "+version+"\n", out)
}

func TestConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("header:\n  pinned_height: 60\navatar:\n  alignment: right\n"), 0o644))

	out, err := execute(t, "config", "--profile", path, "--curve", "ease-out")
	require.NoError(t, err)
	assert.Contains(t, out, "pinned_height: 60")
	assert.Contains(t, out, "alignment: right")
	assert.Contains(t, out, "curve: ease-out")

	_, err = execute(t, "config", "--profile", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
