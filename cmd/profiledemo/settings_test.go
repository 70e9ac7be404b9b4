package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("profile", "", "")
	cmd.Flags().String("debug-log", "", "")
	cmd.Flags().Int("panes", 3, "")
	cmd.Flags().Int("rows", 40, "")
	cmd.Flags().Duration("refresh-delay", 1200*time.Millisecond, "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := loadSettings(newTestCommand(t), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 3, s.Panes)
	assert.Equal(t, 40, s.Rows)
	assert.Equal(t, 1200*time.Millisecond, s.RefreshDelay)
	assert.Empty(t, s.Profile)
}

func TestLoadSettings_Precedence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "profiledemo.yaml"), []byte("rows: 7\npanes: 2\nrefresh_delay: 2s\n"), 0o644))
	t.Setenv("PROFILEDEMO_PANES", "4")

	s, err := loadSettings(newTestCommand(t, "--rows", "12"), dir)
	require.NoError(t, err)

	assert.Equal(t, 12, s.Rows, "flag beats file")
	assert.Equal(t, 4, s.Panes, "env beats file")
	assert.Equal(t, 2*time.Second, s.RefreshDelay, "file beats default")
}

func TestLoadSettings_Invalid(t *testing.T) {
	_, err := loadSettings(newTestCommand(t, "--panes", "0"), t.TempDir())
	assert.Error(t, err)

	_, err = loadSettings(newTestCommand(t, "--rows", "-1"), t.TempDir())
	assert.Error(t, err)
}

func TestSettings_ProfileConfig(t *testing.T) {
	cfg, err := settings{}.profileConfig()
	require.NoError(t, err)
	assert.Equal(t, 44.0, cfg.PinnedHeaderHeight)

	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("header:\n  pinned_height: 60\n"), 0o644))
	cfg, err = settings{Profile: path}.profileConfig()
	require.NoError(t, err)
	assert.Equal(t, 60.0, cfg.PinnedHeaderHeight)

	_, err = settings{Profile: filepath.Join(t.TempDir(), "missing.yaml")}.profileConfig()
	assert.Error(t, err)
}
