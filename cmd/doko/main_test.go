package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunWritesDefaultConfigOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doko", "config.toml")

	require.Equal(t, 0, run([]string{"-write-config", path}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "karlchen_bonus")

	require.Equal(t, 1, run([]string{"-write-config", path}), "existing file must be left alone")
}

func TestRunRejectsBadStartup(t *testing.T) {
	t.Setenv("DOKO_CONFIG", "")
	missing := filepath.Join(t.TempDir(), "nope.toml")
	require.Equal(t, 1, run([]string{"-config", missing}))

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[scoring]\nfox_credit = \"nobody\"\n"), 0o644))
	require.Equal(t, 1, run([]string{"-config", bad}))

	require.Equal(t, 2, run([]string{"-no-such-flag"}))
}
