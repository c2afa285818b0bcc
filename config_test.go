package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseConfigFile(t *testing.T) {
	path := writeConfig(t, `
port: COM5
readTimeout: 2s
prompt: false
startup:
  - manual
  - red 255
`)
	cfg, err := parseConfig([]string{"--config", path})
	require.NoError(t, err)
	require.Equal(t, "COM5", cfg.Port)
	require.Equal(t, 115200, cfg.Baud)
	require.Equal(t, 2*time.Second, cfg.ReadTimeout)
	require.NotNil(t, cfg.Prompt)
	require.False(t, *cfg.Prompt)
	require.Equal(t, []string{"manual", "red 255"}, cfg.Startup)
}

func TestParseConfigFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "port: COM5\nbaud: 9600\n")
	cfg, err := parseConfig([]string{"-c", path, "-p", "/dev/ttyACM0", "--baud", "115200", "--timeout", "500ms", "-v"})
	require.NoError(t, err)
	require.Equal(t, "/dev/ttyACM0", cfg.Port)
	require.Equal(t, 115200, cfg.Baud)
	require.Equal(t, 500*time.Millisecond, cfg.ReadTimeout)
	require.True(t, cfg.Verbose)
}

func TestParseConfigPositionalPort(t *testing.T) {
	cfg, err := parseConfig([]string{"--config", writeConfig(t, "{}"), "COM7"})
	require.NoError(t, err)
	require.Equal(t, "COM7", cfg.Port)
	require.Equal(t, time.Second, cfg.ReadTimeout)
}

func TestParseConfigErrors(t *testing.T) {
	tests := map[string][]string{
		"missing port":  {"--config", writeConfig(t, "baud: 115200\n")},
		"unknown key":   {"--config", writeConfig(t, "port: COM5\ncolour: red\n")},
		"bad startup":   {"--config", writeConfig(t, "port: COM5\nstartup: [\"red 300\"]\n")},
		"bad timeout":   {"--config", writeConfig(t, "port: COM5\n"), "--timeout", "0s"},
		"missing file":  {"--config", filepath.Join(t.TempDir(), "nope.yaml"), "COM5"},
		"negative baud": {"--config", writeConfig(t, "port: COM5\nbaud: -1\n")},
		"unknown flag":  {"--colour", "red"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseConfig(args)
			require.Error(t, err)
		})
	}
}
