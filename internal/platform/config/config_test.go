package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pscheid92/autorotate/internal/domain"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv keeps the user's real env file out of the test.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AUTOROTATE_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoad_DefaultValues(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.SleepMillis)
	assert.Equal(t, 500*time.Millisecond, cfg.Interval())
	assert.Equal(t, "eDP-1", cfg.Display)
	assert.Equal(t, "ELAN0732:00 04F3:22E1", cfg.Touchscreen)
	assert.Equal(t, domain.BackendAuto, cfg.BackendKind())
	assert.Equal(t, "/sys/bus/iio/devices/iio:device*/in_accel_*_raw", cfg.AccelGlob)
	assert.Equal(t, 3, cfg.DetectAttempts)
	assert.Empty(t, cfg.StatusAddr)
	assert.False(t, cfg.Monitor)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_Environment(t *testing.T) {
	isolateEnv(t)
	t.Setenv("AUTOROTATE_SLEEP", "250")
	t.Setenv("AUTOROTATE_DISPLAY", "DSI-1")
	t.Setenv("AUTOROTATE_BACKEND", "sway")
	t.Setenv("AUTOROTATE_STATUS_ADDR", "127.0.0.1:9477")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Interval())
	assert.Equal(t, "DSI-1", cfg.Display)
	assert.Equal(t, domain.BackendSway, cfg.BackendKind())
	assert.Equal(t, "127.0.0.1:9477", cfg.StatusAddr)
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	isolateEnv(t)
	t.Setenv("AUTOROTATE_SLEEP", "250")
	t.Setenv("AUTOROTATE_DISPLAY", "DSI-1")

	cfg, err := Load([]string{
		"--sleep", "1000",
		"--display", "eDP-2",
		"--touchscreen", "Wacom HID 52C2 Finger",
		"--backend", "x11",
		"--monitor",
	})
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.Interval())
	assert.Equal(t, "eDP-2", cfg.Display)
	assert.Equal(t, "Wacom HID 52C2 Finger", cfg.Touchscreen)
	assert.Equal(t, domain.BackendX11, cfg.BackendKind())
	assert.True(t, cfg.Monitor)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "autorotate.env")
	require.NoError(t, os.WriteFile(path, []byte("AUTOROTATE_DISPLAY=LVDS-1\n"), 0o600))
	t.Setenv("AUTOROTATE_ENV_FILE", path)

	// Register cleanup for the variable godotenv will set, then clear it so
	// the file is not shadowed.
	t.Setenv("AUTOROTATE_DISPLAY", "")
	require.NoError(t, os.Unsetenv("AUTOROTATE_DISPLAY"))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "LVDS-1", cfg.Display)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		args    []string
		wantErr string
	}{
		{"zero sleep", nil, []string{"--sleep", "0"}, "AUTOROTATE_SLEEP must be positive"},
		{"empty display", nil, []string{"--display", ""}, "AUTOROTATE_DISPLAY is required"},
		{"unknown backend", nil, []string{"--backend", "wayland"}, "AUTOROTATE_BACKEND"},
		{"detect attempts", map[string]string{"AUTOROTATE_DETECT_ATTEMPTS": "0"}, nil, "AUTOROTATE_DETECT_ATTEMPTS must be at least 1"},
		{"half accel override", map[string]string{"AUTOROTATE_ACCEL_X": "/tmp/x"}, nil, "must be set together"},
		{"log format", nil, []string{"--log-format", "xml"}, "LOG_FORMAT must be text or json"},
		{"unknown flag", nil, []string{"--rotate"}, "unknown flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_Help(t *testing.T) {
	isolateEnv(t)

	_, err := Load([]string{"--help"})
	assert.ErrorIs(t, err, pflag.ErrHelp)
}

func TestLoad_VersionSkipsValidation(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load([]string{"--version", "--sleep", "0"})
	require.NoError(t, err)
	assert.True(t, cfg.ShowVersion)
}
