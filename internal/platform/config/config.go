package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/pscheid92/autorotate/internal/domain"
	"github.com/spf13/pflag"
	"go-simpler.org/env"
)

type Config struct {
	SleepMillis    int    `env:"AUTOROTATE_SLEEP" default:"500"`
	Display        string `env:"AUTOROTATE_DISPLAY" default:"eDP-1"`
	Touchscreen    string `env:"AUTOROTATE_TOUCHSCREEN" default:"ELAN0732:00 04F3:22E1"`
	Backend        string `env:"AUTOROTATE_BACKEND" default:"auto"`
	AccelGlob      string `env:"AUTOROTATE_ACCEL_GLOB" default:"/sys/bus/iio/devices/iio:device*/in_accel_*_raw"`
	AccelX         string `env:"AUTOROTATE_ACCEL_X"`
	AccelY         string `env:"AUTOROTATE_ACCEL_Y"`
	DetectAttempts int    `env:"AUTOROTATE_DETECT_ATTEMPTS" default:"3"`
	StatusAddr     string `env:"AUTOROTATE_STATUS_ADDR"`
	Monitor        bool   `env:"AUTOROTATE_MONITOR" default:"false"`
	LogLevel       string `env:"LOG_LEVEL" default:"info"`
	LogFormat      string `env:"LOG_FORMAT" default:"text"`

	ShowVersion bool
}

// Interval is the poll interval.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.SleepMillis) * time.Millisecond
}

// BackendKind is the validated backend selection.
func (c *Config) BackendKind() domain.BackendKind {
	return domain.BackendKind(c.Backend)
}

// Load reads the dotenv file, the environment, then args (without the
// program name). It returns pflag.ErrHelp when --help was requested.
func Load(args []string) (*Config, error) {
	envFile := envFilePath()
	if err := godotenv.Load(envFile); err != nil {
		slog.Debug("No env file loaded, using environment variables", "path", envFile)
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	fs := newFlagSet(&cfg)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.ShowVersion {
		return &cfg, nil
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func newFlagSet(cfg *Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet("autorotate", pflag.ContinueOnError)
	fs.IntVar(&cfg.SleepMillis, "sleep", cfg.SleepMillis, "poll interval in milliseconds")
	fs.StringVar(&cfg.Display, "display", cfg.Display, "display output to rotate")
	fs.StringVar(&cfg.Touchscreen, "touchscreen", cfg.Touchscreen, "touchscreen input device (X11)")
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "display backend: auto, sway or x11")
	fs.StringVar(&cfg.StatusAddr, "status-addr", cfg.StatusAddr, "listen address for the status server (disabled when empty)")
	fs.BoolVar(&cfg.Monitor, "monitor", cfg.Monitor, "show live sensor values and orientation without rotating")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")
	return fs
}

func envFilePath() string {
	if p := os.Getenv("AUTOROTATE_ENV_FILE"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".env"
	}
	return filepath.Join(dir, "autorotate", "autorotate.env")
}

func validate(cfg *Config) error {
	if cfg.Display == "" {
		return errors.New("AUTOROTATE_DISPLAY is required")
	}

	if cfg.SleepMillis <= 0 {
		return fmt.Errorf("AUTOROTATE_SLEEP must be positive, got %d", cfg.SleepMillis)
	}

	if _, err := domain.ParseBackendKind(cfg.Backend); err != nil {
		return fmt.Errorf("AUTOROTATE_BACKEND: %w", err)
	}

	if cfg.DetectAttempts < 1 {
		return fmt.Errorf("AUTOROTATE_DETECT_ATTEMPTS must be at least 1, got %d", cfg.DetectAttempts)
	}

	if (cfg.AccelX == "") != (cfg.AccelY == "") {
		return errors.New("AUTOROTATE_ACCEL_X and AUTOROTATE_ACCEL_Y must be set together")
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	return nil
}
