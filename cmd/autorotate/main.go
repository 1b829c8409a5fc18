package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/autorotate/internal/app"
	"github.com/pscheid92/autorotate/internal/backend"
	"github.com/pscheid92/autorotate/internal/domain"
	"github.com/pscheid92/autorotate/internal/monitor"
	"github.com/pscheid92/autorotate/internal/platform/config"
	"github.com/pscheid92/autorotate/internal/platform/logging"
	"github.com/pscheid92/autorotate/internal/platform/version"
	"github.com/pscheid92/autorotate/internal/sensor"
	"github.com/pscheid92/autorotate/internal/status"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

const (
	statusShutdownTimeout = 5 * time.Second
	reapTimeout           = 2 * time.Second
)

func setupConfig() *config.Config {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupSensor(cfg *config.Config) domain.SensorSource {
	if cfg.AccelX != "" {
		slog.Info("Using configured accelerometer channels", "x", cfg.AccelX, "y", cfg.AccelY)
		return sensor.NewIIOSource(cfg.AccelX, cfg.AccelY)
	}

	src, err := sensor.Discover(cfg.AccelGlob)
	if err != nil {
		slog.Error("Failed to find accelerometer", "glob", cfg.AccelGlob, "error", err)
		os.Exit(1)
	}

	x, y := src.Paths()
	slog.Info("Accelerometer found", "x", x, "y", y)
	return src
}

func setupBackend(ctx context.Context, cfg *config.Config, launcher backend.Launcher) domain.DisplayBackend {
	kind, err := backend.Resolve(ctx, cfg.BackendKind(), backend.NewPidofProbe(launcher), backend.DetectPolicy(cfg.DetectAttempts))
	if err != nil {
		if errors.Is(err, domain.ErrNoBackendDetected) {
			slog.Error("Neither sway nor Xorg is running; set AUTOROTATE_BACKEND or --backend to choose one", "error", err)
		} else {
			slog.Error("Failed to detect display backend", "error", err)
		}
		os.Exit(1)
	}

	b, err := backend.New(kind, launcher, backend.Options{Display: cfg.Display, Touchscreen: cfg.Touchscreen})
	if err != nil {
		slog.Error("Failed to create display backend", "backend", kind, "error", err)
		os.Exit(1)
	}
	return b
}

func runMonitor(ctx context.Context, cfg *config.Config, src domain.SensorSource, clock clockwork.Clock) {
	if err := monitor.New(src, clock, cfg.Interval(), os.Stdout).Run(ctx); err != nil {
		slog.Error("Monitor stopped", "error", err)
		os.Exit(1)
	}
}

// waitForCommands gives launched rotation commands a moment to exit so
// their failures are still logged.
func waitForCommands(launcher *backend.ExecLauncher) {
	done := make(chan struct{})
	go func() {
		launcher.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(reapTimeout):
		slog.Warn("Rotation commands still running at shutdown")
	}
}

func main() {
	cfg := setupConfig()
	if cfg.ShowVersion {
		fmt.Println(version.Get())
		return
	}

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Autorotate starting", "version", version.Version, "display", cfg.Display, "backend", cfg.Backend, "interval", cfg.Interval())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := clockwork.NewRealClock()
	src := setupSensor(cfg)

	if cfg.Monitor {
		runMonitor(ctx, cfg, src, clock)
		return
	}

	launcher := backend.NewExecLauncher()
	displayBackend := setupBackend(ctx, cfg, launcher)
	daemon := app.NewDaemon(src, displayBackend, clock, cfg.Interval())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return daemon.Run(gctx)
	})

	if cfg.StatusAddr != "" {
		srv := status.NewServer(cfg.StatusAddr, daemon, displayBackend.Name(), clock)
		g.Go(func() error {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("status server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), statusShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	err := g.Wait()
	waitForCommands(launcher)

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoSuchDisplay), errors.Is(err, domain.ErrNoMatch):
			slog.Error("Display not found; check AUTOROTATE_DISPLAY or --display", "display", cfg.Display, "error", err)
		default:
			slog.Error("Daemon stopped", "error", err)
		}
		os.Exit(1)
	}

	slog.Info("Shutdown complete")
}
