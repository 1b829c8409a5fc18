package backend

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"sync"

	"github.com/pscheid92/autorotate/internal/domain"
	"github.com/pscheid92/autorotate/internal/metrics"
)

// Launcher runs external commands.
//
// Output launches a command and waits for its standard output.
// Start launches a command and returns as soon as it is running; the caller
// never sees its exit status.
type Launcher interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	Start(name string, args ...string) error
}

// ExecLauncher runs commands with os/exec. Commands started with Start are
// reaped in the background; a non-zero exit is logged and counted.
type ExecLauncher struct {
	wg sync.WaitGroup
}

func NewExecLauncher() *ExecLauncher {
	return &ExecLauncher{}
}

func (l *ExecLauncher) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

func (l *ExecLauncher) Start(name string, args ...string) error {
	var stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		metrics.CommandLaunchesTotal.WithLabelValues(name, "error").Inc()
		return fmt.Errorf("%w: %s: %v", domain.ErrLaunch, name, err)
	}
	metrics.CommandLaunchesTotal.WithLabelValues(name, "started").Inc()

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		if err := cmd.Wait(); err != nil {
			metrics.CommandFailuresTotal.WithLabelValues(name).Inc()
			slog.Warn("Command exited with failure",
				"command", name,
				"args", strings.Join(args, " "),
				"error", err,
				"stderr", strings.TrimSpace(stderr.String()))
		}
	}()
	return nil
}

// Wait blocks until every command launched with Start has exited.
func (l *ExecLauncher) Wait() {
	l.wg.Wait()
}
