package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/pscheid92/autorotate/internal/domain"
	"github.com/pscheid92/autorotate/internal/platform/retry"
)

// ProcessProbe reports whether a process with the given name is running.
type ProcessProbe interface {
	Running(ctx context.Context, name string) (bool, error)
}

// PidofProbe asks pidof(8). pidof exits non-zero when nothing matches.
type PidofProbe struct {
	launcher Launcher
}

func NewPidofProbe(launcher Launcher) *PidofProbe {
	return &PidofProbe{launcher: launcher}
}

func (p *PidofProbe) Running(ctx context.Context, name string) (bool, error) {
	out, err := p.launcher.Output(ctx, "pidof", name)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, nil
		}
		return false, fmt.Errorf("pidof %s: %w", name, err)
	}
	return len(bytes.TrimSpace(out)) > 0, nil
}

// Detect picks the backend from the running display server. Xorg wins when
// both are present.
func Detect(ctx context.Context, probe ProcessProbe) (domain.BackendKind, error) {
	xorg, err := probe.Running(ctx, "Xorg")
	if err != nil {
		return "", err
	}
	if xorg {
		return domain.BackendX11, nil
	}

	sway, err := probe.Running(ctx, "sway")
	if err != nil {
		return "", err
	}
	if sway {
		return domain.BackendSway, nil
	}

	return "", domain.ErrNoBackendDetected
}

// DetectPolicy returns the retry policy used while waiting for a display
// server to appear. attempts < 1 is treated as 1.
func DetectPolicy(attempts int) retry.Policy {
	return retry.Policy{
		MaxAttempts:    max(attempts, 1),
		InitialBackoff: 1 * time.Second,
		OnRetry: func(attempt int, err error, backoff time.Duration) {
			slog.Info("Display server not detected yet, retrying", "attempt", attempt, "backoff", backoff, "error", err)
		},
	}
}

// Resolve returns kind unchanged unless it is BackendAuto, in which case the
// backend is detected, retrying while no display server is running.
func Resolve(ctx context.Context, kind domain.BackendKind, probe ProcessProbe, policy retry.Policy) (domain.BackendKind, error) {
	if kind != domain.BackendAuto {
		return kind, nil
	}

	classify := func(err error) retry.Action {
		if errors.Is(err, domain.ErrNoBackendDetected) {
			return retry.Retry
		}
		return retry.Stop
	}

	return retry.Do(ctx, policy, classify, func() (domain.BackendKind, error) {
		return Detect(ctx, probe)
	})
}
