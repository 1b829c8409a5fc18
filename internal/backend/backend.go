package backend

import (
	"fmt"

	"github.com/pscheid92/autorotate/internal/domain"
)

// Options identifies what a backend acts on. Touchscreen is only used by XRandR.
type Options struct {
	Display     string
	Touchscreen string
}

// New constructs the backend for a resolved kind. BackendAuto must be
// resolved with Resolve first.
func New(kind domain.BackendKind, launcher Launcher, opts Options) (domain.DisplayBackend, error) {
	switch kind {
	case domain.BackendSway:
		return NewSway(launcher, opts.Display), nil
	case domain.BackendX11:
		return NewXRandR(launcher, opts.Display, opts.Touchscreen), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackendKind, kind)
	}
}
