package domain

import (
	"context"
	"fmt"
)

// BackendKind selects the display server the daemon drives.
type BackendKind string

const (
	BackendAuto BackendKind = "auto"
	BackendSway BackendKind = "sway"
	BackendX11  BackendKind = "x11"
)

// ParseBackendKind validates a configured backend name.
func ParseBackendKind(s string) (BackendKind, error) {
	switch k := BackendKind(s); k {
	case BackendAuto, BackendSway, BackendX11:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackendKind, s)
	}
}

// DisplayBackend queries and changes the rotation of one display output.
//
// Apply launches the commands that perform the rotation and returns once they
// have started; it does not wait for them to finish. A returned error means a
// command could not be started at all.
type DisplayBackend interface {
	Name() string
	QueryCurrent(ctx context.Context) (Orientation, error)
	Apply(ctx context.Context, o Orientation) error
}
