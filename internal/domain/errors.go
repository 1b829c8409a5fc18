package domain

import "errors"

var (
	ErrNoSuchDisplay      = errors.New("display not found in output list")
	ErrNoMatch            = errors.New("no status line matches display")
	ErrNoBackendDetected  = errors.New("no supported display backend detected")
	ErrNoAccelerometer    = errors.New("accelerometer not found")
	ErrLaunch             = errors.New("command failed to start")
	ErrUnknownBackendKind = errors.New("unknown backend kind")
)
