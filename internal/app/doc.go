// Package app provides the rotation daemon.
//
// Runs the read-classify-diff-apply poll loop. Depends on domain interfaces
// (SensorSource, DisplayBackend), not concrete implementations.
package app
