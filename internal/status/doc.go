// Package status serves a small read-only HTTP API next to the daemon:
// liveness, the current orientation, build version and Prometheus metrics.
package status
