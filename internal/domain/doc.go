// Package domain defines the core domain types and interfaces.
//
// Concept-oriented files (orientation.go, sensor.go, backend.go, errors.go) hold the shared
// types and the contracts the daemon depends on. No implementation code - just contracts.
package domain
