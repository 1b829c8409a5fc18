// Package sensor reads raw accelerometer values from Linux IIO sysfs files.
package sensor
