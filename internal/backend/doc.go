// Package backend drives display servers to rotate an output.
//
// Two DisplayBackend variants exist: Sway talks to the compositor through swaymsg,
// XRandR uses xrandr for the output and xinput for the touchscreen matrix.
// All process execution goes through a Launcher so both variants can be exercised
// without spawning real commands.
package backend
