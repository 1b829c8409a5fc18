package domain

// AxisReading is one raw accelerometer sample in the sensor's native scale.
type AxisReading struct {
	X int
	Y int
}

// SensorSource reads the two raw axis values. Read always returns a usable
// reading: an axis that could not be read or parsed is reported as 0 and
// the returned error describes what went wrong. Callers treat the error as
// transient.
type SensorSource interface {
	Read() (AxisReading, error)
}
