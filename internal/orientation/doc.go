// Package orientation maps raw two-axis accelerometer samples to one of the
// four cardinal orientations.
//
// A strongly positive y always means the device is upside down, regardless of x.
// Otherwise the sign of a strong x picks left-up or right-up, and anything else is normal.
package orientation
