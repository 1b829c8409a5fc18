package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "autorotate"

// Poll Loop Metrics
var (
	// TicksTotal tracks completed poll ticks
	TicksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Total poll loop ticks",
		},
	)

	// TickDuration tracks time spent inside one tick (read, classify, apply)
	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Poll tick duration in seconds",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		},
	)

	// SensorReadErrorsTotal tracks ticks where at least one axis fell back to 0
	SensorReadErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sensor_read_errors_total",
			Help:      "Sensor reads where an axis could not be read or parsed",
		},
	)

	// RotationsTotal tracks applied transitions by target orientation
	RotationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rotations_total",
			Help:      "Rotations requested from the display backend by target orientation",
		},
		[]string{"orientation"},
	)

	// CurrentOrientation is 1 for the orientation last requested and 0 for the others
	CurrentOrientation = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "current_orientation",
			Help:      "Last requested orientation (1 = current)",
		},
		[]string{"orientation"},
	)
)

// Command Metrics
var (
	// CommandLaunchesTotal tracks external commands started by status
	CommandLaunchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "command_launches_total",
			Help:      "External commands launched by command and status",
		},
		[]string{"command", "status"},
	)

	// CommandFailuresTotal tracks launched commands that later exited non-zero
	CommandFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "command_failures_total",
			Help:      "Launched commands that exited with a failure status",
		},
		[]string{"command"},
	)
)
