package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/autorotate/internal/domain"
	"github.com/pscheid92/autorotate/internal/metrics"
	"github.com/pscheid92/autorotate/internal/orientation"
	"github.com/pscheid92/autorotate/internal/platform/correlation"
	"golang.org/x/time/rate"
)

const (
	DefaultInterval = 500 * time.Millisecond

	// A sensor that disappears fails on every tick; warn once a minute.
	sensorWarnInterval = time.Minute
)

// Daemon keeps the display rotation in sync with the accelerometer.
//
// lastApplied is only touched by the goroutine running Run. A copy is
// published for observers through Current.
type Daemon struct {
	sensor   domain.SensorSource
	backend  domain.DisplayBackend
	clock    clockwork.Clock
	interval time.Duration
	warn     *rate.Limiter

	lastApplied domain.Orientation
	published   atomic.Int64
}

func NewDaemon(sensor domain.SensorSource, backend domain.DisplayBackend, clock clockwork.Clock, interval time.Duration) *Daemon {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Daemon{
		sensor:   sensor,
		backend:  backend,
		clock:    clock,
		interval: interval,
		warn:     rate.NewLimiter(rate.Every(sensorWarnInterval), 1),
	}
}

// Current returns the orientation most recently requested from the backend,
// or the baseline reported at startup.
func (d *Daemon) Current() domain.Orientation {
	return domain.Orientation(d.published.Load())
}

// Run queries the backend for its current transform, then polls the sensor
// every interval until ctx is cancelled. A failed baseline query or a command
// that cannot be launched ends Run with an error; cancellation returns nil.
func (d *Daemon) Run(ctx context.Context) error {
	if err := d.init(ctx); err != nil {
		return err
	}

	if err := d.tick(ctx); err != nil {
		return err
	}

	ticker := d.clock.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			if err := d.tick(ctx); err != nil {
				return err
			}
		}
	}
}

func (d *Daemon) init(ctx context.Context) error {
	baseline, err := d.backend.QueryCurrent(ctx)
	if err != nil {
		return fmt.Errorf("query current transform: %w", err)
	}

	d.setLastApplied(baseline)
	slog.InfoContext(ctx, "Baseline orientation", "backend", d.backend.Name(), "orientation", baseline, "interval", d.interval)
	return nil
}

func (d *Daemon) tick(ctx context.Context) error {
	tickCtx := correlation.WithID(ctx, correlation.NewID())
	start := d.clock.Now()
	defer func() {
		metrics.TicksTotal.Inc()
		metrics.TickDuration.Observe(d.clock.Since(start).Seconds())
	}()

	reading, err := d.sensor.Read()
	if err != nil {
		metrics.SensorReadErrorsTotal.Inc()
		if d.warn.AllowN(d.clock.Now(), 1) {
			slog.WarnContext(tickCtx, "Sensor read failed, using 0 for unreadable axes", "x", reading.X, "y", reading.Y, "error", err)
		}
	}

	current := orientation.ClassifyReading(reading)
	if current == d.lastApplied {
		return nil
	}

	if err := d.backend.Apply(tickCtx, current); err != nil {
		return fmt.Errorf("apply %s: %w", current, err)
	}

	slog.InfoContext(tickCtx, "Rotation applied", "from", d.lastApplied, "to", current, "x", reading.X, "y", reading.Y)
	metrics.RotationsTotal.WithLabelValues(current.String()).Inc()
	d.setLastApplied(current)
	return nil
}

func (d *Daemon) setLastApplied(o domain.Orientation) {
	d.lastApplied = o
	d.published.Store(int64(o))

	for _, candidate := range domain.Orientations {
		v := 0.0
		if candidate == o {
			v = 1
		}
		metrics.CurrentOrientation.WithLabelValues(candidate.String()).Set(v)
	}
}
