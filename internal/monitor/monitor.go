// Package monitor renders a live view of the raw accelerometer values and
// the orientation they classify to. Nothing is applied to the display.
package monitor

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gosuri/uilive"
	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/autorotate/internal/domain"
	"github.com/pscheid92/autorotate/internal/orientation"
)

type Monitor struct {
	sensor   domain.SensorSource
	clock    clockwork.Clock
	interval time.Duration
	out      io.Writer
}

func New(sensor domain.SensorSource, clock clockwork.Clock, interval time.Duration, out io.Writer) *Monitor {
	return &Monitor{sensor: sensor, clock: clock, interval: interval, out: out}
}

// Run redraws one frame per interval until ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) error {
	writer := uilive.New()
	writer.Out = m.out
	writer.Start()
	defer writer.Stop()

	ticker := m.clock.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		r, err := m.sensor.Read()
		render(writer, r, err)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
		}
	}
}

func render(w io.Writer, r domain.AxisReading, err error) {
	o := orientation.ClassifyReading(r)
	fmt.Fprintf(w, `x: %9d  (threshold ±%d)
y: %9d
Orientation: %s (transform %s, keyword %s)
`, r.X, orientation.Threshold, r.Y, o, o.TransformID(), o.Keyword())

	if err != nil {
		fmt.Fprintf(w, "Read error: %v\n", err)
	}
}
