package backend

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/pscheid92/autorotate/internal/domain"
)

const touchMatrixProperty = "Coordinate Transformation Matrix"

// XRandR rotates an X output with xrandr and remaps the touchscreen with xinput.
type XRandR struct {
	launcher    Launcher
	display     string
	touchscreen string
}

func NewXRandR(launcher Launcher, display, touchscreen string) *XRandR {
	return &XRandR{launcher: launcher, display: display, touchscreen: touchscreen}
}

func (b *XRandR) Name() string { return string(domain.BackendX11) }

func (b *XRandR) QueryCurrent(ctx context.Context) (domain.Orientation, error) {
	status, err := b.launcher.Output(ctx, "xrandr")
	if err != nil {
		return domain.OrientationUnknown, fmt.Errorf("query xrandr status: %w", err)
	}

	keyword, err := ParseXRandRTransform(string(status), b.display)
	if err != nil {
		return domain.OrientationUnknown, err
	}

	o, _ := domain.FromKeyword(keyword)
	return o, nil
}

// Apply launches the output rotation and the touchscreen matrix update
// independently. If the second launch fails the first is not undone.
func (b *XRandR) Apply(ctx context.Context, o domain.Orientation) error {
	if !o.Valid() {
		return fmt.Errorf("apply %s: not a cardinal orientation", o)
	}

	if err := b.launcher.Start("xrandr", "--output", b.display, "--rotate", o.Keyword()); err != nil {
		return err
	}

	if b.touchscreen == "" {
		slog.DebugContext(ctx, "No touchscreen configured, skipping matrix", "display", b.display)
		return nil
	}

	args := append([]string{"set-prop", b.touchscreen, touchMatrixProperty}, o.Matrix().Args()...)
	return b.launcher.Start("xinput", args...)
}

// ParseXRandRTransform scans xrandr status output for the line describing
// display and returns its rotation keyword ("normal" when none is shown).
// A matching line looks like:
//
//	eDP-1 connected primary 1800x3200+0+0 left (normal left inverted right x axis y axis) 294mm x 165mm
func ParseXRandRTransform(status, display string) (string, error) {
	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(display) +
		` connected (?:primary )?\S+ (?:(normal|left|inverted|right) )?\(normal left inverted right x axis y axis\)`)

	for _, line := range strings.Split(status, "\n") {
		m := pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if m[1] == "" {
			return "normal", nil
		}
		return m[1], nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrNoMatch, display)
}
