package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pscheid92/autorotate/internal/domain"
)

type swayOutput struct {
	Name      string `json:"name"`
	Transform string `json:"transform"`
}

// Sway rotates an output of the sway compositor. Touch input follows the
// output transform inside the compositor, so no matrix is set.
type Sway struct {
	launcher Launcher
	display  string
}

func NewSway(launcher Launcher, display string) *Sway {
	return &Sway{launcher: launcher, display: display}
}

func (b *Sway) Name() string { return string(domain.BackendSway) }

func (b *Sway) QueryCurrent(ctx context.Context) (domain.Orientation, error) {
	raw, err := b.launcher.Output(ctx, "swaymsg", "-t", "get_outputs", "--raw")
	if err != nil {
		return domain.OrientationUnknown, fmt.Errorf("query sway outputs: %w", err)
	}

	transform, err := ParseSwayTransform(raw, b.display)
	if err != nil {
		return domain.OrientationUnknown, err
	}

	o, ok := domain.FromTransformID(transform)
	if !ok {
		slog.WarnContext(ctx, "Unrecognised sway transform, first reading will be applied", "display", b.display, "transform", transform)
	}
	return o, nil
}

func (b *Sway) Apply(_ context.Context, o domain.Orientation) error {
	if !o.Valid() {
		return fmt.Errorf("apply %s: not a cardinal orientation", o)
	}
	return b.launcher.Start("swaymsg", "output", b.display, "transform", o.TransformID())
}

// ParseSwayTransform returns the transform of the named output from
// `swaymsg -t get_outputs --raw` JSON.
func ParseSwayTransform(raw []byte, display string) (string, error) {
	var outputs []swayOutput
	if err := json.Unmarshal(raw, &outputs); err != nil {
		return "", fmt.Errorf("decode sway outputs: %w", err)
	}

	for _, out := range outputs {
		if out.Name == display {
			return out.Transform, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrNoSuchDisplay, display)
}
