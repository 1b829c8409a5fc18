package backend

import (
	"context"
	"strings"
)

type launchCall struct {
	name string
	args []string
}

func (c launchCall) String() string {
	return c.name + " " + strings.Join(c.args, " ")
}

// fakeLauncher records Start calls and serves canned Output results keyed by command name.
type fakeLauncher struct {
	outputs  map[string][]byte
	outErrs  map[string]error
	startErr map[string]error
	started  []launchCall
	queried  []launchCall
}

func (f *fakeLauncher) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	f.queried = append(f.queried, launchCall{name: name, args: args})
	if err := f.outErrs[name]; err != nil {
		return nil, err
	}
	return f.outputs[name], nil
}

func (f *fakeLauncher) Start(name string, args ...string) error {
	if err := f.startErr[name]; err != nil {
		return err
	}
	f.started = append(f.started, launchCall{name: name, args: args})
	return nil
}
