package testutil

import (
	"context"
	"strings"

	"github.com/arthur-debert/copyconfig/pkg/execs"
)

// Call is one recorded FakeRunner invocation.
type Call struct {
	Dir  string
	Argv []string
}

// String renders the call as a command line.
func (c Call) String() string {
	return strings.Join(c.Argv, " ")
}

// FakeRunner is a scripted execs.Runner. Handler decides the outcome of each
// call; without one every command succeeds with empty output.
type FakeRunner struct {
	Calls   []Call
	Handler func(dir string, argv []string) (*execs.Result, error)
}

// Run implements execs.Runner.
func (f *FakeRunner) Run(ctx context.Context, dir string, argv []string) (*execs.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.Calls = append(f.Calls, Call{Dir: dir, Argv: append([]string(nil), argv...)})
	if f.Handler == nil {
		return &execs.Result{}, nil
	}
	return f.Handler(dir, argv)
}

// Commands returns the recorded calls as command lines.
func (f *FakeRunner) Commands() []string {
	out := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		out[i] = c.String()
	}
	return out
}
