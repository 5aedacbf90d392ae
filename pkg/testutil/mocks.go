package testutil

import (
	"context"

	"github.com/arthur-debert/uvw/pkg/runner"
)

// FakeRunner records commands instead of running them.
type FakeRunner struct {
	Calls []runner.Command
	// OutputFunc answers Output calls; nil returns no output
	OutputFunc func(cmd runner.Command) ([]byte, error)
	// RunErr is returned from every Run call
	RunErr error
}

// Run implements runner.Runner
func (f *FakeRunner) Run(_ context.Context, cmd runner.Command) error {
	f.Calls = append(f.Calls, cmd)
	return f.RunErr
}

// Output implements runner.Runner
func (f *FakeRunner) Output(_ context.Context, cmd runner.Command) ([]byte, error) {
	f.Calls = append(f.Calls, cmd)
	if f.OutputFunc == nil {
		return nil, nil
	}
	return f.OutputFunc(cmd)
}

// FakeConfirmer answers from Answers by message, then Default.
type FakeConfirmer struct {
	Answers map[string]bool
	Default bool
	Asked   []string
}

// Confirm implements ui.Confirmer
func (f *FakeConfirmer) Confirm(message string) (bool, error) {
	f.Asked = append(f.Asked, message)
	if answer, ok := f.Answers[message]; ok {
		return answer, nil
	}
	return f.Default, nil
}

// FakePicker returns Choice and remembers what it was offered.
type FakePicker struct {
	Choice  string
	Err     error
	Offered []string
}

// Pick implements ui.Picker
func (f *FakePicker) Pick(_ string, options []string) (string, error) {
	f.Offered = append([]string(nil), options...)
	return f.Choice, f.Err
}
