package render

import (
	"context"
	"os/exec"
)

// MockExecutor is a test double recording every invocation.
type MockExecutor struct {
	// Calls records each Run invocation as name followed by args.
	Calls [][]string

	// Output and Err are returned from Run.
	Output []byte
	Err    error

	// Missing lists binaries LookPath should report as absent.
	Missing map[string]bool

	// OnRun, when set, is invoked by Run and may create output files.
	OnRun func(name string, args []string) error
}

// LookPath reports binaries as present unless listed in Missing.
func (m *MockExecutor) LookPath(name string) (string, error) {
	if m.Missing[name] {
		return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	return "/usr/bin/" + name, nil
}

// Run records the call and returns the configured output.
func (m *MockExecutor) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	call := append([]string{name}, args...)
	m.Calls = append(m.Calls, call)
	if m.OnRun != nil {
		if err := m.OnRun(name, args); err != nil {
			return nil, err
		}
	}
	return m.Output, m.Err
}
