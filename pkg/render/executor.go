package render

import (
	"context"
	"fmt"
	"os/exec"
)

// Executor runs external commands. The indirection exists so renderer and
// viewer logic can be tested without Graphviz installed.
type Executor interface {
	// LookPath reports the full path of an executable, or an error if it is
	// not on PATH.
	LookPath(name string) (string, error)

	// Run executes a command and returns its combined output.
	// It respects the provided context for cancellation.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// DefaultExecutor is the Executor implementation that runs actual commands.
type DefaultExecutor struct{}

// NewExecutor creates the default executor.
func NewExecutor() Executor {
	return &DefaultExecutor{}
}

// LookPath resolves name against PATH.
func (e *DefaultExecutor) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes the command and returns its combined output.
func (e *DefaultExecutor) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, fmt.Errorf("%s failed: %w\noutput: %s", name, err, output)
	}
	return output, nil
}
