// Package viewer opens files with the platform's default application,
// the Go counterpart of shelling out to xdg-open.
package viewer

import (
	"context"
	"path/filepath"
	"runtime"

	"github.com/lkirchner/graphlens/pkg/errors"
	"github.com/lkirchner/graphlens/pkg/render"
)

// Viewer launches the platform opener for result artifacts.
type Viewer struct {
	command string
	exec    render.Executor
}

// New creates a viewer. command overrides the platform default opener;
// leave it empty to auto-detect. A nil executor uses real processes.
func New(command string, exec render.Executor) *Viewer {
	if command == "" {
		command = platformOpener()
	}
	if exec == nil {
		exec = render.NewExecutor()
	}
	return &Viewer{command: command, exec: exec}
}

// Command returns the opener command in use.
func (v *Viewer) Command() string { return v.command }

// Open launches the default application for path and blocks until the
// opener process exits. With xdg-open that is the hand-off to the desktop
// environment, not the viewer application itself.
func (v *Viewer) Open(ctx context.Context, path string) error {
	if _, err := v.exec.LookPath(v.command); err != nil {
		return errors.Wrap(errors.ErrCodeViewerNotFound, err,
			"opener %q is not installed", v.command)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if _, err := v.exec.Run(ctx, v.command, abs); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	return nil
}

// platformOpener returns the default-application launcher for the host OS.
func platformOpener() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		return "xdg-open"
	}
}
