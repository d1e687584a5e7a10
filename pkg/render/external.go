package render

import (
	"context"
	"os"

	"github.com/lkirchner/graphlens/pkg/errors"
)

// ExternalRenderer renders DOT files by invoking a Graphviz layout binary.
// This is the only renderer that can produce PostScript.
type ExternalRenderer struct {
	engine string
	exec   Executor
}

// NewExternalRenderer creates a renderer for the given layout engine.
// A nil executor falls back to the default (real processes).
func NewExternalRenderer(engine string, exec Executor) (*ExternalRenderer, error) {
	if err := ValidateEngine(engine); err != nil {
		return nil, err
	}
	if exec == nil {
		exec = NewExecutor()
	}
	return &ExternalRenderer{engine: engine, exec: exec}, nil
}

// Engine returns the layout engine name.
func (r *ExternalRenderer) Engine() string { return r.engine }

// RenderPS renders dotPath to PostScript at outPath, equivalent to
//
//	circo -Tps graph/graph.dot -o graph/graph.ps
//
// The input is checked and the binary resolved before any process is
// spawned, so a missing input never produces a partial output file.
func (r *ExternalRenderer) RenderPS(ctx context.Context, dotPath, outPath string) error {
	if _, err := os.Stat(dotPath); err != nil {
		if os.IsNotExist(err) {
			return errors.New(errors.ErrCodeFileNotFound, "input %s does not exist", dotPath)
		}
		return err
	}
	if _, err := r.exec.LookPath(r.engine); err != nil {
		return errors.Wrap(errors.ErrCodeRendererNotFound, err,
			"layout engine %q is not installed (install graphviz)", r.engine)
	}

	if _, err := r.exec.Run(ctx, r.engine, "-Tps", dotPath, "-o", outPath); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "%s -Tps %s", r.engine, dotPath)
	}
	return nil
}
