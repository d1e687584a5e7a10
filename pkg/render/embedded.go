package render

import (
	"bytes"
	"context"
	"os"

	"github.com/goccy/go-graphviz"

	"github.com/lkirchner/graphlens/pkg/errors"
)

// EmbeddedRenderer renders DOT input in-process using goccy/go-graphviz.
// It covers SVG and PNG; PostScript still needs the external toolchain.
type EmbeddedRenderer struct {
	engine string
}

// NewEmbeddedRenderer creates an in-process renderer for the given engine.
func NewEmbeddedRenderer(engine string) (*EmbeddedRenderer, error) {
	if err := ValidateEngine(engine); err != nil {
		return nil, err
	}
	return &EmbeddedRenderer{engine: engine}, nil
}

// Render parses DOT source and renders it to the requested format.
func (r *EmbeddedRenderer) Render(ctx context.Context, dot []byte, format string) ([]byte, error) {
	var gvFormat graphviz.Format
	switch format {
	case FormatSVG:
		gvFormat = graphviz.SVG
	case FormatPNG:
		gvFormat = graphviz.PNG
	default:
		return nil, errors.New(errors.ErrCodeUnsupported,
			"embedded renderer cannot produce %q (use the external renderer)", format)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(engines[r.engine])

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedGraph, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, gvFormat, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}
	return buf.Bytes(), nil
}

// RenderFile reads a DOT file and writes the rendered output to outPath.
func (r *EmbeddedRenderer) RenderFile(ctx context.Context, dotPath, outPath, format string) error {
	dot, err := os.ReadFile(dotPath)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.New(errors.ErrCodeFileNotFound, "input %s does not exist", dotPath)
		}
		return err
	}
	out, err := r.Render(ctx, dot, format)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, out, 0644)
}
