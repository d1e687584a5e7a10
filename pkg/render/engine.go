// Package render turns DOT graph descriptions into images.
//
// Two paths exist: external rendering shells out to a Graphviz layout binary
// (the only way to get PostScript output), and embedded rendering uses the
// goccy/go-graphviz port for SVG and PNG without any system dependency.
package render

import (
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/lkirchner/graphlens/pkg/errors"
)

// Layout engines. Each name doubles as the Graphviz binary to invoke.
const (
	EngineCirco = "circo"
	EngineDot   = "dot"
	EngineNeato = "neato"
	EngineFDP   = "fdp"
	EngineTwopi = "twopi"
)

// DefaultEngine is the circular layout, which suits the highly connected
// graphs this tool is pointed at.
const DefaultEngine = EngineCirco

// Output formats.
const (
	FormatPS  = "ps"
	FormatSVG = "svg"
	FormatPNG = "png"
)

// DefaultFormat is PostScript, produced via the external renderer.
const DefaultFormat = FormatPS

var engines = map[string]graphviz.Layout{
	EngineCirco: graphviz.CIRCO,
	EngineDot:   graphviz.DOT,
	EngineNeato: graphviz.NEATO,
	EngineFDP:   graphviz.FDP,
	EngineTwopi: graphviz.TWOPI,
}

// ValidateEngine checks that name is a known layout engine.
func ValidateEngine(name string) error {
	if _, ok := engines[name]; !ok {
		return errors.New(errors.ErrCodeInvalidEngine,
			"unknown layout engine %q (valid: %s)", name, strings.Join(EngineNames(), ", "))
	}
	return nil
}

// ValidateFormat checks that name is a renderable output format.
func ValidateFormat(name string) error {
	switch name {
	case FormatPS, FormatSVG, FormatPNG:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat,
		"unknown output format %q (valid: ps, svg, png)", name)
}

// EngineNames returns the supported engine names in stable order.
func EngineNames() []string {
	return []string{EngineCirco, EngineDot, EngineNeato, EngineFDP, EngineTwopi}
}
