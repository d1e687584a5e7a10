// Package render draws graphs with graphviz layout engines.
//
// Two renderers are provided:
//
//   - [ExternalRenderer] shells out to an installed engine binary (circo,
//     dot, neato, fdp, twopi) and is the only way to produce PostScript.
//   - [EmbeddedRenderer] uses the bundled graphviz library for SVG and PNG
//     output without any external tooling.
//
// Process execution goes through the [Executor] interface so tests can
// substitute a [MockExecutor] and assert on the exact command line.
package render
