package cache

// ScopedKeyer wraps a Keyer with a prefix so that independent runs (for
// example per-project invocations sharing one redis instance) get separate
// cache namespaces.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed key for a rendered layout artifact.
func (k *ScopedKeyer) ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(inputHash, opts)
}

// ReportKey generates a prefixed key for a profile report.
func (k *ScopedKeyer) ReportKey(inputHash string, opts ReportKeyOpts) string {
	return k.prefix + k.inner.ReportKey(inputHash, opts)
}

// PlotKey generates a prefixed key for a degree plot.
func (k *ScopedKeyer) PlotKey(inputHash string, opts PlotKeyOpts) string {
	return k.prefix + k.inner.PlotKey(inputHash, opts)
}
