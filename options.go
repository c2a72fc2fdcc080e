package slidecraft

import (
	"go.uber.org/zap"

	"github.com/tsawler/slidecraft/analysis"
	"github.com/tsawler/slidecraft/builder"
	"github.com/tsawler/slidecraft/layout"
	"github.com/tsawler/slidecraft/measure"
)

// DefaultWidth is the slide width used when none is set.
const DefaultWidth = 800

// CompileOptions holds configuration for compiling a command script.
type CompileOptions struct {
	width float64

	// Source handling
	unwrap bool

	// Post-build passes; layout runs only when hasLayout is set
	hasLayout bool
	strategy  layout.Strategy
	fitText   bool

	// Component configuration
	builder  builder.Config
	layout   layout.Config
	analysis analysis.Config

	// Collaborators
	measurer measure.Measurer
	images   analysis.ImageTextSource
	logger   *zap.Logger
}

// defaultOptions returns the default compile options.
func defaultOptions() CompileOptions {
	return CompileOptions{
		width:    DefaultWidth,
		builder:  builder.DefaultConfig(),
		layout:   layout.DefaultConfig(),
		analysis: analysis.DefaultConfig(),
		measurer: defaultMeasurer,
		logger:   zap.NewNop(),
	}
}

// clone creates a deep copy of CompileOptions.
func (o CompileOptions) clone() CompileOptions {
	n := o
	n.analysis.StopWords = append([]string(nil), o.analysis.StopWords...)
	n.analysis.Themes = make([]analysis.Theme, len(o.analysis.Themes))
	for i, t := range o.analysis.Themes {
		n.analysis.Themes[i] = analysis.Theme{Name: t.Name, Keywords: append([]string(nil), t.Keywords...)}
	}
	return n
}
