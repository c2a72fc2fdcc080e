// Package slidecraft compiles loosely structured slide scripts, typically
// produced by a text generator, into laid-out slides and a structural
// analysis of the result.
//
// Basic usage:
//
//	slides, warnings, err := slidecraft.Compile(script).Slides()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", slidecraft.FormatWarnings(warnings))
//	}
//
// With options:
//
//	analysis, _, err := slidecraft.Compile(script).
//	    Unwrap().
//	    Width(1024).
//	    Layout(layout.Grid).
//	    Analyze()
//
// The building blocks live in their own packages: command (parser), builder,
// layout, analysis and measure.
package slidecraft

import (
	"strings"

	"github.com/tsawler/slidecraft/analysis"
	"github.com/tsawler/slidecraft/command"
	"github.com/tsawler/slidecraft/layout"
	"github.com/tsawler/slidecraft/measure"
	"github.com/tsawler/slidecraft/model"
)

// Warning is a non-fatal problem found while compiling, such as a dropped
// directive.
type Warning = command.Warning

// defaultMeasurer measures with the Go font family. It is safe for
// concurrent use.
var defaultMeasurer measure.Measurer = measure.NewFaceMeasurer()

// Compile returns a Compiler for the given script.
//
// Example:
//
//	deck, warnings, err := slidecraft.Compile(script).Deck()
func Compile(text string) *Compiler {
	return &Compiler{
		text:    text,
		options: defaultOptions(),
	}
}

// FormatWarnings renders warnings one per line.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	n := slidecraft.Must(slidecraft.Compile(script).PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustCompile is a helper that wraps a terminal Compiler call and panics if
// the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	slides := slidecraft.MustCompile(slidecraft.Compile(script).Slides())
func MustCompile[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ParseAndCreateSlides parses text and builds one slide per page marker at
// the given width. Malformed directives are dropped and reported as
// warnings; text without page markers yields no slides.
func ParseAndCreateSlides(text string, width float64) ([]*model.Slide, []Warning, error) {
	return Compile(text).Width(width).Slides()
}

// IsValidPPTCommand reports whether text contains at least one page marker.
func IsValidPPTCommand(text string) bool {
	return command.IsValid(text)
}

// GetPageCount returns the number of page markers in text.
func GetPageCount(text string) int {
	return command.PageCount(text)
}

// OptimizeLayout repositions slide's elements in place with strategy s
// inside a width x height container.
func OptimizeLayout(slide *model.Slide, width, height float64, s layout.Strategy) error {
	return layout.New(defaultMeasurer).Optimize(slide, width, height, s)
}

// ResponsiveAdjust rescales slide in place to a new display size.
func ResponsiveAdjust(slide *model.Slide, newWidth, newHeight float64) error {
	return layout.New(defaultMeasurer).Rescale(slide, newWidth, newHeight)
}

// AutoAdjustTextSize fits elem's font size to a maxWidth x maxHeight box.
func AutoAdjustTextSize(elem *model.TextElement, maxWidth, maxHeight float64) error {
	return layout.New(defaultMeasurer).FitText(elem, maxWidth, maxHeight)
}

// AnalyzeStructure summarizes slides without modifying them.
func AnalyzeStructure(slides []*model.Slide) *analysis.StructureAnalysis {
	return analysis.Analyze(slides)
}

// GenerateLogicGraphData returns the topic graph of a as
// {"nodes":[{id,label,type}],"edges":[{source,target,type}]} JSON.
func GenerateLogicGraphData(a *analysis.StructureAnalysis) (string, error) {
	return analysis.GenerateLogicGraphData(a)
}
