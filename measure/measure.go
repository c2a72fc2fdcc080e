// Package measure provides text measurement for slide layout.
//
// Layout code never inspects font metrics directly; it asks a [Measurer]
// for the size of a string in a given [FontSpec]. [FaceMeasurer] is backed
// by the Go font family rendered through golang.org/x/image. [Metrics] uses
// the Standard 14 PDF width tables, and [Monospace] is a deterministic
// estimator for tests and headless pipelines.
package measure

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrUnavailable is returned when a measurer cannot measure text at all.
var ErrUnavailable = errors.New("text measurement unavailable")

// FontSpec describes the font a string is measured in.
type FontSpec struct {
	Family string
	Size   float64
	Bold   bool
	Italic bool
}

// Measurer reports the rendered width and height of text.
type Measurer interface {
	Measure(text string, font FontSpec) (width, height float64, err error)
}

// Func adapts an ordinary function to the Measurer interface.
type Func func(text string, font FontSpec) (float64, float64, error)

// Measure calls f(text, font).
func (f Func) Measure(text string, font FontSpec) (float64, float64, error) {
	return f(text, font)
}

// Monospace estimates text size from rune counts. Every rune advances by
// Advance times the font size and every line is LineHeight times the font
// size tall. Bold text is widened by BoldFactor.
type Monospace struct {
	Advance    float64
	LineHeight float64
	BoldFactor float64
}

// DefaultMonospace returns a Monospace estimator with typical proportions.
func DefaultMonospace() Monospace {
	return Monospace{Advance: 0.5, LineHeight: 1.25, BoldFactor: 1}
}

// Measure implements Measurer.
func (m Monospace) Measure(text string, font FontSpec) (float64, float64, error) {
	if font.Size <= 0 {
		return 0, 0, nil
	}
	lines := strings.Split(text, "\n")
	widest := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > widest {
			widest = n
		}
	}
	w := float64(widest) * m.Advance * font.Size
	if font.Bold && m.BoldFactor > 0 {
		w *= m.BoldFactor
	}
	h := float64(len(lines)) * m.LineHeight * font.Size
	return w, h, nil
}
