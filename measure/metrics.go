package measure

import (
	"fmt"
	"strings"
)

// Widths in thousandths of an em for the printable ASCII range, indexed by
// rune-' '. Zero entries fall back to the regular weight, then to
// missingWidth.
type widthTable [95]uint16

const missingWidth = 500

var helvetica = widthTable{
	278, 278, 355, 556, 556, 889, 667, 191, 333, 333, 389, 584, 278, 333, 278, 278,
	556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 278, 278, 584, 584, 584, 556,
	1015, 667, 667, 722, 722, 667, 611, 778, 722, 278, 500, 667, 556, 833, 722, 778,
	667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, 278, 278, 278, 469, 556,
	333, 556, 556, 500, 556, 556, 278, 556, 556, 222, 222, 500, 222, 833, 556, 556,
	556, 556, 333, 500, 278, 556, 500, 722, 500, 500, 500, 334, 260, 334, 584,
}

var helveticaBold = widthTable{
	278, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 722, 722, 722, 722, 667, 611, 778, 722, 278, 556, 722, 611, 833, 722, 778,
	667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, 0, 0, 0, 0, 0,
	0, 556, 611, 556, 611, 556, 333, 611, 611, 278, 278, 556, 278, 889, 611, 611,
	611, 611, 389, 556, 333, 611, 556, 778, 556, 556, 500, 0, 0, 0, 0,
}

var times = widthTable{
	250, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 722, 667, 667, 722, 611, 556, 722, 722, 333, 389, 722, 611, 889, 722, 722,
	556, 722, 667, 556, 611, 722, 722, 944, 722, 722, 611, 0, 0, 0, 0, 0,
	0, 444, 500, 444, 500, 444, 333, 500, 500, 278, 278, 500, 278, 778, 500, 500,
	500, 500, 333, 389, 278, 500, 500, 722, 500, 500, 444, 0, 0, 0, 0,
}

var timesBold = widthTable{
	250, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 722, 667, 722, 722, 667, 611, 778, 778, 389, 500, 778, 667, 944, 722, 778,
	611, 778, 722, 556, 667, 722, 722, 1000, 722, 722, 667, 0, 0, 0, 0, 0,
	0, 500, 556, 444, 556, 444, 333, 500, 556, 278, 333, 556, 278, 833, 556, 500,
	556, 556, 444, 389, 333, 556, 500, 722, 500, 500, 444, 0, 0, 0, 0,
}

func (t *widthTable) width(r rune) uint16 {
	if r < ' ' || r > '~' {
		return 0
	}
	return t[r-' ']
}

// Metrics measures text with the advance widths of the Standard 14 PDF
// fonts. Families map onto Helvetica, Times or Courier by name; anything
// unrecognized is measured as Helvetica. Italic shares the upright widths.
// The zero value uses a line height of 1.2 em.
type Metrics struct {
	LineHeight float64
}

// Measure implements Measurer.
func (m Metrics) Measure(text string, font FontSpec) (float64, float64, error) {
	if font.Size <= 0 {
		return 0, 0, nil
	}
	lineHeight := m.LineHeight
	if lineHeight <= 0 {
		lineHeight = 1.2
	}

	face := metricsFace(font.Family)
	lines := strings.Split(text, "\n")
	var widest float64
	for _, line := range lines {
		var units float64
		for _, r := range line {
			units += face.advance(r, font.Bold)
		}
		if units > widest {
			widest = units
		}
	}
	return widest / 1000 * font.Size, float64(len(lines)) * lineHeight * font.Size, nil
}

type standardFace struct {
	regular, bold *widthTable
	fixed         float64
}

func (f standardFace) advance(r rune, bold bool) float64 {
	if f.fixed > 0 {
		return f.fixed
	}
	if bold {
		if w := f.bold.width(r); w > 0 {
			return float64(w)
		}
	}
	if w := f.regular.width(r); w > 0 {
		return float64(w)
	}
	return missingWidth
}

func metricsFace(family string) standardFace {
	name := strings.ToLower(family)
	switch {
	case strings.Contains(name, "courier"), strings.Contains(name, "mono"):
		return standardFace{fixed: 600}
	case strings.Contains(name, "times"), name == "serif":
		return standardFace{regular: &times, bold: &timesBold}
	default:
		return standardFace{regular: &helvetica, bold: &helveticaBold}
	}
}

// Named returns the measurer registered under name: "face" (or empty) for
// a new FaceMeasurer, "metrics" for Metrics and "monospace" for
// DefaultMonospace.
func Named(name string) (Measurer, error) {
	switch strings.ToLower(name) {
	case "", "face":
		return NewFaceMeasurer(), nil
	case "metrics", "standard":
		return Metrics{}, nil
	case "monospace", "mono":
		return DefaultMonospace(), nil
	}
	return nil, fmt.Errorf("unknown measurer %q", name)
}
