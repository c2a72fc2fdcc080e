package layout

import (
	"fmt"
	"math"

	"github.com/tsawler/slidecraft/measure"
	"github.com/tsawler/slidecraft/model"
)

// FitText adjusts elem's font size to its box limits. While the text is
// wider than maxWidth or taller than maxHeight the size drops one unit at a
// time, down to MinFontSize. Only if nothing was dropped, the size grows one
// unit at a time while the text is both narrower and shorter than
// GrowThreshold of the box, up to MaxFontSize. The element's width and
// height are set to the final measurement.
func (e *Engine) FitText(elem *model.TextElement, maxWidth, maxHeight float64) error {
	if e.measurer == nil {
		return ErrNoMeasurer
	}
	if maxWidth <= 0 || maxHeight <= 0 {
		return fmt.Errorf("%w: box %vx%v", ErrInvalidSize, maxWidth, maxHeight)
	}

	floor, ceiling := e.config.MinFontSize, e.config.MaxFontSize
	size := math.Min(math.Max(elem.Style.FontSize, floor), ceiling)

	w, h, err := e.measureAt(elem, size)
	if err != nil {
		return err
	}

	shrunk := false
	for (w > maxWidth || h > maxHeight) && size > floor {
		size = math.Max(size-1, floor)
		shrunk = true
		if w, h, err = e.measureAt(elem, size); err != nil {
			return err
		}
	}

	if !shrunk {
		g := e.config.GrowThreshold
		for w < g*maxWidth && h < g*maxHeight && size < ceiling {
			size = math.Min(size+1, ceiling)
			if w, h, err = e.measureAt(elem, size); err != nil {
				return err
			}
		}
	}

	elem.Style.FontSize = size
	elem.BBox.Width = w
	elem.BBox.Height = h
	return nil
}

func (e *Engine) measureAt(elem *model.TextElement, size float64) (float64, float64, error) {
	w, h, err := e.measurer.Measure(elem.Content, measure.FontSpec{
		Family: elem.Style.FontFamily,
		Size:   size,
		Bold:   elem.Style.Bold,
		Italic: elem.Style.Italic,
	})
	if err != nil {
		return 0, 0, fmt.Errorf("measure %q at %v: %w", elem.Content, size, err)
	}
	return w, h, nil
}
