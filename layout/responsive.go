package layout

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tsawler/slidecraft/model"
)

// Rescale maps slide onto a newWidth x newHeight canvas. Every element's
// position is multiplied by newWidth/slide.Width and newHeight/slide.Height;
// text elements also have their size scaled. Shapes and images keep their
// size. The slide's dimensions are updated last.
func (e *Engine) Rescale(slide *model.Slide, newWidth, newHeight float64) error {
	if slide.Width <= 0 || slide.Height <= 0 {
		return fmt.Errorf("%w: slide %vx%v", ErrInvalidSize, slide.Width, slide.Height)
	}
	if newWidth <= 0 || newHeight <= 0 {
		return fmt.Errorf("%w: target %vx%v", ErrInvalidSize, newWidth, newHeight)
	}

	scaleX := newWidth / slide.Width
	scaleY := newHeight / slide.Height

	for _, elem := range slide.Elements {
		resize := elem.Kind() == model.ElementKindText
		elem.SetBoundingBox(elem.BoundingBox().Scale(scaleX, scaleY, resize))
	}

	e.logger.Debug("slide rescaled",
		zap.String("slide", slide.ID),
		zap.Float64("scaleX", scaleX),
		zap.Float64("scaleY", scaleY),
	)

	slide.Width = newWidth
	slide.Height = newHeight
	return nil
}
