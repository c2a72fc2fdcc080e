// Package layout repositions the elements of a slide.
//
// # Strategies
//
// The [Engine] places elements under one of five [Strategy] values:
//
//   - [Centered] - text, then shapes, then images, stacked top-down and
//     centered between the side margins
//   - [LeftAligned] - one stack at the left margin in original order
//   - [Grid] - raster-order cells, 1 to 4 columns depending on element count
//   - [Flow] - greedy left-to-right rows that wrap at the right margin
//   - [Compact] - like Centered with half the spacing
//
// [Engine.Plan] computes placements without touching the slide.
// [Engine.Optimize] applies them in place and reorders the element list to
// the strategy's order; [Engine.Arrange] does the same on a copy.
//
//	engine := layout.New(measure.NewFaceMeasurer())
//	err := engine.Optimize(slide, 1024, 768, layout.Grid)
//
// # Responsive Rescaling
//
// [Engine.Rescale] maps a slide onto a new canvas size. Positions of all
// elements scale by the width and height ratios; text boxes also scale in
// size.
//
// # Text Fitting
//
// [Engine.FitText] steps a text element's font size down until it fits a
// box, or up while it fills less than the grow threshold of the box,
// bounded by the configured floor and ceiling.
//
// # Concurrency
//
// Optimize, Rescale and FitText mutate their argument. A slide must not be
// read or laid out by another goroutine during those calls; use Arrange or
// Slide.Clone when a snapshot is shared.
package layout
