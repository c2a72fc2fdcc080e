// Package model provides the in-memory representation of compiled
// presentation content.
//
// All compilation steps produce or mutate these types, making them the
// primary API for consuming compiled slides.
//
// # Deck Structure
//
// The [Deck] type holds an ordered list of slides:
//
//	deck := model.NewDeck()
//	deck.AddSlide(slide)
//
// Each [Slide] has canvas dimensions and an ordered list of [Element]
// values. Element order is paint order: the last element is topmost.
//
// # Elements
//
// The element set is closed. The concrete types are:
//
//   - [TextElement] - a run of text with a [TextStyle]
//   - [ShapeElement] - a line, rectangle, circle, or arrow
//   - [ImageElement] - embedded image bytes
//
// # Geometry
//
// Slides use screen coordinates: the origin is the top-left corner and Y
// grows downward.
//
//   - [BBox] - bounding box with intersection and union
//   - [Point] - 2D point with distance calculation
package model
