package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ElementKind represents the kind of slide element
type ElementKind int

const (
	ElementKindUnknown ElementKind = iota
	ElementKindText
	ElementKindShape
	ElementKindImage
)

func (k ElementKind) String() string {
	switch k {
	case ElementKindText:
		return "text"
	case ElementKindShape:
		return "shape"
	case ElementKindImage:
		return "image"
	default:
		return "unknown"
	}
}

// Element is the interface for all slide elements. The set of
// implementations is closed: TextElement, ShapeElement and ImageElement.
type Element interface {
	Kind() ElementKind
	ElementID() string
	BoundingBox() BBox
	SetBoundingBox(BBox)

	cloneElement() Element
}

// TextStyle represents text styling
type TextStyle struct {
	FontFamily string
	FontSize   float64
	Bold       bool
	Italic     bool
	Color      Color
}

// TextElement is a positioned run of text.
type TextElement struct {
	ID      string
	Content string
	BBox    BBox
	Style   TextStyle
}

// NewTextElement creates a text element with a fresh ID.
func NewTextElement(content string, style TextStyle) *TextElement {
	return &TextElement{ID: uuid.NewString(), Content: content, Style: style}
}

func (t *TextElement) Kind() ElementKind     { return ElementKindText }
func (t *TextElement) ElementID() string     { return t.ID }
func (t *TextElement) BoundingBox() BBox     { return t.BBox }
func (t *TextElement) SetBoundingBox(b BBox) { t.BBox = b }
func (t *TextElement) GetText() string       { return t.Content }

func (t *TextElement) cloneElement() Element {
	c := *t
	return &c
}

// ShapeKind identifies a geometric primitive.
type ShapeKind int

const (
	ShapeUnknown ShapeKind = iota
	ShapeLine
	ShapeRectangle
	ShapeCircle
	ShapeArrow
)

func (s ShapeKind) String() string {
	switch s {
	case ShapeLine:
		return "Line"
	case ShapeRectangle:
		return "Rectangle"
	case ShapeCircle:
		return "Circle"
	case ShapeArrow:
		return "Arrow"
	default:
		return "Unknown"
	}
}

// ParseShapeKind maps a case-sensitive shape name to its kind.
func ParseShapeKind(name string) (ShapeKind, bool) {
	switch name {
	case "Line":
		return ShapeLine, true
	case "Rectangle":
		return ShapeRectangle, true
	case "Circle":
		return ShapeCircle, true
	case "Arrow":
		return ShapeArrow, true
	}
	return ShapeUnknown, false
}

// ShapeElement is a geometric primitive described by two points. Lines and
// arrows run from Start to End; rectangles span them as opposite corners.
// Circles are stored as the horizontal diameter through the center.
type ShapeElement struct {
	ID          string
	Shape       ShapeKind
	Start       Point
	End         Point
	StrokeWidth float64
	Stroke      Color
}

// NewShapeElement creates a shape element with a fresh ID.
func NewShapeElement(kind ShapeKind, start, end Point) *ShapeElement {
	return &ShapeElement{
		ID:          uuid.NewString(),
		Shape:       kind,
		Start:       start,
		End:         end,
		StrokeWidth: 1,
	}
}

func (s *ShapeElement) Kind() ElementKind { return ElementKindShape }
func (s *ShapeElement) ElementID() string { return s.ID }
func (s *ShapeElement) BoundingBox() BBox { return NewBBoxFromPoints(s.Start, s.End) }

// SetBoundingBox moves and resizes the shape so that its points span b,
// keeping the direction the shape was drawn in.
func (s *ShapeElement) SetBoundingBox(b BBox) {
	if s.Start.X <= s.End.X {
		s.Start.X, s.End.X = b.Left(), b.Right()
	} else {
		s.Start.X, s.End.X = b.Right(), b.Left()
	}
	if s.Start.Y <= s.End.Y {
		s.Start.Y, s.End.Y = b.Top(), b.Bottom()
	} else {
		s.Start.Y, s.End.Y = b.Bottom(), b.Top()
	}
}

// Radius returns the circle radius for circle shapes and zero otherwise.
func (s *ShapeElement) Radius() float64 {
	if s.Shape != ShapeCircle {
		return 0
	}
	return s.Start.Distance(s.End) / 2
}

func (s *ShapeElement) cloneElement() Element {
	c := *s
	return &c
}

// ImageFormat represents image format
type ImageFormat int

const (
	ImageFormatUnknown ImageFormat = iota
	ImageFormatJPEG
	ImageFormatPNG
	ImageFormatGIF
)

func (f ImageFormat) String() string {
	switch f {
	case ImageFormatJPEG:
		return "jpeg"
	case ImageFormatPNG:
		return "png"
	case ImageFormatGIF:
		return "gif"
	default:
		return "unknown"
	}
}

// ImageElement represents an embedded image
type ImageElement struct {
	ID     string
	Data   []byte
	Format ImageFormat
	BBox   BBox
	// Alt text if available
	AltText string
}

// NewImageElement creates an image element with a fresh ID.
func NewImageElement(data []byte, format ImageFormat, bbox BBox) *ImageElement {
	return &ImageElement{ID: uuid.NewString(), Data: data, Format: format, BBox: bbox}
}

func (i *ImageElement) Kind() ElementKind     { return ElementKindImage }
func (i *ImageElement) ElementID() string     { return i.ID }
func (i *ImageElement) BoundingBox() BBox     { return i.BBox }
func (i *ImageElement) SetBoundingBox(b BBox) { i.BBox = b }

func (i *ImageElement) cloneElement() Element {
	c := *i
	c.Data = append([]byte(nil), i.Data...)
	return &c
}

// Color represents an RGB color
type Color struct {
	R, G, B uint8
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses #rrggbb or rrggbb.
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
