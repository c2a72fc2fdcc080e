package model

import (
	"strings"

	"github.com/google/uuid"
)

// Slide represents a single slide. Element order is paint order: later
// elements are drawn on top and win hit tests.
type Slide struct {
	ID       string    `json:"id"`
	Number   int       `json:"number"` // 1-indexed position in the deck
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
	Elements []Element `json:"elements"`
}

// NewSlide creates a new slide with given dimensions
func NewSlide(width, height float64) *Slide {
	return &Slide{
		ID:       uuid.NewString(),
		Width:    width,
		Height:   height,
		Elements: make([]Element, 0),
	}
}

// AddElement adds an element on top of the existing ones
func (s *Slide) AddElement(elem Element) {
	s.Elements = append(s.Elements, elem)
}

// TextElements returns the text elements in paint order
func (s *Slide) TextElements() []*TextElement {
	var texts []*TextElement
	for _, elem := range s.Elements {
		if t, ok := elem.(*TextElement); ok {
			texts = append(texts, t)
		}
	}
	return texts
}

// ElementsOfKind returns the elements of one kind in paint order
func (s *Slide) ElementsOfKind(kind ElementKind) []Element {
	var out []Element
	for _, elem := range s.Elements {
		if elem.Kind() == kind {
			out = append(out, elem)
		}
	}
	return out
}

// ExtractText concatenates all text elements
func (s *Slide) ExtractText() string {
	var sb strings.Builder
	for _, t := range s.TextElements() {
		sb.WriteString(t.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}

// ElementAt returns the topmost element containing p, or nil.
func (s *Slide) ElementAt(p Point) Element {
	for i := len(s.Elements) - 1; i >= 0; i-- {
		if s.Elements[i].BoundingBox().Contains(p) {
			return s.Elements[i]
		}
	}
	return nil
}

// GetElementsInRegion returns elements within a bounding box
func (s *Slide) GetElementsInRegion(bbox BBox) []Element {
	var elements []Element
	for _, elem := range s.Elements {
		if bbox.Intersects(elem.BoundingBox()) {
			elements = append(elements, elem)
		}
	}
	return elements
}

// Clone returns a deep copy of the slide. Element IDs are preserved.
func (s *Slide) Clone() *Slide {
	c := &Slide{
		ID:       s.ID,
		Number:   s.Number,
		Width:    s.Width,
		Height:   s.Height,
		Elements: make([]Element, len(s.Elements)),
	}
	for i, elem := range s.Elements {
		c.Elements[i] = elem.cloneElement()
	}
	return c
}
