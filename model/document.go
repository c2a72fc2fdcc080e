package model

import "time"

// Deck represents an ordered set of slides compiled from one generator response
type Deck struct {
	Metadata Metadata `json:"metadata"`
	Slides   []*Slide `json:"slides"`
}

// Metadata contains deck-level information
type Metadata struct {
	Title     string    `json:"title,omitempty"`
	Source    string    `json:"source,omitempty"` // envelope the script arrived in
	CreatedAt time.Time `json:"createdAt"`
	// Custom metadata
	Custom map[string]string `json:"custom,omitempty"`
}

// NewDeck creates a new empty deck
func NewDeck() *Deck {
	return &Deck{
		Metadata: Metadata{
			CreatedAt: time.Now(),
			Custom:    make(map[string]string),
		},
		Slides: make([]*Slide, 0),
	}
}

// AddSlide appends a slide and numbers it by position
func (d *Deck) AddSlide(slide *Slide) {
	slide.Number = len(d.Slides) + 1
	d.Slides = append(d.Slides, slide)
}

// GetSlide returns a slide by number (1-indexed)
func (d *Deck) GetSlide(number int) *Slide {
	if number < 1 || number > len(d.Slides) {
		return nil
	}
	return d.Slides[number-1]
}

// SlideCount returns the total number of slides
func (d *Deck) SlideCount() int {
	return len(d.Slides)
}

// ElementCount returns the number of elements across all slides
func (d *Deck) ElementCount() int {
	n := 0
	for _, s := range d.Slides {
		n += len(s.Elements)
	}
	return n
}

// ExtractText returns all text content concatenated
func (d *Deck) ExtractText() string {
	var text string
	for _, slide := range d.Slides {
		text += slide.ExtractText() + "\n\n"
	}
	return text
}
