package command

import "fmt"

// DirectiveKind identifies the instruction a directive carries.
type DirectiveKind int

const (
	DirectiveUnknown DirectiveKind = iota
	DirectiveTitle
	DirectiveSubtitle
	DirectiveBullet
	DirectiveDraw
)

func (k DirectiveKind) String() string {
	switch k {
	case DirectiveTitle:
		return "Title"
	case DirectiveSubtitle:
		return "Subtitle"
	case DirectiveBullet:
		return "Bullet"
	case DirectiveDraw:
		return "Draw"
	default:
		return "Unknown"
	}
}

// Directive is one parsed instruction from a page. Text is set for Title,
// Subtitle and Bullet; Shape is set for Draw.
type Directive struct {
	Kind  DirectiveKind
	Text  string
	Shape ShapeSpec
}

// Title returns a Title directive.
func Title(text string) Directive { return Directive{Kind: DirectiveTitle, Text: text} }

// Subtitle returns a Subtitle directive.
func Subtitle(text string) Directive { return Directive{Kind: DirectiveSubtitle, Text: text} }

// Bullet returns a Bullet directive.
func Bullet(text string) Directive { return Directive{Kind: DirectiveBullet, Text: text} }

// Draw returns a Draw directive.
func Draw(spec ShapeSpec) Directive { return Directive{Kind: DirectiveDraw, Shape: spec} }

func (d Directive) String() string {
	if d.Kind == DirectiveDraw {
		return "Draw: " + d.Shape.String()
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Text)
}

// Page is the ordered directive list of one page marker's chunk.
type Page struct {
	// Number is the integer written in the page marker.
	Number     int
	Directives []Directive
}

// Warning describes a directive that was dropped while parsing.
type Warning struct {
	Page      int    // 1-indexed position of the page in the input
	Directive string // the offending source fragment
	Err       error
}

func (w Warning) String() string {
	return fmt.Sprintf("page %d: dropped %q: %v", w.Page, w.Directive, w.Err)
}
