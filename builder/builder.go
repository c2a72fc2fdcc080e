// Package builder turns parsed page directives into positioned slides.
//
// Text directives are flowed top to bottom from a fixed top margin and
// centered horizontally. Draw directives become shapes at the literal
// coordinates they carry and do not move the text cursor.
package builder

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tsawler/slidecraft/command"
	"github.com/tsawler/slidecraft/measure"
	"github.com/tsawler/slidecraft/model"
)

// ErrNoMeasurer is returned when a Builder has no text measurer.
var ErrNoMeasurer = errors.New("builder: no text measurer")

// TextRole is the style applied to one kind of text directive.
type TextRole struct {
	FontFamily string
	FontSize   float64
	Bold       bool
	Italic     bool
	Color      model.Color
}

func (r TextRole) style() model.TextStyle {
	return model.TextStyle{
		FontFamily: r.FontFamily,
		FontSize:   r.FontSize,
		Bold:       r.Bold,
		Italic:     r.Italic,
		Color:      r.Color,
	}
}

// Config holds the text flow parameters.
type Config struct {
	// TopMargin is where the text cursor starts
	TopMargin float64

	// LineSpacing is added after every text element
	LineSpacing float64

	// TitleExtraSpacing is added after a title on top of LineSpacing
	TitleExtraSpacing float64

	Title    TextRole
	Subtitle TextRole
	Bullet   TextRole

	// SlideHeight is the height of built slides. Zero derives it from the
	// width and AspectRatio.
	SlideHeight float64
	AspectRatio float64

	ShapeStroke      model.Color
	ShapeStrokeWidth float64
}

// DefaultConfig returns the standard flow: cursor at 60, spacing 8, title
// 28pt bold, subtitle 20pt, bullet 18pt, 4:3 slides.
func DefaultConfig() Config {
	return Config{
		TopMargin:         60,
		LineSpacing:       8,
		TitleExtraSpacing: 4,
		Title:             TextRole{FontSize: 28, Bold: true, Color: model.Color{R: 0x1f, G: 0x2d, B: 0x3d}},
		Subtitle:          TextRole{FontSize: 20, Color: model.Color{R: 0x3c, G: 0x4b, B: 0x5a}},
		Bullet:            TextRole{FontSize: 18, Color: model.Color{R: 0x33, G: 0x33, B: 0x33}},
		AspectRatio:       0.75,
		ShapeStroke:       model.Color{},
		ShapeStrokeWidth:  2,
	}
}

// Builder builds slides from directives. It holds no per-slide state and
// may be reused.
type Builder struct {
	measurer measure.Measurer
	config   Config
	logger   *zap.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithConfig replaces the default configuration.
func WithConfig(c Config) Option {
	return func(b *Builder) { b.config = c }
}

// WithLogger sets the builder's logger.
func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// New creates a Builder that measures text with m.
func New(m measure.Measurer, opts ...Option) *Builder {
	b := &Builder{
		measurer: m,
		config:   DefaultConfig(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Config returns the builder's configuration.
func (b *Builder) Config() Config {
	return b.config
}

// Build creates a slide of the given width from one page's directives.
// Element order equals directive order. A measurement failure aborts the
// slide.
func (b *Builder) Build(directives []command.Directive, width float64) (*model.Slide, error) {
	if b.measurer == nil {
		return nil, ErrNoMeasurer
	}

	slide := model.NewSlide(width, b.slideHeight(width))
	cursor := b.config.TopMargin

	for _, d := range directives {
		switch d.Kind {
		case command.DirectiveTitle, command.DirectiveSubtitle, command.DirectiveBullet:
			role := b.role(d.Kind)
			elem, err := b.textElement(d.Text, role, width, cursor)
			if err != nil {
				return nil, err
			}
			slide.AddElement(elem)

			cursor += elem.BBox.Height + b.config.LineSpacing
			if d.Kind == command.DirectiveTitle {
				cursor += b.config.TitleExtraSpacing
			}

		case command.DirectiveDraw:
			shape := d.Shape.Element()
			if shape == nil {
				b.logger.Debug("skipping invalid shape", zap.Stringer("shape", d.Shape))
				continue
			}
			shape.Stroke = b.config.ShapeStroke
			shape.StrokeWidth = b.config.ShapeStrokeWidth
			slide.AddElement(shape)

		default:
			b.logger.Debug("skipping unknown directive", zap.Stringer("kind", d.Kind))
		}
	}

	return slide, nil
}

// BuildDeck builds one slide per page and numbers them by position.
func (b *Builder) BuildDeck(pages []command.Page, width float64) (*model.Deck, error) {
	deck := model.NewDeck()
	for i, p := range pages {
		slide, err := b.Build(p.Directives, width)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		deck.AddSlide(slide)
	}
	return deck, nil
}

func (b *Builder) textElement(text string, role TextRole, width, y float64) (*model.TextElement, error) {
	elem := model.NewTextElement(text, role.style())

	w, h, err := b.measurer.Measure(text, measure.FontSpec{
		Family: role.FontFamily,
		Size:   role.FontSize,
		Bold:   role.Bold,
		Italic: role.Italic,
	})
	if err != nil {
		return nil, fmt.Errorf("measure %q: %w", text, err)
	}

	elem.BBox = model.NewBBox((width-w)/2, y, w, h)
	return elem, nil
}

func (b *Builder) role(kind command.DirectiveKind) TextRole {
	switch kind {
	case command.DirectiveTitle:
		return b.config.Title
	case command.DirectiveSubtitle:
		return b.config.Subtitle
	default:
		return b.config.Bullet
	}
}

func (b *Builder) slideHeight(width float64) float64 {
	if b.config.SlideHeight > 0 {
		return b.config.SlideHeight
	}
	if b.config.AspectRatio > 0 {
		return width * b.config.AspectRatio
	}
	return width * 0.75
}
