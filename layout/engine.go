package layout

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tsawler/slidecraft/measure"
	"github.com/tsawler/slidecraft/model"
)

var (
	// ErrInvalidSize is returned for non-positive container or slide sizes.
	ErrInvalidSize = errors.New("layout: invalid size")
	// ErrUnknownStrategy is returned for a strategy outside the defined set.
	ErrUnknownStrategy = errors.New("layout: unknown strategy")
	// ErrNoMeasurer is returned by FitText when the engine has no measurer.
	ErrNoMeasurer = errors.New("layout: no text measurer")
)

// Config holds margins, spacing and font-fit bounds.
type Config struct {
	// TopMargin is where stacks and grids start
	// Default: 40
	TopMargin float64

	// SideMargin is applied on both the left and the right
	// Default: 50
	SideMargin float64

	// BottomMargin is reserved below grid cells
	// Default: 40
	BottomMargin float64

	// Spacing separates stacked and flowed elements. Compact uses half.
	// Default: 10
	Spacing float64

	// MinFontSize and MaxFontSize bound FitText
	// Default: 8 and 48
	MinFontSize float64
	MaxFontSize float64

	// GrowThreshold is the fraction of the box below which FitText grows text
	// Default: 0.8
	GrowThreshold float64
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		TopMargin:     40,
		SideMargin:    50,
		BottomMargin:  40,
		Spacing:       10,
		MinFontSize:   8,
		MaxFontSize:   48,
		GrowThreshold: 0.8,
	}
}

// Engine lays out slides. It holds no per-slide state.
type Engine struct {
	measurer measure.Measurer
	config   Config
	logger   *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig replaces the default configuration.
func WithConfig(c Config) Option {
	return func(e *Engine) { e.config = c }
}

// WithLogger sets the engine's logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an Engine. The measurer is only needed for FitText and may
// be nil otherwise.
func New(m measure.Measurer, opts ...Option) *Engine {
	e := &Engine{
		measurer: m,
		config:   DefaultConfig(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Placement is the position a strategy assigns to one element.
type Placement struct {
	Element model.Element
	BBox    model.BBox
}

// Plan computes where strategy s would put every element of slide inside a
// width x height container. The slide is not modified. Placements are in
// the strategy's paint order.
func (e *Engine) Plan(slide *model.Slide, width, height float64, s Strategy) ([]Placement, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: container %vx%v", ErrInvalidSize, width, height)
	}
	place, ok := strategies[s]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	return place(slide.Elements, width, height, e.config), nil
}

// Optimize repositions the slide's elements with strategy s and reorders
// the element list to match. The caller must hold exclusive access to
// slide for the duration of the call.
func (e *Engine) Optimize(slide *model.Slide, width, height float64, s Strategy) error {
	placements, err := e.Plan(slide, width, height, s)
	if err != nil {
		return err
	}

	elements := make([]model.Element, 0, len(placements))
	for _, p := range placements {
		p.Element.SetBoundingBox(p.BBox)
		elements = append(elements, p.Element)
	}
	slide.Elements = elements

	e.logger.Debug("layout applied",
		zap.String("slide", slide.ID),
		zap.Stringer("strategy", s),
		zap.Int("elements", len(elements)),
	)
	return nil
}

// Arrange is Optimize on a copy: it returns a laid-out clone of slide and
// leaves the original untouched.
func (e *Engine) Arrange(slide *model.Slide, width, height float64, s Strategy) (*model.Slide, error) {
	c := slide.Clone()
	if err := e.Optimize(c, width, height, s); err != nil {
		return nil, err
	}
	return c, nil
}
