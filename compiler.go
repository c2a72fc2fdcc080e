package slidecraft

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tsawler/slidecraft/analysis"
	"github.com/tsawler/slidecraft/builder"
	"github.com/tsawler/slidecraft/command"
	"github.com/tsawler/slidecraft/config"
	"github.com/tsawler/slidecraft/layout"
	"github.com/tsawler/slidecraft/measure"
	"github.com/tsawler/slidecraft/model"
	"github.com/tsawler/slidecraft/source"
)

// Compiler provides a fluent interface for turning a command script into
// slides, a deck, or a structure analysis. Each configuration method
// returns a new Compiler, so a partially configured Compiler can be shared
// and extended safely.
type Compiler struct {
	text    string
	options CompileOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Compiler with a deep copy of options.
func (c *Compiler) clone() *Compiler {
	return &Compiler{
		text:    c.text,
		options: c.options.clone(),
		err:     c.err,
	}
}

// ============================================================================
// Configuration Methods (return new Compiler instance)
// ============================================================================

// Width sets the slide width. Non-positive widths are an error at the
// terminal call.
//
// Example:
//
//	slides, _, err := slidecraft.Compile(script).Width(1024).Slides()
func (c *Compiler) Width(w float64) *Compiler {
	n := c.clone()
	if w <= 0 && n.err == nil {
		n.err = fmt.Errorf("%w: width %v", layout.ErrInvalidSize, w)
	}
	n.options.width = w
	return n
}

// Height fixes the slide height. Zero derives it from the width.
func (c *Compiler) Height(h float64) *Compiler {
	n := c.clone()
	n.options.builder.SlideHeight = h
	return n
}

// Layout repositions every slide with strategy s after it is built.
//
// Example:
//
//	slides, _, err := slidecraft.Compile(script).Layout(layout.Grid).Slides()
func (c *Compiler) Layout(s layout.Strategy) *Compiler {
	n := c.clone()
	n.options.hasLayout = true
	n.options.strategy = s
	return n
}

// LayoutNamed is Layout with a strategy name such as "grid" or "flow".
func (c *Compiler) LayoutNamed(name string) *Compiler {
	s, err := layout.ParseStrategy(name)
	if err != nil {
		n := c.clone()
		if n.err == nil {
			n.err = err
		}
		return n
	}
	return c.Layout(s)
}

// FitText fits every text element's font size to its share of the slide
// before layout runs.
func (c *Compiler) FitText() *Compiler {
	n := c.clone()
	n.options.fitText = true
	return n
}

// Unwrap strips an HTML or markdown code fence envelope from the script
// before parsing. See source.Unwrap.
func (c *Compiler) Unwrap() *Compiler {
	n := c.clone()
	n.options.unwrap = true
	return n
}

// Measurer replaces the text measurer used for building and fitting.
func (c *Compiler) Measurer(m measure.Measurer) *Compiler {
	n := c.clone()
	n.options.measurer = m
	return n
}

// Logger sets the logger passed to every stage.
func (c *Compiler) Logger(l *zap.Logger) *Compiler {
	n := c.clone()
	if l != nil {
		n.options.logger = l
	}
	return n
}

// ImageText feeds image alt text and recognized image text into analysis.
func (c *Compiler) ImageText(src analysis.ImageTextSource) *Compiler {
	n := c.clone()
	n.options.images = src
	return n
}

// Config applies a loaded configuration file: slide size, layout, text fit,
// measurer and every component section.
func (c *Compiler) Config(cfg *config.Config) *Compiler {
	n := c.clone()
	if cfg == nil {
		return n
	}
	n.options.width = cfg.Slide.Width
	n.options.builder = cfg.BuilderConfig()
	n.options.layout = cfg.LayoutConfig()
	n.options.analysis = cfg.AnalysisConfig()
	n.options.fitText = cfg.Slide.FitText
	if cfg.Slide.Measurer != "" {
		m, err := measure.Named(cfg.Slide.Measurer)
		if err != nil && n.err == nil {
			n.err = err
		}
		if m != nil {
			n.options.measurer = m
		}
	}
	if cfg.Slide.Layout != "" {
		s, err := cfg.Strategy()
		if err != nil && n.err == nil {
			n.err = err
		}
		n.options.hasLayout = true
		n.options.strategy = s
	}
	return n
}

// ============================================================================
// Terminal Methods
// ============================================================================

// Pages parses the script into directive pages without building slides.
func (c *Compiler) Pages() ([]command.Page, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}
	text, _, err := c.sourceText()
	if err != nil {
		return nil, nil, err
	}
	pages, warnings := command.NewParser(command.WithLogger(c.options.logger)).Parse(text)
	return pages, warnings, nil
}

// PageCount returns the number of page markers in the script.
func (c *Compiler) PageCount() (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	text, _, err := c.sourceText()
	if err != nil {
		return 0, err
	}
	return command.PageCount(text), nil
}

// Deck compiles the script into a deck. A script without page markers
// yields an empty deck, not an error.
//
// Example:
//
//	deck, warnings, err := slidecraft.Compile(script).Layout(layout.Centered).Deck()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", slidecraft.FormatWarnings(warnings))
//	}
func (c *Compiler) Deck() (*model.Deck, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}
	text, format, err := c.sourceText()
	if err != nil {
		return nil, nil, err
	}

	o := c.options
	pages, warnings := command.NewParser(command.WithLogger(o.logger)).Parse(text)

	b := builder.New(o.measurer, builder.WithConfig(o.builder), builder.WithLogger(o.logger))
	deck, err := b.BuildDeck(pages, o.width)
	if err != nil {
		return nil, warnings, fmt.Errorf("failed to build slides: %w", err)
	}
	deck.Metadata.Source = format.String()
	deck.Metadata.Title = deckTitle(pages)

	engine := layout.New(o.measurer, layout.WithConfig(o.layout), layout.WithLogger(o.logger))
	for _, slide := range deck.Slides {
		if o.fitText {
			if err := fitSlide(engine, slide); err != nil {
				return nil, warnings, fmt.Errorf("slide %d: %w", slide.Number, err)
			}
		}
		if o.hasLayout {
			if err := engine.Optimize(slide, slide.Width, slide.Height, o.strategy); err != nil {
				return nil, warnings, fmt.Errorf("slide %d: %w", slide.Number, err)
			}
		}
	}

	if len(warnings) > 0 {
		o.logger.Info("compiled with dropped directives",
			zap.Int("slides", deck.SlideCount()),
			zap.Int("warnings", len(warnings)),
		)
	}
	return deck, warnings, nil
}

// Slides is Deck returning just the slide list.
func (c *Compiler) Slides() ([]*model.Slide, []Warning, error) {
	deck, warnings, err := c.Deck()
	if err != nil {
		return nil, warnings, err
	}
	return deck.Slides, warnings, nil
}

// Analyze compiles the script and summarizes its structure.
func (c *Compiler) Analyze() (*analysis.StructureAnalysis, []Warning, error) {
	slides, warnings, err := c.Slides()
	if err != nil {
		return nil, warnings, err
	}
	return c.analyzer().Analyze(slides), warnings, nil
}

// Graph compiles the script and returns its topic graph as JSON.
func (c *Compiler) Graph() (string, []Warning, error) {
	a, warnings, err := c.Analyze()
	if err != nil {
		return "", warnings, err
	}
	out, err := analysis.GenerateLogicGraphData(a)
	return out, warnings, err
}

func (c *Compiler) analyzer() *analysis.Analyzer {
	opts := []analysis.Option{
		analysis.WithConfig(c.options.analysis),
		analysis.WithLogger(c.options.logger),
	}
	if c.options.images != nil {
		opts = append(opts, analysis.WithImageText(c.options.images))
	}
	return analysis.New(opts...)
}

func (c *Compiler) sourceText() (string, source.Format, error) {
	if !c.options.unwrap {
		return c.text, source.Plain, nil
	}
	text, format, err := source.Unwrap(c.text)
	if err != nil {
		return "", format, err
	}
	if format != source.Plain {
		c.options.logger.Debug("unwrapped script", zap.Stringer("format", format))
	}
	return text, format, nil
}

// deckTitle is the first title directive of the first page that has one.
func deckTitle(pages []command.Page) string {
	for _, p := range pages {
		for _, d := range p.Directives {
			if d.Kind == command.DirectiveTitle {
				return d.Text
			}
		}
	}
	return ""
}

// fitSlide gives each text element the slide's inner width and an equal
// share of its inner height.
func fitSlide(engine *layout.Engine, slide *model.Slide) error {
	texts := slide.TextElements()
	if len(texts) == 0 {
		return nil
	}
	cfg := engine.Config()
	maxW := slide.Width - 2*cfg.SideMargin
	maxH := (slide.Height - cfg.TopMargin - cfg.BottomMargin) / float64(len(texts))
	for _, t := range texts {
		if err := engine.FitText(t, maxW, maxH); err != nil {
			return err
		}
	}
	return nil
}
