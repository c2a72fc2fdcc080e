// Package config loads slidecraft tunables from a YAML file.
//
// A file only needs the keys it overrides; everything else keeps the
// component defaults. Unknown keys are rejected so typos surface early.
//
//	slide:
//	  width: 1024
//	  layout: grid
//	builder:
//	  title:
//	    fontSize: 32
//	analysis:
//	  extraStopWords: [deck, slide]
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/slidecraft/analysis"
	"github.com/tsawler/slidecraft/builder"
	"github.com/tsawler/slidecraft/layout"
	"github.com/tsawler/slidecraft/model"
)

// Config is the root of a configuration file.
type Config struct {
	Slide    SlideConfig    `yaml:"slide"`
	Builder  BuilderConfig  `yaml:"builder"`
	Layout   LayoutConfig   `yaml:"layout"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SlideConfig sets the display context slides are compiled for.
type SlideConfig struct {
	Width  float64 `yaml:"width" validate:"gt=0"`
	Height float64 `yaml:"height" validate:"gte=0"` // 0 derives from width
	// Layout names the strategy applied after building; empty keeps the
	// builder's positions.
	Layout string `yaml:"layout" validate:"omitempty,oneof=centered center left left-aligned leftaligned grid flow compact"`
	// FitText runs the text-size fit on every text element before layout.
	FitText bool `yaml:"fitText"`
	// Measurer selects text measurement: face, metrics or monospace. Empty
	// keeps the Go font faces.
	Measurer string `yaml:"measurer" validate:"omitempty,oneof=face metrics standard monospace mono"`
}

// RoleConfig styles one kind of text directive.
type RoleConfig struct {
	FontFamily string  `yaml:"fontFamily"`
	FontSize   float64 `yaml:"fontSize" validate:"gt=0"`
	Bold       bool    `yaml:"bold"`
	Italic     bool    `yaml:"italic"`
	Color      string  `yaml:"color" validate:"omitempty,hexcolor,len=7"`
}

// BuilderConfig mirrors builder.Config.
type BuilderConfig struct {
	TopMargin         float64    `yaml:"topMargin" validate:"gte=0"`
	LineSpacing       float64    `yaml:"lineSpacing" validate:"gte=0"`
	TitleExtraSpacing float64    `yaml:"titleExtraSpacing" validate:"gte=0"`
	Title             RoleConfig `yaml:"title"`
	Subtitle          RoleConfig `yaml:"subtitle"`
	Bullet            RoleConfig `yaml:"bullet"`
	AspectRatio       float64    `yaml:"aspectRatio" validate:"gt=0"`
	ShapeStroke       string     `yaml:"shapeStroke" validate:"omitempty,hexcolor,len=7"`
	ShapeStrokeWidth  float64    `yaml:"shapeStrokeWidth" validate:"gt=0"`
}

// LayoutConfig mirrors layout.Config.
type LayoutConfig struct {
	TopMargin     float64 `yaml:"topMargin" validate:"gte=0"`
	SideMargin    float64 `yaml:"sideMargin" validate:"gte=0"`
	BottomMargin  float64 `yaml:"bottomMargin" validate:"gte=0"`
	Spacing       float64 `yaml:"spacing" validate:"gte=0"`
	MinFontSize   float64 `yaml:"minFontSize" validate:"gt=0"`
	MaxFontSize   float64 `yaml:"maxFontSize" validate:"gtefield=MinFontSize"`
	GrowThreshold float64 `yaml:"growThreshold" validate:"gt=0,lte=1"`
}

// ThemeConfig is one entry of the theme lexicon.
type ThemeConfig struct {
	Name     string   `yaml:"name" validate:"required"`
	Keywords []string `yaml:"keywords" validate:"min=1,dive,required"`
}

// AnalysisConfig mirrors analysis.Config.
type AnalysisConfig struct {
	// StopWords replaces the built-in list when set.
	StopWords []string `yaml:"stopWords"`
	// ExtraStopWords extends the stop word list.
	ExtraStopWords []string      `yaml:"extraStopWords"`
	Themes         []ThemeConfig `yaml:"themes" validate:"dive"`
	FallbackTheme  string        `yaml:"fallbackTheme" validate:"required"`

	MinTokenLength        int `yaml:"minTokenLength" validate:"gte=1"`
	OutlineTitleMaxLength int `yaml:"outlineTitleMaxLength" validate:"gt=0"`
	KeyPointMinLength     int `yaml:"keyPointMinLength" validate:"gte=0"`
	KeyPointMaxLength     int `yaml:"keyPointMaxLength" validate:"gtfield=KeyPointMinLength"`
	MaxKeyPoints          int `yaml:"maxKeyPoints" validate:"gte=0"`

	// ImageText feeds image alt text and OCR output into keyword counts.
	ImageText bool `yaml:"imageText"`
}

// LoggingConfig selects the CLI log level.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns the configuration every component uses when no file is
// given.
func Default() *Config {
	b := builder.DefaultConfig()
	l := layout.DefaultConfig()
	a := analysis.DefaultConfig()

	themes := make([]ThemeConfig, len(a.Themes))
	for i, t := range a.Themes {
		themes[i] = ThemeConfig{Name: t.Name, Keywords: append([]string(nil), t.Keywords...)}
	}

	return &Config{
		Slide: SlideConfig{Width: 800},
		Builder: BuilderConfig{
			TopMargin:         b.TopMargin,
			LineSpacing:       b.LineSpacing,
			TitleExtraSpacing: b.TitleExtraSpacing,
			Title:             roleFrom(b.Title),
			Subtitle:          roleFrom(b.Subtitle),
			Bullet:            roleFrom(b.Bullet),
			AspectRatio:       b.AspectRatio,
			ShapeStroke:       b.ShapeStroke.Hex(),
			ShapeStrokeWidth:  b.ShapeStrokeWidth,
		},
		Layout: LayoutConfig{
			TopMargin:     l.TopMargin,
			SideMargin:    l.SideMargin,
			BottomMargin:  l.BottomMargin,
			Spacing:       l.Spacing,
			MinFontSize:   l.MinFontSize,
			MaxFontSize:   l.MaxFontSize,
			GrowThreshold: l.GrowThreshold,
		},
		Analysis: AnalysisConfig{
			Themes:                themes,
			FallbackTheme:         a.FallbackTheme,
			MinTokenLength:        a.MinTokenLength,
			OutlineTitleMaxLength: a.OutlineTitleMaxLength,
			KeyPointMinLength:     a.KeyPointMinLength,
			KeyPointMaxLength:     a.KeyPointMaxLength,
			MaxKeyPoints:          a.MaxKeyPoints,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

func roleFrom(r builder.TextRole) RoleConfig {
	return RoleConfig{
		FontFamily: r.FontFamily,
		FontSize:   r.FontSize,
		Bold:       r.Bold,
		Italic:     r.Italic,
		Color:      r.Color.Hex(),
	}
}

// Load reads and validates the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Empty
// input yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BuilderConfig converts the builder section. Colors were validated by
// Validate; an invalid one falls back to black.
func (c *Config) BuilderConfig() builder.Config {
	b := c.Builder
	return builder.Config{
		TopMargin:         b.TopMargin,
		LineSpacing:       b.LineSpacing,
		TitleExtraSpacing: b.TitleExtraSpacing,
		Title:             b.Title.role(),
		Subtitle:          b.Subtitle.role(),
		Bullet:            b.Bullet.role(),
		SlideHeight:       c.Slide.Height,
		AspectRatio:       b.AspectRatio,
		ShapeStroke:       color(b.ShapeStroke),
		ShapeStrokeWidth:  b.ShapeStrokeWidth,
	}
}

func (r RoleConfig) role() builder.TextRole {
	return builder.TextRole{
		FontFamily: r.FontFamily,
		FontSize:   r.FontSize,
		Bold:       r.Bold,
		Italic:     r.Italic,
		Color:      color(r.Color),
	}
}

func color(hex string) model.Color {
	c, err := model.ParseColor(hex)
	if err != nil {
		return model.Color{}
	}
	return c
}

// LayoutConfig converts the layout section.
func (c *Config) LayoutConfig() layout.Config {
	l := c.Layout
	return layout.Config{
		TopMargin:     l.TopMargin,
		SideMargin:    l.SideMargin,
		BottomMargin:  l.BottomMargin,
		Spacing:       l.Spacing,
		MinFontSize:   l.MinFontSize,
		MaxFontSize:   l.MaxFontSize,
		GrowThreshold: l.GrowThreshold,
	}
}

// AnalysisConfig converts the analysis section.
func (c *Config) AnalysisConfig() analysis.Config {
	a := c.Analysis
	cfg := analysis.DefaultConfig()

	if len(a.StopWords) > 0 {
		cfg.StopWords = append([]string(nil), a.StopWords...)
	}
	cfg.StopWords = append(cfg.StopWords, a.ExtraStopWords...)

	cfg.Themes = make([]analysis.Theme, len(a.Themes))
	for i, t := range a.Themes {
		cfg.Themes[i] = analysis.Theme{Name: t.Name, Keywords: append([]string(nil), t.Keywords...)}
	}
	cfg.FallbackTheme = a.FallbackTheme
	cfg.MinTokenLength = a.MinTokenLength
	cfg.OutlineTitleMaxLength = a.OutlineTitleMaxLength
	cfg.KeyPointMinLength = a.KeyPointMinLength
	cfg.KeyPointMaxLength = a.KeyPointMaxLength
	cfg.MaxKeyPoints = a.MaxKeyPoints
	return cfg
}

// Strategy returns the configured layout strategy, Centered when unset.
func (c *Config) Strategy() (layout.Strategy, error) {
	if c.Slide.Layout == "" {
		return layout.Centered, nil
	}
	return layout.ParseStrategy(c.Slide.Layout)
}
