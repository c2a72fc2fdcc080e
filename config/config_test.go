package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/slidecraft/analysis"
	"github.com/tsawler/slidecraft/builder"
	"github.com/tsawler/slidecraft/layout"
	"github.com/tsawler/slidecraft/model"
)

func TestDefaultRoundTripsComponentDefaults(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}

	if diff := cmp.Diff(builder.DefaultConfig(), cfg.BuilderConfig()); diff != "" {
		t.Errorf("builder config mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(layout.DefaultConfig(), cfg.LayoutConfig()); diff != "" {
		t.Errorf("layout config mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(analysis.DefaultConfig(), cfg.AnalysisConfig()); diff != "" {
		t.Errorf("analysis config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("empty input should yield defaults (-want +got):\n%s", diff)
	}
}

func TestParseOverrides(t *testing.T) {
	data := []byte(`
slide:
  width: 1024
  height: 768
  layout: grid
builder:
  title:
    fontSize: 32
    color: "#ff0000"
analysis:
  extraStopWords: [deck]
  themes:
    - name: cooking
      keywords: [recipe, kitchen]
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Slide.Width != 1024 || cfg.Slide.Height != 768 {
		t.Errorf("slide = %+v", cfg.Slide)
	}
	s, err := cfg.Strategy()
	if err != nil || s != layout.Grid {
		t.Errorf("Strategy() = %v, %v, want grid", s, err)
	}

	b := cfg.BuilderConfig()
	if b.Title.FontSize != 32 || !b.Title.Bold {
		t.Errorf("title role = %+v, want size 32 and default bold kept", b.Title)
	}
	if b.Title.Color != (model.Color{R: 0xff}) {
		t.Errorf("title color = %+v", b.Title.Color)
	}
	if b.SlideHeight != 768 {
		t.Errorf("slide height = %v, want 768", b.SlideHeight)
	}
	if b.Bullet.FontSize != 18 {
		t.Errorf("bullet size = %v, want default 18", b.Bullet.FontSize)
	}

	a := cfg.AnalysisConfig()
	if len(a.Themes) != 1 || a.Themes[0].Name != "cooking" {
		t.Errorf("themes = %+v, want only cooking", a.Themes)
	}
	freq := analysis.CountKeywords("deck recipe", a)
	if diff := cmp.Diff(map[string]int{"recipe": 1}, freq); diff != "" {
		t.Errorf("extra stop words not applied (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown field", "slide:\n  colour: red\n", "field colour not found"},
		{"bad yaml", "slide: [", "failed to parse config"},
		{"non-positive width", "slide:\n  width: -1\n", "slide.width must be greater than 0"},
		{"unknown layout", "slide:\n  layout: spiral\n", "slide.layout must be one of"},
		{"bad color", "builder:\n  bullet:\n    color: blue\n", "builder.bullet.color must be a #rrggbb color"},
		{"short color", "builder:\n  shapeStroke: \"#fff\"\n", "builder.shapestroke must be a #rrggbb color"},
		{"font bounds", "layout:\n  maxFontSize: 4\n", "layout.maxfontsize must not be below minfontsize"},
		{"grow threshold", "layout:\n  growThreshold: 1.5\n", "layout.growthreshold must be at most 1"},
		{"key point bounds", "analysis:\n  keyPointMaxLength: 3\n", "analysis.keypointmaxlength must not be below keypointminlength"},
		{"theme without keywords", "analysis:\n  themes:\n    - name: empty\n", "analysis.themes[0].keywords must have at least 1 entries"},
		{"unknown measurer", "slide:\n  measurer: bitmap\n", "slide.measurer must be one of"},
		{"log level", "logging:\n  level: loud\n", "logging.level must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse() error = nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slidecraft.yaml")
	if err := os.WriteFile(path, []byte("slide:\n  layout: flow\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s, _ := cfg.Strategy(); s != layout.Flow {
		t.Errorf("strategy = %v, want flow", s)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of missing file should fail")
	}
}
