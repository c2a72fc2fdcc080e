package builder

import (
	"errors"
	"testing"

	"github.com/tsawler/slidecraft/command"
	"github.com/tsawler/slidecraft/measure"
	"github.com/tsawler/slidecraft/model"
)

// testMeasurer makes every rune 10 units wide and every line the font size tall.
var testMeasurer = measure.Monospace{Advance: 10.0 / 18.0, LineHeight: 1}

func fixedMeasurer(w, h float64) measure.Measurer {
	return measure.Func(func(string, measure.FontSpec) (float64, float64, error) {
		return w, h, nil
	})
}

func TestBuildFlow(t *testing.T) {
	b := New(fixedMeasurer(100, 30))
	directives := []command.Directive{
		command.Title("T"),
		command.Subtitle("S"),
		command.Bullet("B1"),
		command.Draw(command.ShapeSpec{Kind: model.ShapeRectangle, Params: []float64{10, 10, 50, 50}}),
		command.Bullet("B2"),
	}

	slide, err := b.Build(directives, 800)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(slide.Elements) != 5 {
		t.Fatalf("got %d elements, want 5", len(slide.Elements))
	}

	// Title at 60, then +30+8+4, subtitle at 102, bullets 30+8 apart.
	// The shape between the bullets does not advance the cursor.
	wantY := []float64{60, 102, 140, -1, 178}
	for i, elem := range slide.Elements {
		if wantY[i] < 0 {
			if elem.Kind() != model.ElementKindShape {
				t.Errorf("element %d kind = %v, want shape", i, elem.Kind())
			}
			continue
		}
		box := elem.BoundingBox()
		if box.Y != wantY[i] {
			t.Errorf("element %d y = %v, want %v", i, box.Y, wantY[i])
		}
		if box.X != 350 {
			t.Errorf("element %d x = %v, want 350 (centered)", i, box.X)
		}
	}

	if slide.Width != 800 || slide.Height != 600 {
		t.Errorf("slide size = %vx%v, want 800x600", slide.Width, slide.Height)
	}
}

func TestBuildStyles(t *testing.T) {
	b := New(testMeasurer)
	slide, err := b.Build([]command.Directive{
		command.Title("Title"),
		command.Subtitle("Subtitle"),
		command.Bullet("Bullet"),
	}, 800)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	texts := slide.TextElements()
	tests := []struct {
		content string
		size    float64
		bold    bool
	}{
		{"Title", 28, true},
		{"Subtitle", 20, false},
		{"Bullet", 18, false},
	}
	for i, tt := range tests {
		got := texts[i]
		if got.Content != tt.content || got.Style.FontSize != tt.size || got.Style.Bold != tt.bold {
			t.Errorf("text %d = %q size %v bold %v, want %q size %v bold %v",
				i, got.Content, got.Style.FontSize, got.Style.Bold, tt.content, tt.size, tt.bold)
		}
	}
}

func TestBuildShapeAtLiteralCoordinates(t *testing.T) {
	b := New(testMeasurer)
	slide, err := b.Build([]command.Directive{
		command.Draw(command.ShapeSpec{Kind: model.ShapeCircle, Params: []float64{200, 150, 40}}),
	}, 800)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	shape, ok := slide.Elements[0].(*model.ShapeElement)
	if !ok {
		t.Fatalf("element is %T, want *model.ShapeElement", slide.Elements[0])
	}
	if shape.Start != (model.Point{X: 160, Y: 150}) || shape.End != (model.Point{X: 240, Y: 150}) {
		t.Errorf("circle points = %+v -> %+v", shape.Start, shape.End)
	}
	if shape.StrokeWidth != DefaultConfig().ShapeStrokeWidth {
		t.Errorf("stroke width = %v", shape.StrokeWidth)
	}
}

func TestBuildMeasureFailure(t *testing.T) {
	boom := errors.New("no fonts")
	b := New(measure.Func(func(string, measure.FontSpec) (float64, float64, error) {
		return 0, 0, boom
	}))

	if _, err := b.Build([]command.Directive{command.Title("x")}, 800); !errors.Is(err, boom) {
		t.Errorf("Build() error = %v, want wrapped %v", err, boom)
	}

	// Shapes need no measurement.
	if _, err := b.Build([]command.Directive{
		command.Draw(command.ShapeSpec{Kind: model.ShapeLine, Params: []float64{0, 0, 1, 1}}),
	}, 800); err != nil {
		t.Errorf("shape-only Build() error = %v", err)
	}
}

func TestBuildNoMeasurer(t *testing.T) {
	if _, err := New(nil).Build(nil, 800); !errors.Is(err, ErrNoMeasurer) {
		t.Errorf("Build() error = %v, want ErrNoMeasurer", err)
	}
}

func TestBuildDeck(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SlideHeight = 450
	b := New(testMeasurer, WithConfig(cfg))

	deck, err := b.BuildDeck([]command.Page{
		{Number: 1, Directives: []command.Directive{command.Title("One")}},
		{Number: 2},
	}, 600)
	if err != nil {
		t.Fatalf("BuildDeck() error = %v", err)
	}
	if deck.SlideCount() != 2 {
		t.Fatalf("SlideCount() = %d, want 2", deck.SlideCount())
	}
	if deck.Slides[1].Number != 2 || len(deck.Slides[1].Elements) != 0 {
		t.Errorf("second slide = %+v", deck.Slides[1])
	}
	if deck.Slides[0].Height != 450 {
		t.Errorf("height = %v, want 450", deck.Slides[0].Height)
	}
}
