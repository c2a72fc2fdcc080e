package analysis

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/slidecraft/model"
)

func slideOf(texts ...string) *model.Slide {
	s := model.NewSlide(800, 600)
	for _, t := range texts {
		s.AddElement(model.NewTextElement(t, model.TextStyle{FontSize: 18}))
	}
	return s
}

func sampleDeck() []*model.Slide {
	first := slideOf("Test Title", "Point A")
	first.AddElement(model.NewShapeElement(model.ShapeRectangle, model.Point{X: 10, Y: 10}, model.Point{X: 50, Y: 50}))
	return []*model.Slide{first, slideOf("Second")}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"ai ai ai bb", []string{"ai", "ai", "ai", "bb"}},
		{"Hello, World!", []string{"hello", "world"}},
		{"ＡＩ and Data-driven", []string{"ai", "and", "data", "driven"}},
		{"tabs\tand\nnewlines", []string{"tabs", "and", "newlines"}},
		{"  ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Tokenize(tt.in)); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestCountKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want map[string]int
	}{
		{"repeated tokens", "ai ai ai bb", map[string]int{"ai": 3, "bb": 1}},
		{"single runes dropped", "a b c dd", map[string]int{"dd": 1}},
		{"stop words dropped", "The cloud and the edge", map[string]int{"cloud": 1, "edge": 1}},
		{"case folded", "Cloud CLOUD cloud", map[string]int{"cloud": 3}},
		{"empty", "", map[string]int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountKeywords(tt.text, DefaultConfig())
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CountKeywords(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestAnalyzeSampleDeck(t *testing.T) {
	a := Analyze(sampleDeck())

	if diff := cmp.Diff([]string{"Test Title", "Second"}, a.Outline); diff != "" {
		t.Errorf("outline mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Test Title", "Point A", "Second"}, a.KeyPoints); diff != "" {
		t.Errorf("key points mismatch (-want +got):\n%s", diff)
	}
	wantHierarchy := []Section{
		{Title: "Test Title", Points: []string{"Point A"}},
		{Title: "Second", Points: []string{}},
	}
	if diff := cmp.Diff(wantHierarchy, a.Hierarchy); diff != "" {
		t.Errorf("hierarchy mismatch (-want +got):\n%s", diff)
	}
	if a.MainTopic != "test" {
		t.Errorf("main topic = %q, want first-seen tie winner %q", a.MainTopic, "test")
	}
	if diff := cmp.Diff([]string{"general"}, a.Themes); diff != "" {
		t.Errorf("themes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"problem", "solution"}, a.LogicalFlow); diff != "" {
		t.Errorf("logical flow mismatch (-want +got):\n%s", diff)
	}
	if a.TotalSlides != 2 || a.TotalElements != 4 {
		t.Errorf("totals = %d slides, %d elements, want 2 and 4", a.TotalSlides, a.TotalElements)
	}
	if diff := cmp.Diff(map[string]int{"text": 3, "shape": 1}, a.ElementTypeCounts); diff != "" {
		t.Errorf("element counts mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	a := Analyze(nil)

	if a.MainTopic != "" {
		t.Errorf("main topic = %q, want empty", a.MainTopic)
	}
	for name, n := range map[string]int{
		"outline":    len(a.Outline),
		"key points": len(a.KeyPoints),
		"hierarchy":  len(a.Hierarchy),
		"themes":     len(a.Themes),
		"flow":       len(a.LogicalFlow),
		"keywords":   len(a.KeywordFrequency),
	} {
		if n != 0 {
			t.Errorf("%s has %d entries, want 0", name, n)
		}
	}
	if a.Outline == nil || a.KeywordFrequency == nil {
		t.Error("empty analysis should carry non-nil lists and maps")
	}
}

func TestAnalyzeMainTopic(t *testing.T) {
	tests := []struct {
		name   string
		slides []*model.Slide
		want   string
	}{
		{"highest count", []*model.Slide{slideOf("ai ai ai bb")}, "ai"},
		{"tie keeps first seen", []*model.Slide{slideOf("zeta alpha"), slideOf("alpha zeta")}, "zeta"},
		{"later slide can win", []*model.Slide{slideOf("alpha"), slideOf("omega omega")}, "omega"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Analyze(tt.slides).MainTopic; got != tt.want {
				t.Errorf("main topic = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAnalyzeOutlineFallback(t *testing.T) {
	long := strings.Repeat("x", 60)
	a := Analyze([]*model.Slide{slideOf(long), slideOf()})

	if diff := cmp.Diff([]string{"Page 1", "Page 2"}, a.Outline); diff != "" {
		t.Errorf("outline mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{long}, a.Hierarchy[0].Points); diff != "" {
		t.Errorf("untitled slide should keep all texts as points (-want +got):\n%s", diff)
	}
}

func TestAnalyzeKeyPoints(t *testing.T) {
	var texts []string
	for i := 0; i < 30; i++ {
		texts = append(texts, "point number "+strings.Repeat("i", i+1))
	}
	tests := []struct {
		name   string
		slides []*model.Slide
		want   int
	}{
		{"bounds are exclusive", []*model.Slide{slideOf("12345", "123456", strings.Repeat("y", 200), strings.Repeat("y", 199))}, 2},
		{"duplicates collapse", []*model.Slide{slideOf("same text"), slideOf("same text")}, 1},
		{"capped", []*model.Slide{slideOf(texts...)}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(Analyze(tt.slides).KeyPoints); got != tt.want {
				t.Errorf("key points = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAnalyzeThemes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"technology", "AI platform", []string{"technology"}},
		{"lexicon order", "customer team data", []string{"technology", "management", "marketing"}},
		{"chinese", "团队 管理", []string{"management"}},
		{"fallback", "lorem ipsum", []string{"general"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze([]*model.Slide{slideOf(tt.text)}).Themes
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("themes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLogicalFlow(t *testing.T) {
	tests := []struct {
		slides int
		want   []string
	}{
		{0, []string{}},
		{1, []string{"single display"}},
		{2, []string{"problem", "solution"}},
		{3, []string{"opening", "body", "closing"}},
		{9, []string{"opening", "body", "closing"}},
	}

	for _, tt := range tests {
		slides := make([]*model.Slide, tt.slides)
		for i := range slides {
			slides[i] = slideOf("slide")
		}
		if diff := cmp.Diff(tt.want, Analyze(slides).LogicalFlow); diff != "" {
			t.Errorf("%d slides: flow mismatch (-want +got):\n%s", tt.slides, diff)
		}
	}
}

func TestAnalyzeDoesNotMutate(t *testing.T) {
	slides := sampleDeck()
	before := slides[0].Clone()

	Analyze(slides)

	if len(slides[0].Elements) != len(before.Elements) {
		t.Fatalf("element count changed")
	}
	for i, e := range slides[0].Elements {
		if e.BoundingBox() != before.Elements[i].BoundingBox() {
			t.Errorf("element %d moved", i)
		}
	}
}

func TestHierarchyMapMergesDuplicateTitles(t *testing.T) {
	a := Analyze([]*model.Slide{slideOf("Agenda", "first"), slideOf("Agenda", "second")})

	want := map[string][]string{"Agenda": {"first", "second"}}
	if diff := cmp.Diff(want, a.HierarchyMap()); diff != "" {
		t.Errorf("HierarchyMap() mismatch (-want +got):\n%s", diff)
	}
	if len(a.Hierarchy) != 2 {
		t.Errorf("hierarchy sections = %d, want 2", len(a.Hierarchy))
	}
}

type fakeImageText struct {
	text  string
	err   error
	calls int
}

func (f *fakeImageText) RecognizeImage([]byte) (string, error) {
	f.calls++
	return f.text, f.err
}

func TestWithImageText(t *testing.T) {
	slide := slideOf("Intro")
	withAlt := model.NewImageElement([]byte{1}, model.ImageFormatPNG, model.NewBBox(0, 0, 10, 10))
	withAlt.AltText = "cloud diagram"
	bare := model.NewImageElement([]byte{2}, model.ImageFormatPNG, model.NewBBox(0, 0, 10, 10))
	slide.AddElement(withAlt)
	slide.AddElement(bare)

	src := &fakeImageText{text: "roadmap roadmap"}
	a := New(WithImageText(src)).Analyze([]*model.Slide{slide})

	if src.calls != 1 {
		t.Errorf("recognizer calls = %d, want 1 (alt text preferred)", src.calls)
	}
	if a.MainTopic != "roadmap" {
		t.Errorf("main topic = %q, want %q", a.MainTopic, "roadmap")
	}
	if a.KeywordFrequency["cloud"] != 1 {
		t.Errorf("alt text not counted: %v", a.KeywordFrequency)
	}

	plain := Analyze([]*model.Slide{slide})
	if _, ok := plain.KeywordFrequency["cloud"]; ok {
		t.Error("image text counted without WithImageText")
	}

	failing := &fakeImageText{err: errors.New("no engine")}
	if got := New(WithImageText(failing)).Analyze([]*model.Slide{slide}).MainTopic; got != "intro" {
		t.Errorf("main topic with failing recognizer = %q, want %q", got, "intro")
	}
}
