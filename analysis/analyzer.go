// Package analysis derives a read-only structural summary from compiled
// slides: keyword statistics, an outline, key points, theme tags, a canned
// narrative flow, a main topic and a topic graph.
//
// Keyword extraction is frequency based. Themes come from a fixed lexicon
// and the logical flow depends only on the slide count.
package analysis

import (
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/tsawler/slidecraft/model"
)

// Flow stage labels.
var (
	flowMulti  = []string{"opening", "body", "closing"}
	flowPair   = []string{"problem", "solution"}
	flowSingle = []string{"single display"}
)

// Section is one slide's title and the rest of its text.
type Section struct {
	Title  string   `json:"title"`
	Points []string `json:"points"`
}

// StructureAnalysis is an immutable snapshot of a deck's structure.
type StructureAnalysis struct {
	MainTopic         string         `json:"mainTopic"`
	Outline           []string       `json:"outline"`
	KeyPoints         []string       `json:"keyPoints"`
	Hierarchy         []Section      `json:"hierarchy"`
	Themes            []string       `json:"themes"`
	KeywordFrequency  map[string]int `json:"keywordFrequency"`
	Keywords          []KeywordCount `json:"keywords"` // by count, ties in first-seen order
	LogicalFlow       []string       `json:"logicalFlow"`
	TotalSlides       int            `json:"totalSlides"`
	TotalElements     int            `json:"totalElements"`
	ElementTypeCounts map[string]int `json:"elementTypeCounts"`
}

// HierarchyMap returns the hierarchy keyed by title. Sections sharing a
// title are merged in slide order.
func (a *StructureAnalysis) HierarchyMap() map[string][]string {
	m := make(map[string][]string, len(a.Hierarchy))
	for _, s := range a.Hierarchy {
		m[s.Title] = append(m[s.Title], s.Points...)
	}
	return m
}

// TopKeywords returns up to n keywords by descending frequency.
func (a *StructureAnalysis) TopKeywords(n int) []KeywordCount {
	if n > len(a.Keywords) {
		n = len(a.Keywords)
	}
	return append([]KeywordCount(nil), a.Keywords[:n]...)
}

// ImageTextSource recognizes text in image bytes. *ocr.Client satisfies it.
type ImageTextSource interface {
	RecognizeImage(data []byte) (string, error)
}

// Analyzer computes StructureAnalysis values. It never modifies slides.
type Analyzer struct {
	config Config
	images ImageTextSource
	logger *zap.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithConfig replaces the default configuration.
func WithConfig(c Config) Option {
	return func(a *Analyzer) { a.config = c }
}

// WithLogger sets the analyzer's logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithImageText adds the text of image elements to the keyword corpus.
// Alt text is used when present; otherwise src is asked to recognize the
// image bytes. Recognition failures are logged and skipped.
func WithImageText(src ImageTextSource) Option {
	return func(a *Analyzer) { a.images = src }
}

// New creates an Analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		config: DefaultConfig(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze summarizes slides. An empty slide set yields empty lists and maps.
func (a *Analyzer) Analyze(slides []*model.Slide) *StructureAnalysis {
	counter := newKeywordCounter(a.config)
	result := &StructureAnalysis{
		Outline:           []string{},
		KeyPoints:         []string{},
		Hierarchy:         []Section{},
		Themes:            []string{},
		LogicalFlow:       []string{},
		ElementTypeCounts: make(map[string]int),
		TotalSlides:       len(slides),
	}

	seenPoints := make(map[string]bool)

	for i, slide := range slides {
		texts := slide.TextElements()
		for _, t := range texts {
			counter.add(t.Content)
		}
		a.addImageText(counter, slide)

		result.TotalElements += len(slide.Elements)
		for _, elem := range slide.Elements {
			result.ElementTypeCounts[elem.Kind().String()]++
		}

		titleIdx := a.titleIndex(texts)
		section := Section{Points: []string{}}
		if titleIdx >= 0 {
			section.Title = texts[titleIdx].Content
		} else {
			section.Title = fmt.Sprintf("Page %d", i+1)
		}
		for j, t := range texts {
			if j != titleIdx {
				section.Points = append(section.Points, t.Content)
			}
		}
		result.Outline = append(result.Outline, section.Title)
		result.Hierarchy = append(result.Hierarchy, section)

		for _, t := range texts {
			if len(result.KeyPoints) >= a.config.MaxKeyPoints {
				break
			}
			n := utf8.RuneCountInString(t.Content)
			if n <= a.config.KeyPointMinLength || n >= a.config.KeyPointMaxLength {
				continue
			}
			if seenPoints[t.Content] {
				continue
			}
			seenPoints[t.Content] = true
			result.KeyPoints = append(result.KeyPoints, t.Content)
		}
	}

	result.KeywordFrequency = counter.freq
	result.Keywords = counter.ranked()
	if len(result.Keywords) > 0 {
		result.MainTopic = result.Keywords[0].Keyword
	}
	if len(slides) > 0 {
		result.Themes = a.themes(counter.freq)
	}
	result.LogicalFlow = logicalFlow(len(slides))

	a.logger.Debug("structure analyzed",
		zap.Int("slides", result.TotalSlides),
		zap.Int("keywords", len(result.Keywords)),
		zap.String("mainTopic", result.MainTopic),
	)
	return result
}

// titleIndex returns the index of the first text short enough to be a
// title, or -1.
func (a *Analyzer) titleIndex(texts []*model.TextElement) int {
	for i, t := range texts {
		if utf8.RuneCountInString(t.Content) < a.config.OutlineTitleMaxLength {
			return i
		}
	}
	return -1
}

func (a *Analyzer) addImageText(counter *keywordCounter, slide *model.Slide) {
	if a.images == nil {
		return
	}
	for _, elem := range slide.ElementsOfKind(model.ElementKindImage) {
		img := elem.(*model.ImageElement)
		if img.AltText != "" {
			counter.add(img.AltText)
			continue
		}
		if len(img.Data) == 0 {
			continue
		}
		text, err := a.images.RecognizeImage(img.Data)
		if err != nil {
			a.logger.Warn("image text recognition failed",
				zap.String("slide", slide.ID),
				zap.String("element", img.ID),
				zap.Error(err),
			)
			continue
		}
		counter.add(text)
	}
}

func (a *Analyzer) themes(freq map[string]int) []string {
	var out []string
	for _, theme := range a.config.Themes {
		if themeMatches(theme, freq) {
			out = append(out, theme.Name)
		}
	}
	if len(out) == 0 {
		out = append(out, a.config.FallbackTheme)
	}
	return out
}

func themeMatches(theme Theme, freq map[string]int) bool {
	for _, kw := range theme.Keywords {
		for _, tok := range Tokenize(kw) {
			if freq[tok] > 0 {
				return true
			}
		}
	}
	return false
}

// logicalFlow picks narrative stage labels from the slide count alone.
func logicalFlow(slides int) []string {
	var labels []string
	switch {
	case slides >= 3:
		labels = flowMulti
	case slides == 2:
		labels = flowPair
	case slides == 1:
		labels = flowSingle
	default:
		return []string{}
	}
	return append([]string(nil), labels...)
}

// Analyze summarizes slides with the default configuration.
func Analyze(slides []*model.Slide) *StructureAnalysis {
	return New().Analyze(slides)
}
