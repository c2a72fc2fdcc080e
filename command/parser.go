package command

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ErrEmptyText is reported for a Title, Subtitle or Bullet with no text.
var ErrEmptyText = errors.New("empty text")

var (
	pageMarkerPattern = regexp.MustCompile(`\bPage\s*(\d+)\s*[:：]`)

	// Text fields end at ';' or newline. The Draw alternative only matches a
	// complete "Kind(...)" call; anything else after "Draw:" is ignored.
	directivePattern = regexp.MustCompile(
		`\b(Title|Subtitle|Bullet):[ \t]*([^;\n]*)` +
			`|\bDraw:[ \t]*([A-Za-z]+)[ \t]*\(([^)\n]*)\)`)
)

// Parser splits generator output into pages of directives.
type Parser struct {
	logger *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used to report dropped directives.
func WithLogger(l *zap.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewParser creates a parser. Without options it logs nothing.
func NewParser(opts ...Option) *Parser {
	p := &Parser{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse returns one Page per page marker, in source order. Text before the
// first marker is discarded. Input without any marker yields no pages; that
// is a valid result, not an error.
func (p *Parser) Parse(text string) ([]Page, []Warning) {
	markers := pageMarkerPattern.FindAllStringSubmatchIndex(text, -1)
	if len(markers) == 0 {
		return nil, nil
	}

	pages := make([]Page, 0, len(markers))
	var warnings []Warning

	for i, m := range markers {
		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		chunk := text[m[1]:end]

		number, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil {
			number = i + 1
		}

		directives, w := p.parseChunk(chunk, i+1)
		warnings = append(warnings, w...)
		pages = append(pages, Page{Number: number, Directives: directives})
	}

	return pages, warnings
}

// parseChunk scans one page's text left to right for directives.
func (p *Parser) parseChunk(chunk string, page int) ([]Directive, []Warning) {
	var directives []Directive
	var warnings []Warning

	for _, m := range directivePattern.FindAllStringSubmatchIndex(chunk, -1) {
		fragment := chunk[m[0]:m[1]]

		if m[2] >= 0 {
			kind := directiveKind(chunk[m[2]:m[3]])
			body := strings.TrimSpace(chunk[m[4]:m[5]])
			if body == "" {
				warnings = append(warnings, p.drop(page, fragment, ErrEmptyText))
				continue
			}
			directives = append(directives, Directive{Kind: kind, Text: body})
			continue
		}

		spec, err := interpretShape(chunk[m[6]:m[7]], chunk[m[8]:m[9]])
		if err != nil {
			warnings = append(warnings, p.drop(page, fragment, err))
			continue
		}
		directives = append(directives, Draw(spec))
	}

	return directives, warnings
}

func (p *Parser) drop(page int, fragment string, err error) Warning {
	p.logger.Debug("dropped directive",
		zap.Int("page", page),
		zap.String("directive", fragment),
		zap.String("reason", err.Error()),
	)
	return Warning{Page: page, Directive: fragment, Err: err}
}

func directiveKind(keyword string) DirectiveKind {
	switch keyword {
	case "Title":
		return DirectiveTitle
	case "Subtitle":
		return DirectiveSubtitle
	case "Bullet":
		return DirectiveBullet
	}
	return DirectiveUnknown
}

// Parse parses text with a default parser and returns the directive list of
// each page.
func Parse(text string) [][]Directive {
	pages, _ := NewParser().Parse(text)
	out := make([][]Directive, len(pages))
	for i, pg := range pages {
		out[i] = pg.Directives
	}
	return out
}

// PageCount returns the number of page markers in text.
func PageCount(text string) int {
	return len(pageMarkerPattern.FindAllStringIndex(text, -1))
}

// IsValid reports whether text contains at least one page marker.
func IsValid(text string) bool {
	return PageCount(text) > 0
}
