package analysis

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// KeywordCount is a keyword and its number of occurrences.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// Tokenize splits text on whitespace, punctuation and symbols after NFKC
// normalization and case folding. Full-width letters therefore fold to
// their ASCII forms.
func Tokenize(text string) []string {
	folded := cases.Fold().String(norm.NFKC.String(text))
	return strings.FieldsFunc(folded, isSeparator)
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// keywordCounter accumulates token frequencies and remembers the order in
// which each keyword was first seen.
type keywordCounter struct {
	minLen int
	stop   map[string]bool
	freq   map[string]int
	order  []string
}

func newKeywordCounter(cfg Config) *keywordCounter {
	stop := make(map[string]bool, len(cfg.StopWords))
	for _, w := range cfg.StopWords {
		for _, tok := range Tokenize(w) {
			stop[tok] = true
		}
	}
	return &keywordCounter{
		minLen: cfg.MinTokenLength,
		stop:   stop,
		freq:   make(map[string]int),
	}
}

func (c *keywordCounter) add(text string) {
	for _, tok := range Tokenize(text) {
		if utf8.RuneCountInString(tok) < c.minLen || c.stop[tok] {
			continue
		}
		if _, seen := c.freq[tok]; !seen {
			c.order = append(c.order, tok)
		}
		c.freq[tok]++
	}
}

// ranked returns keywords by descending count. Ties keep first-seen order.
func (c *keywordCounter) ranked() []KeywordCount {
	out := make([]KeywordCount, len(c.order))
	for i, k := range c.order {
		out[i] = KeywordCount{Keyword: k, Count: c.freq[k]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// CountKeywords returns the keyword frequency map of text under cfg.
func CountKeywords(text string, cfg Config) map[string]int {
	c := newKeywordCounter(cfg)
	c.add(text)
	return c.freq
}
