// Package source prepares generator output for the command parser.
//
// Text generators sometimes deliver the command script wrapped in an HTML
// document or inside markdown code fences. Unwrap strips that envelope and
// keeps the result only when it still contains page markers; anything else
// is passed through unchanged.
package source

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/net/html"

	"github.com/tsawler/slidecraft/command"
)

// Format is the envelope a command script arrived in.
type Format int

const (
	// Plain is unwrapped text.
	Plain Format = iota
	// Markdown is a markdown document with fenced or indented code blocks.
	Markdown
	// HTML is an HTML document or fragment.
	HTML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case Markdown:
		return "markdown"
	case HTML:
		return "html"
	default:
		return "plain"
	}
}

var (
	htmlStart = regexp.MustCompile(`(?i)^\s*(<!doctype\s+html|<html[\s>]|<head[\s>]|<body[\s>]|<div[\s>]|<p[\s>]|<pre[\s>])`)
	fenceLine = regexp.MustCompile("(?m)^[ \t]{0,3}(```|~~~)")
)

// Detect reports the envelope format of input.
func Detect(input string) Format {
	switch {
	case htmlStart.MatchString(input):
		return HTML
	case fenceLine.MatchString(input):
		return Markdown
	default:
		return Plain
	}
}

// Unwrap removes an HTML or markdown envelope from input. The unwrapped
// text is returned only when it still has at least one page marker;
// otherwise input is returned as is with format Plain.
func Unwrap(input string) (string, Format, error) {
	format := Detect(input)

	var (
		inner string
		err   error
	)
	switch format {
	case HTML:
		inner, err = htmlText(input)
	case Markdown:
		inner = codeBlocks([]byte(input))
	default:
		return input, Plain, nil
	}
	if err != nil {
		return "", format, fmt.Errorf("unwrap %s: %w", format, err)
	}

	if !command.IsValid(inner) {
		return input, Plain, nil
	}
	return inner, format, nil
}

// htmlText extracts the visible text of an HTML document. Block elements
// end with a newline so page markers and directives stay on their own lines.
func htmlText(src string) (string, error) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	writeText(doc, &sb)
	return sb.String(), nil
}

func writeText(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if skipElement(n.Data) {
			return
		}
		if n.Data == "br" {
			sb.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(c, sb)
	}
	if n.Type == html.ElementNode && isBlock(n.Data) {
		sb.WriteString("\n")
	}
}

func skipElement(tag string) bool {
	switch tag {
	case "head", "script", "style", "noscript", "template", "svg":
		return true
	}
	return false
}

func isBlock(tag string) bool {
	switch tag {
	case "p", "div", "li", "pre", "tr", "section", "article", "blockquote",
		"h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

// codeBlocks returns the contents of every code block in a markdown
// document, in document order.
func codeBlocks(src []byte) string {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var buf bytes.Buffer
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindFencedCodeBlock, ast.KindCodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				buf.Write(seg.Value(src))
			}
			if buf.Len() > 0 && !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
				buf.WriteByte('\n')
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}
