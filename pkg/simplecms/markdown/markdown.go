// Package markdown provides the Markdown helpers used by content
// bodies: HTML rendering, plain-text extraction for excerpts, and
// detection of Markdown syntax in arbitrary text.
package markdown

import (
	"bytes"
	"regexp"
	"strings"

	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// md is the configured goldmark instance, reused across calls.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("monokai"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
	),
)

var (
	htmlTags   = regexp.MustCompile(`<[^>]*>`)
	whitespace = regexp.MustCompile(`\s+`)

	// syntax patterns checked by HasSyntax, cheapest first.
	syntaxPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?m)^#{1,6}\s`),          // headings
		regexp.MustCompile(`(?m)^\s*[-*+]\s`),        // unordered lists
		regexp.MustCompile(`(?m)^\s*\d+\.\s`),        // ordered lists
		regexp.MustCompile(`(?m)^>\s`),               // blockquotes
		regexp.MustCompile("`[^`]+`"),                // inline code
		regexp.MustCompile(`\*\*[^*]+\*\*`),          // bold
		regexp.MustCompile(`\[[^\]]+\]\([^)]+\)`),    // links
		regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`),   // images
	}
)

// ToHTML converts Markdown source into HTML.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// PlainText renders the Markdown source and strips all markup, leaving
// whitespace-normalized prose. Used for excerpt generation.
func PlainText(source string) string {
	rendered, err := ToHTML(source)
	if err != nil {
		// Fall back to the raw source if the source does not parse.
		rendered = source
	}
	text := htmlTags.ReplaceAllString(rendered, " ")
	text = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
	).Replace(text)
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}

// HasSyntax reports whether the text contains common Markdown features
// (headings, lists, emphasis, code, links or images).
func HasSyntax(text string) bool {
	for _, p := range syntaxPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
