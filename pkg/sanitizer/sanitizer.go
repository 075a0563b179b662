package sanitizer

import (
	"io"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

var (
	strict     = bluemonday.StrictPolicy()
	whitespace = regexp.MustCompile(`[ \t]+`)
)

// CleanText reduces ingested guideline content to plain text suitable for
// indexing: all markup is removed and runs of spaces are collapsed.
// Line breaks are preserved so section structure survives.
func CleanText(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	// Fast path: no markup at all.
	if !strings.ContainsAny(input, "<&") {
		return whitespace.ReplaceAllString(input, " ")
	}

	cleaned := html.UnescapeString(strict.Sanitize(input))
	if cleaned == "" {
		// bluemonday can reject malformed fragments wholesale; fall back to
		// the tokenizer so text nodes are still recovered.
		cleaned = StripTags(input)
	}

	lines := strings.Split(cleaned, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(whitespace.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// StripTags removes all HTML/XML tags from the input, keeping text nodes
// only. Not a security boundary; use CleanText for ingested content.
func StripTags(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	tokenizer := html.NewTokenizer(strings.NewReader(input))
	var buf strings.Builder

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			if tokenizer.Err() == io.EOF {
				break
			}
			return ""
		}

		if tt == html.TextToken {
			buf.WriteString(tokenizer.Token().Data)
		}
	}

	return strings.TrimSpace(buf.String())
}
