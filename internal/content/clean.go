// Package content cleans listing body HTML and extracts embedded media into
// the directory import's gallery encoding.
package content

import (
	"regexp"
	"strings"
)

// Page-builder markers left behind by the source site. Both the legacy
// comment form and the block-editor form appear, sometimes unicode-escaped
// inside nested block payloads.
var builderTagPatterns = []*regexp.Regexp{
	regexp.MustCompile(`<!--\s*/?wp:fl-builder[^>]*-->`),
	regexp.MustCompile(`<!--\s*fl-builder[^>]*-->`),
	regexp.MustCompile(`\\u003c!\\u002d\\u002d\s*/?wp:fl-builder[^\\]*\\u002d\\u002d\\u003e`),
	regexp.MustCompile(`\\u003c!\\u002d\\u002d\s*fl-builder[^\\]*\\u002d\\u002d\\u003e`),
}

var excessBlankLines = regexp.MustCompile(`\n\s*\n\s*\n`)

// StripBuilderTags removes page-builder comment markers from listing content
// and collapses the blank lines they leave behind.
func StripBuilderTags(content string) string {
	if content == "" {
		return ""
	}
	for _, pattern := range builderTagPatterns {
		content = pattern.ReplaceAllString(content, "")
	}
	content = excessBlankLines.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}
