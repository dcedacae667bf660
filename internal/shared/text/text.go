// Package text converts feed markup into the plain text used for matching and display.
package text

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const blockElements = "p, div, br, li, tr, td, blockquote, pre, h1, h2, h3, h4, h5, h6"

// Plain strips markup and entities from an HTML fragment and collapses
// whitespace. Block elements are separated by a space so words never fuse.
func Plain(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return collapse(fragment)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return collapse(fragment)
	}
	doc.Find("script, style").Remove()
	doc.Find(blockElements).AfterHtml(" ")
	return collapse(doc.Text())
}

// Truncate keeps the first maxLen characters and appends "..." when
// anything was cut.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen]) + "..."
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
