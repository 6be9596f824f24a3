// Package htmltext flattens the HTML fragments the backend embeds in job
// descriptions into text the UI can render on cards.
package htmltext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Plain strips markup from an HTML fragment and collapses whitespace.
// Input that is already plain text passes through unchanged.
func Plain(html string) string {
	if !strings.ContainsAny(html, "<>") {
		return clean(html)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return clean(html)
	}
	return clean(doc.Text())
}

// Snippet returns at most max runes of the plain text, with an ellipsis
// when truncated. Cuts at a word boundary when one is close enough.
func Snippet(html string, max int) string {
	s := Plain(html)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	cut := max
	for i := max - 1; i > max/2; i-- {
		if runes[i] == ' ' {
			cut = i
			break
		}
	}
	return strings.TrimSpace(string(runes[:cut])) + "…"
}

func clean(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
