package htmltext

import (
	"strings"
	"testing"
)

func TestPlain(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain text stays", "plain text stays"},
		{"<p>Build <strong>APIs</strong> in Go</p>", "Build APIs in Go"},
		{"<ul><li>one</li><li>two</li></ul>", "one two"},
		{"spaces and\n\nnewlines", "spaces and newlines"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Plain(c.in); got != c.want {
			t.Errorf("Plain(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSnippet_Truncates(t *testing.T) {
	in := "<p>We are hiring a senior software engineer to build distributed systems</p>"
	got := Snippet(in, 30)
	if len([]rune(got)) > 31 { // 30 + ellipsis
		t.Errorf("Snippet too long: %q", got)
	}
	if got[len(got)-len("…"):] != "…" {
		t.Errorf("Snippet should end with ellipsis: %q", got)
	}
}

func TestSnippet_ShortInputUntouched(t *testing.T) {
	if got := Snippet("short", 500); got != "short" {
		t.Errorf("Snippet(short) = %q", got)
	}
}

func TestSnippet_MultibyteRunes(t *testing.T) {
	// Listings carry ₹, accents and CJK; truncation counts runes, not bytes.
	in := strings.Repeat("日", 239) + " " + strings.Repeat("日", 60)
	got := Snippet(in, 240)
	if want := strings.Repeat("日", 239) + "…"; got != want {
		t.Errorf("Snippet cut at %d runes, want word boundary at 239", len([]rune(got))-1)
	}

	got = Snippet("salaire annuel de 45 000 € négociable selon profil et expérience", 30)
	if n := len([]rune(got)); n > 31 {
		t.Errorf("Snippet too long: %d runes (%q)", n, got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("Snippet should end with ellipsis: %q", got)
	}
}
