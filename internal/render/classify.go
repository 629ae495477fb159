// Package render turns mission and report text into printable documents.
package render

import "strings"

// Kind is the visual class of one line.
type Kind int

const (
	KindBody Kind = iota
	KindHeading1
	KindHeading2
	KindHeading3
	KindSpace
	KindRule
)

func (k Kind) String() string {
	switch k {
	case KindHeading1:
		return "h1"
	case KindHeading2:
		return "h2"
	case KindHeading3:
		return "h3"
	case KindSpace:
		return "space"
	case KindRule:
		return "rule"
	default:
		return "body"
	}
}

// Line is a classified line with its markers removed.
type Line struct {
	Kind Kind
	Text string
}

// Classify strips emphasis markers from raw and assigns its kind by exact
// prefix: "# ", "## ", "### ", empty, "---", otherwise body.
func Classify(raw string) Line {
	s := strings.ReplaceAll(raw, "**", "")
	s = strings.ReplaceAll(s, "*", "")
	s = strings.TrimSpace(s)

	switch {
	case strings.HasPrefix(s, "# "):
		return Line{Kind: KindHeading1, Text: strings.TrimSpace(s[2:])}
	case strings.HasPrefix(s, "## "):
		return Line{Kind: KindHeading2, Text: strings.TrimSpace(s[3:])}
	case strings.HasPrefix(s, "### "):
		return Line{Kind: KindHeading3, Text: strings.TrimSpace(s[4:])}
	case s == "":
		return Line{Kind: KindSpace}
	case strings.HasPrefix(s, "---"):
		return Line{Kind: KindRule}
	default:
		return Line{Kind: KindBody, Text: s}
	}
}

// Parse classifies every line of text.
func Parse(text string) []Line {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	raw := strings.Split(text, "\n")
	lines := make([]Line, len(raw))
	for i, r := range raw {
		lines[i] = Classify(r)
	}
	return lines
}

// Plain returns text unchanged for markdown or text display.
func Plain(text string) string { return text }

// printable drops runes that document fonts cannot draw: characters
// outside the Basic Multilingual Plane (emoji) and variation selectors.
func printable(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 0xFFFF || (r >= 0xFE00 && r <= 0xFE0F) || r == 0x200D {
			return -1
		}
		return r
	}, s)
}
