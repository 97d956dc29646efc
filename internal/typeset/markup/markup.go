// Package markup interprets the engine markup vocabulary the rich-text
// normaliser produces (internal/normalize) back into styled text runs a
// PDF or raster renderer can lay out, without needing the literal
// typesetting-engine program the markup's syntax was designed to embed in.
package markup

import "strings"

// Run is one contiguous span of text sharing the same inline styling.
type Run struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
	LinkHref  string
}

// Line is either a plain paragraph line or one list-item line.
type Line struct {
	Runs   []Run
	Bullet bool
}

// Parse turns engine markup into a sequence of lines ready for layout.
// Blank lines between paragraphs are dropped; paragraphs, list items, and
// explicit line breaks all become separate Lines.
func Parse(source string) []Line {
	var lines []Line
	for _, block := range strings.Split(source, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		for _, raw := range strings.Split(block, "\n") {
			bullet := false
			switch {
			case strings.HasPrefix(raw, "- "):
				bullet = true
				raw = raw[2:]
			case strings.HasPrefix(raw, "+ "):
				bullet = true
				raw = raw[2:]
			}
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			runs := parseRuns(raw, false, false, false, "")
			if len(runs) == 0 {
				continue
			}
			lines = append(lines, Line{Runs: runs, Bullet: bullet})
		}
	}
	return lines
}

const (
	boldOpen      = `#text(weight: "bold")[`
	emphOpen      = "#emph["
	underlineOpen = "#underline["
	linkOpen      = `#link("`
	linebreak     = "#linebreak()"
)

func parseRuns(s string, bold, italic, underline bool, href string) []Run {
	var runs []Run
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			runs = append(runs, Run{Text: buf.String(), Bold: bold, Italic: italic, Underline: underline, LinkHref: href})
			buf.Reset()
		}
	}

	i := 0
	for i < len(s) {
		switch {
		case s[i] == '\\' && i+1 < len(s):
			buf.WriteByte(s[i+1])
			i += 2
		case strings.HasPrefix(s[i:], boldOpen):
			flush()
			inner, next := extractBracketed(s, i+len(boldOpen))
			runs = append(runs, parseRuns(inner, true, italic, underline, href)...)
			i = next
		case strings.HasPrefix(s[i:], emphOpen):
			flush()
			inner, next := extractBracketed(s, i+len(emphOpen))
			runs = append(runs, parseRuns(inner, bold, true, underline, href)...)
			i = next
		case strings.HasPrefix(s[i:], underlineOpen):
			flush()
			inner, next := extractBracketed(s, i+len(underlineOpen))
			runs = append(runs, parseRuns(inner, bold, italic, true, href)...)
			i = next
		case strings.HasPrefix(s[i:], linkOpen):
			flush()
			linkHref, afterQuote := extractQuoted(s, i+len(linkOpen))
			if afterQuote < len(s) && s[afterQuote] == '[' {
				inner, next := extractBracketed(s, afterQuote+1)
				runs = append(runs, parseRuns(inner, bold, italic, underline, linkHref)...)
				i = next
			} else {
				i = afterQuote
			}
		case strings.HasPrefix(s[i:], linebreak):
			flush()
			runs = append(runs, Run{Text: "\n", Bold: bold, Italic: italic, Underline: underline, LinkHref: href})
			i += len(linebreak)
		default:
			buf.WriteByte(s[i])
			i++
		}
	}
	flush()
	return runs
}

// extractBracketed reads from s[open:] (the character after an opening
// "["), returning the bracket-balanced inner content and the index just
// past the matching "]". An unterminated bracket returns the remainder.
func extractBracketed(s string, open int) (inner string, next int) {
	depth := 1
	i := open
	for i < len(s) {
		switch {
		case s[i] == '\\' && i+1 < len(s):
			i += 2
		case s[i] == '[':
			depth++
			i++
		case s[i] == ']':
			depth--
			i++
			if depth == 0 {
				return s[open : i-1], i
			}
		default:
			i++
		}
	}
	return s[open:], i
}

// extractQuoted reads a double-quoted string starting at s[open] (the
// opening quote), returning its unescaped content and the index just past
// the closing quote.
func extractQuoted(s string, open int) (value string, next int) {
	if open >= len(s) || s[open] != '"' {
		return "", open
	}
	var b strings.Builder
	i := open + 1
	for i < len(s) {
		if s[i] == '\\' && i+1 < len(s) {
			b.WriteByte(s[i+1])
			i += 2
			continue
		}
		if s[i] == '"' {
			i++
			break
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String(), i
}
