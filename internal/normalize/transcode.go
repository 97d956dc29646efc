package normalize

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// specialChars are escaped wherever they appear in engine markup text
// content, since the rendering templates evaluate the markup as a program.
const specialChars = "\\#[]$@*_`%~<>"

// ToEngineMarkup transcodes sanitized HTML into the typesetting engine's
// inline-command syntax: paragraphs become blank-line-separated blocks,
// bold/italic/underline/links become inline commands, and list items
// become "- "/"+ " prefixed lines.
func ToEngineMarkup(sanitized string) (string, error) {
	trimmed := strings.TrimSpace(sanitized)
	if trimmed == "" {
		return "", nil
	}

	// Plain text with no tags at all bypasses the DOM walk entirely but
	// still needs escaping, since templates eval() the result. Text that
	// already carries our own command vocabulary is the result of a prior
	// transcode (re-normalising stored content); pass it through so the
	// transcoder stays idempotent instead of re-escaping its own output.
	if !strings.Contains(trimmed, "<") {
		if looksLikeEngineMarkup(trimmed) {
			return trimmed, nil
		}
		return escapeMarkup(trimmed), nil
	}

	nodes, err := html.ParseFragment(strings.NewReader(trimmed), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, n := range nodes {
		walkNode(n, &out, false)
	}
	return cleanMarkup(out.String()), nil
}

// engineCommandMarkers are substrings that only ever appear in our own
// emitted markup, never in escaped plain text, since a literal "#" in
// source text is always escaped to "\#" before one of these could occur.
var engineCommandMarkers = []string{
	`#text(weight: "bold")[`, "#emph[", "#underline[", `#link("`, "#linebreak()",
}

func looksLikeEngineMarkup(s string) bool {
	for _, marker := range engineCommandMarkers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

// escapeMarkup is safe to apply more than once: a rune already escaped
// (preceded by an unescaped backslash) is copied through verbatim rather
// than escaped again.
func escapeMarkup(text string) string {
	runes := []rune(text)
	var out strings.Builder
	out.Grow(len(text))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' && i+1 < len(runes) && strings.ContainsRune(specialChars, runes[i+1]) {
			out.WriteRune(r)
			out.WriteRune(runes[i+1])
			i++
			continue
		}
		if strings.ContainsRune(specialChars, r) {
			out.WriteByte('\\')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func childText(n *html.Node, inList bool) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkNode(c, &b, inList)
	}
	return b.String()
}

func walkNode(n *html.Node, out *strings.Builder, inList bool) {
	switch n.Type {
	case html.TextNode:
		if inList && strings.TrimSpace(n.Data) == "" {
			return
		}
		out.WriteString(escapeMarkup(n.Data))
	case html.ElementNode:
		switch n.Data {
		case "p":
			inner := strings.TrimSpace(childText(n, false))
			if inner != "" && inner != "#linebreak()" {
				out.WriteString(inner)
				out.WriteString("\n\n")
			}
		case "strong", "b":
			inner := childText(n, inList)
			if inner != "" {
				out.WriteString("#text(weight: \"bold\")[")
				out.WriteString(inner)
				out.WriteByte(']')
			}
		case "em", "i":
			inner := childText(n, inList)
			if inner != "" {
				out.WriteString("#emph[")
				out.WriteString(inner)
				out.WriteByte(']')
			}
		case "u":
			inner := childText(n, inList)
			if inner != "" {
				out.WriteString("#underline[")
				out.WriteString(inner)
				out.WriteByte(']')
			}
		case "a":
			href := attrValue(n, "href")
			inner := childText(n, inList)
			if inner != "" {
				out.WriteString("#link(\"")
				out.WriteString(strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(href))
				out.WriteString("\")[")
				out.WriteString(inner)
				out.WriteByte(']')
			}
		case "ul":
			writeList(n, out, "- ")
		case "ol":
			writeList(n, out, "+ ")
		case "br":
			out.WriteString("#linebreak()\n")
		default:
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walkNode(c, out, inList)
			}
		}
	}
}

func writeList(n *html.Node, out *strings.Builder, prefix string) {
	emittedAny := false
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		inner := strings.TrimSpace(childText(c, true))
		if inner == "" {
			continue
		}
		out.WriteString(prefix)
		out.WriteString(inner)
		out.WriteByte('\n')
		emittedAny = true
	}
	if emittedAny {
		out.WriteByte('\n')
	}
}

func attrValue(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// cleanMarkup collapses three-or-more consecutive newlines down to two and
// trims leading/trailing whitespace.
func cleanMarkup(s string) string {
	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(s)
}
