package typeset

import (
	"fmt"
	"strings"
)

// Diagnostic is one compiler complaint against a virtual source file: the
// file it was found in, the byte offset it points at, and the message.
type Diagnostic struct {
	VirtualPath string
	Offset      int
	Message     string
}

// Flatten renders diagnostics as "<virtual-path>:<line>: <source-excerpt>:
// <message>" lines, one per diagnostic, joined by newlines. The line
// number is 1-based and computed by counting newlines in source before
// Offset; the excerpt is the full text of that line, trimmed.
func Flatten(source string, diags []Diagnostic) string {
	lines := make([]string, 0, len(diags))
	for _, d := range diags {
		line, excerpt := locate(source, d.Offset)
		lines = append(lines, fmt.Sprintf("%s:%d: %s: %s", d.VirtualPath, line, excerpt, d.Message))
	}
	return strings.Join(lines, "\n")
}

// locate returns the 1-based line number containing offset and the
// trimmed text of that line.
func locate(source string, offset int) (line int, excerpt string) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(source) {
		offset = len(source)
	}
	line = 1 + strings.Count(source[:offset], "\n")

	start := strings.LastIndexByte(source[:offset], '\n') + 1
	end := len(source)
	if rel := strings.IndexByte(source[offset:], '\n'); rel >= 0 {
		end = offset + rel
	}
	excerpt = strings.TrimSpace(source[start:end])
	return line, excerpt
}
