// Package daterange formats start/end date pairs the way every format
// adapter needs to: as a single human-readable string.
package daterange

import "strings"

// Format combines a start and end date per the canonical rule: both present
// joins as "<start> - <end>"; only a start becomes "<start> - Present";
// only an end returns just "<end>" (the original's "- <end>" form is a
// historical bug that is not reproduced here); neither present is "".
// Whitespace-only input counts as absent.
func Format(start, end string) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)

	switch {
	case start != "" && end != "":
		return start + " - " + end
	case start != "":
		return start + " - Present"
	case end != "":
		return end
	default:
		return ""
	}
}
