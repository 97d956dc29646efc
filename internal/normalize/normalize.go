package normalize

import "strings"

// emptyPlaceholders are the empty-editor states TipTap-style editors emit
// for a field the author never typed into; they normalize to "".
var emptyPlaceholders = []string{"<p></p>", "<p><br></p>", "<p>&nbsp;</p>"}

// RichText sanitizes untrusted HTML and transcodes the surviving subset to
// engine markup in one pass. It is idempotent: feeding its own output back
// in returns the same string, since engine markup contains no raw `<`.
func RichText(html string) (string, error) {
	trimmed := strings.TrimSpace(html)
	for _, placeholder := range emptyPlaceholders {
		if trimmed == placeholder {
			return "", nil
		}
	}

	// Text with no tags at all has nothing for the sanitiser to prune;
	// skip it so re-serialising through goquery can't introduce HTML
	// entity escaping (e.g. "&" -> "&amp;") into a link href already
	// embedded in a prior transcode's output.
	if !strings.Contains(trimmed, "<") {
		return ToEngineMarkup(trimmed)
	}

	sanitized, err := SanitizeHTML(trimmed)
	if err != nil {
		return "", err
	}
	return ToEngineMarkup(sanitized)
}
