package prompt

import "strings"

// commentMarkers are the recognised line-comment prefixes. Recognition is
// marker-based rather than language-aware: a `#` line in a non-script
// document is still treated as a comment, and block comments are not
// recognised at all.
var commentMarkers = []string{"//", "#"}

// LastComment scans the document's lines from the end backward and returns
// the content of the bottom-most comment line, with its marker and
// surrounding whitespace stripped. The second return value is false when no
// line in the document qualifies.
func LastComment(lines []string) (string, bool) {
	for i := len(lines) - 1; i >= 0; i-- {
		trimmed := strings.TrimSpace(lines[i])
		for _, marker := range commentMarkers {
			if strings.HasPrefix(trimmed, marker) {
				return strings.TrimSpace(strings.TrimPrefix(trimmed, marker)), true
			}
		}
	}
	return "", false
}

// PreCursorText returns the document text from the start of the document up
// to the cursor. Lines are rejoined with newlines and the cursor's line is
// truncated at the cursor column. Out-of-range positions are clamped rather
// than rejected so a racing editor snapshot cannot fault the request.
func PreCursorText(lines []string, line, character int) string {
	if len(lines) == 0 || line < 0 {
		return ""
	}
	if line >= len(lines) {
		line = len(lines) - 1
		character = len(lines[line])
	}

	current := lines[line]
	if character < 0 {
		character = 0
	}
	if character > len(current) {
		character = len(current)
	}

	parts := make([]string, 0, line+1)
	parts = append(parts, lines[:line]...)
	parts = append(parts, current[:character])
	return strings.Join(parts, "\n")
}
