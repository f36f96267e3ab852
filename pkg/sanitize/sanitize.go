package sanitize

import "strings"

// nonCodePrefixes are the line prefixes treated as commentary or prose.
// The list is a heuristic, not a parser: a statement that genuinely starts
// with `*` is dropped too, and fenced code blocks get no special handling.
var nonCodePrefixes = []string{
	"#",
	"//",
	"/*",
	"*",
	"'''",
	`"""`,
}

// ExtractCode filters a raw model response down to the lines that look like
// code. Lines that are blank after trimming, or that start with one of the
// known non-code markers, are discarded; everything else is kept verbatim.
// The surviving lines are rejoined with newlines and the result is trimmed
// as a whole. Applying ExtractCode to its own output is a no-op.
func ExtractCode(raw string) string {
	lines := strings.Split(raw, "\n")
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if hasNonCodePrefix(trimmed) {
			continue
		}
		kept = append(kept, line)
	}

	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func hasNonCodePrefix(trimmed string) bool {
	for _, prefix := range nonCodePrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}
