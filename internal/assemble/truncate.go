package assemble

import "strings"

// truncationMarker closes an artifact that exceeded its line budget.
const truncationMarker = "<!-- truncated: line budget reached -->"

// capLines enforces the artifact line cap. When the natural length exceeds
// the cap the output is cut at the cap and a blank line plus marker are
// appended, so a capped artifact is at most cap+2 lines. A cap of zero or
// below disables the check.
func capLines(lines []string, limit int) (string, bool) {
	if limit <= 0 || len(lines) <= limit {
		return joinLines(lines), false
	}
	capped := make([]string, 0, limit+2)
	capped = append(capped, lines[:limit]...)
	capped = append(capped, "", truncationMarker)
	return joinLines(capped), true
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
