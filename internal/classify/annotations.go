package classify

import "strings"

// annotationPrefixes are the interactive-annotation comment shapes stripped
// from code before it is shown downstream: compiler directives (// @errors),
// pointer annotations (// ^?), and cut markers (// ---cut---).
var annotationPrefixes = []string{
	"// @",
	"//@",
	"// ^?",
	"//^?",
	"// ---cut---",
	"// ---cut-before---",
	"// ---cut-after---",
}

// StripAnnotations removes interactive-annotation lines from a code block,
// returning the cleaned text. Regular comments survive; only directive-shaped
// lines are dropped. Trailing blank lines introduced by stripping are
// trimmed so line counts stay meaningful.
func StripAnnotations(code string) string {
	return StripAnnotationsWith(code, annotationPrefixes)
}

// StripAnnotationsWith strips lines matching an explicit prefix vocabulary.
func StripAnnotationsWith(code string, prefixes []string) string {
	if code == "" {
		return ""
	}
	lines := strings.Split(code, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if isAnnotationLine(line, prefixes) {
			continue
		}
		kept = append(kept, line)
	}
	for len(kept) > 0 && strings.TrimSpace(kept[len(kept)-1]) == "" {
		kept = kept[:len(kept)-1]
	}
	for len(kept) > 0 && strings.TrimSpace(kept[0]) == "" {
		kept = kept[1:]
	}
	return strings.Join(kept, "\n")
}

// CleanedLineCount returns the number of lines a code block occupies after
// annotation stripping. Empty cleaned blocks count zero.
func CleanedLineCount(code string) int {
	cleaned := StripAnnotations(code)
	if strings.TrimSpace(cleaned) == "" {
		return 0
	}
	return strings.Count(cleaned, "\n") + 1
}

func isAnnotationLine(line string, prefixes []string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range prefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}
