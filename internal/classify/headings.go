package classify

import "strings"

// defaultGenericHeadings lists section titles that carry no useful context on
// their own. Compared case-insensitively after markup stripping.
var defaultGenericHeadings = []string{
	"example",
	"examples",
	"usage",
	"basic usage",
	"syntax",
	"description",
	"overview",
	"notes",
	"note",
	"details",
	"see also",
	"parameters",
	"returns",
}

// IsGenericHeading reports whether the heading belongs to the default set of
// meaningless section labels, so callers can fall back to the parent heading.
func IsGenericHeading(heading string) bool {
	return IsGenericHeadingIn(heading, defaultGenericHeadings)
}

// IsGenericHeadingIn checks the heading against an explicit label set.
func IsGenericHeadingIn(heading string, labels []string) bool {
	normalized := normalizeHeading(heading)
	if normalized == "" {
		return true
	}
	for _, label := range labels {
		if normalized == label {
			return true
		}
	}
	return false
}

// ResolveHeading returns the heading an extracted rule or example should be
// filed under: the section's own heading unless it is generic, in which case
// the parent heading is used. Falls back to the raw heading when the parent
// is empty so the caller never receives nothing for a titled section.
func ResolveHeading(heading, parent string) string {
	if !IsGenericHeading(heading) {
		return strings.TrimSpace(heading)
	}
	if trimmed := strings.TrimSpace(parent); trimmed != "" {
		return trimmed
	}
	return strings.TrimSpace(heading)
}

// normalizeHeading lowercases the heading and strips emphasis and code markup
// so "## **Examples**" and "examples" compare equal.
func normalizeHeading(heading string) string {
	cleaned := strings.TrimSpace(heading)
	cleaned = strings.Trim(cleaned, "#")
	replacer := strings.NewReplacer("*", "", "_", "", "`", "", ":", "")
	cleaned = replacer.Replace(cleaned)
	return strings.ToLower(strings.TrimSpace(cleaned))
}
