package classify

import "strings"

// Polarity tags a prose line as a positive rule, a negative rule, or neither.
type Polarity int

const (
	// Neutral means the line carries no rule marker.
	Neutral Polarity = iota
	// Positive marks a "do this" rule.
	Positive
	// Negative marks a "don't do this" rule.
	Negative
)

// String renders the polarity for logs and test failures.
func (p Polarity) String() string {
	switch p {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "neutral"
	}
}

// PolarityVocabulary holds the marker sets consulted when classifying a line.
// Glyph markers win over verb markers so an explicit ❌ overrides whatever
// verb the line happens to start with.
type PolarityVocabulary struct {
	NegativeGlyphs  []string
	PositiveGlyphs  []string
	NegativeMarkers []string
	PositiveMarkers []string
	NegativeVerbs   []string
	PositiveVerbs   []string
}

// DefaultPolarityVocabulary returns the marker sets observed across the
// documentation corpus this pipeline targets.
func DefaultPolarityVocabulary() PolarityVocabulary {
	return PolarityVocabulary{
		NegativeGlyphs:  []string{"❌", "🚫"},
		PositiveGlyphs:  []string{"✅", "✔️"},
		NegativeMarkers: []string{"**don't**", "**dont**", "**bad:**", "**bad**", "*don't*", "**incorrect**", "**wrong:**"},
		PositiveMarkers: []string{"**do**", "**good:**", "**good**", "*do*", "**correct**", "**right:**"},
		NegativeVerbs:   []string{"never", "avoid", "do not", "don't"},
		PositiveVerbs:   []string{"always", "prefer", "use"},
	}
}

// ClassifyLine determines the rule polarity of a single prose line using the
// default vocabulary.
func ClassifyLine(line string) Polarity {
	return ClassifyLineWith(line, DefaultPolarityVocabulary())
}

// ClassifyLineWith determines rule polarity against an explicit vocabulary.
// Only bullet or glyph-prefixed lines qualify; plain prose stays neutral.
func ClassifyLineWith(line string, vocab PolarityVocabulary) Polarity {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Neutral
	}

	bullet := false
	for _, prefix := range []string{"- ", "* ", "+ "} {
		if strings.HasPrefix(trimmed, prefix) {
			trimmed = strings.TrimSpace(trimmed[len(prefix):])
			bullet = true
			break
		}
	}

	if hasAnyPrefix(trimmed, vocab.NegativeGlyphs) {
		return Negative
	}
	if hasAnyPrefix(trimmed, vocab.PositiveGlyphs) {
		return Positive
	}

	lowered := strings.ToLower(trimmed)
	if hasAnyPrefix(lowered, vocab.NegativeMarkers) {
		return Negative
	}
	if hasAnyPrefix(lowered, vocab.PositiveMarkers) {
		return Positive
	}

	// Verb classification only applies to bullet lines so imperative prose
	// in the middle of a paragraph does not register as a rule.
	if !bullet {
		return Neutral
	}
	if startsWithVerb(lowered, vocab.NegativeVerbs) {
		return Negative
	}
	if startsWithVerb(lowered, vocab.PositiveVerbs) {
		return Positive
	}
	return Neutral
}

// RuleText strips the bullet prefix and any leading polarity glyph or marker
// from a classified line, leaving the rule statement itself.
func RuleText(line string) string {
	vocab := DefaultPolarityVocabulary()
	trimmed := strings.TrimSpace(line)
	for _, prefix := range []string{"- ", "* ", "+ "} {
		if strings.HasPrefix(trimmed, prefix) {
			trimmed = strings.TrimSpace(trimmed[len(prefix):])
			break
		}
	}
	glyphs := append(append([]string{}, vocab.NegativeGlyphs...), vocab.PositiveGlyphs...)
	for _, glyph := range glyphs {
		if strings.HasPrefix(trimmed, glyph) {
			return strings.TrimSpace(trimmed[len(glyph):])
		}
	}
	return trimmed
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if prefix != "" && strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func startsWithVerb(lowered string, verbs []string) bool {
	for _, verb := range verbs {
		if verb == "" {
			continue
		}
		if lowered == verb {
			return true
		}
		if strings.HasPrefix(lowered, verb) {
			rest := lowered[len(verb):]
			if len(rest) > 0 && (rest[0] == ' ' || rest[0] == ':' || rest[0] == ',') {
				return true
			}
		}
	}
	return false
}
