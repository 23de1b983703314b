package classify

import "testing"

func TestClassifyLine_Verbs(t *testing.T) {
	cases := []struct {
		line string
		want Polarity
	}{
		{"- Never use `any`", Negative},
		{"- Prefer `unknown`", Positive},
		{"- Avoid type assertions in application code", Negative},
		{"- Always enable strict mode", Positive},
		{"- Do not export mutable state", Negative},
		{"- Don't reach into internal packages", Negative},
		{"- Use readonly arrays instead of mutation", Positive},
		{"- The compiler infers this automatically", Neutral},
		{"Never used as a bullet, stays neutral", Neutral},
		{"", Neutral},
	}

	for _, tc := range cases {
		if got := ClassifyLine(tc.line); got != tc.want {
			t.Fatalf("ClassifyLine(%q) = %s, want %s", tc.line, got, tc.want)
		}
	}
}

func TestClassifyLine_GlyphOverridesVerb(t *testing.T) {
	// The glyph wins regardless of verb content.
	if got := ClassifyLine("- ❌ Always mutate shared state"); got != Negative {
		t.Fatalf("expected glyph to force negative, got %s", got)
	}
	if got := ClassifyLine("✅ Never skip validation"); got != Positive {
		t.Fatalf("expected glyph to force positive, got %s", got)
	}
}

func TestClassifyLine_Markers(t *testing.T) {
	if got := ClassifyLine("**Don't** ship debug builds"); got != Negative {
		t.Fatalf("bold don't marker should classify negative, got %s", got)
	}
	if got := ClassifyLine("- **Good:** narrow the type first"); got != Positive {
		t.Fatalf("good marker should classify positive, got %s", got)
	}
}

func TestRuleText(t *testing.T) {
	if got := RuleText("- ❌ Always mutate shared state"); got != "Always mutate shared state" {
		t.Fatalf("RuleText stripped wrong prefix: %q", got)
	}
	if got := RuleText("- Never use `any`"); got != "Never use `any`" {
		t.Fatalf("RuleText should keep verb rules intact: %q", got)
	}
}

func TestClassifyLineWith_CustomVocabulary(t *testing.T) {
	vocab := PolarityVocabulary{
		NegativeVerbs: []string{"forbid"},
		PositiveVerbs: []string{"require"},
	}
	if got := ClassifyLineWith("- Forbid global registries", vocab); got != Negative {
		t.Fatalf("custom negative verb not honoured, got %s", got)
	}
	if got := ClassifyLineWith("- Never use `any`", vocab); got != Neutral {
		t.Fatalf("default verbs should not leak into custom vocabulary, got %s", got)
	}
}
