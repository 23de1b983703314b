package markdown

import (
	"strings"
	"testing"
)

func TestExtractSections_ParentResolution(t *testing.T) {
	body := strings.Join([]string{
		"# A",
		"alpha",
		"## B",
		"beta",
		"### C",
		"gamma",
		"## D",
		"delta",
		"### E",
		"epsilon",
	}, "\n")

	sections := ExtractSections([]byte(body))
	if len(sections) != 5 {
		t.Fatalf("expected 5 sections, got %d", len(sections))
	}

	byHeading := map[string]int{}
	for i, s := range sections {
		byHeading[s.Heading] = i
	}

	c := sections[byHeading["C"]]
	if c.Parent != "B" {
		t.Fatalf("C.Parent = %q, want B", c.Parent)
	}
	// The intervening H2 "D" invalidates the stale H3 entry, so E's parent
	// is D, never B.
	e := sections[byHeading["E"]]
	if e.Parent != "D" {
		t.Fatalf("E.Parent = %q, want D", e.Parent)
	}
	b := sections[byHeading["B"]]
	if b.Parent != "A" {
		t.Fatalf("B.Parent = %q, want A", b.Parent)
	}
	a := sections[byHeading["A"]]
	if a.Parent != "" || a.Level != 1 {
		t.Fatalf("A should be a root section, got parent %q level %d", a.Parent, a.Level)
	}
}

func TestExtractSections_Prologue(t *testing.T) {
	sections := ExtractSections([]byte("intro line\n\n# First\nbody"))
	if len(sections) != 2 {
		t.Fatalf("expected prologue + section, got %d", len(sections))
	}
	if sections[0].Heading != "" || sections[0].Level != 0 || sections[0].Parent != "" {
		t.Fatalf("prologue not empty-headed: %+v", sections[0])
	}
	if sections[0].Body[0] != "intro line" {
		t.Fatalf("prologue body lost: %+v", sections[0].Body)
	}
}

func TestExtractSections_NoHeadings(t *testing.T) {
	sections := ExtractSections([]byte("just prose\nmore prose"))
	if len(sections) != 1 {
		t.Fatalf("expected a single section, got %d", len(sections))
	}
	if sections[0].Level != 0 || sections[0].Heading != "" {
		t.Fatalf("zero-heading document should yield one level-0 section: %+v", sections[0])
	}
}

func TestExtractSections_HeadingInsideFenceIgnored(t *testing.T) {
	body := strings.Join([]string{
		"# Real",
		"```sh",
		"# not a heading",
		"echo hi",
		"```",
		"after",
	}, "\n")

	sections := ExtractSections([]byte(body))
	if len(sections) != 1 {
		t.Fatalf("fence content spawned sections: %d", len(sections))
	}
	if len(sections[0].Code) != 1 {
		t.Fatalf("expected one code block, got %d", len(sections[0].Code))
	}
	if sections[0].Code[0].Text != "# not a heading\necho hi" {
		t.Fatalf("code block content mismatch: %q", sections[0].Code[0].Text)
	}
}

func TestSplitFences_UnterminatedFence(t *testing.T) {
	// An opening fence without a closing marker swallows the remainder as
	// code. Known limitation, asserted so it never silently changes.
	prose, blocks := splitFences([]string{"before", "```go", "x := 1", "y := 2"})
	if len(prose) != 1 || prose[0] != "before" {
		t.Fatalf("prose corrupted by unterminated fence: %#v", prose)
	}
	if len(blocks) != 1 || blocks[0].Lines != 2 {
		t.Fatalf("unterminated fence not captured as code: %#v", blocks)
	}
}

func TestParseFenceInfo(t *testing.T) {
	lang, annotated := parseFenceInfo("```ts twoslash")
	if lang != "ts" || !annotated {
		t.Fatalf("got lang=%q annotated=%v", lang, annotated)
	}
	lang, annotated = parseFenceInfo("```")
	if lang != "" || annotated {
		t.Fatalf("bare fence should have no info, got %q %v", lang, annotated)
	}
}

func TestCodeBlockLineCountInvariant(t *testing.T) {
	_, blocks := splitFences([]string{"```ts", "one", "```"})
	if len(blocks) != 1 || blocks[0].Lines != 1 {
		t.Fatalf("single-line block must count 1, got %#v", blocks)
	}
}
