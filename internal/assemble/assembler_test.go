package assemble

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-docpack/internal/markdown"
	"github.com/goliatone/go-docpack/pkg/interfaces"
)

func testLoader(files map[string]string) *markdown.Loader {
	fsys := fstest.MapFS{}
	for path, content := range files {
		fsys[path] = &fstest.MapFile{Data: []byte(content)}
	}
	return markdown.NewLoader(fsys, markdown.LoaderConfig{BasePath: "."})
}

func guideSource(title string) string {
	var b strings.Builder
	b.WriteString("# " + title + "\n\n")
	for i := 0; i < 12; i++ {
		b.WriteString("A paragraph about " + title + ". More detail follows here.\n\n")
	}
	return b.String()
}

func TestAssemble_ReferenceArtifact(t *testing.T) {
	assembler := New(testLoader(map[string]string{
		"guides/narrowing.md": guideSource("Narrowing"),
		"guides/generics.md":  guideSource("Generics"),
	}))

	artifact, err := assembler.Assemble(context.Background(), interfaces.OutputSpec{
		Name:     "TypeScript Reference",
		Title:    "TypeScript Reference",
		Sources:  []string{"guides/*.md"},
		MaxLines: 30,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	if artifact.Lines() > 30 {
		t.Fatalf("expected at most 30 lines, got %d", artifact.Lines())
	}
	lines := strings.Split(strings.TrimRight(artifact.Content, "\n"), "\n")
	if lines[0] != "# TypeScript Reference" {
		t.Fatalf("expected title heading, got %q", lines[0])
	}
	if lines[1] != "" {
		t.Fatalf("expected blank line after title, got %q", lines[1])
	}
	want := []string{"guides/generics.md", "guides/narrowing.md"}
	if len(artifact.Sources) != len(want) {
		t.Fatalf("expected %d sources, got %v", len(want), artifact.Sources)
	}
	for i, path := range want {
		if artifact.Sources[i] != path {
			t.Fatalf("expected source %q at %d, got %q", path, i, artifact.Sources[i])
		}
	}
	if artifact.Path != "typescript-reference.md" {
		t.Fatalf("unexpected artifact path %q", artifact.Path)
	}
}

// sectionedSource builds a document with a fixed number of uniform sections
// so raw body line counts are predictable.
func sectionedSource(title, prefix string, sections int) string {
	var b strings.Builder
	b.WriteString("# " + title + "\n\n")
	for i := 0; i < sections; i++ {
		fmt.Fprintf(&b, "## %s topic %d\n\n", prefix, i)
		for j := 0; j < 10; j++ {
			fmt.Fprintf(&b, "%s point %d for topic %d explained in one sentence.\n\n", prefix, j, i)
		}
	}
	return b.String()
}

func TestAssemble_ProportionalDocumentBudgets(t *testing.T) {
	// 200 raw body lines against 100: the longer document should receive
	// roughly twice the output share of the shorter one.
	assembler := New(testLoader(map[string]string{
		"guides/long.md":  sectionedSource("Long", "Alpha", 10),
		"guides/short.md": sectionedSource("Short", "Beta", 5),
	}))

	artifact, err := assembler.Assemble(context.Background(), interfaces.OutputSpec{
		Name:     "reference",
		Sources:  []string{"guides/*.md"},
		MaxLines: 90,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if artifact.Lines() > 90 {
		t.Fatalf("expected at most 90 lines, got %d", artifact.Lines())
	}

	var aLines, bLines int
	for _, line := range strings.Split(artifact.Content, "\n") {
		switch {
		case strings.Contains(line, "Alpha"):
			aLines++
		case strings.Contains(line, "Beta"):
			bLines++
		}
	}
	if aLines == 0 || bLines == 0 {
		t.Fatalf("expected both documents represented, got alpha=%d beta=%d", aLines, bLines)
	}
	if aLines < 2*bLines-4 || aLines > 2*bLines+4 {
		t.Fatalf("expected roughly 2:1 split, got alpha=%d beta=%d", aLines, bLines)
	}
}

func TestAssemble_SkipsUnreadableSource(t *testing.T) {
	assembler := New(testLoader(map[string]string{
		"guides/narrowing.md": guideSource("Narrowing"),
	}))

	artifact, err := assembler.Assemble(context.Background(), interfaces.OutputSpec{
		Name:     "reference",
		Sources:  []string{"guides/missing.md", "guides/narrowing.md"},
		MaxLines: 20,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(artifact.Sources) != 1 || artifact.Sources[0] != "guides/narrowing.md" {
		t.Fatalf("expected single readable source, got %v", artifact.Sources)
	}
	if !strings.Contains(artifact.Content, "Narrowing") {
		t.Fatalf("expected surviving source content, got:\n%s", artifact.Content)
	}
}

func TestAssemble_ChecklistArtifact(t *testing.T) {
	source := "# Style Guide\n\n" +
		"- Always handle the error return.\n" +
		"- ❌ ignore context cancellation.\n" +
		"- ✅ propagate context to blocking calls.\n"

	assembler := New(testLoader(map[string]string{
		"rules/style.md": source,
	}))

	artifact, err := assembler.Assemble(context.Background(), interfaces.OutputSpec{
		Name:     "review-checklist",
		Title:    "Review Checklist",
		Sources:  []string{"rules/style.md"},
		MaxLines: 20,
		Kind:     interfaces.ArtifactChecklist,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if !strings.Contains(artifact.Content, "- ✅ propagate context to blocking calls.") {
		t.Fatalf("expected positive rule line, got:\n%s", artifact.Content)
	}
	if !strings.Contains(artifact.Content, "- ❌ ignore context cancellation.") {
		t.Fatalf("expected negative rule line, got:\n%s", artifact.Content)
	}
	if artifact.Lines() > 20 {
		t.Fatalf("expected at most 20 lines, got %d", artifact.Lines())
	}
}

func TestAssemble_TemplateArtifact(t *testing.T) {
	static := "# PR Template\n\n- [ ] Tests added\n- [ ] Docs updated\n"
	assembler := New(testLoader(nil), WithStaticContent("pr-template", static))

	artifact, err := assembler.Assemble(context.Background(), interfaces.OutputSpec{
		Name:     "pr-template",
		MaxLines: 50,
		Kind:     interfaces.ArtifactTemplate,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if artifact.Content != static {
		t.Fatalf("expected byte-for-byte static content, got:\n%s", artifact.Content)
	}
	if len(artifact.Sources) != 0 {
		t.Fatalf("expected no sources for template artifact, got %v", artifact.Sources)
	}
}

func TestAssemble_TemplateMissingContent(t *testing.T) {
	assembler := New(testLoader(nil))

	_, err := assembler.Assemble(context.Background(), interfaces.OutputSpec{
		Name:     "pr-template",
		MaxLines: 50,
		Kind:     interfaces.ArtifactTemplate,
	})
	if !errors.Is(err, ErrNoTemplate) {
		t.Fatalf("expected ErrNoTemplate, got %v", err)
	}
}

func TestAssemble_TruncationMarker(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 40; i++ {
		b.WriteString("line of static content\n")
	}
	assembler := New(testLoader(nil), WithStaticContent("big", b.String()))

	artifact, err := assembler.Assemble(context.Background(), interfaces.OutputSpec{
		Name:     "big",
		MaxLines: 10,
		Kind:     interfaces.ArtifactTemplate,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if !artifact.Truncated {
		t.Fatal("expected truncated artifact")
	}
	if artifact.Lines() != 12 {
		t.Fatalf("expected cap+2 lines, got %d", artifact.Lines())
	}
	lines := strings.Split(strings.TrimRight(artifact.Content, "\n"), "\n")
	if lines[len(lines)-1] != truncationMarker {
		t.Fatalf("expected truncation marker as last line, got %q", lines[len(lines)-1])
	}
	if lines[len(lines)-2] != "" {
		t.Fatalf("expected blank line before marker, got %q", lines[len(lines)-2])
	}
}

func TestAssemble_NameRequired(t *testing.T) {
	assembler := New(testLoader(nil))
	if _, err := assembler.Assemble(context.Background(), interfaces.OutputSpec{}); !errors.Is(err, ErrSpecNameRequired) {
		t.Fatalf("expected ErrSpecNameRequired, got %v", err)
	}
}

func TestAssembleAll_SpecOrder(t *testing.T) {
	assembler := New(
		testLoader(map[string]string{"guides/narrowing.md": guideSource("Narrowing")}),
		WithStaticContent("pr-template", "# PR Template\n"),
	)

	artifacts, err := assembler.AssembleAll(context.Background(), []interfaces.OutputSpec{
		{Name: "reference", Sources: []string{"guides/*.md"}, MaxLines: 20},
		{Name: "pr-template", MaxLines: 20, Kind: interfaces.ArtifactTemplate},
	})
	if err != nil {
		t.Fatalf("assemble all: %v", err)
	}
	if len(artifacts) != 2 {
		t.Fatalf("expected 2 artifacts, got %d", len(artifacts))
	}
	if artifacts[0].Name != "reference" || artifacts[1].Name != "pr-template" {
		t.Fatalf("expected spec order preserved, got %q, %q", artifacts[0].Name, artifacts[1].Name)
	}
}

func TestArtifactPath(t *testing.T) {
	cases := map[string]string{
		"TypeScript Reference": "typescript-reference.md",
		"review-checklist":     "review-checklist.md",
	}
	for name, want := range cases {
		if got := ArtifactPath(name); got != want {
			t.Fatalf("ArtifactPath(%q) = %q, want %q", name, got, want)
		}
	}
}
