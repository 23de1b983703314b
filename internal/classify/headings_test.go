package classify

import "testing"

func TestIsGenericHeading(t *testing.T) {
	generic := []string{"Example", "examples", "Basic Usage", "**Notes**", "`Syntax`", "Description:", ""}
	for _, heading := range generic {
		if !IsGenericHeading(heading) {
			t.Fatalf("expected %q to be generic", heading)
		}
	}

	specific := []string{"Discriminated Unions", "Generics", "Error Handling"}
	for _, heading := range specific {
		if IsGenericHeading(heading) {
			t.Fatalf("expected %q to be specific", heading)
		}
	}
}

func TestResolveHeading(t *testing.T) {
	if got := ResolveHeading("Examples", "Mapped Types"); got != "Mapped Types" {
		t.Fatalf("generic heading should resolve to parent, got %q", got)
	}
	if got := ResolveHeading("Mapped Types", "Type Manipulation"); got != "Mapped Types" {
		t.Fatalf("specific heading should stand, got %q", got)
	}
	// No parent available: better a generic title than none.
	if got := ResolveHeading("Usage", ""); got != "Usage" {
		t.Fatalf("expected raw heading fallback, got %q", got)
	}
}
