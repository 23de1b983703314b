package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUID_Deterministic(t *testing.T) {
	a := UUID("go-docpack:artifact:reference")
	b := UUID("go-docpack:artifact:reference")
	if a != b {
		t.Fatalf("expected stable uuid, got %s vs %s", a, b)
	}
	if a == uuid.Nil {
		t.Fatal("expected non-nil uuid")
	}
}

func TestUUID_EmptyKey(t *testing.T) {
	if got := UUID("   "); got != uuid.Nil {
		t.Fatalf("expected nil uuid for blank key, got %s", got)
	}
}

func TestArtifactUUID_CaseInsensitive(t *testing.T) {
	if ArtifactUUID("Reference") != ArtifactUUID("reference") {
		t.Fatal("expected artifact ids to ignore case")
	}
}

func TestBuildUUID_VariesByCommit(t *testing.T) {
	a := BuildUUID("github.com/acme/docs", "abc123")
	b := BuildUUID("github.com/acme/docs", "def456")
	if a == b {
		t.Fatal("expected different builds to produce different ids")
	}
}
