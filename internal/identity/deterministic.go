package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// ArtifactUUID identifies an artifact by its configured name.
func ArtifactUUID(name string) uuid.UUID {
	return UUID("go-docpack:artifact:" + strings.ToLower(strings.TrimSpace(name)))
}

// BuildUUID identifies a build by the source revision it was produced from
// and the hash of its manifest content, so identical builds share an id.
func BuildUUID(sourceRepo, sourceCommit string) uuid.UUID {
	return UUID("go-docpack:build:" + strings.TrimSpace(sourceRepo) + ":" + strings.TrimSpace(sourceCommit))
}
