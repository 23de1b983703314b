package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	// ErrManifestMissing is returned when a drift check is requested but no
	// manifest has been persisted.
	ErrManifestMissing = errors.New("manifest: file not found")
	// ErrManifestInvalid is returned when the persisted manifest fails JSON
	// parsing or schema validation.
	ErrManifestInvalid = errors.New("manifest: invalid content")
)

// manifestSchema constrains the persisted document before it is trusted by a
// drift check. Structural problems are fatal, never papered over.
const manifestSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version", "sourceRepo", "sourceCommit", "buildDate", "sources", "outputs"],
  "properties": {
    "version": {"type": "integer", "minimum": 1},
    "buildId": {"type": "string"},
    "sourceRepo": {"type": "string"},
    "sourceCommit": {"type": "string"},
    "buildDate": {"type": "string"},
    "sources": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["hash", "feedsInto"],
        "properties": {
          "hash": {"type": "string", "pattern": "^[0-9a-f]{64}$"},
          "feedsInto": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "outputs": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["hash", "lines", "generatedFrom"],
        "properties": {
          "hash": {"type": "string", "pattern": "^[0-9a-f]{64}$"},
          "lines": {"type": "integer", "minimum": 0},
          "generatedFrom": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func compiled() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("manifest.json", strings.NewReader(manifestSchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("manifest.json")
	})
	return compiledSchema, schemaErr
}

// Store persists manifests as JSON at a fixed path.
type Store struct {
	path string
}

// NewStore creates a Store writing to path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the manifest location on disk.
func (s *Store) Path() string {
	return s.path
}

// Save writes the manifest, replacing any previous one. Entry sets are
// sorted first so identical builds produce identical bytes.
func (s *Store) Save(m *Manifest) error {
	if m == nil {
		return fmt.Errorf("manifest: nothing to save")
	}
	m.normalize()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("manifest: marshal: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("manifest: create dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("manifest: write %s: %w", s.path, err)
	}
	return nil
}

// Load reads and validates the persisted manifest. A missing file returns
// ErrManifestMissing; malformed or schema-violating content returns
// ErrManifestInvalid.
func (s *Store) Load() (*Manifest, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestMissing, s.path)
		}
		return nil, fmt.Errorf("manifest: read %s: %w", s.path, err)
	}
	return Parse(data)
}

// Parse validates raw manifest bytes against the embedded schema and
// unmarshals them.
func Parse(data []byte) (*Manifest, error) {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestInvalid, err)
	}

	schema, err := compiled()
	if err != nil {
		return nil, fmt.Errorf("manifest: compile schema: %w", err)
	}
	if err := schema.Validate(decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestInvalid, err)
	}

	m := New()
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestInvalid, err)
	}
	if m.Sources == nil {
		m.Sources = map[string]SourceEntry{}
	}
	if m.Outputs == nil {
		m.Outputs = map[string]OutputEntry{}
	}
	return m, nil
}
