package manifest

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/goliatone/go-docpack/internal/identity"
	"github.com/goliatone/go-docpack/internal/logging"
	"github.com/goliatone/go-docpack/pkg/interfaces"
)

// Builder assembles a fresh manifest from the artifacts of one build.
type Builder struct {
	sources   fs.FS
	outputDir string
	logger    interfaces.Logger
	now       func() time.Time
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithBuilderLogger injects the manifest logger.
func WithBuilderLogger(logger interfaces.Logger) BuilderOption {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithClock overrides the build timestamp source.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// NewBuilder constructs a Builder. Source files are hashed through the
// provided filesystem; artifact files are hashed from outputDir on disk.
func NewBuilder(sources fs.FS, outputDir string, opts ...BuilderOption) *Builder {
	b := &Builder{
		sources:   sources,
		outputDir: outputDir,
		logger:    logging.NoOp(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build hashes every distinct source and every written artifact into a new
// manifest. An output file missing from disk drops that entry with a warning
// rather than failing the build.
func (b *Builder) Build(artifacts []*interfaces.Artifact, sourceRepo, sourceCommit string) (*Manifest, error) {
	m := New()
	m.SourceRepo = sourceRepo
	m.SourceCommit = sourceCommit
	m.BuildDate = b.now().UTC()
	m.BuildID = identity.BuildUUID(sourceRepo, sourceCommit).String()

	for _, artifact := range artifacts {
		b.recordOutput(m, artifact)
		for _, src := range artifact.Sources {
			b.recordSource(m, src, artifact.Name)
		}
	}

	m.normalize()
	return m, nil
}

func (b *Builder) recordSource(m *Manifest, path, artifactName string) {
	entry, seen := m.Sources[path]
	if !seen {
		data, err := fs.ReadFile(b.sources, path)
		if err != nil {
			b.logger.Warn("manifest.source.unhashable", "path", path, "error", err)
			return
		}
		entry.Hash = HashBytes(data)
	}
	entry.FeedsInto = append(entry.FeedsInto, artifactName)
	m.Sources[path] = entry
}

func (b *Builder) recordOutput(m *Manifest, artifact *interfaces.Artifact) {
	path := filepath.Join(b.outputDir, filepath.FromSlash(artifact.Path))
	data, err := os.ReadFile(path)
	if err != nil {
		b.logger.Warn("manifest.output.missing", "artifact", artifact.Name, "path", path, "error", err)
		return
	}

	generatedFrom := artifact.Sources
	if artifact.Template {
		generatedFrom = []string{TemplateSentinel}
	}
	if generatedFrom == nil {
		generatedFrom = []string{}
	}

	m.Outputs[artifact.Path] = OutputEntry{
		Hash:          HashBytes(data),
		Lines:         countLines(data),
		GeneratedFrom: generatedFrom,
	}
}

func countLines(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	n := 0
	for _, b := range data {
		if b == '\n' {
			n++
		}
	}
	if data[len(data)-1] != '\n' {
		n++
	}
	return n
}
