// Package docpack condenses a markdown documentation tree into small,
// line-budgeted reference artifacts and keeps them provably in sync with
// their sources through a content-addressed manifest.
package docpack

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/goliatone/go-docpack/internal/assemble"
	"github.com/goliatone/go-docpack/internal/logging"
	"github.com/goliatone/go-docpack/internal/manifest"
	"github.com/goliatone/go-docpack/internal/markdown"
	"github.com/goliatone/go-docpack/internal/runtimeconfig"
	"github.com/goliatone/go-docpack/pkg/interfaces"
)

// ErrManifestMissing is returned by Check when no manifest has been built.
var ErrManifestMissing = manifest.ErrManifestMissing

// ErrManifestInvalid is returned by Check when the persisted manifest fails
// parsing or schema validation.
var ErrManifestInvalid = manifest.ErrManifestInvalid

// Pipeline wires the loader, assembler, and manifest subsystems into the
// build / check / diff operations.
type Pipeline struct {
	cfg      Config
	provider interfaces.LoggerProvider
	docs     fs.FS
	loader   *markdown.Loader
	logger   interfaces.Logger
}

var _ interfaces.PipelineService = (*Pipeline)(nil)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLoggerProvider installs the logging provider used across subsystems.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(p *Pipeline) {
		p.provider = provider
	}
}

// WithDocsFS overrides the documentation filesystem, which otherwise is the
// configured docs root on disk. Tests drive the pipeline through fstest.
func WithDocsFS(docs fs.FS) Option {
	return func(p *Pipeline) {
		p.docs = docs
	}
}

// New validates the configuration and constructs a ready Pipeline.
func New(cfg Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Pipeline{cfg: cfg}
	for _, opt := range opts {
		opt(p)
	}
	if p.docs == nil {
		p.docs = os.DirFS(cfg.DocsRoot)
	}

	p.logger = logging.ModuleLogger(p.provider, "")
	p.loader = markdown.NewLoader(p.docs, markdown.LoaderConfig{
		BasePath:  cfg.DocsRoot,
		Extension: cfg.Extension,
	})
	return p, nil
}

func (p *Pipeline) assembler() *assemble.Assembler {
	opts := []assemble.Option{
		assemble.WithLogger(logging.AssembleLogger(p.provider)),
	}
	for name, content := range p.cfg.StaticTemplates() {
		opts = append(opts, assemble.WithStaticContent(name, content))
	}
	return assemble.New(p.loader, opts...)
}

func (p *Pipeline) store() *manifest.Store {
	return manifest.NewStore(p.cfg.ManifestPath)
}

// Build regenerates every configured artifact, writes them once under the
// output directory, and replaces the manifest wholesale.
func (p *Pipeline) Build(ctx context.Context) (*interfaces.BuildReport, error) {
	artifacts, err := p.assembler().AssembleAll(ctx, p.cfg.OutputSpecs())
	if err != nil {
		return nil, err
	}

	manifestLogger := logging.ManifestLogger(p.provider)

	writer := assemble.NewWriter(p.cfg.OutputDir, logging.AssembleLogger(p.provider))
	if err := writer.WriteAll(artifacts); err != nil {
		return nil, err
	}

	builder := manifest.NewBuilder(p.docs, p.cfg.OutputDir,
		manifest.WithBuilderLogger(manifestLogger))
	m, err := builder.Build(artifacts, p.cfg.SourceRepo, p.cfg.SourceCommit)
	if err != nil {
		return nil, err
	}
	if err := p.store().Save(m); err != nil {
		return nil, err
	}

	p.logger.Info("docpack.build.completed",
		"artifacts", len(artifacts),
		"sources", len(m.Sources),
		"manifest", p.cfg.ManifestPath)

	return &interfaces.BuildReport{
		Artifacts:    artifacts,
		ManifestPath: p.cfg.ManifestPath,
		BuildID:      m.BuildID,
	}, nil
}

// Check loads the persisted manifest and classifies drift against the
// current source tree. A missing or invalid manifest is a fatal error.
func (p *Pipeline) Check(ctx context.Context) (*interfaces.DriftSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := p.store().Load()
	if err != nil {
		return nil, err
	}

	detector := manifest.NewDetector(p.docs, p.loader, logging.ManifestLogger(p.provider))
	report, err := detector.Detect(m, p.cfg.SourcePatterns())
	if err != nil {
		return nil, err
	}

	return &interfaces.DriftSummary{
		Changed:         report.Changed,
		Added:           report.Added,
		Removed:         report.Removed,
		AffectedOutputs: report.AffectedOutputs,
		HasDrift:        report.HasDrift,
	}, nil
}

// Diff assembles every artifact in memory and classifies each against the
// persisted manifest without writing anything. When no manifest exists every
// artifact reports as new.
func (p *Pipeline) Diff(ctx context.Context) ([]interfaces.ArtifactChange, error) {
	artifacts, err := p.assembler().AssembleAll(ctx, p.cfg.OutputSpecs())
	if err != nil {
		return nil, err
	}

	m, err := p.store().Load()
	if err != nil && !errors.Is(err, manifest.ErrManifestMissing) {
		return nil, err
	}

	diffs := manifest.CompareArtifacts(m, artifacts)
	changes := make([]interfaces.ArtifactChange, 0, len(diffs))
	for _, diff := range diffs {
		changes = append(changes, interfaces.ArtifactChange{
			Name:   diff.Name,
			Path:   diff.Path,
			Status: string(diff.Status),
		})
	}
	return changes, nil
}

// DefaultConfig returns the conventional configuration defaults.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfigFile reads a YAML configuration file over the defaults.
func LoadConfigFile(path string) (Config, error) {
	return runtimeconfig.LoadFile(path)
}
