package runtimeconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-docpack/pkg/interfaces"
)

var ErrDocsRootRequired = errors.New("docpack config: docs root is required")
var ErrOutputDirRequired = errors.New("docpack config: output directory is required")
var ErrManifestPathRequired = errors.New("docpack config: manifest path is required")
var ErrArtifactsRequired = errors.New("docpack config: at least one artifact is required")
var ErrArtifactNameRequired = errors.New("docpack config: artifact name is required")
var ErrArtifactNameDuplicate = errors.New("docpack config: artifact name is duplicated")
var ErrArtifactSourcesRequired = errors.New("docpack config: artifact sources are required")
var ErrArtifactMaxLinesInvalid = errors.New("docpack config: artifact max lines must be positive")
var ErrArtifactKindUnknown = errors.New("docpack config: artifact kind is invalid")
var ErrTemplateContentRequired = errors.New("docpack config: template artifact requires inline content")
var ErrLoggingLevelInvalid = errors.New("docpack config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("docpack config: logging format is invalid")

// Config aggregates the documentation pipeline's runtime settings. It is a
// plain data value passed explicitly into the pipeline entry point so the
// same logic can be driven by different documentation sets in tests.
type Config struct {
	// DocsRoot is the directory holding the source markdown tree.
	DocsRoot string `yaml:"docs_root"`
	// OutputDir receives the generated artifacts.
	OutputDir string `yaml:"output_dir"`
	// ManifestPath is where the integrity manifest is persisted.
	ManifestPath string `yaml:"manifest_path"`
	// SourceRepo and SourceCommit identify the documentation revision being
	// condensed; recorded verbatim in the manifest.
	SourceRepo   string `yaml:"source_repo"`
	SourceCommit string `yaml:"source_commit"`
	// Extension limits source discovery (defaults ".md").
	Extension string           `yaml:"extension"`
	Logging   LoggingConfig    `yaml:"logging"`
	Artifacts []ArtifactConfig `yaml:"artifacts"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Level  string   `yaml:"level"`
	Format string   `yaml:"format"`
	Focus  []string `yaml:"focus"`
}

// ArtifactConfig declares one output artifact.
type ArtifactConfig struct {
	Name     string   `yaml:"name"`
	Title    string   `yaml:"title"`
	Sources  []string `yaml:"sources"`
	MaxLines int      `yaml:"max_lines"`
	Kind     string   `yaml:"kind"`
	Lang     string   `yaml:"lang"`
	// Template holds inline static content for template-kind artifacts.
	Template string `yaml:"template"`
}

// DefaultConfig returns opinionated defaults for a conventional layout.
func DefaultConfig() Config {
	return Config{
		DocsRoot:     "docs",
		OutputDir:    "dist",
		ManifestPath: "dist/docs-manifest.json",
		Extension:    ".md",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadFile reads a YAML config file over the defaults.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("docpack config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("docpack config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.DocsRoot) == "" {
		return ErrDocsRootRequired
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return ErrOutputDirRequired
	}
	if strings.TrimSpace(cfg.ManifestPath) == "" {
		return ErrManifestPathRequired
	}
	if len(cfg.Artifacts) == 0 {
		return ErrArtifactsRequired
	}

	seen := map[string]struct{}{}
	for _, artifact := range cfg.Artifacts {
		name := strings.TrimSpace(artifact.Name)
		if name == "" {
			return ErrArtifactNameRequired
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %s", ErrArtifactNameDuplicate, name)
		}
		seen[name] = struct{}{}

		if artifact.MaxLines <= 0 {
			return fmt.Errorf("%w: %s", ErrArtifactMaxLinesInvalid, name)
		}

		kind := normalizeKind(artifact.Kind)
		switch kind {
		case interfaces.ArtifactReference, interfaces.ArtifactChecklist:
			if len(artifact.Sources) == 0 {
				return fmt.Errorf("%w: %s", ErrArtifactSourcesRequired, name)
			}
		case interfaces.ArtifactTemplate:
			if strings.TrimSpace(artifact.Template) == "" {
				return fmt.Errorf("%w: %s", ErrTemplateContentRequired, name)
			}
		default:
			return fmt.Errorf("%w: %s", ErrArtifactKindUnknown, artifact.Kind)
		}
	}

	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
	}
	return nil
}

// OutputSpecs converts the configured artifacts into assembler specs.
func (cfg Config) OutputSpecs() []interfaces.OutputSpec {
	specs := make([]interfaces.OutputSpec, 0, len(cfg.Artifacts))
	for _, artifact := range cfg.Artifacts {
		specs = append(specs, interfaces.OutputSpec{
			Name:     strings.TrimSpace(artifact.Name),
			Title:    artifact.Title,
			Sources:  artifact.Sources,
			MaxLines: artifact.MaxLines,
			Kind:     normalizeKind(artifact.Kind),
			Lang:     artifact.Lang,
		})
	}
	return specs
}

// StaticTemplates returns the inline content of every template artifact.
func (cfg Config) StaticTemplates() map[string]string {
	templates := map[string]string{}
	for _, artifact := range cfg.Artifacts {
		if normalizeKind(artifact.Kind) == interfaces.ArtifactTemplate {
			templates[strings.TrimSpace(artifact.Name)] = artifact.Template
		}
	}
	return templates
}

// SourcePatterns returns the union of every artifact's source patterns in
// config order, de-duplicated. The drift detector re-scans these.
func (cfg Config) SourcePatterns() []string {
	seen := map[string]struct{}{}
	var patterns []string
	for _, artifact := range cfg.Artifacts {
		for _, pattern := range artifact.Sources {
			if _, ok := seen[pattern]; ok {
				continue
			}
			seen[pattern] = struct{}{}
			patterns = append(patterns, pattern)
		}
	}
	return patterns
}

func normalizeKind(kind string) interfaces.ArtifactKind {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "reference":
		return interfaces.ArtifactReference
	case "checklist":
		return interfaces.ArtifactChecklist
	case "template":
		return interfaces.ArtifactTemplate
	default:
		return interfaces.ArtifactKind(strings.ToLower(strings.TrimSpace(kind)))
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
