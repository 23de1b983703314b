package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-docpack/pkg/interfaces"
)

const (
	rootModule     = "docpack"
	markdownModule = "docpack.markdown"
	condenseModule = "docpack.condense"
	assembleModule = "docpack.assemble"
	manifestModule = "docpack.manifest"
)

const (
	fieldSourcePath = "source_path"
	fieldArtifact   = "artifact"
	fieldAction     = "build_action"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// MarkdownLogger returns the logger namespace reserved for document loading
// and section extraction.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// CondenseLogger returns the logger namespace reserved for the condenser.
func CondenseLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, condenseModule)
}

// AssembleLogger returns the logger namespace reserved for artifact assembly.
func AssembleLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, assembleModule)
}

// ManifestLogger returns the logger namespace reserved for manifest builds
// and drift checks.
func ManifestLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, manifestModule)
}

// WithBuildContext enriches the provided logger with common build fields such
// as source path, artifact name, and action. Empty values are ignored.
func WithBuildContext(logger interfaces.Logger, path, artifact, action string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldSourcePath] = trimmed
	}
	if trimmed := strings.TrimSpace(artifact); trimmed != "" {
		fields[fieldArtifact] = trimmed
	}
	if trimmed := strings.TrimSpace(action); trimmed != "" {
		fields[fieldAction] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
