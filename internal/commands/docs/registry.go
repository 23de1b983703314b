package docscmd

import (
	"errors"

	"github.com/goliatone/go-docpack/internal/commands"
	"github.com/goliatone/go-docpack/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring
// command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the documentation command handlers produced by
// RegisterDocsCommands.
type HandlerSet struct {
	Build *BuildHandler
	Check *CheckHandler
	Diff  *DiffHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	buildHandlerOpts []commands.HandlerOption[BuildCommand]
	checkHandlerOpts []commands.HandlerOption[CheckCommand]
	diffHandlerOpts  []commands.HandlerOption[DiffCommand]
	onBuildReport    func(*interfaces.BuildReport)
	onDriftSummary   func(*interfaces.DriftSummary)
	onDiffChanges    func([]interfaces.ArtifactChange)
}

// WithBuildHandlerOptions forwards options to the BuildHandler constructor.
func WithBuildHandlerOptions(opts ...commands.HandlerOption[BuildCommand]) Option {
	return func(cfg *options) {
		cfg.buildHandlerOpts = append(cfg.buildHandlerOpts, opts...)
	}
}

// WithCheckHandlerOptions forwards options to the CheckHandler constructor.
func WithCheckHandlerOptions(opts ...commands.HandlerOption[CheckCommand]) Option {
	return func(cfg *options) {
		cfg.checkHandlerOpts = append(cfg.checkHandlerOpts, opts...)
	}
}

// WithDiffHandlerOptions forwards options to the DiffHandler constructor.
func WithDiffHandlerOptions(opts ...commands.HandlerOption[DiffCommand]) Option {
	return func(cfg *options) {
		cfg.diffHandlerOpts = append(cfg.diffHandlerOpts, opts...)
	}
}

// WithBuildReportSink registers a callback for successful build reports.
func WithBuildReportSink(fn func(*interfaces.BuildReport)) Option {
	return func(cfg *options) {
		cfg.onBuildReport = fn
	}
}

// WithDriftSummarySink registers a callback for drift summaries.
func WithDriftSummarySink(fn func(*interfaces.DriftSummary)) Option {
	return func(cfg *options) {
		cfg.onDriftSummary = fn
	}
}

// WithDiffChangesSink registers a callback for dry-run classifications.
func WithDiffChangesSink(fn func([]interfaces.ArtifactChange)) Option {
	return func(cfg *options) {
		cfg.onDiffChanges = fn
	}
}

// RegisterDocsCommands builds the documentation command handlers and
// registers them with the provided registry. The HandlerSet is returned so
// callers can wire additional integrations as needed.
func RegisterDocsCommands(reg CommandRegistry, service interfaces.PipelineService, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("docs command registration: service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "docs")

	buildHandler := NewBuildHandler(service, logger, cfg.onBuildReport, cfg.buildHandlerOpts...)
	checkHandler := NewCheckHandler(service, logger, cfg.onDriftSummary, cfg.checkHandlerOpts...)
	diffHandler := NewDiffHandler(service, logger, cfg.onDiffChanges, cfg.diffHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(buildHandler); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(checkHandler); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(diffHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{
		Build: buildHandler,
		Check: checkHandler,
		Diff:  diffHandler,
	}, nil
}
