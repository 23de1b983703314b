package docscmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-docpack/internal/commands"
	"github.com/goliatone/go-docpack/internal/logging"
	"github.com/goliatone/go-docpack/pkg/interfaces"
)

const (
	buildOperation = "docs.build"
	checkOperation = "docs.check"
	diffOperation  = "docs.diff"
)

// ErrDriftDetected is returned by the check handler when drift exists and
// the message asked for a hard failure.
var ErrDriftDetected = errors.New("docs command: drift detected")

var (
	_ command.Commander[BuildCommand] = (*BuildHandler)(nil)
	_ command.Commander[CheckCommand] = (*CheckHandler)(nil)
	_ command.Commander[DiffCommand]  = (*DiffHandler)(nil)
)

// BuildHandler runs a full artifact + manifest build through the shared
// command handler foundation.
type BuildHandler struct {
	inner *commands.Handler[BuildCommand]
}

// NewBuildHandler creates a handler bound to the supplied pipeline service.
// onReport, when non-nil, receives the build report after success.
func NewBuildHandler(service interfaces.PipelineService, logger interfaces.Logger, onReport func(*interfaces.BuildReport), opts ...commands.HandlerOption[BuildCommand]) *BuildHandler {
	baseLogger := logging.OrNoOp(logger)

	exec := func(ctx context.Context, msg BuildCommand) error {
		report, err := service.Build(ctx)
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"artifact_count": len(report.Artifacts),
			"manifest_path":  report.ManifestPath,
			"build_id":       report.BuildID,
		}).Info("docs.command.build.completed")
		if onReport != nil {
			onReport(report)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[BuildCommand]{
		commands.WithLogger[BuildCommand](baseLogger),
		commands.WithOperation[BuildCommand](buildOperation),
		commands.WithMessageFields(func(msg BuildCommand) map[string]any {
			fields := map[string]any{}
			if msg.ConfigPath != "" {
				fields["config_path"] = msg.ConfigPath
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[BuildCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[BuildCommand].
func (h *BuildHandler) Execute(ctx context.Context, msg BuildCommand) error {
	return h.inner.Execute(ctx, msg)
}

// CheckHandler runs a drift check against the persisted manifest.
type CheckHandler struct {
	inner *commands.Handler[CheckCommand]
}

// NewCheckHandler creates a handler bound to the supplied pipeline service.
// onSummary, when non-nil, receives the drift summary whenever the check
// itself succeeds, drift or not.
func NewCheckHandler(service interfaces.PipelineService, logger interfaces.Logger, onSummary func(*interfaces.DriftSummary), opts ...commands.HandlerOption[CheckCommand]) *CheckHandler {
	baseLogger := logging.OrNoOp(logger)

	exec := func(ctx context.Context, msg CheckCommand) error {
		summary, err := service.Check(ctx)
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"changed": len(summary.Changed),
			"added":   len(summary.Added),
			"removed": len(summary.Removed),
			"drift":   summary.HasDrift,
		}).Info("docs.command.check.completed")
		if onSummary != nil {
			onSummary(summary)
		}
		if msg.FailOnDrift && summary.HasDrift {
			return ErrDriftDetected
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[CheckCommand]{
		commands.WithLogger[CheckCommand](baseLogger),
		commands.WithOperation[CheckCommand](checkOperation),
		commands.WithMessageFields(func(msg CheckCommand) map[string]any {
			fields := map[string]any{}
			if msg.ManifestPath != "" {
				fields["manifest_path"] = msg.ManifestPath
			}
			if msg.FailOnDrift {
				fields["fail_on_drift"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[CheckCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CheckHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[CheckCommand].
func (h *CheckHandler) Execute(ctx context.Context, msg CheckCommand) error {
	return h.inner.Execute(ctx, msg)
}

// DiffHandler runs a dry-run artifact comparison.
type DiffHandler struct {
	inner *commands.Handler[DiffCommand]
}

// NewDiffHandler creates a handler bound to the supplied pipeline service.
// onChanges, when non-nil, receives the per-artifact classification.
func NewDiffHandler(service interfaces.PipelineService, logger interfaces.Logger, onChanges func([]interfaces.ArtifactChange), opts ...commands.HandlerOption[DiffCommand]) *DiffHandler {
	baseLogger := logging.OrNoOp(logger)

	exec := func(ctx context.Context, msg DiffCommand) error {
		changes, err := service.Diff(ctx)
		if err != nil {
			return err
		}
		counts := map[string]int{}
		for _, change := range changes {
			counts[change.Status]++
		}
		logging.WithFields(baseLogger, map[string]any{
			"new":       counts["NEW"],
			"unchanged": counts["UNCHANGED"],
			"changed":   counts["CHANGED"],
		}).Info("docs.command.diff.completed")
		if onChanges != nil {
			onChanges(changes)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[DiffCommand]{
		commands.WithLogger[DiffCommand](baseLogger),
		commands.WithOperation[DiffCommand](diffOperation),
		commands.WithTelemetry(commands.DefaultTelemetry[DiffCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DiffHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[DiffCommand].
func (h *DiffHandler) Execute(ctx context.Context, msg DiffCommand) error {
	return h.inner.Execute(ctx, msg)
}
