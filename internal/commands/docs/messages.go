// Package docscmd exposes the documentation pipeline's build, check, and
// diff operations as command messages wired through the shared handler
// foundation.
package docscmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	buildMessageType = "docpack.build"
	checkMessageType = "docpack.check"
	diffMessageType  = "docpack.diff"
)

// BuildCommand regenerates every configured artifact and replaces the
// integrity manifest.
type BuildCommand struct {
	// ConfigPath optionally records the configuration file driving the build,
	// for logging only; the handler is already bound to a loaded config.
	ConfigPath string `json:"config_path,omitempty"`
}

// Type implements command.Message.
func (BuildCommand) Type() string { return buildMessageType }

// CheckCommand compares the persisted manifest against the current sources.
type CheckCommand struct {
	// ManifestPath optionally overrides the configured manifest location.
	ManifestPath string `json:"manifest_path,omitempty"`
	// FailOnDrift makes the handler return an error when drift is detected,
	// so dispatchers surface a non-zero outcome.
	FailOnDrift bool `json:"fail_on_drift,omitempty"`
}

// Type implements command.Message.
func (CheckCommand) Type() string { return checkMessageType }

// Validate rejects manifest path overrides that are all whitespace.
func (cmd CheckCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.ManifestPath, validation.By(func(value any) error {
			path := value.(string)
			if path != "" && strings.TrimSpace(path) == "" {
				return validation.NewError("docpack.check.manifest_path_blank", "manifest path must not be blank")
			}
			return nil
		})),
	)
}

// DiffCommand assembles every artifact in memory and classifies each against
// the persisted manifest without writing anything.
type DiffCommand struct{}

// Type implements command.Message.
func (DiffCommand) Type() string { return diffMessageType }
