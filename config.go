package docpack

import "github.com/goliatone/go-docpack/internal/runtimeconfig"

// Config exports the runtime configuration for consumers of the docpack package.
type Config = runtimeconfig.Config

// ArtifactConfig exports the per-artifact configuration block.
type ArtifactConfig = runtimeconfig.ArtifactConfig

// LoggingConfig exports the logging configuration block.
type LoggingConfig = runtimeconfig.LoggingConfig
