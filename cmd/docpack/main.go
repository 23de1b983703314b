package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	docpack "github.com/goliatone/go-docpack"
	"github.com/goliatone/go-docpack/internal/assemble"
	docscmd "github.com/goliatone/go-docpack/internal/commands/docs"
	"github.com/goliatone/go-docpack/internal/logging/gologger"
	"github.com/goliatone/go-docpack/internal/markdown"
	"github.com/goliatone/go-docpack/pkg/interfaces"
)

const usage = `usage: docpack <command> [flags]

commands:
  build    regenerate every artifact and replace the manifest
  check    compare sources against the manifest, exit 1 on drift
  diff     dry run, report NEW/UNCHANGED/CHANGED per artifact
  preview  render a generated artifact to HTML
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "build":
		err = runBuild(os.Args[2:])
	case "check":
		err = runCheck(os.Args[2:])
	case "diff":
		err = runDiff(os.Args[2:])
	case "preview":
		err = runPreview(os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("docpack %s: %v", os.Args[1], err)
	}
}

func buildPipeline(configPath string) (*docpack.Pipeline, interfaces.LoggerProvider, docpack.Config, error) {
	cfg, err := docpack.LoadConfigFile(configPath)
	if err != nil {
		return nil, nil, cfg, err
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Focus:  cfg.Logging.Focus,
	})
	if err != nil {
		return nil, nil, cfg, err
	}

	pipeline, err := docpack.New(cfg, docpack.WithLoggerProvider(provider))
	if err != nil {
		return nil, nil, cfg, err
	}
	return pipeline, provider, cfg, nil
}

func runBuild(args []string) error {
	fs := flag.NewFlagSet("docpack-build", flag.ExitOnError)
	configPath := fs.String("config", "docpack.yml", "Path to the docpack configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pipeline, provider, _, err := buildPipeline(*configPath)
	if err != nil {
		return err
	}

	set, err := docscmd.RegisterDocsCommands(nil, pipeline, provider,
		docscmd.WithBuildReportSink(func(report *interfaces.BuildReport) {
			for _, artifact := range report.Artifacts {
				marker := ""
				if artifact.Truncated {
					marker = " (truncated)"
				}
				fmt.Fprintf(os.Stdout, "built %s (%d lines)%s\n", artifact.Path, artifact.Lines(), marker)
			}
			fmt.Fprintf(os.Stdout, "manifest written to %s\n", report.ManifestPath)
		}))
	if err != nil {
		return err
	}

	return set.Build.Execute(context.Background(), docscmd.BuildCommand{ConfigPath: *configPath})
}

func runCheck(args []string) error {
	fs := flag.NewFlagSet("docpack-check", flag.ExitOnError)
	configPath := fs.String("config", "docpack.yml", "Path to the docpack configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pipeline, provider, _, err := buildPipeline(*configPath)
	if err != nil {
		return err
	}

	set, err := docscmd.RegisterDocsCommands(nil, pipeline, provider,
		docscmd.WithDriftSummarySink(printDriftSummary))
	if err != nil {
		return err
	}

	err = set.Check.Execute(context.Background(), docscmd.CheckCommand{FailOnDrift: true})
	if err != nil {
		if errors.Is(err, docscmd.ErrDriftDetected) {
			os.Exit(1)
		}
		if errors.Is(err, docpack.ErrManifestMissing) || errors.Is(err, docpack.ErrManifestInvalid) {
			fmt.Fprintf(os.Stderr, "docpack check: %v\n", err)
			os.Exit(1)
		}
		return err
	}
	fmt.Fprintln(os.Stdout, "no drift detected")
	return nil
}

func printDriftSummary(summary *interfaces.DriftSummary) {
	for _, path := range summary.Changed {
		fmt.Fprintf(os.Stdout, "changed  %s\n", path)
	}
	for _, path := range summary.Added {
		fmt.Fprintf(os.Stdout, "added    %s\n", path)
	}
	for _, path := range summary.Removed {
		fmt.Fprintf(os.Stdout, "removed  %s\n", path)
	}
	for _, name := range summary.AffectedOutputs {
		fmt.Fprintf(os.Stdout, "affected %s\n", name)
	}
}

func runDiff(args []string) error {
	fs := flag.NewFlagSet("docpack-diff", flag.ExitOnError)
	configPath := fs.String("config", "docpack.yml", "Path to the docpack configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pipeline, provider, _, err := buildPipeline(*configPath)
	if err != nil {
		return err
	}

	set, err := docscmd.RegisterDocsCommands(nil, pipeline, provider,
		docscmd.WithDiffChangesSink(func(changes []interfaces.ArtifactChange) {
			for _, change := range changes {
				fmt.Fprintf(os.Stdout, "%-10s %s\n", change.Status, change.Path)
			}
		}))
	if err != nil {
		return err
	}

	return set.Diff.Execute(context.Background(), docscmd.DiffCommand{})
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("docpack-preview", flag.ExitOnError)
	configPath := fs.String("config", "docpack.yml", "Path to the docpack configuration file")
	artifactName := fs.String("artifact", "", "Artifact name to preview")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *artifactName == "" {
		return fmt.Errorf("--artifact is required")
	}

	cfg, err := docpack.LoadConfigFile(*configPath)
	if err != nil {
		return err
	}

	path := filepath.Join(cfg.OutputDir, assemble.ArtifactPath(*artifactName))
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read artifact %s: %w", path, err)
	}

	parser := markdown.NewGoldmarkParser(interfaces.ParseOptions{})
	html, err := parser.Parse(content)
	if err != nil {
		return fmt.Errorf("render artifact: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Path: %s\n\n%s", path, html)
	return nil
}
