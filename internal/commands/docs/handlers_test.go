package docscmd

import (
	"context"
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-docpack/pkg/interfaces"
)

type stubService struct {
	buildReport *interfaces.BuildReport
	buildErr    error
	summary     *interfaces.DriftSummary
	checkErr    error
	changes     []interfaces.ArtifactChange
	diffErr     error

	buildCalls int
	checkCalls int
	diffCalls  int
}

func (s *stubService) Build(ctx context.Context) (*interfaces.BuildReport, error) {
	s.buildCalls++
	return s.buildReport, s.buildErr
}

func (s *stubService) Check(ctx context.Context) (*interfaces.DriftSummary, error) {
	s.checkCalls++
	return s.summary, s.checkErr
}

func (s *stubService) Diff(ctx context.Context) ([]interfaces.ArtifactChange, error) {
	s.diffCalls++
	return s.changes, s.diffErr
}

func TestBuildHandler_Success(t *testing.T) {
	service := &stubService{
		buildReport: &interfaces.BuildReport{
			Artifacts:    []*interfaces.Artifact{{Name: "reference"}},
			ManifestPath: "dist/docs-manifest.json",
			BuildID:      "abc",
		},
	}

	var got *interfaces.BuildReport
	handler := NewBuildHandler(service, nil, func(report *interfaces.BuildReport) {
		got = report
	})

	if err := handler.Execute(context.Background(), BuildCommand{}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if service.buildCalls != 1 {
		t.Fatalf("expected 1 build call, got %d", service.buildCalls)
	}
	if got == nil || got.BuildID != "abc" {
		t.Fatalf("expected report callback, got %+v", got)
	}
}

func TestBuildHandler_WrapsServiceError(t *testing.T) {
	service := &stubService{buildErr: errors.New("boom")}
	handler := NewBuildHandler(service, nil, nil)

	err := handler.Execute(context.Background(), BuildCommand{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !goerrors.IsWrapped(err) {
		t.Fatalf("expected categorised error, got %v", err)
	}
}

func TestCheckHandler_NoDrift(t *testing.T) {
	service := &stubService{summary: &interfaces.DriftSummary{}}

	var got *interfaces.DriftSummary
	handler := NewCheckHandler(service, nil, func(summary *interfaces.DriftSummary) {
		got = summary
	})

	if err := handler.Execute(context.Background(), CheckCommand{FailOnDrift: true}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got == nil {
		t.Fatal("expected summary callback")
	}
}

func TestCheckHandler_FailOnDrift(t *testing.T) {
	service := &stubService{summary: &interfaces.DriftSummary{
		Changed:  []string{"docs/a.md"},
		HasDrift: true,
	}}
	handler := NewCheckHandler(service, nil, nil)

	err := handler.Execute(context.Background(), CheckCommand{FailOnDrift: true})
	if err == nil {
		t.Fatal("expected drift error")
	}
	if !errors.Is(err, ErrDriftDetected) {
		t.Fatalf("expected ErrDriftDetected, got %v", err)
	}
}

func TestCheckHandler_DriftToleratedWithoutFlag(t *testing.T) {
	service := &stubService{summary: &interfaces.DriftSummary{HasDrift: true}}
	handler := NewCheckHandler(service, nil, nil)

	if err := handler.Execute(context.Background(), CheckCommand{}); err != nil {
		t.Fatalf("expected success without fail flag, got %v", err)
	}
}

func TestDiffHandler_Classifications(t *testing.T) {
	service := &stubService{changes: []interfaces.ArtifactChange{
		{Name: "reference", Path: "reference.md", Status: "CHANGED"},
		{Name: "pr-template", Path: "pr-template.md", Status: "UNCHANGED"},
	}}

	var got []interfaces.ArtifactChange
	handler := NewDiffHandler(service, nil, func(changes []interfaces.ArtifactChange) {
		got = changes
	})

	if err := handler.Execute(context.Background(), DiffCommand{}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 changes, got %d", len(got))
	}
}

func TestRegisterDocsCommands_NilService(t *testing.T) {
	if _, err := RegisterDocsCommands(nil, nil, nil); err == nil {
		t.Fatal("expected error for nil service")
	}
}

type recordingRegistry struct {
	handlers []any
}

func (r *recordingRegistry) RegisterCommand(handler any) error {
	r.handlers = append(r.handlers, handler)
	return nil
}

func TestRegisterDocsCommands_RegistersAll(t *testing.T) {
	reg := &recordingRegistry{}
	set, err := RegisterDocsCommands(reg, &stubService{}, nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(reg.handlers) != 3 {
		t.Fatalf("expected 3 registered handlers, got %d", len(reg.handlers))
	}
	if set.Build == nil || set.Check == nil || set.Diff == nil {
		t.Fatal("expected all handlers constructed")
	}
}
