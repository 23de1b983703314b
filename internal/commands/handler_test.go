package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

type testMessage struct {
	fail bool
}

func (testMessage) Type() string { return "docpack.test" }

func (m testMessage) Validate() error {
	if m.fail {
		return errors.New("invalid message")
	}
	return nil
}

func TestHandler_Execute(t *testing.T) {
	calls := 0
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		calls++
		return nil
	})

	if err := handler.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestHandler_ValidationFailure(t *testing.T) {
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		t.Fatal("exec should not run on validation failure")
		return nil
	})

	err := handler.Execute(context.Background(), testMessage{fail: true})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestHandler_ExecutionFailureCategorised(t *testing.T) {
	cause := errors.New("boom")
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		return cause
	})

	err := handler.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause preserved, got %v", err)
	}
}

func TestHandler_WrappedErrorPassthrough(t *testing.T) {
	wrapped := goerrors.Wrap(errors.New("boom"), goerrors.CategoryValidation, "payload rejected")
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		return wrapped
	})

	err := handler.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatal("expected error")
	}
	// An error categorised upstream must not be re-tagged as a command failure.
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected original category preserved, got %v", err)
	}
}

func TestHandler_ContextCancelled(t *testing.T) {
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := handler.Execute(ctx, testMessage{})
	if err == nil {
		t.Fatal("expected context error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandler_Timeout(t *testing.T) {
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
			return nil
		}
	}, WithTimeout[testMessage](10*time.Millisecond))

	err := handler.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestHandler_TelemetrySuccess(t *testing.T) {
	var got TelemetryInfo
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		return nil
	},
		WithOperation[testMessage]("test.operation"),
		WithTelemetry(func(ctx context.Context, msg testMessage, info TelemetryInfo) {
			got = info
		}),
	)

	if err := handler.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got.Status != TelemetryStatusSuccess {
		t.Fatalf("expected success status, got %s", got.Status)
	}
	if got.Command != "docpack.test" || got.Operation != "test.operation" {
		t.Fatalf("unexpected telemetry info %+v", got)
	}
}

func TestHandler_TelemetryFailure(t *testing.T) {
	var got TelemetryInfo
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		return errors.New("boom")
	}, WithTelemetry(func(ctx context.Context, msg testMessage, info TelemetryInfo) {
		got = info
	}))

	if err := handler.Execute(context.Background(), testMessage{}); err == nil {
		t.Fatal("expected error")
	}
	if got.Status != TelemetryStatusFailed {
		t.Fatalf("expected failed status, got %s", got.Status)
	}
	if got.Error == nil {
		t.Fatal("expected telemetry error")
	}
}

func TestHandler_MessageFields(t *testing.T) {
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		return nil
	}, WithMessageFields(func(msg testMessage) map[string]any {
		return map[string]any{"flag": msg.fail}
	}))

	if err := handler.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("execute: %v", err)
	}
}
