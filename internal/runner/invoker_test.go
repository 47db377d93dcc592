package runner

import (
	"context"
	"errors"
	"io"
	"testing"
)

func newQuietInvoker() *ProcInvoker {
	return &ProcInvoker{Stdout: io.Discard, Stderr: io.Discard}
}

func TestProcInvoker_ZeroExit(t *testing.T) {
	code, err := newQuietInvoker().Invoke(context.Background(),
		[]string{"sh", "-c", "exit 0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != 0 {
		t.Errorf("expected exit code 0, got %d", code)
	}
}

func TestProcInvoker_NonZeroExit(t *testing.T) {
	// Ненулевой код выхода — штатный результат, не error.
	code, err := newQuietInvoker().Invoke(context.Background(),
		[]string{"sh", "-c", "exit 3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != 3 {
		t.Errorf("expected exit code 3, got %d", code)
	}
}

func TestProcInvoker_LaunchFailure(t *testing.T) {
	_, err := newQuietInvoker().Invoke(context.Background(),
		[]string{"/nonexistent/definitely-not-a-binary"})
	if err == nil {
		t.Fatal("expected launch error, got nil")
	}

	var launchErr *LaunchError
	if !errors.As(err, &launchErr) {
		t.Fatalf("expected LaunchError, got %T: %v", err, err)
	}
	if launchErr.Executable != "/nonexistent/definitely-not-a-binary" {
		t.Errorf("unexpected executable in error: %q", launchErr.Executable)
	}
}

func TestProcInvoker_EmptyCommandLine(t *testing.T) {
	_, err := newQuietInvoker().Invoke(context.Background(), nil)

	var launchErr *LaunchError
	if !errors.As(err, &launchErr) {
		t.Fatalf("expected LaunchError for empty command line, got %v", err)
	}
}
