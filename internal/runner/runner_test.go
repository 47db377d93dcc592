package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/shaiso/Conveyor/internal/domain"
)

// fakeInvoker записывает командные строки и отдаёт заранее заданные
// результаты по порядку вызовов.
type fakeInvoker struct {
	calls [][]string
	codes []int
	errs  []error
}

func (f *fakeInvoker) Invoke(_ context.Context, cmdline []string) (int, error) {
	i := len(f.calls)
	f.calls = append(f.calls, cmdline)

	var code int
	if i < len(f.codes) {
		code = f.codes[i]
	}
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return code, err
}

func newTestRunner(inv Invoker, out io.Writer) *Runner {
	if out == nil {
		out = io.Discard
	}
	return New(Config{
		Invoker: inv,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Out:     out,
	})
}

func threeSteps() *domain.Pipeline {
	return &domain.Pipeline{
		Name: "demo",
		Steps: []domain.Step{
			{DisplayName: "load", Executable: "load.py"},
			{DisplayName: "clean", Executable: "clean.py"},
			{DisplayName: "export", Executable: "export.py"},
		},
	}
}

func TestRunner_AllStepsSucceed(t *testing.T) {
	inv := &fakeInvoker{}
	r := newTestRunner(inv, nil)

	report := r.Run(context.Background(), threeSteps())

	if report.Status != domain.RunStatusSucceeded {
		t.Errorf("expected SUCCEEDED, got %s", report.Status)
	}
	if report.CompletedSteps != 3 || report.TotalSteps != 3 {
		t.Errorf("expected 3/3 completed, got %d/%d",
			report.CompletedSteps, report.TotalSteps)
	}
	if report.FailedStep != nil || report.FailedExitCode != nil {
		t.Errorf("success report should have no failure info: %+v", report)
	}
	if len(inv.calls) != 3 {
		t.Fatalf("expected 3 invocations, got %d", len(inv.calls))
	}
	if !reflect.DeepEqual(inv.calls[0], []string{"load.py"}) {
		t.Errorf("unexpected first command line: %v", inv.calls[0])
	}
}

func TestRunner_FailFast(t *testing.T) {
	// Шаг 2 завершается кодом 1: шаг 3 не должен запускаться вовсе.
	inv := &fakeInvoker{codes: []int{0, 1, 0}}
	var out bytes.Buffer
	r := newTestRunner(inv, &out)

	report := r.Run(context.Background(), threeSteps())

	if report.Status != domain.RunStatusFailedAtStep {
		t.Errorf("expected FAILED_AT_STEP, got %s", report.Status)
	}
	if len(inv.calls) != 2 {
		t.Fatalf("expected 2 invocations (fail-fast), got %d", len(inv.calls))
	}
	if report.CompletedSteps != 1 {
		t.Errorf("expected 1 completed step, got %d", report.CompletedSteps)
	}
	if report.FailedStepIndex != 2 {
		t.Errorf("expected failed step index 2, got %d", report.FailedStepIndex)
	}
	if report.FailedStep == nil || report.FailedStep.DisplayName != "clean" {
		t.Errorf("expected failed step 'clean', got %+v", report.FailedStep)
	}
	if report.FailedExitCode == nil || *report.FailedExitCode != 1 {
		t.Errorf("expected failed exit code 1, got %v", report.FailedExitCode)
	}
	if !strings.Contains(out.String(), "Pipeline stopped at step 2/3") {
		t.Errorf("expected stop message in progress output, got:\n%s", out.String())
	}
}

func TestRunner_EmptyPipeline(t *testing.T) {
	inv := &fakeInvoker{}
	r := newTestRunner(inv, nil)

	report := r.Run(context.Background(), &domain.Pipeline{Name: "empty"})

	if report.Status != domain.RunStatusEmptyPipeline {
		t.Errorf("expected EMPTY_PIPELINE, got %s", report.Status)
	}
	if len(inv.calls) != 0 {
		t.Errorf("empty pipeline must not invoke anything, got %d calls", len(inv.calls))
	}
	if report.Status.IsFailure() {
		t.Error("empty pipeline must not count as failure")
	}
}

func TestRunner_LaunchFailure(t *testing.T) {
	inv := &fakeInvoker{
		errs: []error{&LaunchError{Executable: "load.py", Err: errors.New("no such file")}},
	}
	r := newTestRunner(inv, nil)

	report := r.Run(context.Background(), threeSteps())

	if report.Status != domain.RunStatusFailedAtStep {
		t.Errorf("expected FAILED_AT_STEP, got %s", report.Status)
	}
	if report.FailedStepIndex != 1 {
		t.Errorf("expected failed step index 1, got %d", report.FailedStepIndex)
	}
	// Процесс не запустился — кода выхода нет.
	if report.FailedExitCode != nil {
		t.Errorf("launch failure must not have an exit code, got %v", *report.FailedExitCode)
	}
	if report.Error == "" {
		t.Error("launch failure must be reflected in report error")
	}
	if len(inv.calls) != 1 {
		t.Errorf("expected pipeline to halt after launch failure, got %d calls", len(inv.calls))
	}
}

func TestRunner_InterpreterPrefix(t *testing.T) {
	inv := &fakeInvoker{}
	r := newTestRunner(inv, nil)

	p := threeSteps()
	p.Interpreter = "python"
	r.Run(context.Background(), p)

	for i, call := range inv.calls {
		if call[0] != "python" {
			t.Errorf("call %d: expected interpreter prefix, got %v", i, call)
		}
	}
}

func TestRunner_ParamsReachCommandLine(t *testing.T) {
	inv := &fakeInvoker{}
	r := newTestRunner(inv, nil)

	p := &domain.Pipeline{
		Name: "args",
		Steps: []domain.Step{{
			DisplayName: "load",
			Executable:  "load.py",
			Params: []domain.Param{
				{Name: "input_path", Value: domain.ScalarValue("data.csv")},
				{Name: "verbose", Value: domain.BoolValue(true)},
			},
		}},
	}
	r.Run(context.Background(), p)

	want := []string{"load.py", "--input-path", "data.csv", "--verbose"}
	if !reflect.DeepEqual(inv.calls[0], want) {
		t.Errorf("command line = %v, want %v", inv.calls[0], want)
	}
}
