package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shaiso/Conveyor/internal/domain"
	"github.com/shaiso/Conveyor/internal/engine"
)

// Runner — driver пайплайна: строго последовательный обход шагов
// с fail-fast семантикой.
//
// Driver никогда не начинает шаг i+1 до завершения шага i.
// Единственная точка блокировки — ожидание выхода дочернего процесса
// внутри Invoker. Запущенный шаг прервать нельзя: прогон завершается
// досрочно только выходом самого шага.
type Runner struct {
	invoker Invoker
	logger  *slog.Logger
	out     io.Writer
}

// Config — зависимости Runner. Нулевые поля получают рабочие значения
// по умолчанию.
type Config struct {
	// Invoker — запуск процессов. Nil — ProcInvoker с наследованием
	// потоков.
	Invoker Invoker

	// Logger — структурные события прогона. Nil — slog.Default().
	Logger *slog.Logger

	// Out — человекочитаемые строки прогресса. Nil — os.Stdout.
	Out io.Writer
}

// New создаёт Runner.
func New(cfg Config) *Runner {
	r := &Runner{
		invoker: cfg.Invoker,
		logger:  cfg.Logger,
		out:     cfg.Out,
	}
	if r.invoker == nil {
		r.invoker = NewProcInvoker()
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.out == nil {
		r.out = os.Stdout
	}
	return r
}

// Фазы машины состояний прогона.
type phase int

const (
	phaseRunning phase = iota
	phaseStepFailed
	phaseCompleted
)

// runState — состояние прогона как значение, передаваемое между
// итерациями. Счётчики и код выхода не живут в разделяемых переменных
// цикла: финальный отчёт строится только из терминального состояния.
type runState struct {
	phase    phase
	index    int    // 1-based текущий (или упавший) шаг
	exitCode *int   // код выхода упавшего шага; nil при launch-ошибке
	failure  string // текст ошибки для phaseStepFailed
}

// begin — переход NotStarted → RunningStep(1), либо сразу Completed
// для пустого списка шагов.
func begin(total int) runState {
	if total == 0 {
		return runState{phase: phaseCompleted}
	}
	return runState{phase: phaseRunning, index: 1}
}

// Run выполняет пайплайн и возвращает отчёт о прогоне.
//
// Run не возвращает error: падение шага — штатный исход прогона,
// отражённый в Report.Status. Ошибки конфигурации до Run не доходят —
// их отсекает engine.Parse.
func (r *Runner) Run(ctx context.Context, p *domain.Pipeline) *domain.Report {
	report := &domain.Report{
		ID:           uuid.New(),
		PipelineName: p.Name,
		TotalSteps:   len(p.Steps),
		StartedAt:    time.Now(),
	}

	r.printHeader(p)
	r.logger.Info("pipeline started",
		"run_id", report.ID,
		"pipeline", p.Name,
		"total_steps", len(p.Steps))

	st := begin(len(p.Steps))
	for st.phase == phaseRunning {
		st = r.runStep(ctx, p, st)
	}

	report.FinishedAt = time.Now()
	r.finalize(p, st, report)

	r.logger.Info("pipeline finished",
		"run_id", report.ID,
		"status", report.Status,
		"completed_steps", report.CompletedSteps,
		"duration", report.Duration())

	return report
}

// runStep выполняет один шаг и возвращает следующее состояние:
// RunningStep(i+1), Completed или StepFailed(i).
func (r *Runner) runStep(ctx context.Context, p *domain.Pipeline, st runState) runState {
	step := p.Steps[st.index-1]
	total := len(p.Steps)
	cmdline := engine.CommandLine(p.Interpreter, step)

	fmt.Fprintf(r.out, "\n==> [%d/%d] %s\n", st.index, total, step.DisplayName)
	fmt.Fprintf(r.out, "    command: %s\n", strings.Join(cmdline, " "))
	r.logger.Debug("step started",
		"step", step.DisplayName,
		"index", st.index,
		"executable", step.Executable)

	code, err := r.invoker.Invoke(ctx, cmdline)
	if err != nil {
		fmt.Fprintf(r.out, "    step %d/%d failed to launch: %s: %v\n",
			st.index, total, step.DisplayName, err)
		r.logger.Error("step launch failed",
			"step", step.DisplayName, "index", st.index, "error", err)
		return runState{phase: phaseStepFailed, index: st.index, failure: err.Error()}
	}

	if code != 0 {
		fmt.Fprintf(r.out, "    step %d/%d failed: %s (exit code %d)\n",
			st.index, total, step.DisplayName, code)
		r.logger.Error("step failed",
			"step", step.DisplayName, "index", st.index, "exit_code", code)
		return runState{
			phase:    phaseStepFailed,
			index:    st.index,
			exitCode: &code,
			failure:  fmt.Sprintf("step %q exited with code %d", step.DisplayName, code),
		}
	}

	fmt.Fprintf(r.out, "    step %d/%d completed: %s\n", st.index, total, step.DisplayName)
	r.logger.Debug("step completed", "step", step.DisplayName, "index", st.index)

	if st.index == total {
		return runState{phase: phaseCompleted}
	}
	return runState{phase: phaseRunning, index: st.index + 1}
}

// finalize заполняет отчёт из терминального состояния машины.
func (r *Runner) finalize(p *domain.Pipeline, st runState, report *domain.Report) {
	switch st.phase {
	case phaseCompleted:
		if len(p.Steps) == 0 {
			report.Status = domain.RunStatusEmptyPipeline
			fmt.Fprintf(r.out, "\nPipeline has no steps, nothing to run.\n")
			return
		}
		report.Status = domain.RunStatusSucceeded
		report.CompletedSteps = len(p.Steps)
		fmt.Fprintf(r.out, "\nPipeline completed successfully: all %d steps executed.\n",
			len(p.Steps))

	case phaseStepFailed:
		failed := p.Steps[st.index-1]
		report.Status = domain.RunStatusFailedAtStep
		report.CompletedSteps = st.index - 1
		report.FailedStep = &failed
		report.FailedStepIndex = st.index
		report.FailedExitCode = st.exitCode
		report.Error = st.failure
		fmt.Fprintf(r.out, "\nPipeline stopped at step %d/%d (%s).\n",
			st.index, len(p.Steps), failed.DisplayName)
	}
}

// printHeader печатает заголовок прогона.
func (r *Runner) printHeader(p *domain.Pipeline) {
	fmt.Fprintf(r.out, "Pipeline: %s\n", p.Name)
	if p.Description != "" {
		fmt.Fprintf(r.out, "Description: %s\n", p.Description)
	}
	fmt.Fprintf(r.out, "Total steps: %d\n", len(p.Steps))
}
