package runner

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Invoker запускает один шаг как дочерний процесс и ждёт его завершения.
//
// Invoke блокируется до выхода процесса и возвращает его код выхода.
// Ненулевой код выхода — не error: это штатный результат шага.
// Error возвращается только когда процесс не удалось запустить
// (*LaunchError); в этом случае код выхода не имеет смысла.
type Invoker interface {
	Invoke(ctx context.Context, cmdline []string) (int, error)
}

// ProcInvoker — рабочая реализация Invoker поверх os/exec.
//
// Стандартные потоки дочернего процесса наследуются от родителя:
// вывод долгих шагов виден в реальном времени, буферизации и
// фильтрации нет.
type ProcInvoker struct {
	// Stdout, Stderr — потоки для дочернего процесса.
	// Nil означает потоки текущего процесса.
	Stdout io.Writer
	Stderr io.Writer
}

// NewProcInvoker создаёт ProcInvoker с наследованием потоков.
func NewProcInvoker() *ProcInvoker {
	return &ProcInvoker{}
}

// Invoke запускает cmdline[0] с аргументами cmdline[1:] и ждёт выхода.
//
// Процесс гарантированно дожидается на каждом пути выхода: cmd.Run
// объединяет start и wait, так что осиротевших дочерних процессов
// не остаётся.
func (p *ProcInvoker) Invoke(ctx context.Context, cmdline []string) (int, error) {
	if len(cmdline) == 0 {
		return 0, &LaunchError{Err: errors.New("empty command line")}
	}

	cmd := exec.CommandContext(ctx, cmdline[0], cmdline[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = p.Stdout
	cmd.Stderr = p.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	return 0, &LaunchError{Executable: cmdline[0], Err: err}
}
