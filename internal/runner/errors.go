package runner

import "fmt"

// LaunchError — шаг не удалось запустить как процесс (файл не найден,
// нет прав, не исполняемый). Отличается от ненулевого кода выхода:
// launch-ошибка указывает на проблему конфигурации, ненулевой выход —
// на ошибку самого шага.
type LaunchError struct {
	Executable string // что пытались запустить
	Err        error  // причина от os/exec
}

// Error реализует интерфейс error.
func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch %s: %v", e.Executable, e.Err)
}

// Unwrap возвращает базовую ошибку.
func (e *LaunchError) Unwrap() error {
	return e.Err
}
