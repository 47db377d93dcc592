package engine

import (
	"errors"
	"fmt"
)

// Ошибки разрешения конфигурации.
var (
	// ErrNoDocument — файл пуст или не содержит YAML-документа.
	ErrNoDocument = errors.New("configuration is empty")

	// ErrMalformedDocument — верхний уровень документа не mapping.
	ErrMalformedDocument = errors.New("configuration is not a mapping")

	// ErrMissingStepList — нет ни ключа "steps", ни ключа "pipeline".
	ErrMissingStepList = errors.New("missing step list: expected 'steps' or 'pipeline' key")

	// ErrMalformedStepEntry — элемент списка шагов не является mapping.
	ErrMalformedStepEntry = errors.New("malformed step entry")

	// ErrMissingExecutable — у шага нет ни "script", ни "component".
	ErrMissingExecutable = errors.New("step has no executable: expected 'script' or 'component' key")

	// ErrUnsupportedValue — значение параметра не boolean, не скаляр
	// и не последовательность скаляров.
	ErrUnsupportedValue = errors.New("unsupported parameter value")
)

// ConfigError — ошибка конфигурации с контекстом.
type ConfigError struct {
	StepIndex int    // 1-based индекс шага; 0, если ошибка вне шага
	Field     string // поле, вызвавшее ошибку
	Message   string // описание ошибки
	Err       error  // базовая ошибка
}

// Error реализует интерфейс error.
func (e *ConfigError) Error() string {
	if e.StepIndex > 0 {
		return fmt.Sprintf("step %d: %s", e.StepIndex, e.Message)
	}
	return e.Message
}

// Unwrap возвращает базовую ошибку.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// newConfigError создаёт новую ошибку конфигурации.
func newConfigError(stepIndex int, field, message string, err error) *ConfigError {
	return &ConfigError{
		StepIndex: stepIndex,
		Field:     field,
		Message:   message,
		Err:       err,
	}
}
