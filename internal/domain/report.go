package domain

import (
	"time"

	"github.com/google/uuid"
)

// Report — отчёт об одном прогоне пайплайна.
//
// Строится driver'ом из терминального состояния машины состояний и
// отдаётся CLI-слою для отображения. Не персистится, если пользователь
// явно не запросил запись истории (--record).
type Report struct {
	// ID — уникальный идентификатор прогона.
	ID uuid.UUID `json:"id"`

	// PipelineName — имя пайплайна на момент прогона.
	PipelineName string `json:"pipeline_name"`

	// TotalSteps — общее число шагов в пайплайне.
	TotalSteps int `json:"total_steps"`

	// CompletedSteps — число успешно завершённых шагов.
	CompletedSteps int `json:"completed_steps"`

	// Status — итоговый статус прогона.
	Status RunStatus `json:"status"`

	// FailedStep — упавший шаг. Nil при успехе.
	FailedStep *Step `json:"failed_step,omitempty"`

	// FailedStepIndex — 1-based индекс упавшего шага. 0 при успехе.
	FailedStepIndex int `json:"failed_step_index,omitempty"`

	// FailedExitCode — код выхода упавшего шага. Nil при успехе и
	// при launch-ошибке (процесс не запустился, кода выхода нет).
	FailedExitCode *int `json:"failed_exit_code,omitempty"`

	// Error — текст ошибки при статусе FAILED_AT_STEP.
	Error string `json:"error,omitempty"`

	// StartedAt — время начала прогона.
	StartedAt time.Time `json:"started_at"`

	// FinishedAt — время завершения прогона.
	FinishedAt time.Time `json:"finished_at"`
}

// Duration возвращает продолжительность прогона.
func (r *Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// FailedStepName возвращает имя упавшего шага или пустую строку.
func (r *Report) FailedStepName() string {
	if r.FailedStep == nil {
		return ""
	}
	return r.FailedStep.DisplayName
}
