package domain

// RunStatus — итоговый статус прогона пайплайна.
//
// Жизненный цикл:
//
//	NotStarted → RunningStep(1) → ... → Completed  ⇒ SUCCEEDED
//	NotStarted → Completed (без шагов)             ⇒ EMPTY_PIPELINE
//	RunningStep(i) → StepFailed(i)                 ⇒ FAILED_AT_STEP
type RunStatus string

const (
	// RunStatusSucceeded — все шаги завершились с нулевым кодом выхода.
	RunStatusSucceeded RunStatus = "SUCCEEDED"

	// RunStatusFailedAtStep — шаг завершился ненулевым кодом либо не
	// смог запуститься; последующие шаги не выполнялись.
	RunStatusFailedAtStep RunStatus = "FAILED_AT_STEP"

	// RunStatusEmptyPipeline — список шагов пуст, ни один процесс
	// не запускался.
	RunStatusEmptyPipeline RunStatus = "EMPTY_PIPELINE"
)

// IsFailure возвращает true, если прогон считается неуспешным.
// Пустой пайплайн неуспехом не считается.
func (s RunStatus) IsFailure() bool {
	return s == RunStatusFailedAtStep
}

// String возвращает строковое представление статуса.
func (s RunStatus) String() string {
	return string(s)
}
