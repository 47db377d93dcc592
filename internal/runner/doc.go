// Package runner выполняет пайплайн.
//
// Включает:
//   - invoker.go — запуск одного шага как дочернего процесса
//     с наследованием стандартных потоков
//   - runner.go  — driver: явная машина состояний
//     NotStarted → RunningStep(i) → Completed | StepFailed(i)
//     со строгой последовательностью и fail-fast
//
// Runner ничего не знает о содержимом шагов: шаг — непрозрачный
// исполняемый файл, единственный контракт — argv и код выхода.
package runner
