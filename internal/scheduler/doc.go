// Package scheduler запускает пайплайн по cron-расписанию.
//
// Используется режимом `conveyor run --cron`: процесс живёт до SIGINT
// и на каждое срабатывание выполняет независимый прогон пайплайна.
package scheduler
