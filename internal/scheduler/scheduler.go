package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// cronParser — парсер cron-выражений. Стандартные пять полей:
// минута, час, день месяца, месяц, день недели.
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateCronExpr проверяет валидность cron-выражения.
func ValidateCronExpr(cronExpr string) error {
	_, err := cronParser.Parse(cronExpr)
	if err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", cronExpr, err)
	}
	return nil
}

// Job — один запуск пайплайна по расписанию.
type Job func(ctx context.Context)

// Run выполняет job по cron-выражению до отмены ctx.
//
// Каждое срабатывание — независимый последовательный прогон; наложение
// срабатываний исключено (cron.DelayIfStillRunning): два параллельных
// прогона одного пайплайна нарушили бы контракт строгой
// последовательности шагов.
func Run(ctx context.Context, cronExpr string, logger *slog.Logger, job Job) error {
	schedule, err := cronParser.Parse(cronExpr)
	if err != nil {
		return fmt.Errorf("parse cron expression %q: %w", cronExpr, err)
	}

	c := cron.New(cron.WithParser(cronParser))
	c.Schedule(schedule, cron.NewChain(
		cron.DelayIfStillRunning(cron.DiscardLogger),
	).Then(cron.FuncJob(func() {
		job(ctx)
	})))

	logger.Info("scheduler started", "cron", cronExpr, "next", schedule.Next(time.Now()))
	c.Start()

	<-ctx.Done()

	// Дожидаемся завершения текущего срабатывания: шаг прервать нельзя.
	stopCtx := c.Stop()
	<-stopCtx.Done()

	logger.Info("scheduler stopped")
	return nil
}
