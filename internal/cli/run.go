package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shaiso/Conveyor/internal/domain"
	"github.com/shaiso/Conveyor/internal/engine"
	"github.com/shaiso/Conveyor/internal/repo"
	"github.com/shaiso/Conveyor/internal/runner"
	"github.com/shaiso/Conveyor/internal/scheduler"
	"github.com/shaiso/Conveyor/internal/telemetry"
)

const (
	// defaultPipelineFile — конвенциональный путь пайплайна по умолчанию.
	defaultPipelineFile = "pipelines/simple_pipeline.yaml"

	// defaultPipelineDir — конвенциональный каталог с конфигурациями.
	defaultPipelineDir = "pipelines"
)

// NewRunCmd создаёт команду запуска пайплайна.
func NewRunCmd(outputFn func() *Output) *cobra.Command {
	var record bool
	var cronExpr string
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "run [FILE]",
		Short: "Run a pipeline",
		Long: "Run the pipeline described by FILE sequentially, step by step.\n" +
			"Without FILE the conventional default is used and available\n" +
			"configurations under ./" + defaultPipelineDir + " are listed.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()
			logger := slog.Default()

			path := defaultPipelineFile
			if len(args) == 1 {
				path = args[0]
			} else {
				out.Success("No pipeline specified, using default: " + defaultPipelineFile)
				if found := discoverPipelines(defaultPipelineDir); len(found) > 0 {
					out.Success("Available pipelines:")
					for _, f := range found {
						out.Success("  - " + f)
					}
				}
			}

			pipeline, err := engine.Load(path)
			if err != nil {
				return err
			}
			logger = telemetry.WithPipeline(logger, pipeline.Name)

			var runRepo *repo.RunRepo
			if record {
				pool, err := repo.NewPool(cmd.Context())
				if err != nil {
					return fmt.Errorf("run history: %w", err)
				}
				defer pool.Close()

				runRepo = repo.NewRunRepo(pool)
				if err := runRepo.EnsureSchema(cmd.Context()); err != nil {
					return fmt.Errorf("run history: %w", err)
				}
			}

			r := runner.New(runner.Config{Logger: logger})

			runOnce := func(ctx context.Context) *domain.Report {
				report := r.Run(ctx, pipeline)
				if runRepo != nil {
					if err := runRepo.Save(ctx, report); err != nil {
						logger.Error("failed to record run", "error", err)
					}
				}
				return report
			}

			if cronExpr != "" {
				return runScheduled(cmd.Context(), cronExpr, metricsAddr, logger, runOnce)
			}

			report := runOnce(cmd.Context())
			if report.Status.IsFailure() {
				return fmt.Errorf("pipeline failed at step %d/%d (%s)",
					report.FailedStepIndex, report.TotalSteps, report.FailedStepName())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&record, "record", false,
		"Record the run report in the history database (CONVEYOR_DB_URL)")
	cmd.Flags().StringVar(&cronExpr, "cron", "",
		"Re-run the pipeline on a cron schedule until interrupted")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "",
		"Serve Prometheus metrics on this address (cron mode only)")

	return cmd
}

// runScheduled выполняет пайплайн по cron-расписанию до SIGINT/SIGTERM.
func runScheduled(ctx context.Context, cronExpr, metricsAddr string,
	logger *slog.Logger, runOnce func(context.Context) *domain.Report) error {

	if err := scheduler.ValidateCronExpr(cronExpr); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if metricsAddr != "" {
		go func() {
			if err := telemetry.ServeMetrics(ctx, metricsAddr, logger); err != nil {
				logger.Error("metrics server failed", "error", err)
			}
		}()
	}

	return scheduler.Run(ctx, cronExpr, logger, func(ctx context.Context) {
		report := runOnce(ctx)
		telemetry.ObserveRun(report)
	})
}

// discoverPipelines возвращает конфигурации пайплайнов в каталоге.
func discoverPipelines(dir string) []string {
	var found []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			continue
		}
		found = append(found, matches...)
	}
	sort.Strings(found)
	return found
}
