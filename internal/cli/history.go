package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shaiso/Conveyor/internal/repo"
)

// NewHistoryCmd создаёт команду просмотра истории прогонов.
func NewHistoryCmd(outputFn func() *Output) *cobra.Command {
	var pipelineName string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded pipeline runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			pool, err := repo.NewPool(cmd.Context())
			if err != nil {
				return fmt.Errorf("run history: %w", err)
			}
			defer pool.Close()

			runRepo := repo.NewRunRepo(pool)
			if err := runRepo.EnsureSchema(cmd.Context()); err != nil {
				return fmt.Errorf("run history: %w", err)
			}

			records, err := runRepo.List(cmd.Context(), pipelineName, limit)
			if err != nil {
				return err
			}

			rows := make([][]string, len(records))
			for i, rec := range records {
				steps := fmt.Sprintf("%d/%d", rec.CompletedSteps, rec.TotalSteps)
				failed := rec.FailedStep
				if failed == "" {
					failed = "-"
				}
				rows[i] = []string{
					rec.ID.String(),
					rec.PipelineName,
					rec.Status,
					steps,
					failed,
					rec.StartedAt.Format(time.RFC3339),
					rec.FinishedAt.Sub(rec.StartedAt).Round(time.Millisecond).String(),
				}
			}

			out.Print(
				[]string{"ID", "PIPELINE", "STATUS", "STEPS", "FAILED_STEP", "STARTED", "DURATION"},
				rows, records)
			return nil
		},
	}

	cmd.Flags().StringVar(&pipelineName, "pipeline", "", "Filter by pipeline name")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show")

	return cmd
}
