package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shaiso/Conveyor/internal/engine"
)

// stepPlan — разрешённый шаг для вывода validate.
type stepPlan struct {
	Index      int      `json:"index"`
	Name       string   `json:"name"`
	Executable string   `json:"executable"`
	Args       []string `json:"args"`
}

// NewValidateCmd создаёт команду проверки конфигурации.
//
// Validate разрешает конфигурацию в канонический план (включая
// готовые argv каждого шага), но не запускает ни одного процесса.
func NewValidateCmd(outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [FILE]",
		Short: "Resolve a pipeline config and print the execution plan",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			path := defaultPipelineFile
			if len(args) == 1 {
				path = args[0]
			}

			pipeline, err := engine.Load(path)
			if err != nil {
				return err
			}

			plan := make([]stepPlan, len(pipeline.Steps))
			rows := make([][]string, len(pipeline.Steps))
			for i, step := range pipeline.Steps {
				argv := engine.BuildArgs(step.Params)
				plan[i] = stepPlan{
					Index:      i + 1,
					Name:       step.DisplayName,
					Executable: step.Executable,
					Args:       argv,
				}
				rows[i] = []string{
					strconv.Itoa(i + 1),
					step.DisplayName,
					step.Executable,
					strings.Join(argv, " "),
				}
			}

			out.Success(fmt.Sprintf("Configuration OK: %s (%d steps)",
				pipeline.Name, len(pipeline.Steps)))
			out.Print([]string{"#", "NAME", "EXECUTABLE", "ARGS"}, rows, plan)
			return nil
		},
	}
}
