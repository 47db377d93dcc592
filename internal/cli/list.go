package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shaiso/Conveyor/internal/engine"
)

// pipelineInfo — сведения об одной конфигурации для вывода list.
type pipelineInfo struct {
	File  string `json:"file"`
	Name  string `json:"name,omitempty"`
	Steps int    `json:"steps,omitempty"`
	Error string `json:"error,omitempty"`
}

// NewListCmd создаёт команду листинга конфигураций пайплайнов.
func NewListCmd(outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "list [DIR]",
		Short: "List pipeline configs in a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			dir := defaultPipelineDir
			if len(args) == 1 {
				dir = args[0]
			}

			files := discoverPipelines(dir)
			infos := make([]pipelineInfo, 0, len(files))
			rows := make([][]string, 0, len(files))

			for _, file := range files {
				info := pipelineInfo{File: file}
				pipeline, err := engine.Load(file)
				if err != nil {
					// Битые конфигурации перечисляем тоже: list —
					// обзорная команда, падать из-за одной из них нельзя.
					info.Error = err.Error()
					rows = append(rows, []string{file, "-", "-", "invalid"})
				} else {
					info.Name = pipeline.Name
					info.Steps = len(pipeline.Steps)
					rows = append(rows, []string{
						file, pipeline.Name, strconv.Itoa(len(pipeline.Steps)), "ok",
					})
				}
				infos = append(infos, info)
			}

			if len(infos) == 0 {
				out.Success("No pipeline configs found in " + dir)
				return nil
			}

			out.Print([]string{"FILE", "NAME", "STEPS", "STATUS"}, rows, infos)
			return nil
		},
	}
}
