package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/oneiro/pkg/commands/options"
	"tableflip.dev/oneiro/pkg/runner/graph"
	"tableflip.dev/oneiro/pkg/store"
)

func addGraph(topLevel *cobra.Command) {
	gro := &options.GraphOptions{}

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Show the citation graph",
		Example: `
oneiro graph
oneiro graph --from 2024-01-01 --tag places/harbor --isolated
oneiro graph --json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := graph.Graph{
				JSON:        output.JSON,
				Filters:     gro.Filters(),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddGraphArgs(cmd, gro)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
