package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/oneiro/pkg/commands/options"
	"tableflip.dev/oneiro/pkg/runner/insights"
	"tableflip.dev/oneiro/pkg/store"
)

func addInsights(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Tag usage, co-occurrence and category rollups",
		Example: `
oneiro insights
oneiro insights --json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := insights.Insights{JSON: output.JSON, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
