package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/oneiro/pkg/commands/options"
	"tableflip.dev/oneiro/pkg/runner/get"
	"tableflip.dev/oneiro/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List dreams, most recent first",
		Example: `
oneiro get
oneiro get --tag places/harbor
oneiro get --category emotions --from 2024-01-01 --to 2024-01-31
oneiro get --search school --json
oneiro get --trashed
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			f, err := fo.Filter()
			if err != nil {
				return err
			}

			s := get.Get{
				ShowID:      io.ShowID,
				JSON:        output.JSON,
				Filter:      f,
				Trashed:     fo.Trashed,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddTrashedArg(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
