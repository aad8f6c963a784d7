package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/oneiro/pkg/commands/options"
	"tableflip.dev/oneiro/pkg/runner/add"
	"tableflip.dev/oneiro/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	do := &options.DreamOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a dream",
		Example: `
oneiro add flying over the harbor --tag places/harbor --tag dream-types/flying
oneiro add the empty school --date 2024-02-01 --time 23:10:00 -d "endless hallways"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			do.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if err := do.Validate(); err != nil {
				return output.HandleError(err)
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := add.Add{
				ShowID:      io.ShowID,
				Title:       do.Title,
				Description: do.Description,
				Date:        do.Date,
				Time:        do.Time,
				Tags:        do.ParsedTags(),
				Cites:       do.Cites,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDreamArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
