package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/oneiro/pkg/commands/options"
	"tableflip.dev/oneiro/pkg/diary"
	"tableflip.dev/oneiro/pkg/runner/edit"
	"tableflip.dev/oneiro/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	do := &options.DreamOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a dream's fields",
		Long: `Change a dream's fields. Only flags you set are applied; --tag and
--cites replace the full list when given.`,
		Example: `
oneiro edit 171dff69 --title "the harbor again"
oneiro edit 171dff69 --tag places/harbor --tag emotions/awe
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a dream id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := do.Validate(); err != nil {
				return output.HandleError(err)
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			patch := diary.Patch{}
			if cmd.Flags().Changed("title") {
				patch.Title = &do.Title
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &do.Description
			}
			if cmd.Flags().Changed("date") {
				patch.Date = &do.Date
			}
			if cmd.Flags().Changed("time") {
				patch.Time = &do.Time
			}
			if cmd.Flags().Changed("tag") {
				patch.Tags = do.ParsedTags()
			}
			if cmd.Flags().Changed("cites") {
				patch.CitedDreams = do.Cites
			}

			s := edit.Edit{
				ShowID:      io.ShowID,
				ID:          args[0],
				Patch:       patch,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&do.Title, "title", "", "New title.")
	options.AddDreamArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
