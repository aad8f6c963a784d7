package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/oneiro/pkg/commands/options"
	"tableflip.dev/oneiro/pkg/runner/cite"
	"tableflip.dev/oneiro/pkg/store"
)

func addCite(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "cite",
		Short: "Link dreams that reference each other",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addCiteAdd(cmd)
	addCiteRm(cmd)
	addCiteList(cmd)

	topLevel.AddCommand(cmd)
}

func citePairArgs(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	if len(args) != 2 {
		return errors.New("requires two dream ids: <from> <to>")
	}
	return nil
}

func addCiteAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add <from> <to>",
		Short: "Record that one dream cites another",
		Example: `
oneiro cite add 171dff69 9dca4ac1
`,
		Args: citePairArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := cite.Cite{From: args[0], To: args[1], Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addCiteRm(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rm <from> <to>",
		Short: "Remove a citation",
		Args:  citePairArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := cite.Cite{From: args[0], To: args[1], Remove: true, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addCiteList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "list <id>",
		Short: "Show what a dream cites and what cites it",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a dream id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := cite.List{ShowID: io.ShowID, ID: args[0], Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
