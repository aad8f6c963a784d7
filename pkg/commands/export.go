package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/oneiro/pkg/commands/options"
	"tableflip.dev/oneiro/pkg/runner/export"
	"tableflip.dev/oneiro/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	path := ""

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write the whole diary to a JSON file",
		Example: `
oneiro export
oneiro export backups/dreams.json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) > 1 {
				return errors.New("at most one file")
			}
			if len(args) == 1 {
				path = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := export.Export{JSON: output.JSON, Path: path, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Merge an exported file into the diary",
		Long: `Merge an exported file into the diary. Existing dreams are never
overwritten: colliding ids get fresh ones and citations inside the imported
batch follow along.`,
		Example: `
oneiro import dream-diary-export-2024-03-09.json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := export.Import{JSON: output.JSON, Path: args[0], Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
