package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/oneiro/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "oneiro",
		Short: "A dream diary on the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addShow(topLevel)
	addEdit(topLevel)
	addRm(topLevel)
	addTrash(topLevel)
	addCite(topLevel)
	addTag(topLevel)
	addCategory(topLevel)
	addGraph(topLevel)
	addInsights(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addWatch(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
