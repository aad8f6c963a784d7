package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/oneiro/pkg/commands/options"
	"tableflip.dev/oneiro/pkg/runner/category"
	"tableflip.dev/oneiro/pkg/store"
)

func addCategory(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"categories"},
		Short:   "Manage tag categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addCategoryAdd(cmd)
	addCategoryList(cmd)
	addCategorySet(cmd)
	addCategoryRm(cmd)

	topLevel.AddCommand(cmd)
}

func addCategoryAdd(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Example: `
oneiro category add Nightmares --color red
oneiro category add "Lucid Dreams" --color "#8B5CF6"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a name")
			}
			co.Name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := category.Add{Name: co.Name, Color: co.Color, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&co.Color, "color", "",
		"Preset color name or #RRGGBB hex.")
	topLevel.AddCommand(cmd)
}

func addCategoryList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := category.List{Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addCategorySet(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}

	cmd := &cobra.Command{
		Use:   "set <id>",
		Short: "Rename or recolor a category",
		Example: `
oneiro category set nightmares --name "Night Terrors"
oneiro category set nightmares --color rose
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a category id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := category.Set{ID: args[0], Persistence: p}
			if cmd.Flags().Changed("name") {
				s.Name = &co.Name
			}
			if cmd.Flags().Changed("color") {
				s.Color = &co.Color
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCategoryArgs(cmd, co)
	topLevel.AddCommand(cmd)
}

func addCategoryRm(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a category and every tag in it",
		Long: `Delete a category. Tags scoped to it are removed from every dream,
active and trashed. This is not undoable.`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a category id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := category.Remove{ID: args[0], Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
