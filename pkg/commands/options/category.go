package options

import (
	"github.com/spf13/cobra"
)

// CategoryOptions
type CategoryOptions struct {
	Name  string
	Color string
}

func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVarP(&o.Name, "name", "n", "",
		"Display name for the category.")
	cmd.Flags().StringVar(&o.Color, "color", "",
		"Preset color name or #RRGGBB hex.")
}
