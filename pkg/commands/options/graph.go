package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/oneiro/pkg/diary"
	"tableflip.dev/oneiro/pkg/graph"
)

// GraphOptions narrows the citation graph view.
type GraphOptions struct {
	From            string
	To              string
	Tags            []string
	IncludeIsolated bool
}

func AddGraphArgs(cmd *cobra.Command, o *GraphOptions) {
	cmd.Flags().StringVar(&o.From, "from", "",
		"Only dreams on or after this date (YYYY-MM-DD).")
	cmd.Flags().StringVar(&o.To, "to", "",
		"Only dreams on or before this date (YYYY-MM-DD).")
	cmd.Flags().StringArrayVarP(&o.Tags, "tag", "t", nil,
		"Only dreams carrying one of these tag ids, repeatable.")
	cmd.Flags().BoolVar(&o.IncludeIsolated, "isolated", false,
		"Keep dreams with no citations in the graph.")
}

func (o *GraphOptions) Filters() graph.Filters {
	return graph.Filters{
		DateRange:       diary.DateRange{Start: o.From, End: o.To},
		SelectedTagIDs:  o.Tags,
		IncludeIsolated: o.IncludeIsolated,
	}
}
