package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/oneiro/pkg/diary"
	"tableflip.dev/oneiro/pkg/timeutil"
)

// FilterOptions narrows dream listings.
type FilterOptions struct {
	Tag      string
	Category string
	Search   string
	From     string
	To       string
	After    string
	Before   string
	Last     string
	Trashed  bool
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Tag, "tag", "t", "",
		"Only dreams carrying this tag id (category/label).")
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Only dreams with a tag in this category.")
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Only dreams whose title, description or tags contain this text.")
	cmd.Flags().StringVar(&o.From, "from", "",
		"Only dreams on or after this date (YYYY-MM-DD).")
	cmd.Flags().StringVar(&o.To, "to", "",
		"Only dreams on or before this date (YYYY-MM-DD).")
	cmd.Flags().StringVar(&o.After, "after", "",
		"Only dreams at or after this time of day (HH:MM:SS).")
	cmd.Flags().StringVar(&o.Before, "before", "",
		"Only dreams at or before this time of day (HH:MM:SS).")
	cmd.Flags().StringVar(&o.Last, "last", "",
		"Only dreams inside a lookback window like 1w, 3d or 1mo.")
}

func AddTrashedArg(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().BoolVar(&o.Trashed, "trashed", false,
		"List the trash instead of active dreams.")
}

// Filter converts the flags into a store filter. --tag wins over --category
// when both are set; --from wins over --last.
func (o *FilterOptions) Filter() (diary.Filter, error) {
	tagOrCategory := o.Tag
	if tagOrCategory == "" && o.Category != "" {
		tagOrCategory = diary.CategoryFilterPrefix + o.Category
	}

	from := o.From
	if from == "" && o.Last != "" {
		start, err := timeutil.WindowStartDate(time.Now(), o.Last)
		if err != nil {
			return diary.Filter{}, err
		}
		from = start
	}

	return diary.Filter{
		TagOrCategory: tagOrCategory,
		SearchText:    o.Search,
		DateRange:     diary.DateRange{Start: from, End: o.To},
		TimeRange:     diary.TimeRange{Start: o.After, End: o.Before},
	}, nil
}
