package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/oneiro/pkg/dream"
	"tableflip.dev/oneiro/pkg/taxonomy"
)

// DreamOptions carries the writable fields of a dream.
type DreamOptions struct {
	Title       string
	Description string
	Date        string
	Time        string
	Tags        []string
	Cites       []string
}

func AddDreamArgs(cmd *cobra.Command, o *DreamOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"What happened in the dream.")
	cmd.Flags().StringVar(&o.Date, "date", "",
		"Dream date as YYYY-MM-DD, defaults to today.")
	cmd.Flags().StringVar(&o.Time, "time", "",
		"Dream time as HH:MM:SS.")
	cmd.Flags().StringArrayVarP(&o.Tags, "tag", "t", nil,
		"Tag as category/label, repeatable. A bare label is uncategorized.")
	cmd.Flags().StringArrayVar(&o.Cites, "cites", nil,
		"Id of a dream this one cites, repeatable.")
}

// Validate rejects a --date or --time value that does not parse. Unset
// values pass; defaults are filled in later.
func (o *DreamOptions) Validate() error {
	if o.Date != "" && !dream.ValidDate(o.Date) {
		return fmt.Errorf("invalid --date %q, want YYYY-MM-DD", o.Date)
	}
	if o.Time != "" && !dream.ValidTime(o.Time) {
		return fmt.Errorf("invalid --time %q, want HH:MM:SS", o.Time)
	}
	return nil
}

// ParsedTags converts the --tag values into tags. "places/City" scopes the
// label to a category, a bare "City" lands in uncategorized.
func (o *DreamOptions) ParsedTags() []taxonomy.Tag {
	if o.Tags == nil {
		return nil
	}
	tags := make([]taxonomy.Tag, 0, len(o.Tags))
	for _, raw := range o.Tags {
		category, label, found := strings.Cut(raw, "/")
		if !found {
			category, label = "", raw
		}
		if strings.TrimSpace(label) == "" {
			continue
		}
		tags = append(tags, taxonomy.NewTag(strings.TrimSpace(category), label, true))
	}
	return tags
}
