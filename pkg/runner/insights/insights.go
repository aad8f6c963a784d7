package insights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/oneiro/pkg/analytics"
	"tableflip.dev/oneiro/pkg/diary"
	"tableflip.dev/oneiro/pkg/printers"
	"tableflip.dev/oneiro/pkg/store"
)

type Insights struct {
	JSON        bool
	Persistence store.Persistence
}

func (n *Insights) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not compute insights, no persistence")
	}

	s, err := diary.Load(n.Persistence)
	if err != nil {
		return err
	}

	stats := analytics.TagStats(s.Dreams())
	rels := analytics.Relationships(stats)
	sums := analytics.CategorySummaries(stats, s.Categories())

	if n.JSON {
		out := map[string]any{
			"tags":          stats,
			"relationships": rels,
			"categories":    sums,
		}
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Insights(stats, rels, sums)
	return nil
}
