package tag

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/oneiro/pkg/diary"
	"tableflip.dev/oneiro/pkg/printers"
	"tableflip.dev/oneiro/pkg/store"
)

// List prints tag usage across the active collection.
type List struct {
	JSON        bool
	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list tags, no persistence")
	}

	s, err := diary.Load(n.Persistence)
	if err != nil {
		return err
	}
	tags := s.AllTags()

	if n.JSON {
		b, err := json.MarshalIndent(tags, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Tags")
	pp.Tags(tags, s.TagColor)
	return nil
}
