package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/oneiro/pkg/diary"
	"tableflip.dev/oneiro/pkg/dream"
	"tableflip.dev/oneiro/pkg/printers"
	"tableflip.dev/oneiro/pkg/store"
)

type Get struct {
	ShowID      bool
	JSON        bool
	Filter      diary.Filter
	Trashed     bool
	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	s, err := diary.Load(n.Persistence)
	if err != nil {
		return err
	}

	var dreams []dream.Dream
	if n.Trashed {
		dreams = s.Trashed()
	} else {
		dreams = s.Filtered(n.Filter)
	}

	if n.JSON {
		b, err := json.MarshalIndent(dreams, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	if n.Trashed {
		pp.TitleWithCount("Trash", len(dreams))
	} else {
		pp.TitleWithCount("Dreams", len(dreams))
	}
	pp.Dreams(dreams, s.Categories())
	return nil
}
