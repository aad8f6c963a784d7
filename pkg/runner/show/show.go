package show

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

type Show struct {
	ShowID      bool
	JSON        bool
	ID          string
	Persistence store.Persistence
}

func (n *Show) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show, no persistence")
	}

	s, err := diary.Load(n.Persistence)
	if err != nil {
		return err
	}

	d, ok := s.DreamByID(n.ID)
	if !ok {
		for _, t := range s.Trashed() {
			if t.ID == n.ID {
				d, ok = t, true
				break
			}
		}
	}
	if !ok {
		return fmt.Errorf("no dream with id %q", n.ID)
	}

	if n.JSON {
		b, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Dream(d, s.CitedDreams(d.ID), s.CitingDreams(d.ID), s.Categories())
	return nil
}
