package cite

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/oneiro/pkg/diary"
	"tableflip.dev/oneiro/pkg/printers"
	"tableflip.dev/oneiro/pkg/store"
)

// Cite links or unlinks two dreams.
type Cite struct {
	From        string
	To          string
	Remove      bool
	Persistence store.Persistence
}

func (n *Cite) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not cite, no persistence")
	}

	s, err := diary.Load(n.Persistence)
	if err != nil {
		return err
	}

	if n.Remove {
		if err := s.RemoveCitation(n.From, n.To); err != nil {
			return err
		}
		fmt.Printf("%s no longer cites %s\n", n.From, n.To)
		return nil
	}

	if err := s.AddCitation(n.From, n.To); err != nil {
		return err
	}
	fmt.Printf("%s now cites %s\n", n.From, n.To)
	return nil
}

// List prints what a dream cites and what cites it.
type List struct {
	ShowID      bool
	ID          string
	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list citations, no persistence")
	}

	s, err := diary.Load(n.Persistence)
	if err != nil {
		return err
	}

	d, ok := s.DreamByID(n.ID)
	if !ok {
		return fmt.Errorf("no dream with id %q", n.ID)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Dream(d, s.CitedDreams(d.ID), s.CitingDreams(d.ID), s.Categories())
	return nil
}
