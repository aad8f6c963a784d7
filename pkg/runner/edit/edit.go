package edit

import (
	"context"
	"errors"

	"tableflip.dev/oneiro/pkg/diary"
	"tableflip.dev/oneiro/pkg/dream"
	"tableflip.dev/oneiro/pkg/printers"
	"tableflip.dev/oneiro/pkg/store"
)

type Edit struct {
	ShowID      bool
	ID          string
	Patch       diary.Patch
	Persistence store.Persistence
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}

	s, err := diary.Load(n.Persistence)
	if err != nil {
		return err
	}

	if err := s.UpdateDream(n.ID, n.Patch); err != nil {
		return err
	}

	d, _ := s.DreamByID(n.ID)
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Dreams([]dream.Dream{d}, s.Categories())
	return nil
}
