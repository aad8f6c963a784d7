package add

import (
	"context"
	"errors"

	"tableflip.dev/oneiro/pkg/diary"
	"tableflip.dev/oneiro/pkg/dream"
	"tableflip.dev/oneiro/pkg/printers"
	"tableflip.dev/oneiro/pkg/store"
	"tableflip.dev/oneiro/pkg/taxonomy"
)

type Add struct {
	ShowID      bool
	Title       string
	Description string
	Date        string
	Time        string
	Tags        []taxonomy.Tag
	Cites       []string
	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	s, err := diary.Load(n.Persistence)
	if err != nil {
		return err
	}

	added, err := s.AddDream(dream.Dream{
		Title:       n.Title,
		Description: n.Description,
		Date:        n.Date,
		Time:        n.Time,
		Tags:        n.Tags,
		CitedDreams: n.Cites,
	})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Dreams([]dream.Dream{added}, s.Categories())
	return nil
}
