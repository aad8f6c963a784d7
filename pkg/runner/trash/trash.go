// Package trash holds the soft-delete lifecycle runners: delete to trash,
// restore, purge one, empty the whole thing.
package trash

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/oneiro/pkg/diary"
	"tableflip.dev/oneiro/pkg/printers"
	"tableflip.dev/oneiro/pkg/store"
)

type Delete struct {
	ID          string
	Persistence store.Persistence
}

func (n *Delete) Do(ctx context.Context) error {
	s, err := load(n.Persistence)
	if err != nil {
		return err
	}
	if err := s.DeleteDream(n.ID); err != nil {
		return err
	}
	fmt.Printf("moved %s to trash\n", n.ID)
	return nil
}

type Restore struct {
	ID          string
	Persistence store.Persistence
}

func (n *Restore) Do(ctx context.Context) error {
	s, err := load(n.Persistence)
	if err != nil {
		return err
	}
	if err := s.RestoreDream(n.ID); err != nil {
		return err
	}
	fmt.Printf("restored %s\n", n.ID)
	return nil
}

type Purge struct {
	ID          string
	Persistence store.Persistence
}

func (n *Purge) Do(ctx context.Context) error {
	s, err := load(n.Persistence)
	if err != nil {
		return err
	}
	if err := s.PermanentlyDeleteDream(n.ID); err != nil {
		return err
	}
	fmt.Printf("permanently deleted %s\n", n.ID)
	return nil
}

type Clear struct {
	Persistence store.Persistence
}

func (n *Clear) Do(ctx context.Context) error {
	s, err := load(n.Persistence)
	if err != nil {
		return err
	}
	count := len(s.Trashed())
	if err := s.ClearTrash(); err != nil {
		return err
	}
	fmt.Printf("emptied trash, %d gone\n", count)
	return nil
}

type List struct {
	ShowID      bool
	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	s, err := load(n.Persistence)
	if err != nil {
		return err
	}
	dreams := s.Trashed()

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount("Trash", len(dreams))
	pp.Dreams(dreams, s.Categories())
	return nil
}

func load(p store.Persistence) (*diary.Service, error) {
	if p == nil {
		return nil, errors.New("can not touch the trash, no persistence")
	}
	return diary.Load(p)
}
