// Package category holds the taxonomy management runners.
package category

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/oneiro/pkg/diary"
	"tableflip.dev/oneiro/pkg/printers"
	"tableflip.dev/oneiro/pkg/store"
	"tableflip.dev/oneiro/pkg/taxonomy"
)

type Add struct {
	Name        string
	Color       string
	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	s, err := load(n.Persistence)
	if err != nil {
		return err
	}

	c, err := s.AddCategory(n.Name, n.Color)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Categories([]taxonomy.Category{c})
	return nil
}

type List struct {
	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	s, err := load(n.Persistence)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Categories")
	pp.Categories(s.Categories())
	return nil
}

type Set struct {
	ID          string
	Name        *string
	Color       *string
	Persistence store.Persistence
}

func (n *Set) Do(ctx context.Context) error {
	s, err := load(n.Persistence)
	if err != nil {
		return err
	}

	patch := diary.CategoryPatch{Name: n.Name, Color: n.Color}
	if err := s.UpdateCategory(n.ID, patch); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Categories(s.Categories())
	return nil
}

type Remove struct {
	ID          string
	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	s, err := load(n.Persistence)
	if err != nil {
		return err
	}

	if err := s.DeleteCategory(n.ID); err != nil {
		return err
	}
	fmt.Printf("deleted category %s and its tags\n", n.ID)
	return nil
}

func load(p store.Persistence) (*diary.Service, error) {
	if p == nil {
		return nil, errors.New("can not manage categories, no persistence")
	}
	return diary.Load(p)
}
