package diary

import (
	"strings"

	"tableflip.dev/oneiro/pkg/dream"
	"tableflip.dev/oneiro/pkg/taxonomy"
)

// AddCategory creates a category with a unique slugged id and a normalized
// color.
func (s *Service) AddCategory(name string, color string) (taxonomy.Category, error) {
	if s.Persistence == nil {
		return taxonomy.Category{}, ErrNoPersistence
	}

	id := taxonomy.NewCategoryID(name, func(candidate string) bool {
		for _, c := range s.categories {
			if c.ID == candidate {
				return true
			}
		}
		return false
	})

	now := dream.NowISO()
	cat := taxonomy.Category{
		ID:        id,
		Name:      strings.TrimSpace(name),
		Color:     taxonomy.NormalizeColor(color),
		CreatedAt: now,
		UpdatedAt: now,
	}

	next := append(s.Categories(), cat)
	if err := s.Persistence.SaveCategories(next); err != nil {
		return taxonomy.Category{}, err
	}
	s.categories = next
	return cat, nil
}

// CategoryPatch carries partial updates for UpdateCategory.
type CategoryPatch struct {
	Name  *string
	Color *string
}

// UpdateCategory renames and/or recolors a category.
func (s *Service) UpdateCategory(id string, patch CategoryPatch) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}

	next := s.Categories()
	found := false
	for i := range next {
		if next[i].ID != id {
			continue
		}
		found = true
		if patch.Name != nil {
			next[i].Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Color != nil {
			next[i].Color = taxonomy.NormalizeColor(*patch.Color)
		}
		next[i].UpdatedAt = dream.NowISO()
	}
	if !found {
		return ErrNotFound
	}

	if err := s.Persistence.SaveCategories(next); err != nil {
		return err
	}
	s.categories = next
	return nil
}

// DeleteCategory removes the category and strips every tag referencing it
// from both the active and trashed collections. The tags are deleted
// outright, not reassigned to the sentinel. Deleting the sentinel is a no-op.
func (s *Service) DeleteCategory(id string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if id == taxonomy.UncategorizedID {
		return nil
	}

	nextCats := make([]taxonomy.Category, 0, len(s.categories))
	for _, c := range s.categories {
		if c.ID != id {
			nextCats = append(nextCats, c)
		}
	}

	nextDreams := stripCategory(s.dreams, id)
	nextTrash := stripCategory(s.trashed, id)

	if err := s.Persistence.SaveCategories(nextCats); err != nil {
		return err
	}
	if err := s.Persistence.SaveDreams(nextDreams); err != nil {
		return err
	}
	if err := s.Persistence.SaveTrashed(nextTrash); err != nil {
		return err
	}
	s.categories = nextCats
	s.dreams = nextDreams
	s.trashed = nextTrash
	return nil
}

func stripCategory(dreams []dream.Dream, categoryID string) []dream.Dream {
	out := dream.CloneAll(dreams)
	for i := range out {
		kept := out[i].Tags[:0]
		for _, t := range out[i].Tags {
			if t.CategoryID != categoryID {
				kept = append(kept, t)
			}
		}
		out[i].Tags = kept
	}
	return out
}
