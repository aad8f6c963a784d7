package diary

import (
	"tableflip.dev/oneiro/pkg/dream"
)

// HasID reports whether an id exists in either the active or the trashed
// collection. Importers use this to detect id collisions.
func (s *Service) HasID(id string) bool {
	return indexOf(s.dreams, id) >= 0 || indexOf(s.trashed, id) >= 0
}

// Import appends already-remapped dreams to the active and trashed
// collections. Callers resolve id collisions before handing the sets over;
// nothing here overwrites existing records.
func (s *Service) Import(active, trashed []dream.Dream) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}

	nextActive := append(dream.CloneAll(s.dreams), dream.CloneAll(active)...)
	nextTrash := append(dream.CloneAll(s.trashed), dream.CloneAll(trashed)...)

	if err := s.Persistence.SaveDreams(nextActive); err != nil {
		return err
	}
	if err := s.Persistence.SaveTrashed(nextTrash); err != nil {
		return err
	}
	s.dreams = nextActive
	s.trashed = nextTrash
	return nil
}
