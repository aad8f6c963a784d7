package diary

import "tableflip.dev/oneiro/pkg/dream"

// AddCitation records a directed citation from one active dream to another.
// Self-citations are rejected, duplicates are no-ops, and both ends must be
// active.
func (s *Service) AddCitation(dreamID, citedID string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if dreamID == citedID {
		return ErrSelfCitation
	}

	idx := indexOf(s.dreams, dreamID)
	if idx < 0 || indexOf(s.dreams, citedID) < 0 {
		return ErrNotFound
	}
	if s.dreams[idx].Cites(citedID) {
		return nil
	}

	next := dream.CloneAll(s.dreams)
	next[idx].CitedDreams = append(next[idx].CitedDreams, citedID)
	next[idx].UpdatedAt = dream.NowISO()

	if err := s.Persistence.SaveDreams(next); err != nil {
		return err
	}
	s.dreams = next
	return nil
}

// RemoveCitation drops the citation edge if present.
func (s *Service) RemoveCitation(dreamID, citedID string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}

	idx := indexOf(s.dreams, dreamID)
	if idx < 0 {
		return ErrNotFound
	}

	next := dream.CloneAll(s.dreams)
	kept := next[idx].CitedDreams[:0]
	for _, id := range next[idx].CitedDreams {
		if id != citedID {
			kept = append(kept, id)
		}
	}
	next[idx].CitedDreams = kept
	next[idx].UpdatedAt = dream.NowISO()

	if err := s.Persistence.SaveDreams(next); err != nil {
		return err
	}
	s.dreams = next
	return nil
}

// CitedDreams resolves the dreams this dream cites. Dangling references to
// missing or trashed dreams are skipped, never an error.
func (s *Service) CitedDreams(id string) []dream.Dream {
	idx := indexOf(s.dreams, id)
	if idx < 0 {
		return nil
	}
	out := make([]dream.Dream, 0, len(s.dreams[idx].CitedDreams))
	for _, cited := range s.dreams[idx].CitedDreams {
		if d, ok := s.DreamByID(cited); ok {
			out = append(out, d)
		}
	}
	return out
}

// CitingDreams returns the active dreams whose citations include id.
func (s *Service) CitingDreams(id string) []dream.Dream {
	out := make([]dream.Dream, 0)
	for _, d := range s.dreams {
		if d.Cites(id) {
			out = append(out, d.Clone())
		}
	}
	return out
}
