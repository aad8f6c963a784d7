// Package diary holds the in-memory entry store and the operations the CLI
// and any UI share: CRUD over dreams, the trash, citations, tags, and
// categories. The state is authoritative for the process; every mutation is
// mirrored to persistence synchronously and write failures are returned to
// the caller instead of letting memory and disk diverge silently.
package diary

import (
	"errors"
	"fmt"

	"tableflip.dev/oneiro/pkg/dream"
	"tableflip.dev/oneiro/pkg/migrate"
	"tableflip.dev/oneiro/pkg/store"
	"tableflip.dev/oneiro/pkg/taxonomy"
)

var (
	// ErrNotFound is returned when no dream with the requested id exists in
	// the collection an operation targets.
	ErrNotFound = errors.New("diary: dream not found")
	// ErrSelfCitation is returned when a dream would cite itself.
	ErrSelfCitation = errors.New("diary: a dream cannot cite itself")
	// ErrNoPersistence is returned when a service has no storage configured.
	ErrNoPersistence = errors.New("diary: no persistence configured")
)

// Service owns the diary state. Single-threaded by design: callers run
// operations to completion before the next read, so no locking is needed.
type Service struct {
	Persistence store.Persistence

	dreams     []dream.Dream
	trashed    []dream.Dream
	categories []taxonomy.Category
}

// Load reads all collections from persistence and runs schema migration.
// Normalization happens on every load (it is idempotent); category seeding
// runs only when the schema marker is absent, then the marker is written so
// later loads never re-seed over user edits.
func Load(p store.Persistence) (*Service, error) {
	if p == nil {
		return nil, ErrNoPersistence
	}

	dreams, err := p.Dreams()
	if err != nil {
		return nil, fmt.Errorf("diary: load dreams: %w", err)
	}
	trashed, err := p.Trashed()
	if err != nil {
		return nil, fmt.Errorf("diary: load trash: %w", err)
	}
	categories, err := p.Categories()
	if err != nil {
		return nil, fmt.Errorf("diary: load categories: %w", err)
	}

	version, err := p.SchemaVersion()
	if err != nil {
		return nil, fmt.Errorf("diary: read schema marker: %w", err)
	}
	if version < migrate.SchemaVersion {
		if len(categories) == 0 {
			categories = migrate.SeedCategories(dreams, trashed)
			if err := p.SaveCategories(categories); err != nil {
				return nil, fmt.Errorf("diary: seed categories: %w", err)
			}
		}
		if err := p.SaveDreams(dreams); err != nil {
			return nil, fmt.Errorf("diary: write normalized dreams: %w", err)
		}
		if err := p.SaveTrashed(trashed); err != nil {
			return nil, fmt.Errorf("diary: write normalized trash: %w", err)
		}
		if err := p.SetSchemaVersion(migrate.SchemaVersion); err != nil {
			return nil, fmt.Errorf("diary: write schema marker: %w", err)
		}
	}

	return &Service{
		Persistence: p,
		dreams:      dreams,
		trashed:     trashed,
		categories:  categories,
	}, nil
}

// Dreams returns a copy of the active collection in presentation order.
func (s *Service) Dreams() []dream.Dream {
	out := dream.CloneAll(s.dreams)
	dream.Sort(out)
	return out
}

// Trashed returns a copy of the trash collection in presentation order.
func (s *Service) Trashed() []dream.Dream {
	out := dream.CloneAll(s.trashed)
	dream.Sort(out)
	return out
}

// Categories returns a copy of the category list.
func (s *Service) Categories() []taxonomy.Category {
	return append([]taxonomy.Category(nil), s.categories...)
}

// DreamByID finds an active dream by id.
func (s *Service) DreamByID(id string) (dream.Dream, bool) {
	for _, d := range s.dreams {
		if d.ID == id {
			return d.Clone(), true
		}
	}
	return dream.Dream{}, false
}

// IsActive reports whether id is in the active collection. UIs use this to
// clear a selection after a delete.
func (s *Service) IsActive(id string) bool {
	_, ok := s.DreamByID(id)
	return ok
}

// AddDream creates a new dream in the active collection. The id and
// timestamps are assigned here; tag and citation arrays default to empty and
// the wall time defaults to now.
func (s *Service) AddDream(d dream.Dream) (dream.Dream, error) {
	if s.Persistence == nil {
		return dream.Dream{}, ErrNoPersistence
	}

	now := dream.NowISO()
	d.ID = dream.NewID()
	d.CreatedAt = now
	d.UpdatedAt = now
	d.DeletedAt = ""
	if d.Date == "" {
		d.Date = dream.CurrentDate()
	}
	if d.Time == "" {
		d.Time = dream.CurrentTime()
	}
	d.Tags = dedupeTags(d.Tags)
	d.CitedDreams = dedupeStrings(d.CitedDreams, d.ID)
	d.CitedTags = dedupeStrings(d.CitedTags, "")

	next := append(dream.CloneAll(s.dreams), d)
	if err := s.Persistence.SaveDreams(next); err != nil {
		return dream.Dream{}, err
	}
	s.dreams = next
	return d.Clone(), nil
}

// Patch carries partial updates for UpdateDream. Nil fields are untouched.
type Patch struct {
	Title       *string
	Date        *string
	Time        *string
	Description *string
	Tags        []taxonomy.Tag
	CitedDreams []string
	CitedTags   []string
}

// UpdateDream merges the patch into the matching active dream and bumps
// updatedAt. Returns ErrNotFound when the id is not active.
func (s *Service) UpdateDream(id string, patch Patch) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}

	idx := indexOf(s.dreams, id)
	if idx < 0 {
		return ErrNotFound
	}

	next := dream.CloneAll(s.dreams)
	d := &next[idx]
	if patch.Title != nil {
		d.Title = *patch.Title
	}
	if patch.Date != nil {
		d.Date = *patch.Date
	}
	if patch.Time != nil {
		d.Time = *patch.Time
	}
	if patch.Description != nil {
		d.Description = *patch.Description
	}
	if patch.Tags != nil {
		d.Tags = dedupeTags(patch.Tags)
	}
	if patch.CitedDreams != nil {
		d.CitedDreams = dedupeStrings(patch.CitedDreams, id)
	}
	if patch.CitedTags != nil {
		d.CitedTags = dedupeStrings(patch.CitedTags, "")
	}
	d.UpdatedAt = dream.NowISO()

	if err := s.Persistence.SaveDreams(next); err != nil {
		return err
	}
	s.dreams = next
	return nil
}

// DeleteDream moves an active dream to the trash, stamping deletedAt.
func (s *Service) DeleteDream(id string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}

	idx := indexOf(s.dreams, id)
	if idx < 0 {
		return ErrNotFound
	}

	moved := s.dreams[idx].Clone()
	moved.DeletedAt = dream.NowISO()

	nextActive := removeAt(s.dreams, idx)
	nextTrash := append(dream.CloneAll(s.trashed), moved)

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

// RestoreDream moves a trashed dream back to the active collection and
// strips deletedAt.
func (s *Service) RestoreDream(id string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}

	idx := indexOf(s.trashed, id)
	if idx < 0 {
		return ErrNotFound
	}

	restored := s.trashed[idx].Clone()
	restored.DeletedAt = ""

	nextTrash := removeAt(s.trashed, idx)
	nextActive := append(dream.CloneAll(s.dreams), restored)

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

// PermanentlyDeleteDream removes a dream from the trash. Active dreams are
// never reachable from here.
func (s *Service) PermanentlyDeleteDream(id string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}

	idx := indexOf(s.trashed, id)
	if idx < 0 {
		return ErrNotFound
	}

	nextTrash := removeAt(s.trashed, idx)
	if err := s.Persistence.SaveTrashed(nextTrash); err != nil {
		return err
	}
	s.trashed = nextTrash
	return nil
}

// ClearTrash empties the trash collection unconditionally.
func (s *Service) ClearTrash() error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if err := s.Persistence.SaveTrashed([]dream.Dream{}); err != nil {
		return err
	}
	s.trashed = []dream.Dream{}
	return nil
}

func indexOf(dreams []dream.Dream, id string) int {
	for i, d := range dreams {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func removeAt(dreams []dream.Dream, idx int) []dream.Dream {
	out := make([]dream.Dream, 0, len(dreams)-1)
	for i, d := range dreams {
		if i == idx {
			continue
		}
		out = append(out, d.Clone())
	}
	return out
}

func dedupeTags(tags []taxonomy.Tag) []taxonomy.Tag {
	seen := make(map[string]bool, len(tags))
	out := make([]taxonomy.Tag, 0, len(tags))
	for _, t := range tags {
		if t.ID == "" || seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out
}

func dedupeStrings(in []string, drop string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" || s == drop || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
