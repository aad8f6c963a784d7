// Package store persists the diary's collections as JSON documents on disk.
// Each collection (dreams, trashed dreams, categories) is one diskv key
// holding a JSON array; missing keys read as empty collections. Reads run
// every record through pkg/migrate so legacy shapes always load.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/oneiro/pkg/dream"
	"tableflip.dev/oneiro/pkg/migrate"
	"tableflip.dev/oneiro/pkg/taxonomy"
)

const (
	keyDreams        = "dreams.json"
	keyTrashed       = "trashed_dreams.json"
	keyCategories    = "categories.json"
	keySchemaVersion = "schema_version"
)

// Persistence is the storage contract the diary service writes through.
// Save methods must complete (or report failure) before in-memory state is
// considered authoritative.
type Persistence interface {
	Dreams() ([]dream.Dream, error)
	Trashed() ([]dream.Dream, error)
	Categories() ([]taxonomy.Category, error)
	SaveDreams([]dream.Dream) error
	SaveTrashed([]dream.Dream) error
	SaveCategories([]taxonomy.Category) error
	SchemaVersion() (int, error)
	SetSchemaVersion(int) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) readRaw(key string) ([]map[string]any, error) {
	if !p.d.Has(key) {
		return nil, nil
	}
	val, err := p.d.Read(key)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	var raw []map[string]any
	if err := json.Unmarshal(val, &raw); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", key, err)
	}
	return raw, nil
}

func (p *persistence) readDreams(key string) ([]dream.Dream, error) {
	raw, err := p.readRaw(key)
	if err != nil {
		return nil, err
	}
	return migrate.NormalizeDreams(raw), nil
}

func (p *persistence) write(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Dreams() ([]dream.Dream, error) {
	return p.readDreams(keyDreams)
}

func (p *persistence) Trashed() ([]dream.Dream, error) {
	return p.readDreams(keyTrashed)
}

func (p *persistence) Categories() ([]taxonomy.Category, error) {
	if !p.d.Has(keyCategories) {
		return nil, nil
	}
	val, err := p.d.Read(keyCategories)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", keyCategories, err)
	}
	var cats []taxonomy.Category
	if err := json.Unmarshal(val, &cats); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", keyCategories, err)
	}
	for i := range cats {
		cats[i].Color = taxonomy.NormalizeColor(string(cats[i].Color))
	}
	return cats, nil
}

func (p *persistence) SaveDreams(dreams []dream.Dream) error {
	return p.write(keyDreams, emptyNotNullDreams(dreams))
}

func (p *persistence) SaveTrashed(dreams []dream.Dream) error {
	return p.write(keyTrashed, emptyNotNullDreams(dreams))
}

func (p *persistence) SaveCategories(cats []taxonomy.Category) error {
	if cats == nil {
		cats = []taxonomy.Category{}
	}
	return p.write(keyCategories, cats)
}

// SchemaVersion reads the persisted schema marker; 0 means none was written,
// which triggers migration on load.
func (p *persistence) SchemaVersion() (int, error) {
	if !p.d.Has(keySchemaVersion) {
		return 0, nil
	}
	val, err := p.d.Read(keySchemaVersion)
	if err != nil {
		return 0, fmt.Errorf("store: read schema marker: %w", err)
	}
	v, err := strconv.Atoi(string(val))
	if err != nil {
		return 0, nil
	}
	return v, nil
}

func (p *persistence) SetSchemaVersion(v int) error {
	if err := p.d.Write(keySchemaVersion, []byte(strconv.Itoa(v))); err != nil {
		return fmt.Errorf("store: write schema marker: %w", err)
	}
	return nil
}

func emptyNotNullDreams(in []dream.Dream) []dream.Dream {
	if in == nil {
		return []dream.Dream{}
	}
	return in
}
