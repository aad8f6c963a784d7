// Package export reads and writes the diary interchange format: a JSON
// document carrying the active and trashed dreams, or (from older builds) a
// bare array of dreams. Importing never overwrites existing ids.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"tableflip.dev/oneiro/pkg/dream"
	"tableflip.dev/oneiro/pkg/migrate"
)

// Version is the current interchange format version.
const Version = "1.0"

// File is the interchange document.
type File struct {
	Dreams        []dream.Dream `json:"dreams"`
	TrashedDreams []dream.Dream `json:"trashedDreams"`
	ExportedAt    string        `json:"exportedAt"`
	Version       string        `json:"version"`
}

// Marshal renders an export document for the given collections.
func Marshal(dreams, trashed []dream.Dream) ([]byte, error) {
	f := File{
		Dreams:        dream.CloneAll(dreams),
		TrashedDreams: dream.CloneAll(trashed),
		ExportedAt:    dream.NowISO(),
		Version:       Version,
	}
	return json.MarshalIndent(f, "", "  ")
}

// Filename is the default export file name for the given day.
func Filename(now time.Time) string {
	return "dream-diary-export-" + now.Format("2006-01-02") + ".json"
}

// Parse decodes an export document. Both the current envelope and the legacy
// bare-array form are accepted. Records missing required fields are dropped;
// a document yielding no valid records at all is an error.
func Parse(data []byte) (File, error) {
	var envelope struct {
		Dreams        []json.RawMessage `json:"dreams"`
		TrashedDreams []json.RawMessage `json:"trashedDreams"`
		ExportedAt    string            `json:"exportedAt"`
		Version       string            `json:"version"`
	}

	var rawDreams, rawTrashed []json.RawMessage
	if err := json.Unmarshal(data, &envelope); err == nil {
		rawDreams, rawTrashed = envelope.Dreams, envelope.TrashedDreams
	} else if err := json.Unmarshal(data, &rawDreams); err != nil {
		return File{}, fmt.Errorf("export: not a recognized export file: %w", err)
	}

	f := File{
		Dreams:        decodeRecords(rawDreams),
		TrashedDreams: decodeRecords(rawTrashed),
		ExportedAt:    envelope.ExportedAt,
		Version:       envelope.Version,
	}
	if len(f.Dreams)+len(f.TrashedDreams) == 0 {
		return File{}, fmt.Errorf("export: no valid dream records in file")
	}
	return f, nil
}

func decodeRecords(raw []json.RawMessage) []dream.Dream {
	out := make([]dream.Dream, 0, len(raw))
	for _, r := range raw {
		var record map[string]any
		if err := json.Unmarshal(r, &record); err != nil {
			continue
		}
		if !validRecord(record) {
			continue
		}
		out = append(out, migrate.NormalizeDream(record))
	}
	return out
}

// validRecord checks the required field shapes. Normalization repairs the
// rest; anything failing here is dropped, never fatal.
func validRecord(record map[string]any) bool {
	for _, key := range []string{"id", "title", "date", "description"} {
		if _, ok := record[key].(string); !ok {
			return false
		}
	}
	if record["id"] == "" {
		return false
	}
	for _, key := range []string{"tags", "citedDreams"} {
		if _, ok := record[key].([]any); !ok {
			return false
		}
	}
	if v, ok := record["citedTags"]; ok {
		if _, isArray := v.([]any); !isArray {
			return false
		}
	}
	return true
}

// MergeSet is a parsed file rewritten for insertion into an existing store:
// colliding ids replaced, in-batch citations retargeted.
type MergeSet struct {
	Dreams        []dream.Dream
	TrashedDreams []dream.Dream
	// Remapped maps original ids to the fresh ids they received.
	Remapped map[string]string
}

// Merge assigns fresh ids to imported dreams whose ids are already taken
// (or duplicated within the batch) and rewrites citedDreams references that
// pointed at a remapped batch member. References to pre-existing ids outside
// the batch are kept as-is.
func Merge(f File, taken func(id string) bool) MergeSet {
	m := MergeSet{
		Dreams:        dream.CloneAll(f.Dreams),
		TrashedDreams: dream.CloneAll(f.TrashedDreams),
		Remapped:      make(map[string]string),
	}

	inBatch := make(map[string]bool)
	remap := func(dreams []dream.Dream) {
		for i := range dreams {
			id := dreams[i].ID
			if taken(id) || inBatch[id] {
				fresh := dream.NewID()
				m.Remapped[id] = fresh
				dreams[i].ID = fresh
				id = fresh
			}
			inBatch[id] = true
		}
	}
	remap(m.Dreams)
	remap(m.TrashedDreams)

	rewrite := func(dreams []dream.Dream) {
		for i := range dreams {
			for j, cited := range dreams[i].CitedDreams {
				if fresh, ok := m.Remapped[cited]; ok {
					dreams[i].CitedDreams[j] = fresh
				}
			}
		}
	}
	rewrite(m.Dreams)
	rewrite(m.TrashedDreams)

	return m
}
