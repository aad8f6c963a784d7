// Package graph derives the citation graph view from the active dream
// collection. The output is a plain directed graph: cycles are legal and
// nothing here assumes a DAG. Everything is a pure function of its inputs,
// recomputed in full on every filter change.
package graph

import (
	"tableflip.dev/oneiro/pkg/diary"
	"tableflip.dev/oneiro/pkg/dream"
	"tableflip.dev/oneiro/pkg/taxonomy"
)

// Node is one surviving dream in the graph view. CitationCount is the
// in-degree within the surviving set only.
type Node struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Date          string         `json:"date"`
	Tags          []taxonomy.Tag `json:"tags"`
	CitedDreams   []string       `json:"citedDreams"`
	CitationCount int            `json:"citationCount"`
}

// Edge is a directed citation between two surviving dreams.
type Edge struct {
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Strength float64 `json:"strength"`
}

// Data is the derived graph handed to renderers.
type Data struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Filters narrows the dream set before the graph is built.
type Filters struct {
	DateRange diary.DateRange
	// SelectedTagIDs keeps dreams carrying at least one of the ids (OR).
	SelectedTagIDs []string
	// IncludeIsolated keeps dreams with no surviving edges. Isolation is
	// judged against the filtered set: an edge to a filtered-out dream does
	// not count as a connection.
	IncludeIsolated bool
}

// Build derives the graph for the given dreams and filters. Dangling
// citations (ids absent from the surviving set, including references left
// behind by deleted dreams) are dropped silently. O(n + edges).
func Build(dreams []dream.Dream, f Filters) Data {
	filtered := make([]dream.Dream, 0, len(dreams))
	for _, d := range dreams {
		if !f.DateRange.IsZero() && !f.DateRange.Contains(d.Date) {
			continue
		}
		if len(f.SelectedTagIDs) > 0 && !hasAnyTag(d, f.SelectedTagIDs) {
			continue
		}
		filtered = append(filtered, d)
	}

	inSet := make(map[string]bool, len(filtered))
	for _, d := range filtered {
		inSet[d.ID] = true
	}

	// In-degree within the filtered set; only edges whose both ends survive
	// contribute.
	inDegree := make(map[string]int, len(filtered))
	outDegree := make(map[string]int, len(filtered))
	for _, d := range filtered {
		for _, cited := range d.CitedDreams {
			if cited == d.ID || !inSet[cited] {
				continue
			}
			inDegree[cited]++
			outDegree[d.ID]++
		}
	}

	if !f.IncludeIsolated {
		connected := filtered[:0]
		for _, d := range filtered {
			if inDegree[d.ID] > 0 || outDegree[d.ID] > 0 {
				connected = append(connected, d)
			} else {
				delete(inSet, d.ID)
			}
		}
		filtered = connected
	}

	nodes := make([]Node, 0, len(filtered))
	edges := make([]Edge, 0)
	for _, d := range filtered {
		nodes = append(nodes, Node{
			ID:            d.ID,
			Title:         d.Title,
			Date:          d.Date,
			Tags:          append([]taxonomy.Tag(nil), d.Tags...),
			CitedDreams:   append([]string(nil), d.CitedDreams...),
			CitationCount: inDegree[d.ID],
		})
		for _, cited := range d.CitedDreams {
			if cited == d.ID || !inSet[cited] {
				continue
			}
			edges = append(edges, Edge{Source: d.ID, Target: cited, Strength: 1})
		}
	}

	return Data{Nodes: nodes, Edges: edges}
}

func hasAnyTag(d dream.Dream, tagIDs []string) bool {
	for _, id := range tagIDs {
		if d.HasTag(id) {
			return true
		}
	}
	return false
}
