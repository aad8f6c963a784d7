// Package analytics derives tag usage statistics from the active dream
// collection: per-tag counts and co-occurrence, pairwise relationship
// strength, and per-category rollups. Pure functions, recomputed in full.
package analytics

import (
	"sort"

	"tableflip.dev/oneiro/pkg/dream"
	"tableflip.dev/oneiro/pkg/taxonomy"
)

// TagStat is the aggregated usage of one tag. CoOccurrence maps the other
// tag's id to the number of dreams both appear in together.
type TagStat struct {
	ID           string         `json:"id"`
	Label        string         `json:"label"`
	CategoryID   string         `json:"categoryId"`
	Count        int            `json:"count"`
	Percentage   float64        `json:"percentage"`
	CoOccurrence map[string]int `json:"coOccurrence"`
}

// Relationship is one unordered tag pair with its normalized strength.
type Relationship struct {
	TagA          string  `json:"tagA"`
	TagB          string  `json:"tagB"`
	LabelA        string  `json:"labelA"`
	LabelB        string  `json:"labelB"`
	CoOccurrences int     `json:"coOccurrences"`
	Strength      float64 `json:"strength"`
}

// CategorySummary rolls tag usage up to one category.
type CategorySummary struct {
	CategoryID   string         `json:"categoryId"`
	CategoryName string         `json:"categoryName"`
	Color        taxonomy.Color `json:"color"`
	TagCount     int            `json:"tagCount"`
	TotalUsage   int            `json:"totalUsage"`
	TopTags      []TagStat      `json:"topTags"`
}

// topTagsPerCategory bounds the rollup; ties keep first-encountered order.
const topTagsPerCategory = 5

// TagStats aggregates usage over the given dreams, most used first (ties
// keep first-encountered order). Percentage is of total dreams, 0 when the
// collection is empty. A tag appearing twice on one dream counts once.
func TagStats(dreams []dream.Dream) []TagStat {
	index := make(map[string]int)
	stats := make([]TagStat, 0)

	for _, d := range dreams {
		seen := make(map[string]bool, len(d.Tags))
		ids := make([]string, 0, len(d.Tags))
		for _, t := range d.Tags {
			if seen[t.ID] {
				continue
			}
			seen[t.ID] = true
			ids = append(ids, t.ID)

			i, ok := index[t.ID]
			if !ok {
				i = len(stats)
				index[t.ID] = i
				categoryID := t.CategoryID
				if categoryID == "" {
					categoryID = taxonomy.TagCategoryID(t.ID)
				}
				stats = append(stats, TagStat{
					ID:           t.ID,
					Label:        t.Label,
					CategoryID:   categoryID,
					CoOccurrence: make(map[string]int),
				})
			}
			stats[i].Count++
		}

		// Symmetric pairwise co-occurrence within this dream.
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				stats[index[ids[i]]].CoOccurrence[ids[j]]++
				stats[index[ids[j]]].CoOccurrence[ids[i]]++
			}
		}
	}

	if total := len(dreams); total > 0 {
		for i := range stats {
			stats[i].Percentage = float64(stats[i].Count) / float64(total) * 100
		}
	}

	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Count > stats[j].Count })
	return stats
}

// Relationships lists every co-occurring unordered tag pair once, strongest
// first. Strength normalizes the co-occurrence count by the rarer tag's
// overall usage, so tags that always appear together score 1 regardless of
// how common they are.
func Relationships(stats []TagStat) []Relationship {
	out := make([]Relationship, 0)
	for i := 0; i < len(stats); i++ {
		for j := i + 1; j < len(stats); j++ {
			co := stats[i].CoOccurrence[stats[j].ID]
			if co == 0 {
				continue
			}
			rarer := stats[i].Count
			if stats[j].Count < rarer {
				rarer = stats[j].Count
			}
			out = append(out, Relationship{
				TagA:          stats[i].ID,
				TagB:          stats[j].ID,
				LabelA:        stats[i].Label,
				LabelB:        stats[j].Label,
				CoOccurrences: co,
				Strength:      float64(co) / float64(rarer),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Strength > out[j].Strength })
	return out
}

// CategorySummaries rolls the stats up per category, in the order categories
// first appear in the stats. Tags whose category is unknown land in the
// uncategorized bucket. TopTags holds at most five tags, most used first.
func CategorySummaries(stats []TagStat, categories []taxonomy.Category) []CategorySummary {
	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c.ID] = true
	}
	for _, fc := range taxonomy.FixedCategories() {
		known[fc.ID] = true
	}

	index := make(map[string]int)
	out := make([]CategorySummary, 0)
	for _, st := range stats {
		categoryID := st.CategoryID
		if !known[categoryID] {
			categoryID = taxonomy.UncategorizedID
		}

		i, ok := index[categoryID]
		if !ok {
			i = len(out)
			index[categoryID] = i
			out = append(out, CategorySummary{
				CategoryID:   categoryID,
				CategoryName: taxonomy.CategoryName(categoryID, categories),
				Color:        taxonomy.GetCategoryColor(categoryID, categories),
			})
		}
		out[i].TagCount++
		out[i].TotalUsage += st.Count
		if len(out[i].TopTags) < topTagsPerCategory {
			out[i].TopTags = append(out[i].TopTags, st)
		}
	}
	return out
}
