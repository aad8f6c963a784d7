package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/oneiro/pkg/analytics"
	"tableflip.dev/oneiro/pkg/diary"
	"tableflip.dev/oneiro/pkg/dream"
	"tableflip.dev/oneiro/pkg/graph"
	"tableflip.dev/oneiro/pkg/taxonomy"
)

// PrettyPrint renders diary views for the terminal.
type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" dream")
	default:
		_, _ = c.Println(" dreams")
	}
}

// Dreams renders a dream list, one row each, most recent first as given.
func (pp *PrettyPrint) Dreams(dreams []dream.Dream, categories []taxonomy.Category) {
	if len(dreams) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	for _, d := range dreams {
		row := []interface{}{d.Date, timeOrDash(d.Time), d.Title, tagList(d.Tags, categories)}
		if pp.ShowID {
			row = append([]interface{}{faint(shortID(d.ID))}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Dream renders the detail view for one dream, with its citation context.
func (pp *PrettyPrint) Dream(d dream.Dream, cited, citing []dream.Dream, categories []taxonomy.Category) {
	pp.Title(d.Title)

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(faint("id"), d.ID)
	}
	tbl.AddRow(faint("date"), d.Date)
	tbl.AddRow(faint("time"), timeOrDash(d.Time))
	if len(d.Tags) > 0 {
		tbl.AddRow(faint("tags"), tagList(d.Tags, categories))
	}
	if d.DeletedAt != "" {
		tbl.AddRow(faint("deleted"), d.DeletedAt)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	if d.Description != "" {
		fmt.Println("")
		fmt.Println(d.Description)
	}

	pp.citationList("Cites", cited)
	pp.citationList("Cited by", citing)
	fmt.Println("")
}

func (pp *PrettyPrint) citationList(heading string, dreams []dream.Dream) {
	if len(dreams) == 0 {
		return
	}
	fmt.Println("")
	_, _ = color.New(color.Bold).Println(heading)
	for _, d := range dreams {
		if pp.ShowID {
			_, _ = color.New(color.FgHiYellow, color.Faint).Print(shortID(d.ID) + "  ")
		}
		fmt.Printf("%s  %s\n", d.Date, d.Title)
	}
}

// Tags renders tag usage, most used first as given.
func (pp *PrettyPrint) Tags(tags []diary.TagUsage, colorOf func(tagID string) taxonomy.Color) {
	if len(tags) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Tag"), bold("ID"), bold("Count"))
	for _, t := range tags {
		tbl.AddRow(paint(colorOf(t.ID), t.Label), faint(t.ID), t.Count)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Categories renders the category list in stored order.
func (pp *PrettyPrint) Categories(categories []taxonomy.Category) {
	if len(categories) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Category"), bold("ID"), bold("Color"))
	for _, c := range categories {
		tbl.AddRow(paint(c.Color, c.Name), faint(c.ID), string(c.Color))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Graph renders the citation graph as a node table plus an edge list.
func (pp *PrettyPrint) Graph(g graph.Data) {
	pp.TitleWithCount("Citation graph", len(g.Nodes))

	if len(g.Nodes) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	byID := make(map[string]graph.Node, len(g.Nodes))
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Date"), bold("Dream"), bold("Cited"))
	for _, n := range g.Nodes {
		byID[n.ID] = n
		tbl.AddRow(n.Date, n.Title, n.CitationCount)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	if len(g.Edges) == 0 {
		return
	}
	fmt.Println("")
	_, _ = color.New(color.Bold).Println("Citations")
	for _, e := range g.Edges {
		fmt.Printf("%s -> %s\n", byID[e.Source].Title, byID[e.Target].Title)
	}
	fmt.Println("")
}

// Insights renders the analytics view: top tags, strongest relationships,
// category rollups.
func (pp *PrettyPrint) Insights(stats []analytics.TagStat, rels []analytics.Relationship, sums []analytics.CategorySummary) {
	pp.Title("Tags")
	if len(stats) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Tag"), bold("Count"), bold("Share"))
	for _, st := range stats {
		tbl.AddRow(st.Label, st.Count, fmt.Sprintf("%.0f%%", st.Percentage))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	if len(rels) > 0 {
		fmt.Println("")
		pp.Title("Together")
		tbl = uitable.New()
		tbl.Separator = "  "
		for _, r := range rels {
			tbl.AddRow(r.LabelA+" + "+r.LabelB, fmt.Sprintf("%.2f", r.Strength), faint(fmt.Sprintf("%dx", r.CoOccurrences)))
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
	}

	if len(sums) > 0 {
		fmt.Println("")
		pp.Title("Categories")
		tbl = uitable.New()
		tbl.Separator = "  "
		tbl.AddRow(bold("Category"), bold("Tags"), bold("Uses"), bold("Top"))
		for _, s := range sums {
			top := make([]string, 0, len(s.TopTags))
			for _, t := range s.TopTags {
				top = append(top, t.Label)
			}
			tbl.AddRow(paint(s.Color, s.CategoryName), s.TagCount, s.TotalUsage, strings.Join(top, ", "))
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
	}
	fmt.Println("")
}

func tagList(tags []taxonomy.Tag, categories []taxonomy.Category) string {
	labels := make([]string, 0, len(tags))
	for _, t := range tags {
		labels = append(labels, paint(taxonomy.GetCategoryColor(t.CategoryID, categories), t.Label))
	}
	return strings.Join(labels, " ")
}

func timeOrDash(t string) string {
	if t == "" {
		return "-"
	}
	return t
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
