package journal

import (
	"sort"
	"time"
)

// Row is one dated category item in the cross-day aggregation.
type Row struct {
	Date    string `json:"date"`
	Text    string `json:"text"`
	Comment string `json:"comment,omitempty"`
}

// Aggregated is the merge of every daily document: four ordered category
// sequences plus the date-to-worked-hours mapping. It is recomputed from
// scratch on every run.
type Aggregated struct {
	Rows  map[string][]Row  // category key -> rows, ascending document order
	Times map[string]string // date key -> worked-hours string
}

// Aggregate merges per-day extraction results across documents. Documents
// must arrive in ascending filename order; rows preserve that order and
// the in-file line order. Documents sharing a date key accumulate into
// it: the time record is last-write-wins, item rows append from every
// document. Empty input yields an empty, valid aggregation.
func Aggregate(docs []Document) *Aggregated {
	agg := &Aggregated{
		Rows:  make(map[string][]Row, len(Categories)),
		Times: make(map[string]string, len(docs)),
	}
	for _, cat := range Categories {
		agg.Rows[cat.Key] = nil
	}

	for _, doc := range docs {
		bodies := ExtractSections(doc.Text)
		for _, cat := range Categories {
			for _, item := range ParseItems(bodies[cat.Key]) {
				agg.Rows[cat.Key] = append(agg.Rows[cat.Key], Row{
					Date:    doc.Key,
					Text:    item.Text,
					Comment: item.Comment,
				})
			}
		}

		rec := ExtractTimeRecord(doc.Text)
		agg.Times[doc.Key] = ComputeWorkedHours(rec.Start, rec.End, rec.Extra)
	}
	return agg
}

// TotalRows is the total item count across all four categories.
func (a *Aggregated) TotalRows() int {
	total := 0
	for _, rows := range a.Rows {
		total += len(rows)
	}
	return total
}

// EntryDates returns the distinct calendar dates that have category rows,
// sorted descending. Fallback keys that are not real dates are excluded;
// they still appear in category tables and row totals.
func (a *Aggregated) EntryDates() []time.Time {
	seen := make(map[string]bool)
	var dates []time.Time
	for _, rows := range a.Rows {
		for _, row := range rows {
			if seen[row.Date] {
				continue
			}
			seen[row.Date] = true
			if d, ok := ParseDateKey(row.Date); ok {
				dates = append(dates, d)
			}
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	return dates
}
