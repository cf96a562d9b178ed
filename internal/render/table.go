package render

import (
	"fmt"
	"strings"

	"github.com/ledgewood/daybook/internal/journal"
)

// CategoryTable renders one category's rows as a three-column markdown
// table. Consecutive rows sharing a date print it only on the first row
// of the run; the collapsing is purely visual and follows row adjacency,
// not calendar order.
func CategoryTable(title string, rows []journal.Row) string {
	var b strings.Builder
	b.WriteString("# " + title + "\n\n")
	b.WriteString("| Date       | Entry                                  | Comment   |\n")
	b.WriteString("|------------|----------------------------------------|-----------|\n")

	prev := ""
	for i, row := range rows {
		date := row.Date
		if i > 0 && date == prev {
			date = ""
		}
		prev = row.Date
		fmt.Fprintf(&b, "| %-10s | %-38s | %-9s |\n", date, row.Text, row.Comment)
	}
	return b.String()
}
