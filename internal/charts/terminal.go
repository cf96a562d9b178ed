package charts

import (
	"fmt"
	"math"
	"strings"
	"time"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/ledgewood/daybook/internal/journal"
	"github.com/ledgewood/daybook/internal/rollup"
)

// DefaultTerminalHeight is the line-chart height used by the charts
// command.
const DefaultTerminalHeight = 14

var (
	chartLineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	chartBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B35"))
	chartTrackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
	chartAxisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
	chartLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
)

// DailyTerminal draws the daily series as a braille line chart sized
// width by height. An empty series yields an empty string.
func DailyTerminal(points []rollup.Point, width, height int) string {
	if len(points) == 0 {
		return ""
	}
	if width <= 0 {
		width = 60
	}
	if height <= 0 {
		height = DefaultTerminalHeight
	}

	maxHours := 0.0
	for _, p := range points {
		if p.Hours > maxHours {
			maxHours = p.Hours
		}
	}
	yMax := math.Ceil(maxHours) + 1

	first, ok := journal.ParseDateKey(points[0].Label)
	if !ok {
		return ""
	}
	last, ok := journal.ParseDateKey(points[len(points)-1].Label)
	if !ok || !last.After(first) {
		last = first.AddDate(0, 0, 1)
	}
	edgeLabels := chartEdgeLabels(first, last)

	chart := tslc.New(width, height)
	chart.SetXStep(1)
	chart.SetYStep(1)
	chart.SetStyle(chartLineStyle)
	chart.AxisStyle = chartAxisStyle
	chart.LabelStyle = chartLabelStyle
	chart.SetTimeRange(first, last)
	chart.SetViewTimeRange(first, last)
	chart.SetYRange(0, yMax)
	chart.SetViewYRange(0, yMax)
	chart.Model.XLabelFormatter = func(_ int, v float64) string {
		return edgeLabels[time.Unix(int64(v), 0).UTC().Format(journal.DateLayout)]
	}
	chart.Model.YLabelFormatter = func(_ int, v float64) string {
		if v < 0 || v != math.Trunc(v) {
			return ""
		}
		return fmt.Sprintf("%dh", int(v))
	}

	for _, p := range points {
		if d, ok := journal.ParseDateKey(p.Label); ok {
			chart.Push(tslc.TimePoint{Time: d, Value: p.Hours})
		}
	}

	chart.DrawBraille()
	return chart.View()
}

// chartEdgeLabels labels only the first and last chart columns; every
// other x position stays blank to avoid overlap.
func chartEdgeLabels(first, last time.Time) map[string]string {
	layout := "2 Jan"
	if first.Year() != last.Year() {
		layout = "2 Jan 06"
	}
	return map[string]string{
		first.Format(journal.DateLayout): first.Format(layout),
		last.Format(journal.DateLayout):  last.Format(layout),
	}
}

// WeeklyTerminal draws the weekly series as one horizontal bar per week,
// scaled against the busiest week. An empty series yields an empty
// string.
func WeeklyTerminal(points []rollup.Point, width int) string {
	if len(points) == 0 {
		return ""
	}
	if width < 30 {
		width = 30
	}

	maxHours := 0.0
	valueW := 0
	for _, p := range points {
		if p.Hours > maxHours {
			maxHours = p.Hours
		}
		if w := len(journal.FormatHours(p.Hours)); w > valueW {
			valueW = w
		}
	}
	if maxHours <= 0 {
		maxHours = 1
	}

	labelW := len(journal.DateLayout)
	barW := width - labelW - 3 - valueW
	if barW < 1 {
		barW = 1
	}

	lines := make([]string, 0, len(points))
	for _, p := range points {
		filled := int(math.Round(float64(barW) * p.Hours / maxHours))
		if filled < 1 && p.Hours > 0 {
			filled = 1
		}
		if filled > barW {
			filled = barW
		}
		bar := chartBarStyle.Render(strings.Repeat("█", filled)) +
			chartTrackStyle.Render(strings.Repeat("░", barW-filled))
		value := chartLabelStyle.Render(fmt.Sprintf("%*s", valueW, journal.FormatHours(p.Hours)))
		lines = append(lines, padRight(chartLabelStyle.Render(p.Label), labelW)+"  "+bar+" "+value)
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
