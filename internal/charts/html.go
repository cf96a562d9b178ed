// Package charts renders the work-time series as standalone HTML pages
// and as terminal graphics.
package charts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ledgewood/daybook/internal/rollup"
)

//go:embed templates/daily_hours.html
var dailyHTMLTemplate string

//go:embed templates/weekly_hours.html
var weeklyHTMLTemplate string

// DailyHTML renders the interactive daily-hours page for an ascending
// date series.
func DailyHTML(points []rollup.Point) (string, error) {
	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = p.Label
	}
	return renderHTML(dailyHTMLTemplate, labels, points)
}

// WeeklyHTML renders the interactive weekly-hours page. Labels carry a
// "Week of" prefix so the bar axis reads naturally.
func WeeklyHTML(points []rollup.Point) (string, error) {
	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = "Week of " + p.Label
	}
	return renderHTML(weeklyHTMLTemplate, labels, points)
}

func renderHTML(tmpl string, labels []string, points []rollup.Point) (string, error) {
	hours := make([]float64, len(points))
	for i, p := range points {
		hours[i] = p.Hours
	}

	labelsJSON, err := json.Marshal(labels)
	if err != nil {
		return "", fmt.Errorf("marshaling chart labels: %w", err)
	}
	hoursJSON, err := json.Marshal(hours)
	if err != nil {
		return "", fmt.Errorf("marshaling chart values: %w", err)
	}

	var total, best float64
	for _, h := range hours {
		total += h
		if h > best {
			best = h
		}
	}
	average := 0.0
	if len(hours) > 0 {
		average = total / float64(len(hours))
	}

	vars := map[string]string{
		"labels":  string(labelsJSON),
		"data":    string(hoursJSON),
		"count":   strconv.Itoa(len(hours)),
		"total":   fmt.Sprintf("%.1f", total),
		"average": fmt.Sprintf("%.1f", average),
		"best":    fmt.Sprintf("%.1f", best),
	}
	out := tmpl
	for key, val := range vars {
		out = strings.ReplaceAll(out, "{{"+key+"}}", val)
	}
	return out, nil
}
