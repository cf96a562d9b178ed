package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ledgewood/daybook/internal/aggregate"
	"github.com/ledgewood/daybook/internal/journal"
	"github.com/ledgewood/daybook/internal/render"
	"github.com/ledgewood/daybook/internal/rollup"
	"github.com/ledgewood/daybook/internal/store"
)

// --- Shared helpers ---

// resolveDate validates an explicit entry date, or falls back to today.
func resolveDate(raw string) (string, error) {
	if raw == "" {
		return time.Now().Format(journal.DateLayout), nil
	}
	if _, ok := journal.ParseDateKey(raw); !ok {
		return "", fmt.Errorf("invalid date %q: want YYYY-MM-DD", raw)
	}
	return raw, nil
}

func skippedNames(skipped []store.Skipped) []string {
	if len(skipped) == 0 {
		return nil
	}
	names := make([]string, len(skipped))
	for i, s := range skipped {
		names[i] = s.Name
	}
	return names
}

// --- Status tool ---

// StatusInput is the input for the journal_status tool (no parameters needed).
type StatusInput struct{}

// StatusOutput is the output for the journal_status tool.
type StatusOutput struct {
	Dir             string   `json:"dir"                      jsonschema:"journal directory path"`
	DirExists       bool     `json:"dir_exists"               jsonschema:"whether the journal directory exists"`
	TotalEntries    int      `json:"total_entries"            jsonschema:"total items across all categories"`
	DaysLogged      int      `json:"days_logged"              jsonschema:"number of dated daily entries"`
	LatestEntry     string   `json:"latest_entry,omitempty"   jsonschema:"date of the most recent entry"`
	CurrentStreak   int      `json:"current_streak"           jsonschema:"consecutive-day run ending at the latest entry"`
	CurrentWeekWork string   `json:"current_week_work_time"   jsonschema:"work time logged this week"`
	TotalWork       string   `json:"total_work_time"          jsonschema:"work time logged across all entries"`
	SkippedFiles    []string `json:"skipped_files,omitempty"  jsonschema:"entry files skipped as unreadable"`
}

func handleStatus(st *store.Store) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		docs, skipped, err := st.ReadDocuments()
		if err != nil {
			return nil, StatusOutput{}, fmt.Errorf("reading entries: %w", err)
		}

		stats := rollup.BuildStats(journal.Aggregate(docs), time.Now())
		out := StatusOutput{
			Dir:             st.Dir(),
			DirExists:       st.DirExists(),
			TotalEntries:    stats.TotalEntries,
			DaysLogged:      stats.DaysLogged,
			LatestEntry:     stats.LatestEntry,
			CurrentStreak:   stats.CurrentStreak,
			CurrentWeekWork: stats.CurrentWeekWork,
			TotalWork:       stats.TotalWork,
			SkippedFiles:    skippedNames(skipped),
		}

		return nil, out, nil
	}
}

// --- Entry tool ---

// EntryInput is the input for the journal_entry tool.
type EntryInput struct {
	Date string `json:"date" jsonschema:"entry date in YYYY-MM-DD form"`
}

// EntryOutput is the output for the journal_entry tool.
type EntryOutput struct {
	Date    string `json:"date"    jsonschema:"entry date"`
	Path    string `json:"path"    jsonschema:"entry file path"`
	Content string `json:"content" jsonschema:"full markdown content of the entry"`
}

func handleEntry(st *store.Store) mcp.ToolHandlerFor[EntryInput, EntryOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input EntryInput) (*mcp.CallToolResult, EntryOutput, error) {
		if input.Date == "" {
			return nil, EntryOutput{}, errors.New("date is required")
		}
		date, err := resolveDate(input.Date)
		if err != nil {
			return nil, EntryOutput{}, err
		}

		doc, err := st.ReadEntry(date)
		if err != nil {
			return nil, EntryOutput{}, err
		}

		return nil, EntryOutput{Date: date, Path: doc.Path, Content: doc.Text}, nil
	}
}

// --- Today tool ---

// TodayInput is the input for the journal_today tool.
type TodayInput struct {
	Date string `json:"date,omitempty" jsonschema:"entry date in YYYY-MM-DD form (default today)"`
}

// TodayOutput is the output for the journal_today tool.
type TodayOutput struct {
	Date    string `json:"date"    jsonschema:"entry date"`
	Path    string `json:"path"    jsonschema:"entry file path"`
	Created bool   `json:"created" jsonschema:"true if this call created the entry file"`
}

func handleToday(st *store.Store) mcp.ToolHandlerFor[TodayInput, TodayOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input TodayInput) (*mcp.CallToolResult, TodayOutput, error) {
		date, err := resolveDate(input.Date)
		if err != nil {
			return nil, TodayOutput{}, err
		}

		out := TodayOutput{Date: date, Path: st.EntryPath(date)}
		if st.EntryExists(date) {
			return nil, out, nil
		}
		if err := st.WriteEntry(date, render.DailyEntry(date), false); err != nil {
			return nil, TodayOutput{}, fmt.Errorf("writing entry: %w", err)
		}
		out.Created = true

		return nil, out, nil
	}
}

// --- Append tool ---

// AppendInput is the input for the journal_append tool.
type AppendInput struct {
	Date     string `json:"date,omitempty"    jsonschema:"entry date in YYYY-MM-DD form (default today)"`
	Category string `json:"category"          jsonschema:"category key: accomplished, blockers, learned, or improve"`
	Text     string `json:"text"              jsonschema:"item text"`
	Comment  string `json:"comment,omitempty" jsonschema:"optional short comment shown next to the item"`
}

// AppendOutput is the output for the journal_append tool.
type AppendOutput struct {
	Date     string `json:"date"     jsonschema:"entry date"`
	Category string `json:"category" jsonschema:"category key the item was appended to"`
	Path     string `json:"path"     jsonschema:"entry file path"`
	Created  bool   `json:"created"  jsonschema:"true if this call created the entry file"`
}

func handleAppend(st *store.Store) mcp.ToolHandlerFor[AppendInput, AppendOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input AppendInput) (*mcp.CallToolResult, AppendOutput, error) {
		if strings.TrimSpace(input.Text) == "" {
			return nil, AppendOutput{}, errors.New("text is required")
		}
		cat, ok := journal.CategoryByKey(input.Category)
		if !ok {
			return nil, AppendOutput{}, fmt.Errorf("unknown category %q: want accomplished, blockers, learned, or improve", input.Category)
		}
		date, err := resolveDate(input.Date)
		if err != nil {
			return nil, AppendOutput{}, err
		}

		text := render.DailyEntry(date)
		created := true
		if st.EntryExists(date) {
			doc, err := st.ReadEntry(date)
			if err != nil {
				return nil, AppendOutput{}, err
			}
			text = doc.Text
			created = false
		}

		item := journal.Item{Text: strings.TrimSpace(input.Text), Comment: strings.TrimSpace(input.Comment)}
		if err := st.WriteEntry(date, journal.AppendItem(text, cat, item), true); err != nil {
			return nil, AppendOutput{}, fmt.Errorf("writing entry: %w", err)
		}

		out := AppendOutput{
			Date:     date,
			Category: cat.Key,
			Path:     st.EntryPath(date),
			Created:  created,
		}

		return nil, out, nil
	}
}

// --- Aggregate tool ---

// AggregateInput is the input for the journal_aggregate tool (no parameters needed).
type AggregateInput struct{}

// AggregateOutput is the output for the journal_aggregate tool.
type AggregateOutput struct {
	TotalEntries    int      `json:"total_entries"           jsonschema:"total items across all categories"`
	DaysLogged      int      `json:"days_logged"             jsonschema:"number of dated daily entries"`
	LatestEntry     string   `json:"latest_entry,omitempty"  jsonschema:"date of the most recent entry"`
	CurrentStreak   int      `json:"current_streak"          jsonschema:"consecutive-day run ending at the latest entry"`
	CurrentWeekWork string   `json:"current_week_work_time"  jsonschema:"work time logged this week"`
	TotalWork       string   `json:"total_work_time"         jsonschema:"work time logged across all entries"`
	ChartsWritten   bool     `json:"charts_written"          jsonschema:"whether the chart pages were regenerated"`
	SkippedFiles    []string `json:"skipped_files,omitempty" jsonschema:"entry files skipped as unreadable"`
}

func handleAggregate(st *store.Store) mcp.ToolHandlerFor[AggregateInput, AggregateOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ AggregateInput) (*mcp.CallToolResult, AggregateOutput, error) {
		res, err := aggregate.Run(st, time.Now())
		if err != nil {
			return nil, AggregateOutput{}, fmt.Errorf("aggregating journal: %w", err)
		}

		out := AggregateOutput{
			TotalEntries:    res.Stats.TotalEntries,
			DaysLogged:      res.Stats.DaysLogged,
			LatestEntry:     res.Stats.LatestEntry,
			CurrentStreak:   res.Stats.CurrentStreak,
			CurrentWeekWork: res.Stats.CurrentWeekWork,
			TotalWork:       res.Stats.TotalWork,
			ChartsWritten:   res.ChartsWritten,
			SkippedFiles:    skippedNames(res.Skipped),
		}

		return nil, out, nil
	}
}
