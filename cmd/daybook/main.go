// Package main provides the entry point for the daybook CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ledgewood/daybook/internal/config"
	"github.com/ledgewood/daybook/internal/envfile"
	"github.com/ledgewood/daybook/internal/output"
	"github.com/ledgewood/daybook/internal/store"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
// This keeps commands independently testable without shared mutable state.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves the --color persistent flag against TTY detection.
func useColor(cmd *cobra.Command) bool {
	mode := "auto"
	flag := cmd.Flags().Lookup("color")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("color")
	}
	if flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// journalDirFlag reads the --dir persistent flag from the command hierarchy.
func journalDirFlag(cmd *cobra.Command) string {
	flag := cmd.Flags().Lookup("dir")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("dir")
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// resolveStore builds the store for the configured journal directory.
// Resolution order: --dir flag, DAYBOOK_DIR, persisted config.
func resolveStore(cmd *cobra.Command) (*store.Store, error) {
	dir, err := config.ResolveJournalDir(journalDirFlag(cmd))
	if err != nil {
		return nil, err
	}
	return store.New(dir), nil
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the daybook CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daybook",
		Short: "A markdown journal that keeps its own dashboards",
		Long: `Daybook - a plain-markdown daily journal with generated rollups.

Each day gets one markdown entry with a time-tracking block and four
reflection sections. Daybook then derives everything else from those
files:
  - Cross-day tables per category under aggregated/
  - A README dashboard with streaks and work-time totals
  - Daily and weekly work-hour charts (HTML and in-terminal)
  - Git publishing of the journal repository

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'daybook --help' for usage")
				printer.Error(err)
				return err
			}
			// Otherwise show help
			return cmd.Help()
		},
	}

	// Load .env from the working directory so DAYBOOK_DIR can live there.
	// Environment variables already set always take precedence.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		_ = envfile.Load(".env")
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("dir", "", "Journal directory (overrides DAYBOOK_DIR and config)")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, never")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "journal", Title: "Journal Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "publish", Title: "Publish Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	// Journal commands: today, status, charts
	addGroupedCommand(cmd, newTodayCmd(), "journal")
	addGroupedCommand(cmd, newStatusCmd(), "journal")
	addGroupedCommand(cmd, newChartsCmd(), "journal")

	// Publish commands: aggregate, push
	addGroupedCommand(cmd, newAggregateCmd(), "publish")
	addGroupedCommand(cmd, newPushCmd(), "publish")

	// Admin commands: init, serve
	addGroupedCommand(cmd, newInitCmd(), "admin")
	addGroupedCommand(cmd, newServeCmd(), "admin")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
