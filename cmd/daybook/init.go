package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ledgewood/daybook/internal/config"
	"github.com/ledgewood/daybook/internal/output"
	"github.com/ledgewood/daybook/internal/setup"
)

// initFlags holds the command-line flags for the init command.
type initFlags struct {
	yes    bool
	noGit  bool
	remote string
}

// initStyleSet holds lipgloss styles for init output.
type initStyleSet struct {
	heading lipgloss.Style
	pass    lipgloss.Style
	skip    lipgloss.Style
	fail    lipgloss.Style
	dim     lipgloss.Style
	accent  lipgloss.Style
}

// initStyles returns a TTY-aware style set.
func initStyles(isTTY bool) initStyleSet {
	if !isTTY {
		return initStyleSet{}
	}
	return initStyleSet{
		heading: lipgloss.NewStyle().Bold(true),
		pass:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "10", Dark: "10"}),
		skip:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "8", Dark: "7"}),
		fail:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "9", Dark: "9"}),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "8", Dark: "7"}),
		accent:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "12", Dark: "12"}),
	}
}

// newInitCmd creates the init command.
func newInitCmd() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Set up a journal directory",
		Long: `Set up a journal directory.

This command prepares everything daybook needs:
  - Creates entries/, aggregated/, and visualizations/
  - Seeds the four empty category tables
  - Saves the journal directory to the daybook config file
  - Optionally initializes a git repository with a first commit
  - Optionally registers a remote for daybook push

On a terminal this runs as an interactive form. The command is
idempotent: re-running it skips whatever is already in place.

Examples:
  daybook init                       # Interactive setup
  daybook init --yes                 # Accept all defaults, no prompts
  daybook init --dir ~/journal --yes # Non-interactive, explicit directory
  daybook init --no-git --yes        # Skip the git repository
  daybook init --remote git@github.com:me/journal.git --yes`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "Accept all defaults, no prompts")
	cmd.Flags().BoolVar(&flags.noGit, "no-git", false, "Do not initialize a git repository")
	cmd.Flags().StringVar(&flags.remote, "remote", "", "Git remote URL to register as origin")

	return cmd
}

// runInit executes the init command.
func runInit(cmd *cobra.Command, flags *initFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
	styles := initStyles(printer.IsTTY())

	opts := setup.Options{
		Dir:       defaultJournalDir(journalDirFlag(cmd)),
		InitGit:   !flags.noGit,
		RemoteURL: strings.TrimSpace(flags.remote),
	}

	if initInteractive(cmd, flags) {
		if err := runInitForm(&opts); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				err = output.NewUserError("init cancelled")
			}
			printer.Error(err)
			return err
		}
	}

	dir, err := expandHome(opts.Dir)
	if err != nil {
		printer.Error(err)
		return err
	}
	opts.Dir = dir

	if !printer.IsJSON() {
		printer.Println()
		printer.Print("%s %s\n", styles.heading.Render("Setting up journal in"), styles.dim.Render(opts.Dir))
		printer.Println()
	}

	steps := setup.Run(opts)
	return outputInitResult(printer, styles, opts, steps)
}

// initInteractive reports whether init should prompt. Prompts need a
// terminal on both ends and no --yes.
func initInteractive(cmd *cobra.Command, flags *initFlags) bool {
	if flags.yes || isJSONMode(cmd) {
		return false
	}
	return isatty.IsTerminal(os.Stdin.Fd()) && output.IsTTY(cmd.OutOrStdout())
}

// runInitForm collects the setup options interactively.
func runInitForm(opts *setup.Options) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Journal directory").
				Description("Where daily entries and generated files live.").
				Placeholder(opts.Dir).
				Value(&opts.Dir).
				Validate(validateJournalDir),
			huh.NewConfirm().
				Title("Initialize a git repository?").
				Description("Needed for daybook push.").
				Value(&opts.InitGit),
			huh.NewInput().
				Title("Remote URL (optional)").
				Placeholder("git@github.com:you/journal.git").
				Value(&opts.RemoteURL),
		),
	).Run()
}

// validateJournalDir rejects blank directory input.
func validateJournalDir(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("directory is required")
	}
	return nil
}

// defaultJournalDir picks the form default: the --dir flag, DAYBOOK_DIR,
// a previously configured directory, then ~/journal.
func defaultJournalDir(flagDir string) string {
	if flagDir != "" {
		return flagDir
	}
	if dir := os.Getenv("DAYBOOK_DIR"); dir != "" {
		return dir
	}
	if cfg, err := config.Load(); err == nil && cfg.JournalDir != "" {
		return cfg.JournalDir
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "journal")
	}
	return "journal"
}

// expandHome resolves a leading ~ in a path typed into the form.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~"+string(os.PathSeparator)) && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", output.NewSystemErrorWithCause("cannot resolve home directory", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// outputInitResult prints the step results and the next-steps hint.
func outputInitResult(printer *output.Printer, styles initStyleSet, opts setup.Options, steps []setup.StepResult) error {
	failed := setup.Failed(steps)

	if printer.IsJSON() {
		status := "ok"
		if failed {
			status = "failed"
		}
		outErr := printer.Success(map[string]any{
			"status":      status,
			"journal_dir": opts.Dir,
			"git":         opts.InitGit,
			"steps":       steps,
		})
		if outErr != nil {
			return outErr
		}
		if failed {
			return output.NewSystemError("init completed with failures")
		}
		return nil
	}

	for _, step := range steps {
		printStepResult(printer, styles, step)
	}

	if failed {
		err := output.NewSystemError("init completed with failures")
		printer.Println()
		printer.Error(err)
		return err
	}

	printNextSteps(printer, styles)
	return nil
}

// printStepResult prints a single step result in human format.
func printStepResult(printer *output.Printer, styles initStyleSet, step setup.StepResult) {
	icon := styledStepIcon(styles, step.Status)
	name := formatStepName(step.Name)
	printer.Print("  %s %s", icon, name)
	if step.Message != "" {
		printer.Print(" %s", styles.dim.Render("("+step.Message+")"))
	}
	printer.Println()
}

// styledStepIcon returns a styled icon for a step status.
func styledStepIcon(styles initStyleSet, status string) string {
	switch status {
	case "ok":
		return styles.pass.Render("ok")
	case "skipped":
		return styles.skip.Render("--")
	case "failed":
		return styles.fail.Render("XX")
	default:
		return "??"
	}
}

// formatStepName converts internal step names to display names.
func formatStepName(name string) string {
	switch name {
	case "layout":
		return "Journal layout"
	case "tables":
		return "Category tables"
	case "config":
		return "Config file"
	case "git":
		return "Git repository"
	case "remote":
		return "Remote origin"
	case "commit":
		return "First commit"
	default:
		return name
	}
}

// printNextSteps outputs the next steps message.
func printNextSteps(printer *output.Printer, styles initStyleSet) {
	printer.Println()
	printer.Print("%s\n", styles.heading.Render(styles.pass.Render("Journal ready!")))
	printer.Println()
	printer.Print("Next steps:\n")
	printer.Print("  1. %s\n", styles.dim.Render("Create today's entry:"))
	printer.Print("     %s\n", styles.accent.Render("daybook today"))
	printer.Println()
	printer.Print("  2. %s\n", styles.dim.Render("Rebuild the dashboards:"))
	printer.Print("     %s\n", styles.accent.Render("daybook aggregate"))
	printer.Println()
	printer.Print("  3. %s\n", styles.dim.Render("Publish to the remote:"))
	printer.Print("     %s\n", styles.accent.Render("daybook push"))
}
