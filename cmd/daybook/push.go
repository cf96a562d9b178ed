package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgewood/daybook/internal/aggregate"
	"github.com/ledgewood/daybook/internal/git"
	"github.com/ledgewood/daybook/internal/journal"
	"github.com/ledgewood/daybook/internal/output"
)

// pushFlags holds the command-line flags for the push command.
type pushFlags struct {
	message     string
	noAggregate bool
}

// newPushCmd creates the push command.
func newPushCmd() *cobra.Command {
	flags := &pushFlags{}
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Aggregate, commit, and push the journal",
		Long: `Aggregate the journal, commit everything, and push to the remote.

Runs the full refresh first so the committed tables and dashboard match
the entries, then stages the whole journal directory and commits. A
clean tree is fine: the push still runs so earlier commits reach the
remote. If the branch has no upstream yet, push retries with
--set-upstream origin <branch>.

Examples:
  daybook push                      # Aggregate, commit, push
  daybook push -m "Friday wrap-up"  # Custom commit message
  daybook push --no-aggregate       # Commit entries as they are`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPush(cmd, flags)
		},
	}
	cmd.Flags().StringVarP(&flags.message, "message", "m", "", "Commit message (default \"Update journal logs on <date>\")")
	cmd.Flags().BoolVar(&flags.noAggregate, "no-aggregate", false, "Skip the aggregation pass before committing")
	return cmd
}

// runPush executes the push command.
func runPush(cmd *cobra.Command, flags *pushFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	st, err := resolveStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	if !git.IsRepo(st.Dir()) {
		err := output.NewUserError("journal is not a git repository (re-run 'daybook init' and enable git)")
		printer.Error(err)
		return err
	}

	if !flags.noAggregate {
		res, aggErr := aggregate.Run(st, time.Now())
		if aggErr != nil {
			printer.Error(aggErr)
			return aggErr
		}
		for _, skip := range res.Skipped {
			printer.Warn("skipping %s: %s", skip.Name, skip.Reason)
		}
	}

	message := flags.message
	if message == "" {
		message = "Update journal logs on " + time.Now().Format(journal.DateLayout)
	}

	if err := git.Add(st.Dir()); err != nil {
		printer.Error(err)
		return err
	}

	committed, err := git.Commit(st.Dir(), message)
	if err != nil {
		printer.Error(err)
		return err
	}

	if !git.HasRemote(st.Dir()) {
		err := output.NewUserError("no git remote configured (add one with 'git remote add origin <url>')")
		printer.Error(err)
		return err
	}

	if err := git.Push(st.Dir()); err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"committed":      committed,
			"commit_message": message,
			"pushed":         true,
			"aggregated":     !flags.noAggregate,
		})
	}

	if committed {
		printer.Println("Committed:", message)
	} else {
		printer.Println("Nothing new to commit.")
	}
	printer.Println("Pushed journal to remote.")
	return nil
}
