// Package setup provides the business logic behind daybook init:
// scaffolding the journal layout, seeding the aggregated tables,
// persisting the configuration, and optionally wiring up git.
//
// The command-layer adapter in cmd/daybook handles CLI concerns (the
// interactive form, flags, output formatting) and delegates to this
// package for the actual work. Each step reports a StepResult so both
// the human and JSON surfaces can show exactly what happened:
//
//	steps := setup.Run(setup.Options{
//	    Dir:       "/home/me/journal",
//	    InitGit:   true,
//	    RemoteURL: "git@example.com:me/journal.git",
//	})
//	for _, step := range steps {
//	    fmt.Println(step.Name, step.Status, step.Message)
//	}
//
// Run is idempotent: steps that find their work already done report
// "skipped" instead of failing, so re-running init against an existing
// journal is safe.
package setup
