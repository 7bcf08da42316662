package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"argus/internal/planstore"
	"argus/internal/services"
)

func newRunsCommand(cmdCtx *commandContext) *cobra.Command {
	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect persisted runs",
	}

	runsCmd.AddCommand(newRunsListCommand(cmdCtx))
	runsCmd.AddCommand(newRunsShowCommand(cmdCtx))
	runsCmd.AddCommand(newRunsClearCommand(cmdCtx))

	return runsCmd
}

func newRunsListCommand(cmdCtx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List persisted runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withStore(func(store *planstore.Store) error {
				runs, err := store.ListRuns(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, runs)
				}

				rows := make([][]string, 0, len(runs))
				for _, r := range runs {
					rows = append(rows, []string{
						r.ID,
						r.CreatedAt.Local().Format(time.RFC3339),
						strconv.Itoa(r.Records),
						strconv.Itoa(r.Groups),
						strconv.Itoa(r.Excluded),
						strconv.Itoa(r.Unresolved),
						strconv.Itoa(r.Diagnostics),
					})
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderTable(out,
					[]string{"Run", "Created", "Records", "Groups", "Excluded", "Unresolved", "Diagnostics"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs to list (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit runs as JSON")
	return cmd
}

func newRunsShowCommand(cmdCtx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one run with its assignments and diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withStore(func(store *planstore.Store) error {
				run, err := store.GetRun(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if run == nil {
					return fmt.Errorf("run %s: %w", args[0], services.ErrNotFound)
				}

				assignments, err := store.Assignments(cmd.Context(), run.ID)
				if err != nil {
					return err
				}
				diagnostics, err := store.Diagnostics(cmd.Context(), run.ID)
				if err != nil {
					return err
				}

				if jsonOutput {
					return writeJSON(cmd, map[string]any{
						"run":         run,
						"assignments": assignments,
						"diagnostics": diagnostics,
					})
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Run %s (%s)\n", run.ID, run.CreatedAt.Local().Format(time.RFC3339))
				fmt.Fprintf(out, "%d records, %d groups, %d excluded, %d unresolved\n\n",
					run.Records, run.Groups, run.Excluded, run.Unresolved)

				rows := make([][]string, 0, len(assignments))
				for _, a := range assignments {
					seq := ""
					if a.Sequence > 0 {
						seq = strconv.Itoa(a.Sequence)
					}
					rows = append(rows, []string{
						a.GroupKey, a.ImageID, a.SKU, seq, a.Folder, a.FileName, yesNo(a.Excluded),
					})
				}
				fmt.Fprintln(out, renderTable(out,
					[]string{"Group", "Image", "SKU", "Seq", "Folder", "File Name", "Excluded"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft, alignLeft},
				))

				if len(diagnostics) > 0 {
					fmt.Fprintln(out, "\nDiagnostics:")
					for _, d := range diagnostics {
						fmt.Fprintf(out, "  [%s] %s: %s\n", d.Reason, d.GroupKey, d.Detail)
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the run as JSON")
	return cmd
}

func newRunsClearCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all persisted runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withStore(func(store *planstore.Store) error {
				removed, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d runs\n", removed)
				return nil
			})
		},
	}
}
