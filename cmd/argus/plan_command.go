package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"argus/internal/ingest"
	"argus/internal/ocr"
	"argus/internal/pipeline"
	"argus/internal/planstore"
	"argus/internal/services"
)

func newPlanCommand(cmdCtx *commandContext) *cobra.Command {
	var recordsPath string
	var textDir string
	var jsonOutput bool
	var save bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Run the engine over a batch of OCR records and print the naming plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}

			records, err := loadRecords(recordsPath, textDir)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				return errors.New("no records to process")
			}

			logger, err := cmdCtx.newLogger(cmd)
			if err != nil {
				return err
			}

			runCtx := services.WithRunID(cmd.Context(), uuid.NewString())
			engine := pipeline.New(pipeline.OptionsFromConfig(cfg), logger)
			result, err := engine.Run(runCtx, records)
			if err != nil {
				return err
			}

			if save {
				err = cmdCtx.withStore(func(store *planstore.Store) error {
					run, err := store.SaveRun(runCtx, result)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.ErrOrStderr(), "Saved run %s\n", run.ID)
					return nil
				})
				if err != nil {
					return err
				}
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}
			printResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&recordsPath, "records", "", "JSON Lines file of {image_id, raw_text} records")
	cmd.Flags().StringVar(&textDir, "text-dir", "", "Directory of sidecar .txt files named after their images")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the full result as JSON")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the run to the store")
	return cmd
}

func loadRecords(recordsPath, textDir string) ([]ocr.Record, error) {
	recordsPath = strings.TrimSpace(recordsPath)
	textDir = strings.TrimSpace(textDir)
	switch {
	case recordsPath != "" && textDir != "":
		return nil, errors.New("--records and --text-dir are mutually exclusive")
	case recordsPath != "":
		return ingest.ReadRecordsFile(recordsPath)
	case textDir != "":
		return ingest.ReadTextDir(textDir)
	default:
		return nil, errors.New("provide --records or --text-dir")
	}
}

func printResult(cmd *cobra.Command, result *pipeline.Result) {
	out := cmd.OutOrStdout()

	rows := make([][]string, 0, result.Records)
	for _, a := range result.Assignments() {
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

	fmt.Fprintf(out, "\n%d records, %d groups, %d excluded, %d unresolved\n",
		result.Records, len(result.Groups), result.Excluded, result.Unresolved)

	if len(result.Diagnostics) > 0 {
		fmt.Fprintln(out, "\nDiagnostics:")
		for _, d := range result.Diagnostics {
			target := d.GroupKey
			if target == "" {
				target = strings.Join(d.ImageIDs, ", ")
			}
			fmt.Fprintf(out, "  [%s] %s: %s\n", d.Reason, target, d.Detail)
		}
	}
}
