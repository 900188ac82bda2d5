// Copyright Kieran C., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Kieran-C/truekey-migrate/internal/history"
	"github.com/Kieran-C/truekey-migrate/internal/pipeline"
	"github.com/Kieran-C/truekey-migrate/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <export.csv>",
	Short: "Convert a TrueKey export to the target format",
	Long: `Convert reads a TrueKey CSV export, repairs entries whose passwords or
notes contain embedded commas or line breaks, and writes an import file
for the selected password manager. Secure notes go to a separate file
when --notes is set.

Every run is recorded in the local history database unless --no-history
is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output file (default: <input>.<format>.csv)")
	convertCmd.Flags().String("format", "", "target format: proton, lastpass, or 1password")
	convertCmd.Flags().String("vault", "", "vault name assigned to entries (Proton Pass)")
	convertCmd.Flags().Bool("notes", false, "export secure notes to a separate file")
	convertCmd.Flags().String("notes-file", "", "notes output file (default: <input>.notes.csv)")
	convertCmd.Flags().String("report", "", "write a YAML run report to this path")
	convertCmd.Flags().Bool("strict-tail", false, "fail if the export ends mid-record instead of dropping it")
	convertCmd.Flags().Bool("no-history", false, "do not record this run in the history database")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	opts, err := convertOptions(cmd, args[0])
	if err != nil {
		return err
	}

	res, err := pipeline.Run(opts, os.Stdout)
	if err != nil {
		return err
	}

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		if err := pipeline.WriteReport(reportPath, res); err != nil {
			return err
		}
		fmt.Printf("Run report written to %s\n", reportPath)
	}

	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		if err := recordRun(res); err != nil {
			// History is bookkeeping; a failed insert should not fail the
			// conversion that already succeeded.
			fmt.Fprintf(os.Stderr, "warning: could not record run in history: %v\n", err)
		}
	}
	return nil
}

// convertOptions resolves options from flags, falling back to viper for
// values the flags leave empty.
func convertOptions(cmd *cobra.Command, inputFile string) (types.ConvertOptions, error) {
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = viper.GetString("format")
	}
	vault, _ := cmd.Flags().GetString("vault")
	if vault == "" {
		vault = viper.GetString("vault")
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = derivedPath(inputFile, format)
	}

	exportNotes, _ := cmd.Flags().GetBool("notes")
	notesFile, _ := cmd.Flags().GetString("notes-file")
	if notesFile != "" {
		exportNotes = true
	}
	if exportNotes && notesFile == "" {
		notesFile = derivedPath(inputFile, "notes")
	}

	strictTail, _ := cmd.Flags().GetBool("strict-tail")

	opts := types.ConvertOptions{
		InputFile:   inputFile,
		OutputFile:  output,
		NotesFile:   notesFile,
		Format:      types.OutputFormat(format),
		VaultName:   vault,
		ExportNotes: exportNotes,
		StrictTail:  strictTail,
	}
	return opts, opts.Validate()
}

// derivedPath builds "<input without extension>.<suffix>.csv".
func derivedPath(inputFile, suffix string) string {
	base := strings.TrimSuffix(inputFile, filepath.Ext(inputFile))
	return base + "." + suffix + ".csv"
}

func recordRun(res *pipeline.Result) error {
	store, err := history.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Record(context.Background(), history.Run{
		ID:         res.RunID,
		StartedAt:  res.StartedAt,
		InputFile:  res.Options.InputFile,
		OutputFile: res.OutputFile,
		NotesFile:  res.NotesFile,
		Format:     res.Options.Format,
		Vault:      res.Options.VaultName,
		Summary:    res.Summary,
	})
}

func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{
		Dir:     viper.GetString("history.dir"),
		MaxList: viper.GetInt("history.max_list"),
	}
}
