// Copyright Kieran C., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Kieran-C/truekey-migrate/internal/assemble"
	"github.com/Kieran-C/truekey-migrate/internal/input"
	"github.com/Kieran-C/truekey-migrate/internal/reconcile"
	"github.com/Kieran-C/truekey-migrate/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <export.csv>",
	Short: "Parse an export and report what a conversion would find",
	Long: `Inspect parses a TrueKey export without writing any output. It reports
the header columns, the number of logins and notes, and the entries that
would be flagged: rows with missing fields, repaired comma-bearing
passwords, and any unterminated trailing record.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().Bool("json", false, "output the report as JSON")

	rootCmd.AddCommand(inspectCmd)
}

// inspection is the inspect command's report shape.
type inspection struct {
	Columns       []string `json:"columns"`
	Records       int      `json:"records"`
	Logins        int      `json:"logins"`
	Notes         int      `json:"notes"`
	MissingFields int      `json:"missing_fields"`
	Truncated     int      `json:"truncated"`
	DroppedTail   bool     `json:"dropped_tail"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	headerLine, body, err := input.ReadLines(input.SkipBOM(f))
	if err != nil {
		return err
	}
	header := reconcile.ParseHeader(headerLine)
	asm := assemble.Records(body)

	rep := inspection{
		Columns:     header.Columns(),
		Records:     len(asm.Records),
		DroppedTail: asm.Dropped != "",
	}

	for _, record := range asm.Records {
		fields := reconcile.Reconcile(record, header)
		if fields.Kind == types.KindNote {
			rep.Notes++
			continue
		}
		rep.Logins++
		if fields.Truncated {
			rep.Truncated++
		}
		if loginMissingFields(fields.Values) {
			rep.MissingFields++
		}
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	fmt.Printf("Header columns: %s\n", strings.Join(rep.Columns, ", "))
	fmt.Printf("Records:        %d (%d logins, %d notes)\n", rep.Records, rep.Logins, rep.Notes)
	if rep.MissingFields > 0 {
		fmt.Printf("Missing fields: %d login(s) lack a name, login, password, or URL\n", rep.MissingFields)
	}
	if rep.Truncated > 0 {
		fmt.Printf("Truncated:      %d login(s) had surplus tokens and no password column\n", rep.Truncated)
	}
	if rep.DroppedTail {
		fmt.Println("Warning: the export ends mid-record; the trailing entry would be dropped")
	}
	return nil
}

func loginMissingFields(values map[string]string) bool {
	for _, col := range []string{"name", "login", "password", "url"} {
		if strings.TrimSpace(values[col]) == "" {
			return true
		}
	}
	return false
}
