// Copyright Kieran C., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Kieran-C/truekey-migrate/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Review past conversion runs",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent conversion runs",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show the full record of one run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyListCmd.Flags().Int("limit", 0, "maximum number of runs to list")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No conversion runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-20s  %-10s  %-30s  %6s  %8s\n",
		"Run", "Started", "Format", "Input", "Rows", "Problems")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 120))

	for _, r := range runs {
		in := r.InputFile
		if len(in) > 30 {
			in = "..." + in[len(in)-27:]
		}
		problems := r.Summary.ProblemRows + r.Summary.DroppedPartial + r.Summary.TruncatedLogins
		fmt.Fprintf(os.Stdout, "%-36s  %-20s  %-10s  %-30s  %6d  %8d\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04:05"), r.Format, in,
			r.Summary.TotalRows, problems)
	}

	fmt.Fprintf(os.Stdout, "\n%d run(s)\n", len(runs))
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	r, err := store.Get(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Run:              %s\n", r.ID)
	fmt.Printf("Started:          %s\n", r.StartedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("Input:            %s\n", r.InputFile)
	fmt.Printf("Output:           %s\n", r.OutputFile)
	if r.NotesFile != "" {
		fmt.Printf("Notes:            %s\n", r.NotesFile)
	}
	fmt.Printf("Format:           %s\n", r.Format)
	if r.Vault != "" {
		fmt.Printf("Vault:            %s\n", r.Vault)
	}
	fmt.Printf("Rows:             %d\n", r.Summary.TotalRows)
	fmt.Printf("Logins:           %d\n", r.Summary.LoginRows)
	fmt.Printf("Notes written:    %d\n", r.Summary.NoteRows)
	fmt.Printf("Passwords cleaned: %d\n", r.Summary.PasswordCleaned)
	fmt.Printf("Problem rows:     %d\n", r.Summary.ProblemRows)
	fmt.Printf("Dropped partials: %d\n", r.Summary.DroppedPartial)
	fmt.Printf("Truncated logins: %d\n", r.Summary.TruncatedLogins)
	return nil
}
