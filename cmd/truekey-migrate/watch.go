// Copyright Kieran C., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Kieran-C/truekey-migrate/internal/pipeline"
	"github.com/Kieran-C/truekey-migrate/internal/watch"
	"github.com/Kieran-C/truekey-migrate/pkg/types"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Convert exports as they appear in a directory",
	Long: `Watch monitors a directory and converts every TrueKey CSV export that
is created or modified there. Output files are written next to the input
with the format name as a suffix. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().String("format", "", "target format: proton, lastpass, or 1password")
	watchCmd.Flags().String("vault", "", "vault name assigned to entries (Proton Pass)")
	watchCmd.Flags().Bool("notes", false, "export secure notes alongside each conversion")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = viper.GetString("format")
	}
	vault, _ := cmd.Flags().GetString("vault")
	if vault == "" {
		vault = viper.GetString("vault")
	}
	exportNotes, _ := cmd.Flags().GetBool("notes")

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watch.Watch(ctx, dir, logger, func(path string) error {
		opts := types.ConvertOptions{
			InputFile:   path,
			OutputFile:  derivedPath(path, format),
			Format:      types.OutputFormat(format),
			VaultName:   vault,
			ExportNotes: exportNotes,
		}
		if exportNotes {
			opts.NotesFile = derivedPath(path, "notes")
		}
		_, err := pipeline.Run(opts, os.Stdout)
		return err
	})
}
