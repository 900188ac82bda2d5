// Copyright Kieran C., 2026. All rights reserved.

// Package main is the entry point for the truekey-migrate CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the truekey-migrate CLI.
var rootCmd = &cobra.Command{
	Use:   "truekey-migrate",
	Short: "Convert TrueKey password exports for other password managers",
	Long: `truekey-migrate converts a TrueKey CSV export into a file that
Proton Pass, LastPass, or 1Password can import.

TrueKey's export is not well-formed CSV: passwords and note bodies may
contain unescaped commas, and notes span multiple lines. The converter
reassembles the original entries before mapping them onto the target
format, and reports how many rows needed repair.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./truekey-migrate.yaml or ~/.config/truekey-migrate/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("truekey-migrate")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "truekey-migrate"))
		}
	}

	viper.SetEnvPrefix("TRUEKEY_MIGRATE")
	viper.AutomaticEnv()

	viper.SetDefault("format", "proton")
	viper.SetDefault("vault", "Personal")
	viper.SetDefault("history.dir", ".truekey-migrate")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
