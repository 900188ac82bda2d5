// Copyright Kieran C., 2026. All rights reserved.

package types

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// OutputFormat identifies the target password manager.
type OutputFormat string

const (
	FormatProton    OutputFormat = "proton"
	FormatLastPass  OutputFormat = "lastpass"
	Format1Password OutputFormat = "1password"
)

// Formats lists the supported output formats in display order.
var Formats = []OutputFormat{FormatProton, FormatLastPass, Format1Password}

// ConvertOptions holds the settings for one conversion run.
type ConvertOptions struct {
	// InputFile is the TrueKey CSV export to read.
	InputFile string `yaml:"input_file"`

	// OutputFile is the destination for converted login entries.
	OutputFile string `yaml:"output_file"`

	// NotesFile is the destination for secure notes when ExportNotes is set.
	NotesFile string `yaml:"notes_file,omitempty"`

	// Format selects the target manager: proton, lastpass, or 1password.
	Format OutputFormat `yaml:"format"`

	// VaultName is assigned to every entry in formats that carry a vault
	// column (Proton Pass).
	VaultName string `yaml:"vault_name,omitempty"`

	// ExportNotes controls whether note entries are written to NotesFile.
	ExportNotes bool `yaml:"export_notes"`

	// StrictTail turns an unterminated trailing record at end-of-input into
	// an error instead of a counted drop.
	StrictTail bool `yaml:"strict_tail"`
}

// Validate checks that the options name an input, an output, and a known
// format.
func (o ConvertOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.InputFile, validation.Required),
		validation.Field(&o.OutputFile, validation.Required),
		validation.Field(&o.Format, validation.Required,
			validation.In(FormatProton, FormatLastPass, Format1Password)),
	)
}

// HistoryConfig holds settings for the conversion run log.
type HistoryConfig struct {
	// Dir is the directory holding the history database.
	Dir string `yaml:"dir"`

	// MaxList caps the number of runs returned by a list query (default 20).
	MaxList int `yaml:"max_list"`
}

// Validate checks that the history configuration names a directory.
func (c HistoryConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Dir, validation.Required),
	)
}
