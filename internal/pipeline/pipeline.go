// Copyright Kieran C., 2026. All rights reserved.

// Package pipeline sequences one conversion run: read the export, assemble
// logical records, reconcile fields, map them onto the target format, and
// write the output files. It owns the run counters reported after each
// conversion.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Kieran-C/truekey-migrate/internal/assemble"
	"github.com/Kieran-C/truekey-migrate/internal/export"
	"github.com/Kieran-C/truekey-migrate/internal/input"
	"github.com/Kieran-C/truekey-migrate/internal/reconcile"
	"github.com/Kieran-C/truekey-migrate/pkg/types"
)

// progressEvery controls how often a progress line is printed.
const progressEvery = 10

// whitespaceRe matches runs of whitespace inside password values. TrueKey
// wraps long passwords across lines in the export, injecting spaces that
// were never part of the password.
var whitespaceRe = regexp.MustCompile(`\s+`)

// Result is the outcome of one conversion run.
type Result struct {
	RunID      string
	StartedAt  time.Time
	Options    types.ConvertOptions
	Summary    types.Summary
	OutputFile string
	NotesFile  string
}

// Run executes one conversion with the given options, printing per-run
// progress to w. It returns the run summary; records that parse oddly are
// degraded and counted, never fatal (only I/O and option errors abort).
func Run(opts types.ConvertOptions, w io.Writer) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	res := &Result{
		RunID:      uuid.NewString(),
		StartedAt:  time.Now().UTC(),
		Options:    opts,
		OutputFile: opts.OutputFile,
	}

	in, err := os.Open(opts.InputFile)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	headerLine, body, err := input.ReadLines(input.SkipBOM(in))
	if err != nil {
		return nil, err
	}
	header := reconcile.ParseHeader(headerLine)

	asm := assemble.Records(body)
	if asm.Dropped != "" {
		if opts.StrictTail {
			return nil, fmt.Errorf("input ends mid-record: %d line(s) never terminated by %q",
				strings.Count(asm.Dropped, "\n")+1, types.Sentinel)
		}
		res.Summary.DroppedPartial++
		fmt.Fprintf(w, "warning: dropped unterminated trailing record (%d line(s))\n",
			strings.Count(asm.Dropped, "\n")+1)
	}

	out, err := os.Create(opts.OutputFile)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	loginW := export.NewWriter(out)
	if export.HasHeader(opts.Format) {
		cols, err := export.LoginColumns(opts.Format)
		if err != nil {
			return nil, err
		}
		if err := loginW.Write(cols); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	var noteW *export.Writer
	if opts.ExportNotes && opts.NotesFile != "" {
		nf, err := os.Create(opts.NotesFile)
		if err != nil {
			return nil, fmt.Errorf("creating notes output: %w", err)
		}
		defer nf.Close()
		noteW = export.NewWriter(nf)
		if export.HasHeader(opts.Format) {
			cols, err := export.NoteColumns(opts.Format)
			if err != nil {
				return nil, err
			}
			if err := noteW.Write(cols); err != nil {
				return nil, fmt.Errorf("writing notes header: %w", err)
			}
		}
		res.NotesFile = opts.NotesFile
	}

	for _, record := range asm.Records {
		res.Summary.TotalRows++
		if res.Summary.TotalRows%progressEvery == 0 {
			fmt.Fprintf(w, "processing row %d...\n", res.Summary.TotalRows)
		}

		fields := reconcile.Reconcile(record, header)
		if fields.Kind == types.KindNote {
			if noteW == nil {
				continue
			}
			row, err := export.NoteRow(opts.Format, export.Note{
				Name:    fields.Values["name"],
				Content: fields.Values["content"],
			})
			if err != nil {
				return nil, err
			}
			if err := noteW.Write(row); err != nil {
				return nil, fmt.Errorf("writing note row: %w", err)
			}
			res.Summary.NoteRows++
			continue
		}

		if err := writeLogin(loginW, opts, fields, &res.Summary); err != nil {
			return nil, err
		}
	}

	if err := loginW.Flush(); err != nil {
		return nil, fmt.Errorf("flushing output: %w", err)
	}
	if noteW != nil {
		if err := noteW.Flush(); err != nil {
			return nil, fmt.Errorf("flushing notes output: %w", err)
		}
	}

	printSummary(w, res)
	return res, nil
}

// writeLogin cleans a reconciled login, updates the counters, and writes
// the output row. Entries missing a name, login, password, or URL are
// still written but counted as problems.
func writeLogin(lw *export.Writer, opts types.ConvertOptions, fields reconcile.Fields, s *types.Summary) error {
	entry := export.Login{
		Name:     strings.TrimSpace(fields.Values["name"]),
		URL:      strings.TrimSpace(fields.Values["url"]),
		Login:    strings.TrimSpace(fields.Values["login"]),
		Password: fields.Values["password"],
		Note:     strings.TrimSpace(fields.Values["note"]),
		Vault:    opts.VaultName,
	}

	cleaned := whitespaceRe.ReplaceAllString(entry.Password, "")
	if cleaned != entry.Password && cleaned != "" {
		s.PasswordCleaned++
	}
	entry.Password = cleaned

	if fields.Truncated {
		s.TruncatedLogins++
	}
	if entry.Name == "" || entry.Login == "" || entry.Password == "" || entry.URL == "" {
		s.ProblemRows++
	}

	row, err := export.LoginRow(opts.Format, entry)
	if err != nil {
		return err
	}
	if err := lw.Write(row); err != nil {
		return fmt.Errorf("writing login row: %w", err)
	}
	s.LoginRows++
	return nil
}

func printSummary(w io.Writer, res *Result) {
	s := res.Summary
	fmt.Fprintf(w, "\nConverted %s -> %s (%s)\n", res.Options.InputFile, res.OutputFile, res.Options.Format)
	fmt.Fprintf(w, "  rows:             %d\n", s.TotalRows)
	fmt.Fprintf(w, "  logins written:   %d\n", s.LoginRows)
	if res.NotesFile != "" {
		fmt.Fprintf(w, "  notes written:    %d (%s)\n", s.NoteRows, res.NotesFile)
	}
	if s.PasswordCleaned > 0 {
		fmt.Fprintf(w, "  passwords cleaned: %d\n", s.PasswordCleaned)
	}
	if s.HasProblems() {
		fmt.Fprintf(w, "  problem rows:     %d (missing fields)\n", s.ProblemRows)
		if s.TruncatedLogins > 0 {
			fmt.Fprintf(w, "  truncated logins: %d\n", s.TruncatedLogins)
		}
		if s.DroppedPartial > 0 {
			fmt.Fprintf(w, "  dropped partials: %d\n", s.DroppedPartial)
		}
	}
}
