// Copyright Kieran C., 2026. All rights reserved.

// Package export maps reconciled records onto the import schemas of the
// target password managers and writes them as fully quoted CSV.
package export

import (
	"fmt"

	"github.com/Kieran-C/truekey-migrate/pkg/types"
)

// untitledNote names a note whose reconciled name came back empty.
const untitledNote = "Untitled Note"

// Login carries the source fields relevant to a login entry, already
// cleaned by the pipeline.
type Login struct {
	Name     string
	URL      string
	Login    string
	Password string
	Note     string
	Vault    string
}

// Note carries a reconciled secure note.
type Note struct {
	Name    string
	Content string
}

// LoginColumns returns the login output header for format f.
func LoginColumns(f types.OutputFormat) ([]string, error) {
	switch f {
	case types.FormatLastPass:
		return []string{"url", "username", "password", "extra", "name", "grouping", "fav", "totp"}, nil
	case types.Format1Password:
		return []string{"name", "url", "username", "password"}, nil
	case types.FormatProton:
		return []string{"name", "url", "email", "username", "password", "note", "totp", "vault"}, nil
	}
	return nil, fmt.Errorf("unsupported format %q: use proton, lastpass, or 1password", f)
}

// NoteColumns returns the notes output header for format f.
func NoteColumns(f types.OutputFormat) ([]string, error) {
	switch f {
	case types.FormatLastPass:
		return []string{"url", "username", "password", "extra", "name", "grouping", "fav"}, nil
	case types.Format1Password, types.FormatProton:
		return []string{"name", "content"}, nil
	}
	return nil, fmt.Errorf("unsupported format %q: use proton, lastpass, or 1password", f)
}

// HasHeader reports whether format f expects a header row. 1Password
// imports reject files that carry one.
func HasHeader(f types.OutputFormat) bool {
	return f != types.Format1Password
}

// LoginRow lays out a login entry in the column order of format f.
func LoginRow(f types.OutputFormat, e Login) ([]string, error) {
	switch f {
	case types.FormatLastPass:
		return []string{e.URL, e.Login, e.Password, "", e.Name, "", "", ""}, nil
	case types.Format1Password:
		return []string{e.Name, e.URL, e.Login, e.Password}, nil
	case types.FormatProton:
		// Proton Pass takes the source login as both email and username.
		return []string{e.Name, e.URL, e.Login, e.Login, e.Password, e.Note, "", e.Vault}, nil
	}
	return nil, fmt.Errorf("unsupported format %q: use proton, lastpass, or 1password", f)
}

// NoteRow lays out a note entry in the column order of format f. An empty
// name becomes "Untitled Note".
func NoteRow(f types.OutputFormat, n Note) ([]string, error) {
	name := n.Name
	if name == "" {
		name = untitledNote
	}
	switch f {
	case types.FormatLastPass:
		return []string{"", "", "", n.Content, name, "", ""}, nil
	case types.Format1Password, types.FormatProton:
		return []string{name, n.Content}, nil
	}
	return nil, fmt.Errorf("unsupported format %q: use proton, lastpass, or 1password", f)
}
