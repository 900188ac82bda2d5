// Copyright Kieran C., 2026. All rights reserved.

package reconcile

import "strings"

// passwordColumn is the header column name whose values are known to
// contain the field delimiter. Login reconciliation absorbs surplus tokens
// into this column when it is present.
const passwordColumn = "password"

// Header is the ordered column set parsed from the first line of a TrueKey
// export. It is immutable for the lifetime of one conversion run.
type Header struct {
	columns     []string
	passwordIdx int
}

// ParseHeader splits the export's first line into ordered column names and
// locates the password column, if any.
func ParseHeader(line string) Header {
	cols := strings.Split(strings.TrimSpace(line), ",")
	idx := -1
	for i, c := range cols {
		if c == passwordColumn {
			idx = i
			break
		}
	}
	return Header{columns: cols, passwordIdx: idx}
}

// Columns returns the ordered column names.
func (h Header) Columns() []string { return h.columns }

// Count returns the expected number of fields per login record.
func (h Header) Count() int { return len(h.columns) }

// PasswordIndex returns the positional index of the password column, or -1
// when the header has none.
func (h Header) PasswordIndex() int { return h.passwordIdx }
