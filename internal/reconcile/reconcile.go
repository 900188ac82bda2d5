// Copyright Kieran C., 2026. All rights reserved.

// Package reconcile recovers column-name/value mappings from TrueKey
// logical records. The export does not quote free-text fields, so a value
// containing a comma splits into extra tokens; reconciliation puts them
// back together using what is known about the source schema: the password
// column is the only login field that routinely carries the delimiter, and
// note content starts at a fixed offset.
package reconcile

import (
	"strings"

	"github.com/Kieran-C/truekey-migrate/pkg/types"
)

// Fields is the result of reconciling one logical record.
type Fields struct {
	// Kind tags the record as a login or a note.
	Kind types.RecordKind

	// Values maps column names to values. For logins the keys are exactly
	// the header columns; for notes the keys are "name" and "content".
	Values map[string]string

	// Truncated reports that surplus tokens were discarded because the
	// header had no password column to absorb them.
	Truncated bool
}

// Reconcile maps one logical record onto the header. The record's first
// comma-delimited token selects the strategy: "note" (case-insensitive)
// runs note extraction, anything else runs login reconciliation. Both are
// pure functions of the record and the header.
func Reconcile(record string, h Header) Fields {
	parts := strings.Split(record, ",")
	if strings.EqualFold(parts[0], "note") {
		return noteFields(parts)
	}
	return loginFields(parts, h)
}

// stripSentinel drops a trailing token equal to the record sentinel.
func stripSentinel(parts []string) []string {
	if n := len(parts); n > 0 && parts[n-1] == types.Sentinel {
		return parts[:n-1]
	}
	return parts
}
