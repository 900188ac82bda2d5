// Copyright Kieran C., 2026. All rights reserved.

// Package assemble groups the physical lines of a TrueKey export body into
// logical records. The export has no quoting and no per-record length
// prefix: a note body may contain embedded line breaks, and the only thing
// that marks the end of a record is the sentinel token at the end of a
// physical line.
package assemble

import (
	"strings"

	"github.com/Kieran-C/truekey-migrate/pkg/types"
)

// Result holds the assembled records and any unterminated trailing
// accumulation left over at end-of-input.
type Result struct {
	// Records are the complete logical records, in source order. Multi-line
	// records have their physical lines joined by "\n".
	Records []string

	// Dropped is a trailing accumulation that never saw the sentinel,
	// surfaced so the caller can count or reject it. It is never emitted as
	// a record. Empty when the input ended cleanly.
	Dropped string
}

// Records assembles body lines (header already removed) into logical
// records. Blank and whitespace-only lines are skipped; they neither extend
// nor terminate a record. A line ending with the sentinel closes the record
// being accumulated, or forms a complete one-line record on its own.
func Records(lines []string) Result {
	var res Result
	var pending string
	havePending := false

	for _, line := range lines {
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if havePending {
			pending += "\n" + line
			if strings.HasSuffix(line, types.Sentinel) {
				res.Records = append(res.Records, pending)
				pending = ""
				havePending = false
			}
			continue
		}

		if strings.HasSuffix(line, types.Sentinel) {
			res.Records = append(res.Records, line)
		} else {
			// A note body is beginning.
			pending = line
			havePending = true
		}
	}

	if havePending {
		res.Dropped = pending
	}
	return res
}
