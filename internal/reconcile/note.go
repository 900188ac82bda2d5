// Copyright Kieran C., 2026. All rights reserved.

package reconcile

import (
	"strings"
	"unicode"

	"github.com/Kieran-C/truekey-migrate/pkg/types"
)

// noteContentOffset is the token index at which free-text note content
// begins in the TrueKey schema. Tokens before it are fixed metadata slots.
const noteContentOffset = 8

// NoiseLiterals are internal marker codes the exporter leaves among the
// note tokens. They are artifacts of the source format, never content.
// Treated as configuration data rather than logic.
var NoiseLiterals = []string{"e3622b", "14766677"}

// noteFields extracts the name and multi-line body of a note record.
//
// The exporter pads a note row with blank tokens after the title, so the
// rightmost non-blank token (excluding the kind token at index 0) is the
// entry name. Everything between the fixed content offset and the name is
// body text that was split apart by embedded commas; blanks, noise codes,
// and purely numeric artifacts are filtered out and the survivors rejoined
// with line breaks.
func noteFields(parts []string) Fields {
	parts = stripSentinel(parts)

	name := ""
	nameIdx := -1
	for i := len(parts) - 1; i > 0; i-- {
		if t := strings.TrimSpace(parts[i]); t != "" {
			name = t
			nameIdx = i
			break
		}
	}

	var candidates []string
	switch {
	case nameIdx > noteContentOffset:
		candidates = parts[noteContentOffset:nameIdx]
	case nameIdx == -1 && len(parts) > noteContentOffset:
		candidates = parts[noteContentOffset:]
	}

	var kept []string
	for _, p := range candidates {
		t := strings.TrimSpace(p)
		if t == "" || isNoise(t) || isAllDigits(t) {
			continue
		}
		kept = append(kept, p)
	}

	return Fields{
		Kind: types.KindNote,
		Values: map[string]string{
			"name":    name,
			"content": strings.Join(kept, "\n"),
		},
	}
}

func isNoise(s string) bool {
	for _, lit := range NoiseLiterals {
		if s == lit {
			return true
		}
	}
	return false
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
