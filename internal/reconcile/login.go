// Copyright Kieran C., 2026. All rights reserved.

package reconcile

import (
	"strings"

	"github.com/Kieran-C/truekey-migrate/pkg/types"
)

// loginFields maps a login record's tokens positionally onto the header.
//
// Short rows are right-padded with empty values. Long rows mean a field
// value contained literal commas: the first and last tokens are anchored
// to the first and last columns (neither ever carries the delimiter in the
// source schema), and the surplus interior tokens are absorbed into the
// password column and rejoined with commas. Without a password column the
// surplus is truncated; the Truncated flag lets the caller count the loss.
func loginFields(parts []string, h Header) Fields {
	parts = stripSentinel(parts)

	// Unpadded optional columns show up as trailing empty tokens.
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	n := h.Count()
	truncated := false

	switch {
	case len(parts) < n:
		padded := make([]string, n)
		copy(padded, parts)
		parts = padded

	case len(parts) > n:
		first := parts[0]
		last := parts[len(parts)-1]
		middle := parts[1 : len(parts)-1]
		needed := n - 2

		if len(middle) > needed {
			if p := h.PasswordIndex(); p > 0 {
				parts = absorbIntoPassword(first, middle, last, needed, p)
			} else {
				parts = rebuild(first, middle[:needed], last)
				truncated = true
			}
		} else {
			parts = rebuild(first, middle, last)
		}
	}

	values := make(map[string]string, n)
	for i, col := range h.Columns() {
		if i < len(parts) {
			values[col] = parts[i]
		} else {
			values[col] = ""
		}
	}

	return Fields{Kind: types.KindLogin, Values: values, Truncated: truncated}
}

// absorbIntoPassword rebuilds a token sequence of exactly needed+2 entries.
// The interior columns before and after the password keep one token each;
// every surplus token lands in the password group and is rejoined with the
// delimiter, reconstructing the original comma-bearing password.
func absorbIntoPassword(first string, middle []string, last string, needed, passwordIdx int) []string {
	before := middle[:passwordIdx-1]

	afterCount := needed - passwordIdx
	var after []string
	passwordEnd := len(middle)
	if afterCount > 0 {
		after = middle[len(middle)-afterCount:]
		passwordEnd = len(middle) - afterCount
	}

	password := strings.Join(middle[passwordIdx-1:passwordEnd], ",")

	out := make([]string, 0, needed+2)
	out = append(out, first)
	out = append(out, before...)
	out = append(out, password)
	out = append(out, after...)
	out = append(out, last)
	return out
}

func rebuild(first string, middle []string, last string) []string {
	out := make([]string, 0, len(middle)+2)
	out = append(out, first)
	out = append(out, middle...)
	out = append(out, last)
	return out
}
