// Copyright Kieran C., 2026. All rights reserved.

// Package input reads a TrueKey export into a header line and body lines.
// TrueKey exports come from Windows machines often enough that a UTF-8 BOM
// and CRLF line endings both have to be tolerated.
package input

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// maxLineSize bounds a single physical line. Note bodies can be long but a
// megabyte per line is far beyond anything TrueKey emits.
const maxLineSize = 1 << 20

// SkipBOM returns a reader positioned past a leading UTF-8 byte order mark,
// if one is present. All other bytes pass through untouched.
func SkipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if lead, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(lead, utf8BOM) {
		br.Discard(len(utf8BOM))
	}
	return br
}

// ReadLines consumes r and returns the header line and the remaining
// physical body lines in source order. Trailing carriage returns are
// stripped from every line. An input with no lines at all is an error;
// a header with no body is not.
func ReadLines(r io.Reader) (header string, body []string, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", nil, fmt.Errorf("reading input: %w", err)
		}
		return "", nil, fmt.Errorf("input is empty: no header line")
	}
	header = strings.TrimRight(sc.Text(), "\r")

	for sc.Scan() {
		body = append(body, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return "", nil, fmt.Errorf("reading input: %w", err)
	}
	return header, body, nil
}
