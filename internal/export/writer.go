// Copyright Kieran C., 2026. All rights reserved.

package export

import (
	"bufio"
	"io"
	"strings"
)

// Writer emits CSV rows with every field quoted. Some password manager
// importers choke on bare fields next to quoted ones, so unlike
// encoding/csv (which quotes only when forced to) every value is wrapped
// in double quotes with embedded quotes doubled. Rows end with CRLF.
type Writer struct {
	bw *bufio.Writer
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// Write emits one row.
func (w *Writer) Write(fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if err := w.bw.WriteByte(','); err != nil {
				return err
			}
		}
		if err := w.bw.WriteByte('"'); err != nil {
			return err
		}
		if _, err := w.bw.WriteString(strings.ReplaceAll(f, `"`, `""`)); err != nil {
			return err
		}
		if err := w.bw.WriteByte('"'); err != nil {
			return err
		}
	}
	_, err := w.bw.WriteString("\r\n")
	return err
}

// Flush writes buffered rows to the underlying writer.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}
