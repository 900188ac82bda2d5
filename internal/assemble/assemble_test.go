// Copyright Kieran C., 2026. All rights reserved.

package assemble

import (
	"reflect"
	"testing"
)

func TestRecords(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		want        []string
		wantDropped string
	}{
		{
			name: "single-line records pass through",
			lines: []string{
				"login,Site,http://x,me,pw tk-csv-v2",
				"login,Other,http://y,you,pw2 tk-csv-v2",
			},
			want: []string{
				"login,Site,http://x,me,pw tk-csv-v2",
				"login,Other,http://y,you,pw2 tk-csv-v2",
			},
		},
		{
			name:  "multi-line note joined with newline",
			lines: []string{"Title", "line A", "line B tk-csv-v2"},
			want:  []string{"Title\nline A\nline B tk-csv-v2"},
		},
		{
			name:  "blank lines skipped around a note",
			lines: []string{"", "Title", "   ", "line A", "", "line B tk-csv-v2", "\t"},
			want:  []string{"Title\nline A\nline B tk-csv-v2"},
		},
		{
			name:  "sentinel mid-line does not close a record",
			lines: []string{"Title", "has tk-csv-v2 inside", "end tk-csv-v2"},
			want:  []string{"Title\nhas tk-csv-v2 inside\nend tk-csv-v2"},
		},
		{
			name:        "unterminated tail is dropped but reported",
			lines:       []string{"good tk-csv-v2", "orphan line", "more orphan"},
			want:        []string{"good tk-csv-v2"},
			wantDropped: "orphan line\nmore orphan",
		},
		{
			name:  "empty input",
			lines: nil,
			want:  nil,
		},
		{
			name:  "trailing carriage returns stripped",
			lines: []string{"Title\r", "body tk-csv-v2\r"},
			want:  []string{"Title\nbody tk-csv-v2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Records(tt.lines)
			if !reflect.DeepEqual(got.Records, tt.want) {
				t.Errorf("Records = %#v, want %#v", got.Records, tt.want)
			}
			if got.Dropped != tt.wantDropped {
				t.Errorf("Dropped = %q, want %q", got.Dropped, tt.wantDropped)
			}
		})
	}
}

// The assembler must be a no-op on a body that is already one record per
// line: feeding its own output back in yields the same records.
func TestRecords_Idempotent(t *testing.T) {
	lines := []string{
		"login,A,http://a,u,p tk-csv-v2",
		"note,,,,,,,,body,Name tk-csv-v2",
	}
	first := Records(lines)
	second := Records(first.Records)
	if !reflect.DeepEqual(first.Records, second.Records) {
		t.Errorf("re-assembly changed records: %#v vs %#v", first.Records, second.Records)
	}
}
