// Copyright Kieran C., 2026. All rights reserved.

package types

// Summary aggregates the counters produced by one conversion run.
type Summary struct {
	// TotalRows is the number of logical records consumed.
	TotalRows int `yaml:"total_rows"`

	// LoginRows is the number of login entries written.
	LoginRows int `yaml:"login_rows"`

	// NoteRows is the number of note entries written.
	NoteRows int `yaml:"note_rows"`

	// PasswordCleaned counts passwords that had embedded whitespace removed.
	PasswordCleaned int `yaml:"password_cleaned"`

	// ProblemRows counts logins missing a name, login, password, or URL.
	ProblemRows int `yaml:"problem_rows"`

	// DroppedPartial counts unterminated trailing records discarded at
	// end-of-input.
	DroppedPartial int `yaml:"dropped_partial"`

	// TruncatedLogins counts logins whose surplus tokens were truncated
	// because the header had no password column to absorb them.
	TruncatedLogins int `yaml:"truncated_logins"`
}

// HasProblems reports whether any record was degraded during conversion.
func (s Summary) HasProblems() bool {
	return s.ProblemRows > 0 || s.DroppedPartial > 0 || s.TruncatedLogins > 0
}
