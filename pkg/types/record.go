// Copyright Kieran C., 2026. All rights reserved.

// Package types holds the shared domain and configuration types for the
// TrueKey migration pipeline.
package types

// Sentinel is the literal token the TrueKey CSV v2 export appends to the
// end of every logical record. A physical line ending with this token
// closes the record; note bodies may span several physical lines before it
// appears.
const Sentinel = "tk-csv-v2"

// RecordKind distinguishes the two entry kinds found in a TrueKey export.
type RecordKind string

const (
	KindLogin RecordKind = "login"
	KindNote  RecordKind = "note"
)
