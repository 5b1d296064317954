package model

// StdinLabel is printed in place of a path when the unnamed source is one of
// several configured sources.
const StdinLabel = "(standard input)"

// Stdin is the sentinel source meaning "read standard input".
const Stdin SourceID = "-"

// SourceID identifies where lines come from: a file path or Stdin.
type SourceID string

// IsStdin reports whether the identifier is the standard input sentinel.
func (s SourceID) IsStdin() bool {
	return s == Stdin
}

// Label is the prefix used when more than one source is configured.
func (s SourceID) Label() string {
	if s.IsStdin() {
		return StdinLabel
	}
	return string(s)
}

// SearchConfig is the resolved, validated configuration of one run.
type SearchConfig struct {
	Pattern         string     // Literal substring to look for, never empty
	Sources         []SourceID // Sources in the order given, never empty
	CaseInsensitive bool       // -i: fold case on both sides before comparing
	ShowLineNumbers bool       // -n: prefix output lines with their ordinal
	CountOnly       bool       // -c: print per-source counts instead of lines
	InvertMatch     bool       // -v: report the lines that do not match
}

// MultiSource reports whether output lines need a source label.
func (c SearchConfig) MultiSource() bool {
	return len(c.Sources) > 1
}

// LineRecord is a single line read from a source.
type LineRecord struct {
	Ordinal int    // 1-based position within its source
	Text    string // Line content without the terminator
}

// MatchOutcome is the matcher's decision for one record.
type MatchOutcome struct {
	Record  LineRecord
	Matched bool
}
