// Package match decides whether a line is selected.
package match

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"search/internal/model"
)

// Matcher tests lines against one configuration. The decision does not
// depend on the rendering mode. A Matcher is not safe for concurrent use.
type Matcher struct {
	pattern string
	fold    *cases.Caser
	invert  bool
}

// New builds a Matcher for cfg, folding the pattern once if needed.
func New(cfg model.SearchConfig) *Matcher {
	m := &Matcher{pattern: cfg.Pattern, invert: cfg.InvertMatch}
	if cfg.CaseInsensitive {
		lower := cases.Lower(language.Und)
		m.fold = &lower
		m.pattern = m.fold.String(cfg.Pattern)
	}
	return m
}

// Match reports whether rec is selected: the line contains the pattern,
// flipped when inverting.
func (m *Matcher) Match(rec model.LineRecord) bool {
	text := rec.Text
	if m.fold != nil {
		text = m.fold.String(text)
	}
	return strings.Contains(text, m.pattern) != m.invert
}

// Outcome wraps Match for the renderer.
func (m *Matcher) Outcome(rec model.LineRecord) model.MatchOutcome {
	return model.MatchOutcome{Record: rec, Matched: m.Match(rec)}
}
