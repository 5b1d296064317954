// Package render turns a source's match outcomes into output lines.
package render

import (
	"io"
	"strconv"
	"strings"

	"search/internal/errors"
	"search/internal/model"
)

// Sink collects the outcomes of one source and writes them out at the end
// of that source.
type Sink interface {
	Accept(out model.MatchOutcome)
	Flush(w io.Writer) error
}

// New picks the sink for one source: a counter when cfg.CountOnly is set,
// otherwise a lister. The label prefix is decided here as well.
func New(cfg model.SearchConfig, id model.SourceID) Sink {
	prefix := ""
	if cfg.MultiSource() {
		prefix = id.Label() + ":"
	}

	if cfg.CountOnly {
		return &counter{prefix: prefix}
	}
	return &lister{prefix: prefix, numbered: cfg.ShowLineNumbers}
}

type counter struct {
	prefix string
	n      int
}

func (c *counter) Accept(out model.MatchOutcome) {
	if out.Matched {
		c.n++
	}
}

func (c *counter) Flush(w io.Writer) error {
	return writeLine(w, c.prefix+strconv.Itoa(c.n))
}

type lister struct {
	prefix   string
	numbered bool
	accepted []model.LineRecord
}

func (l *lister) Accept(out model.MatchOutcome) {
	if out.Matched {
		l.accepted = append(l.accepted, out.Record)
	}
}

func (l *lister) Flush(w io.Writer) error {
	var b strings.Builder
	for _, rec := range l.accepted {
		b.Reset()
		b.WriteString(l.prefix)
		if l.numbered {
			b.WriteString(strconv.Itoa(rec.Ordinal))
			b.WriteByte(':')
		}
		b.WriteString(rec.Text)
		if err := writeLine(w, b.String()); err != nil {
			return err
		}
	}
	l.accepted = nil
	return nil
}

func writeLine(w io.Writer, line string) error {
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return errors.Wrap(err, errors.ErrOutputWrite, "writing output")
	}
	return nil
}
