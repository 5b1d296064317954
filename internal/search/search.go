// Package search runs a resolved configuration over its sources, one at a
// time, and writes the rendered result.
package search

import (
	"bufio"
	"fmt"
	"io"

	"search/internal/errors"
	"search/internal/logging"
	"search/internal/match"
	"search/internal/model"
	"search/internal/render"
	"search/internal/source"
)

// Env holds the process streams a run reads from and writes to.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run processes every source of cfg in order. A source that cannot be
// opened is reported on Stderr and skipped. Read and write failures stop the
// run and are returned; output of earlier sources stays written.
func Run(cfg model.SearchConfig, env Env) error {
	logger := logging.GetLogger("search")
	logger.Debug().
		Str("pattern", cfg.Pattern).
		Int("sources", len(cfg.Sources)).
		Bool("count", cfg.CountOnly).
		Bool("invert", cfg.InvertMatch).
		Bool("ignoreCase", cfg.CaseInsensitive).
		Msg("Starting search")

	m := match.New(cfg)
	out := bufio.NewWriter(env.Stdout)

	for _, id := range cfg.Sources {
		err := searchSource(cfg, id, m, env.Stdin, out)
		if errors.IsErrorCode(err, errors.ErrSourceOpen) {
			logger.Info().Err(err).Fields(errors.GetErrorDetails(err)).Msg("Skipping source")
			fmt.Fprintf(env.Stderr, "search: %v\n", err)
			continue
		}
		if err != nil {
			logger.Debug().
				Str("code", string(errors.GetErrorCode(err))).
				Fields(errors.GetErrorDetails(err)).
				Msg("Source failed")
			return err
		}
	}
	return nil
}

func searchSource(cfg model.SearchConfig, id model.SourceID, m *match.Matcher, stdin io.Reader, out *bufio.Writer) error {
	logger := logging.GetLogger("search").With().Str("source", string(id)).Logger()
	done := logging.LogOperationStart(logger, "source")
	defer done()

	src, err := source.Open(id, stdin)
	if err != nil {
		return err
	}
	defer src.Close()

	sink := render.New(cfg, id)
	for rec := range src.Records() {
		sink.Accept(m.Outcome(rec))
	}
	if err := src.Err(); err != nil {
		return err
	}

	if err := sink.Flush(out); err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return errors.Wrap(err, errors.ErrOutputWrite, "writing output")
	}
	return nil
}
