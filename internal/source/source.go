// Package source reads the lines of one configured source.
package source

import (
	"bufio"
	stderrors "errors"
	"io"
	"iter"
	"os"
	"syscall"

	"search/internal/errors"
	"search/internal/model"
)

const (
	initialBufSize = 64 * 1024
	maxLineSize    = 10 * 1024 * 1024 // 10MB max line
)

// Source is an opened line source. It is traversed at most once.
type Source struct {
	id     model.SourceID
	r      io.Reader
	closer io.Closer
	err    error
}

// Open prepares id for reading. The stdin sentinel reads from stdin; any
// other identifier is opened as a file. Failures are ErrSourceOpen errors.
func Open(id model.SourceID, stdin io.Reader) (*Source, error) {
	if id.IsStdin() {
		return &Source{id: id, r: stdin}, nil
	}

	file, err := os.Open(string(id))
	if err != nil {
		return nil, openError(id, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, openError(id, err)
	}
	if info.IsDir() {
		file.Close()
		return nil, openError(id, syscall.EISDIR)
	}

	return &Source{id: id, r: file, closer: file}, nil
}

func openError(id model.SourceID, err error) error {
	// os.PathError repeats the path; keep only the reason
	var pathErr *os.PathError
	if stderrors.As(err, &pathErr) {
		err = pathErr.Err
	}
	return errors.Wrap(err, errors.ErrSourceOpen, id.Label()).WithDetail("source", string(id))
}

// ID returns the identifier the source was opened with.
func (s *Source) ID() model.SourceID {
	return s.id
}

// Records yields the lines of the source in order, numbered from 1, with
// "\n" or "\r\n" terminators removed. A final line without a terminator is
// still yielded. Check Err once the sequence ends.
func (s *Source) Records() iter.Seq[model.LineRecord] {
	return func(yield func(model.LineRecord) bool) {
		scanner := bufio.NewScanner(s.r)
		scanner.Buffer(make([]byte, 0, initialBufSize), maxLineSize)

		ordinal := 0
		for scanner.Scan() {
			ordinal++
			if !yield(model.LineRecord{Ordinal: ordinal, Text: scanner.Text()}) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			s.err = errors.Wrapf(err, errors.ErrSourceRead, "reading %s", s.id.Label()).
				WithDetail("source", string(s.id)).
				WithDetail("line", ordinal+1)
		}
	}
}

// Err returns the read error that ended Records early, if any.
func (s *Source) Err() error {
	return s.err
}

// Close releases the underlying file. Standard input is left open.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
