package source

import (
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"search/internal/errors"
	"search/internal/model"
)

func collect(t *testing.T, s *Source) []model.LineRecord {
	t.Helper()
	var out []model.LineRecord
	for rec := range s.Records() {
		out = append(out, rec)
	}
	return out
}

func TestRecordsFromStdin(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"terminated", "hello world\nfoo bar\n", []string{"hello world", "foo bar"}},
		{"unterminated last line", "x\ny", []string{"x", "y"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank lines kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"trailing spaces kept", "a  \n", []string{"a  "}},
		{"empty input", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(model.Stdin, strings.NewReader(tt.input))
			require.NoError(t, err)
			defer s.Close()

			recs := collect(t, s)
			require.NoError(t, s.Err())
			require.Len(t, recs, len(tt.want))
			for i, rec := range recs {
				assert.Equal(t, i+1, rec.Ordinal)
				assert.Equal(t, tt.want[i], rec.Text)
			}
		})
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("x\ny\n"), 0644))

	s, err := Open(model.SourceID(path), nil)
	require.NoError(t, err)

	recs := collect(t, s)
	require.NoError(t, s.Err())
	assert.Equal(t, []model.LineRecord{{Ordinal: 1, Text: "x"}, {Ordinal: 2, Text: "y"}}, recs)
	assert.Equal(t, model.SourceID(path), s.ID())
	assert.NoError(t, s.Close())
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		id      model.SourceID
		wantMsg string
	}{
		{"missing file", model.SourceID(filepath.Join(dir, "nope.txt")), "no such file or directory"},
		{"directory", model.SourceID(dir), "is a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(tt.id, nil)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.True(t, errors.IsErrorCode(err, errors.ErrSourceOpen))
			assert.Equal(t, string(tt.id)+": "+tt.wantMsg, err.Error())
			assert.Equal(t, string(tt.id), errors.GetErrorDetails(err)["source"])
		})
	}
}

func TestOpenUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read files regardless of mode")
	}

	path := filepath.Join(t.TempDir(), "secret.txt")
	require.NoError(t, os.WriteFile(path, []byte("y\n"), 0644))
	require.NoError(t, os.Chmod(path, 0000))

	s, err := Open(model.SourceID(path), nil)
	require.Error(t, err)
	assert.Nil(t, s)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceOpen))
	assert.Equal(t, path+": permission denied", err.Error())
}

func TestMidReadError(t *testing.T) {
	boom := stderrors.New("device unplugged")
	r := io.MultiReader(strings.NewReader("first\n"), iotest.ErrReader(boom))

	s, err := Open(model.Stdin, r)
	require.NoError(t, err)

	recs := collect(t, s)
	assert.Equal(t, []model.LineRecord{{Ordinal: 1, Text: "first"}}, recs)

	err = s.Err()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceRead))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "reading (standard input): device unplugged", err.Error())
}

func TestRecordsStopsEarly(t *testing.T) {
	s, err := Open(model.Stdin, strings.NewReader("a\nb\nc\n"))
	require.NoError(t, err)

	var seen []string
	for rec := range s.Records() {
		seen = append(seen, rec.Text)
		if rec.Ordinal == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
	assert.NoError(t, s.Err())
}
