// Package options turns the command-line tokens into a validated
// model.SearchConfig.
package options

import (
	"io"
	"strings"

	"github.com/spf13/pflag"

	"search/internal/errors"
	"search/internal/model"
)

// UsageLine is the one-line synopsis printed with configuration errors.
const UsageLine = "Usage: search [OPTIONS] PATTERN [SOURCE...]"

// Result is everything the command line asked for. Config is only valid
// when neither Help nor Version is set.
type Result struct {
	Config    model.SearchConfig
	Help      bool
	Version   bool
	Verbosity int
}

func newFlagSet(r *Result) *pflag.FlagSet {
	fs := pflag.NewFlagSet("search", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	cfg := &r.Config
	fs.BoolVarP(&cfg.CaseInsensitive, "ignore-case", "i", false, "Ignore case distinctions in the pattern and the input")
	fs.BoolVarP(&cfg.ShowLineNumbers, "line-number", "n", false, "Prefix each output line with its line number")
	fs.BoolVarP(&cfg.CountOnly, "count", "c", false, "Print only a count of selected lines per source")
	fs.BoolVarP(&cfg.InvertMatch, "invert-match", "v", false, "Select lines that do not contain the pattern")
	fs.BoolVarP(&r.Help, "help", "h", false, "Show this help message")
	fs.BoolVarP(&r.Version, "version", "V", false, "Print version information")
	fs.CountVar(&r.Verbosity, "verbose", "Log progress to stderr (repeat for more detail)")
	return fs
}

// Resolve parses args (without the program name). The first positional
// token is the pattern and every later one is a source. Without sources the
// configuration reads standard input.
func Resolve(args []string) (Result, error) {
	var r Result
	fs := newFlagSet(&r)

	if err := checkTokens(fs, args); err != nil {
		return Result{}, err
	}
	if err := fs.Parse(args); err != nil {
		return Result{}, errors.Newf(errors.ErrUnknownOption, "%v", err)
	}
	if r.Help || r.Version {
		return r, nil
	}

	positional := fs.Args()
	if len(positional) == 0 {
		return Result{}, errors.New(errors.ErrMissingPattern, "pattern is required")
	}
	if positional[0] == "" {
		return Result{}, errors.New(errors.ErrEmptyPattern, "pattern must not be empty")
	}

	r.Config.Pattern = positional[0]
	for _, tok := range positional[1:] {
		r.Config.Sources = append(r.Config.Sources, model.SourceID(tok))
	}
	if len(r.Config.Sources) == 0 {
		r.Config.Sources = []model.SourceID{model.Stdin}
	}
	return r, nil
}

// checkTokens rejects every option-looking token that is not the exact
// spelling of a defined flag: combined shorthands, "--flag=value" forms and
// "--" are all unknown options. A bare "-" is only allowed as a source.
func checkTokens(fs *pflag.FlagSet, args []string) error {
	known := make(map[string]bool)
	fs.VisitAll(func(f *pflag.Flag) {
		known["--"+f.Name] = true
		if f.Shorthand != "" {
			known["-"+f.Shorthand] = true
		}
	})

	seenPattern := false
	for _, tok := range args {
		switch {
		case !strings.HasPrefix(tok, "-"):
			seenPattern = true
		case tok == string(model.Stdin) && seenPattern:
		case !known[tok]:
			return errors.Newf(errors.ErrUnknownOption, "unknown option: %s", tok).WithDetail("option", tok)
		}
	}
	return nil
}

// Usage returns the option table, one flag per line.
func Usage() string {
	var r Result
	return newFlagSet(&r).FlagUsages()
}
