package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"search/internal/errors"
	"search/internal/logging"
	"search/internal/model"
	"search/internal/options"
	"search/internal/search"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
)

// Run executes one invocation and returns the process exit code. args must
// not include the program name.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	res, err := options.Resolve(args)
	if err != nil {
		return report(stderr, err)
	}

	logging.SetupLogger(stderr, res.Verbosity)
	log.Debug().Strs("args", args).Msg("Options resolved")

	if res.Help {
		printUsage(stdout)
		return ExitOK
	}
	if res.Version {
		fmt.Fprintf(stdout, "search version %s\n", model.Version)
		return ExitOK
	}

	err = search.Run(res.Config, search.Env{Stdin: stdin, Stdout: stdout, Stderr: stderr})
	if err != nil {
		log.Debug().
			Str("code", string(errors.GetErrorCode(err))).
			Fields(errors.GetErrorDetails(err)).
			Msg("Run failed")
		return report(stderr, err)
	}
	return ExitOK
}

// report prints err and, for command-line mistakes, the usage line.
func report(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "search: %v\n", err)
	if errors.IsConfigError(err) {
		fmt.Fprintln(stderr, options.UsageLine)
	}
	return ExitError
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "%s\n\n", options.UsageLine)
	fmt.Fprintf(w, "Search each SOURCE for lines containing PATTERN.\n")
	fmt.Fprintf(w, "With no SOURCE, or when SOURCE is -, read standard input.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fmt.Fprint(w, options.Usage())
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  search -n TODO main.go       # Matching lines with line numbers\n")
	fmt.Fprintf(w, "  search -ic error a.log b.log # Case-insensitive count per file\n")
	fmt.Fprintf(w, "  cat notes | search -v draft  # Lines without \"draft\"\n")
}
