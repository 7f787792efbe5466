// Command numser inspects, dumps and generates numser stream files.
//
// Usage:
//
//	numser [-v] inspect [-compress LIST] FILE...
//	numser [-v] dump -type T [-nested] FILE
//	numser [-v] gen -type T -count N [-start S] [-step D] -out FILE
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/arloliu/numser/errs"
)

var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("numser", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "enable debug logging")
	fs.Usage = func() { usage(stderr) }

	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := newLogger(stderr, *verbose)

	if fs.NArg() == 0 {
		usage(stderr)
		return 2
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	logger.Debug("running command", "command", cmd, "args", rest)

	var err error
	switch cmd {
	case "inspect":
		err = runInspect(rest, stdout, stderr, logger)
	case "dump":
		err = runDump(rest, stdout, stderr, logger)
	case "gen":
		err = runGen(rest, stderr, logger)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		usage(stderr)

		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		logger.Error("command failed", "command", cmd, "status", errs.StatusOf(err).String(), "error", err)
		return 1
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func usage(w io.Writer) {
	fmt.Fprint(w, `usage:
  numser [-v] inspect [-compress LIST] FILE...
  numser [-v] dump -type T [-nested] FILE
  numser [-v] gen -type T -count N [-start S] [-step D] -out FILE

types: int8 uint8 int16 uint16 int32 uint32 int64 uint64 float32 float64
`)
}
