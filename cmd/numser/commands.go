package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/arloliu/numser/format"
	"github.com/arloliu/numser/inspect"
)

func runInspect(args []string, stdout, stderr io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	algos := fs.String("compress", "zstd,s2,lz4", "comma separated compression estimates, empty for none")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	opt, err := compressionOption(*algos)
	if err != nil {
		fmt.Fprintln(stderr, "inspect:", err)
		return errUsage
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "inspect: at least one FILE is required")
		return errUsage
	}

	for _, path := range fs.Args() {
		report, err := inspectFile(path, opt)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		logger.Debug("inspected file", "path", path, "layout", report.Layout.String(), "body_size", report.BodySize)
		printReport(stdout, path, report)
	}

	return nil
}

func compressionOption(list string) (inspect.Option, error) {
	var algos []format.CompressionType
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		algo, err := format.ParseCompressionType(name)
		if err != nil {
			return nil, err
		}
		algos = append(algos, algo)
	}

	return inspect.WithCompression(algos...), nil
}

func inspectFile(path string, opts ...inspect.Option) (*inspect.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return inspect.Inspect(f, opts...)
}

func printReport(w io.Writer, path string, r *inspect.Report) {
	fmt.Fprintf(w, "%s:\n", path)
	fmt.Fprintf(w, "  version:      %d\n", r.Header.Version)
	fmt.Fprintf(w, "  element size: %d (%s)\n", r.Header.ElemSize, strings.Join(r.TypeCandidates, ", "))
	fmt.Fprintf(w, "  count:        %d\n", r.Header.Count)
	fmt.Fprintf(w, "  layout:       %s\n", r.Layout)
	if r.Layout == inspect.LayoutNested {
		fmt.Fprintf(w, "  inner counts: %v\n", r.InnerCounts)
	}
	fmt.Fprintf(w, "  body bytes:   %d", r.BodySize)
	if r.Oversized {
		fmt.Fprint(w, " (truncated at read cap)")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  xxhash64:     %016x\n", r.Digest)
	for _, s := range r.Compression {
		fmt.Fprintf(w, "  %-13s %d bytes, %.1f%% saved\n", s.Algorithm.String()+":", s.CompressedSize, s.SpaceSavings())
	}
}

func runDump(args []string, stdout, stderr io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	typeName := fs.String("type", "", "element type")
	nested := fs.Bool("nested", false, "read a nested stream")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "dump: exactly one FILE is required")
		return errUsage
	}

	ops, err := lookupType(*typeName)
	if err != nil {
		fmt.Fprintln(stderr, "dump:", err)
		return errUsage
	}

	logger.Debug("dumping file", "path", fs.Arg(0), "type", *typeName, "nested", *nested)

	return ops.dump(fs.Arg(0), *nested, stdout)
}

func runGen(args []string, stderr io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	typeName := fs.String("type", "", "element type")
	count := fs.Int("count", 0, "number of elements")
	start := fs.Float64("start", 0, "first value")
	step := fs.Float64("step", 1, "increment between values")
	out := fs.String("out", "", "output file")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	if *out == "" || *count < 0 {
		fmt.Fprintln(stderr, "gen: -out is required and -count must not be negative")
		return errUsage
	}

	ops, err := lookupType(*typeName)
	if err != nil {
		fmt.Fprintln(stderr, "gen:", err)
		return errUsage
	}

	if err := ops.gen(*out, *count, *start, *step); err != nil {
		return err
	}

	logger.Info("wrote file", "path", *out, "type", *typeName, "count", *count)

	return nil
}
